// Package record captures hardware frames from an hmd.Session to a CBOR
// stream and plays them back.
//
// A Recorder wraps a live session. Every InputState call starts a new frame;
// the controller types, tracker serials, device poses and status queried
// while the frame is open are stored with it. A Replayer implements
// hmd.Session on top of a capture and advances one frame per InputState call,
// so a recorded sync loop replays deterministically.
//
// Captures use the .xrrec extension by convention.
package record
