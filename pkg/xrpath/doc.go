// Package xrpath interns XR path strings.
//
// A Path is an opaque handle for a validated, slash-separated identifier such
// as "/user/hand/left/input/trigger/value". Handles start at 1, are allocated
// in order and are never reused for the lifetime of a Table. The zero Path is
// the null path.
//
// The package also classifies paths: which hand a binding path targets, whether
// it names the eye tracker, and which tracker role it belongs to.
package xrpath
