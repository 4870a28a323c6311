// Package xrmath implements the small amount of rigid-body math the runtime
// needs: vectors, unit quaternions and poses.
//
// Pose composition follows the XR convention: Multiply(a, b) applies a first,
// then b, so Multiply(localOffset, deviceToOrigin) yields localToOrigin.
package xrmath
