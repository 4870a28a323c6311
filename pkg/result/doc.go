// Package result defines the result codes returned by the runtime entry points.
//
// Codes carry the numeric values of the XR API. Negative codes are failures,
// zero is success and positive codes are qualified successes that still
// carry information for the caller (for example SessionNotFocused).
//
// Code implements error so entry points can return it directly:
//
//	if err := rt.SyncActions(info); err != nil {
//	    switch result.Of(err) {
//	    case result.SessionNotFocused:
//	        // nothing latched this frame
//	    }
//	}
//
// Failures of the hardware collaborator are not codes. They are reported as
// *FatalError and poison the runtime.
package result
