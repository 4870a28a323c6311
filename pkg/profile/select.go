package profile

// fallbackRank orders the profiles tried when the preferred profile cannot
// be used. Lower ranks win; -1 never participates.
func fallbackRank(p Profile, forced Forced) int {
	switch p {
	case ProfileTouch:
		if forced == ForcedTouch {
			return 0
		}
		return 2
	case ProfileMSMotion:
		if forced == ForcedMSMotion {
			return 1
		}
		return 3
	case ProfileIndex:
		return 4
	case ProfileVive:
		return 5
	case ProfileSimple:
		return 6
	case ProfileNone, ProfileViveTracker, ProfileEyeGaze:
		return -1
	default:
		return -1
	}
}

// Select returns the profile whose suggested bindings drive a controller of
// family f. has reports whether the application suggested bindings for a
// profile. The preferred profile wins unless a profile is forced; otherwise
// the forced profile, then Touch, Motion, Index, Vive and Simple are tried.
// ProfileNone means no usable suggestion exists.
func Select(f Family, forced Forced, has func(Profile) bool) Profile {
	if f == FamilyNone {
		return ProfileNone
	}
	preferred := f.Preferred()
	if forced == ForcedNone && has(preferred) {
		return preferred
	}

	best, bestRank := ProfileNone, -1
	for _, p := range Profiles() {
		rank := fallbackRank(p, forced)
		if rank < 0 || !has(p) {
			continue
		}
		if bestRank < 0 || rank < bestRank {
			best, bestRank = p, rank
		}
	}
	return best
}
