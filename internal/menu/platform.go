package menu

import (
	"fmt"
	"runtime"
	"strings"
)

// ProfileFor maps a GOOS value to its menu profile.
func ProfileFor(goos string) PlatformProfile {
	if goos == "darwin" {
		return MacOS
	}
	return Other
}

// CurrentProfile is the profile of the running binary.
func CurrentProfile() PlatformProfile {
	return ProfileFor(runtime.GOOS)
}

// ParseProfile reads a configured profile. "auto" and "" resolve to the
// running platform.
func ParseProfile(s string) (PlatformProfile, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return CurrentProfile(), nil
	case "macos", "darwin", "mac":
		return MacOS, nil
	case "other", "windows", "linux":
		return Other, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownProfile, s)
	}
}
