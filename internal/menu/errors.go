package menu

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedShortcut = errors.New("malformed shortcut")
	ErrDuplicateID       = errors.New("duplicate action id")
	ErrDuplicateShortcut = errors.New("duplicate shortcut")
	ErrInvalidEntry      = errors.New("invalid menu entry")
	ErrUnknownProfile    = errors.New("unknown platform profile")
)

// BuildError reports why a menu tree could not be assembled. Path names the
// enclosing submenus of the offending entry.
type BuildError struct {
	Profile PlatformProfile
	Path    []string
	Entry   string
	Err     error
}

func (e *BuildError) Error() string {
	where := e.Entry
	for i := len(e.Path) - 1; i >= 0; i-- {
		if where == "" {
			where = e.Path[i]
			continue
		}
		where = e.Path[i] + " > " + where
	}
	if where == "" {
		return fmt.Sprintf("build %s menu: %v", e.Profile, e.Err)
	}
	return fmt.Sprintf("build %s menu: %s: %v", e.Profile, where, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}
