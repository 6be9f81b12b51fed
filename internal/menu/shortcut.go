package menu

import (
	"fmt"
	"strconv"
	"strings"
)

// Modifier is a bit set of chord modifiers.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

var modifierOrder = []struct {
	mod  Modifier
	name string
}{
	{ModControl, "Ctrl"},
	{ModAlt, "Alt"},
	{ModShift, "Shift"},
	{ModSuper, "Super"},
}

func (m Modifier) String() string {
	parts := make([]string, 0, len(modifierOrder))
	for _, o := range modifierOrder {
		if m&o.mod != 0 {
			parts = append(parts, o.name)
		}
	}
	return strings.Join(parts, "+")
}

// Shortcut is a normalized key chord: a modifier set plus one key.
type Shortcut struct {
	Modifiers Modifier
	Key       string
}

// String renders the chord in canonical form, e.g. "Ctrl+O".
func (s Shortcut) String() string {
	if s.Modifiers == 0 {
		return s.Key
	}
	return s.Modifiers.String() + "+" + s.Key
}

// Equal reports whether two chords are the same.
func (s Shortcut) Equal(o Shortcut) bool {
	return s.Modifiers == o.Modifiers && s.Key == o.Key
}

var namedKeys = map[string]string{
	"plus":         "+",
	"minus":        "-",
	"equal":        "=",
	"comma":        ",",
	"period":       ".",
	"slash":        "/",
	"backslash":    "\\",
	"semicolon":    ";",
	"quote":        "'",
	"backquote":    "`",
	"bracketleft":  "[",
	"bracketright": "]",
	"space":        "Space",
	"tab":          "Tab",
	"enter":        "Enter",
	"return":       "Enter",
	"escape":       "Escape",
	"esc":          "Escape",
	"backspace":    "Backspace",
	"delete":       "Delete",
	"del":          "Delete",
	"insert":       "Insert",
	"home":         "Home",
	"end":          "End",
	"pageup":       "PageUp",
	"pagedown":     "PageDown",
	"up":           "Up",
	"down":         "Down",
	"left":         "Left",
	"right":        "Right",
}

// punctuation keys accepted verbatim
const punctuationKeys = "+-=,./\\;'`[]"

// ParseShortcut normalizes an accelerator such as "CmdOrCtrl+O" or
// "CmdOrCtrl++". CmdOrCtrl resolves to Super on MacOS and Control elsewhere.
func ParseShortcut(spec string, profile PlatformProfile) (Shortcut, error) {
	raw := strings.TrimSpace(spec)
	if raw == "" {
		return Shortcut{}, fmt.Errorf("%w: empty accelerator", ErrMalformedShortcut)
	}

	var keyPart string
	var modParts []string
	switch {
	case raw == "+":
		keyPart = "+"
	case strings.HasSuffix(raw, "++"):
		keyPart = "+"
		modParts = strings.Split(strings.TrimSuffix(raw, "++"), "+")
	default:
		parts := strings.Split(raw, "+")
		keyPart = parts[len(parts)-1]
		modParts = parts[:len(parts)-1]
	}

	var mods Modifier
	for _, p := range modParts {
		m, err := parseModifier(p, profile)
		if err != nil {
			return Shortcut{}, fmt.Errorf("%w: %q: %v", ErrMalformedShortcut, spec, err)
		}
		if mods&m != 0 {
			return Shortcut{}, fmt.Errorf("%w: %q: duplicate modifier %s", ErrMalformedShortcut, spec, m)
		}
		mods |= m
	}

	key, err := parseKey(keyPart)
	if err != nil {
		return Shortcut{}, fmt.Errorf("%w: %q: %v", ErrMalformedShortcut, spec, err)
	}
	return Shortcut{Modifiers: mods, Key: key}, nil
}

// MustParseShortcut is like ParseShortcut but panics on error.
func MustParseShortcut(spec string, profile PlatformProfile) Shortcut {
	s, err := ParseShortcut(spec, profile)
	if err != nil {
		panic(err)
	}
	return s
}

func parseModifier(s string, profile PlatformProfile) (Modifier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return 0, fmt.Errorf("missing modifier")
	case "cmdorctrl", "commandorcontrol", "cmdorcontrol", "commandorctrl":
		if profile == MacOS {
			return ModSuper, nil
		}
		return ModControl, nil
	case "cmd", "command", "super", "meta":
		return ModSuper, nil
	case "ctrl", "control":
		return ModControl, nil
	case "alt", "option", "opt":
		return ModAlt, nil
	case "shift":
		return ModShift, nil
	default:
		return 0, fmt.Errorf("unknown modifier %q", s)
	}
}

func parseKey(s string) (string, error) {
	k := strings.TrimSpace(s)
	if k == "" {
		return "", fmt.Errorf("missing key")
	}
	if named, ok := namedKeys[strings.ToLower(k)]; ok {
		return named, nil
	}
	if len(k) == 1 {
		c := k[0]
		switch {
		case c >= 'a' && c <= 'z':
			return string(c - 'a' + 'A'), nil
		case c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			return k, nil
		case strings.IndexByte(punctuationKeys, c) >= 0:
			return k, nil
		}
		return "", fmt.Errorf("unsupported key %q", k)
	}
	upper := strings.ToUpper(k)
	if len(upper) >= 2 && len(upper) <= 3 && upper[0] == 'F' && upper[1] >= '1' && upper[1] <= '9' {
		if n, err := strconv.Atoi(upper[1:]); err == nil && n >= 1 && n <= 12 {
			return upper, nil
		}
	}
	return "", fmt.Errorf("unknown key %q", k)
}
