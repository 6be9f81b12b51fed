package host

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"pdf-reader/internal/menu"
)

var keyNames = map[string]fyne.KeyName{
	"+":         fyne.KeyPlus,
	"-":         fyne.KeyMinus,
	"=":         fyne.KeyEqual,
	",":         fyne.KeyComma,
	".":         fyne.KeyPeriod,
	"/":         fyne.KeySlash,
	"\\":        fyne.KeyBackslash,
	";":         fyne.KeySemicolon,
	"'":         fyne.KeyApostrophe,
	"`":         fyne.KeyBackTick,
	"[":         fyne.KeyLeftBracket,
	"]":         fyne.KeyRightBracket,
	"Space":     fyne.KeySpace,
	"Tab":       fyne.KeyTab,
	"Enter":     fyne.KeyReturn,
	"Escape":    fyne.KeyEscape,
	"Backspace": fyne.KeyBackspace,
	"Delete":    fyne.KeyDelete,
	"Insert":    fyne.KeyInsert,
	"Home":      fyne.KeyHome,
	"End":       fyne.KeyEnd,
	"PageUp":    fyne.KeyPageUp,
	"PageDown":  fyne.KeyPageDown,
	"Up":        fyne.KeyUp,
	"Down":      fyne.KeyDown,
	"Left":      fyne.KeyLeft,
	"Right":     fyne.KeyRight,
}

// fyneShortcut translates a normalized chord for the fyne shortcut registry.
func fyneShortcut(s menu.Shortcut) (*desktop.CustomShortcut, error) {
	key, err := fyneKey(s.Key)
	if err != nil {
		return nil, err
	}

	var mod fyne.KeyModifier
	if s.Modifiers&menu.ModShift != 0 {
		mod |= fyne.KeyModifierShift
	}
	if s.Modifiers&menu.ModControl != 0 {
		mod |= fyne.KeyModifierControl
	}
	if s.Modifiers&menu.ModAlt != 0 {
		mod |= fyne.KeyModifierAlt
	}
	if s.Modifiers&menu.ModSuper != 0 {
		mod |= fyne.KeyModifierSuper
	}
	return &desktop.CustomShortcut{KeyName: key, Modifier: mod}, nil
}

func fyneKey(k string) (fyne.KeyName, error) {
	if name, ok := keyNames[k]; ok {
		return name, nil
	}
	if len(k) == 1 {
		c := k[0]
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			return fyne.KeyName(k), nil
		}
	}
	// function keys share their names with fyne (F1..F12)
	if len(k) >= 2 && k[0] == 'F' {
		return fyne.KeyName(k), nil
	}
	return "", fmt.Errorf("no fyne key for %q", k)
}
