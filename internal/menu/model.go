package menu

import "fmt"

// PlatformProfile selects which optional parts of the topology are built.
type PlatformProfile int

const (
	MacOS PlatformProfile = iota
	Other
)

func (p PlatformProfile) String() string {
	switch p {
	case MacOS:
		return "macos"
	case Other:
		return "other"
	default:
		return fmt.Sprintf("PlatformProfile(%d)", int(p))
	}
}

// PredefinedKind identifies an action whose label and behaviour belong to the host.
type PredefinedKind int

const (
	About PredefinedKind = iota
	Quit
	Hide
	Services
	HideOthers
	ShowAll
)

func (k PredefinedKind) String() string {
	switch k {
	case About:
		return "about"
	case Quit:
		return "quit"
	case Hide:
		return "hide"
	case Services:
		return "services"
	case HideOthers:
		return "hide_others"
	case ShowAll:
		return "show_all"
	default:
		return fmt.Sprintf("PredefinedKind(%d)", int(k))
	}
}

// Entry is one node of a menu tree. The variants are Action, Separator,
// Predefined and Submenu.
type Entry interface {
	entry()
}

// Action is a clickable command identified by ID.
type Action struct {
	ID       string
	Label    string
	Enabled  bool
	Shortcut *Shortcut
}

// Separator is a visual divider.
type Separator struct{}

// Predefined is an OS-supplied action. Label is an optional override.
type Predefined struct {
	Kind  PredefinedKind
	Label string
}

// Submenu is a named, ordered group of entries.
type Submenu struct {
	Title   string
	Entries []Entry
}

func (Action) entry()     {}
func (Separator) entry()  {}
func (Predefined) entry() {}
func (Submenu) entry()    {}

// Tree is the root of a built menu: an ordered list of top-level submenus.
type Tree struct {
	Profile PlatformProfile
	Menus   []Submenu
}

// Walk visits every entry depth-first in display order. The path holds the
// titles of the enclosing submenus. Returning false stops the walk.
func (t *Tree) Walk(fn func(path []string, e Entry) bool) {
	if t == nil {
		return
	}
	for _, m := range t.Menus {
		if !walk(nil, m, fn) {
			return
		}
	}
}

func walk(path []string, s Submenu, fn func([]string, Entry) bool) bool {
	if !fn(path, s) {
		return false
	}
	inner := append(append([]string(nil), path...), s.Title)
	for _, e := range s.Entries {
		if sub, ok := e.(Submenu); ok {
			if !walk(inner, sub, fn) {
				return false
			}
			continue
		}
		if !fn(inner, e) {
			return false
		}
	}
	return true
}

// Actions returns every Action in display order.
func (t *Tree) Actions() []Action {
	var out []Action
	t.Walk(func(_ []string, e Entry) bool {
		if a, ok := e.(Action); ok {
			out = append(out, a)
		}
		return true
	})
	return out
}

// Find returns the action with the given id.
func (t *Tree) Find(id string) (Action, bool) {
	for _, a := range t.Actions() {
		if a.ID == id {
			return a, true
		}
	}
	return Action{}, false
}

// Submenu returns the top-level submenu with the given title.
func (t *Tree) Submenu(title string) (Submenu, bool) {
	if t == nil {
		return Submenu{}, false
	}
	for _, m := range t.Menus {
		if m.Title == title {
			return m, true
		}
	}
	return Submenu{}, false
}

// Titles lists the top-level submenu titles in order.
func (t *Tree) Titles() []string {
	if t == nil {
		return nil
	}
	titles := make([]string, 0, len(t.Menus))
	for _, m := range t.Menus {
		titles = append(titles, m.Title)
	}
	return titles
}
