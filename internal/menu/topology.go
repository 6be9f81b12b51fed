package menu

import "fmt"

const AppName = "PDF Reader"

// Action ids forwarded to the UI surface.
const (
	IDPreferences = "preferences"
	IDOpen        = "open"
	IDClose       = "close"
	IDZoomIn      = "zoom_in"
	IDZoomOut     = "zoom_out"
	IDActualSize  = "actual_size"
	IDNextPage    = "next_page"
	IDPrevPage    = "prev_page"
	IDAbout       = "about"
)

// Top-level submenu titles.
const (
	TitleFile = "File"
	TitleView = "View"
	TitleHelp = "Help"
)

// Build assembles the application menu for profile. The result is fully
// validated; any failure aborts with a *BuildError and no partial tree.
func Build(profile PlatformProfile) (*Tree, error) {
	b := &builder{profile: profile}

	var menus []Submenu
	switch profile {
	case MacOS:
		menus = []Submenu{b.appMenu(), b.fileMenu(), b.viewMenu()}
	case Other:
		menus = []Submenu{b.fileMenu(), b.viewMenu(), b.helpMenu()}
	default:
		return nil, &BuildError{Profile: profile, Err: ErrUnknownProfile}
	}
	if b.err != nil {
		return nil, b.err
	}

	tree := &Tree{Profile: profile, Menus: menus}
	if err := Validate(tree); err != nil {
		return nil, err
	}
	return tree, nil
}

// builder keeps the first construction error so the topology reads as a
// flat declaration.
type builder struct {
	profile PlatformProfile
	title   string
	err     error
}

func (b *builder) submenu(title string, entries ...Entry) Submenu {
	return Submenu{Title: title, Entries: entries}
}

func (b *builder) action(id, label, accel string) Entry {
	a := Action{ID: id, Label: label, Enabled: true}
	if accel == "" {
		return a
	}
	s, err := ParseShortcut(accel, b.profile)
	if err != nil {
		if b.err == nil {
			b.err = &BuildError{Profile: b.profile, Path: []string{b.title}, Entry: id, Err: err}
		}
		return a
	}
	a.Shortcut = &s
	return a
}

func separator() Entry {
	return Separator{}
}

func predefined(kind PredefinedKind, label string) Entry {
	return Predefined{Kind: kind, Label: label}
}

func (b *builder) appMenu() Submenu {
	b.title = AppName
	return b.submenu(AppName,
		predefined(About, "About "+AppName),
		separator(),
		b.action(IDPreferences, "Preferences...", "CmdOrCtrl+,"),
		separator(),
		predefined(Services, ""),
		separator(),
		predefined(Hide, ""),
		predefined(HideOthers, ""),
		predefined(ShowAll, ""),
		separator(),
		predefined(Quit, "Quit "+AppName),
	)
}

func (b *builder) fileMenu() Submenu {
	b.title = TitleFile
	entries := []Entry{
		b.action(IDOpen, "Open...", "CmdOrCtrl+O"),
		separator(),
		b.action(IDClose, "Close", "CmdOrCtrl+W"),
	}
	// macOS already offers Quit in the application menu.
	if b.profile != MacOS {
		entries = append(entries, separator(), predefined(Quit, "Exit"))
	}
	return b.submenu(TitleFile, entries...)
}

func (b *builder) viewMenu() Submenu {
	b.title = TitleView
	return b.submenu(TitleView,
		b.action(IDZoomIn, "Zoom In", "CmdOrCtrl+Plus"),
		b.action(IDZoomOut, "Zoom Out", "CmdOrCtrl+Minus"),
		separator(),
		b.action(IDActualSize, "Actual Size", "CmdOrCtrl+0"),
		separator(),
		b.action(IDNextPage, "Next Page", "CmdOrCtrl+]"),
		b.action(IDPrevPage, "Previous Page", "CmdOrCtrl+["),
	)
}

func (b *builder) helpMenu() Submenu {
	b.title = TitleHelp
	return b.submenu(TitleHelp,
		b.action(IDAbout, "About "+AppName, ""),
	)
}

// Validate checks the structural invariants of a tree: non-empty titles and
// labels, unique action ids and no chord bound twice.
func Validate(t *Tree) error {
	if t == nil {
		return &BuildError{Err: fmt.Errorf("%w: nil tree", ErrInvalidEntry)}
	}

	ids := make(map[string][]string)
	chords := make(map[Shortcut]string)
	var err error

	t.Walk(func(path []string, e Entry) bool {
		fail := func(entry string, cause error) bool {
			err = &BuildError{Profile: t.Profile, Path: path, Entry: entry, Err: cause}
			return false
		}

		switch v := e.(type) {
		case Submenu:
			if v.Title == "" {
				return fail("", fmt.Errorf("%w: submenu without title", ErrInvalidEntry))
			}
		case Action:
			if v.ID == "" {
				return fail(v.Label, fmt.Errorf("%w: action without id", ErrInvalidEntry))
			}
			if v.Label == "" {
				return fail(v.ID, fmt.Errorf("%w: action without label", ErrInvalidEntry))
			}
			if prev, ok := ids[v.ID]; ok {
				return fail(v.ID, fmt.Errorf("%w: %q already used in %v", ErrDuplicateID, v.ID, prev))
			}
			ids[v.ID] = append([]string(nil), path...)

			if v.Shortcut == nil {
				return true
			}
			if v.Shortcut.Key == "" {
				return fail(v.ID, fmt.Errorf("%w: chord without key", ErrMalformedShortcut))
			}
			if owner, ok := chords[*v.Shortcut]; ok {
				return fail(v.ID, fmt.Errorf("%w: %s already bound to %q", ErrDuplicateShortcut, v.Shortcut, owner))
			}
			chords[*v.Shortcut] = v.ID
		case Separator, Predefined:
		case nil:
			return fail("", fmt.Errorf("%w: nil entry", ErrInvalidEntry))
		default:
			return fail("", fmt.Errorf("%w: unsupported entry %T", ErrInvalidEntry, e))
		}
		return true
	})
	return err
}
