// Package host installs a built menu tree as the native application menu of
// a fyne window.
package host

import (
	"errors"
	"fmt"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"pdf-reader/internal/logger"
	"pdf-reader/internal/menu"
)

var (
	ErrNoWindow         = errors.New("no window")
	ErrEmptyTree        = errors.New("empty menu tree")
	ErrAlreadyInstalled = errors.New("menu already installed")
)

// InstallError reports that the window rejected a menu tree.
type InstallError struct {
	Err error
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("install menu: %v", e.Err)
}

func (e *InstallError) Unwrap() error {
	return e.Err
}

// Host renders menu trees into a fyne window. Action entries call activate
// with their id; predefined entries are handled here and never reach it.
type Host struct {
	app      fyne.App
	window   fyne.Window
	activate func(id string)
	about    func()
	logger   logger.Logger
	goos     string

	installed bool
}

func New(app fyne.App, window fyne.Window, activate func(id string), log logger.Logger) *Host {
	if log == nil {
		log = logger.NewNop()
	}
	h := &Host{
		app:      app,
		window:   window,
		activate: activate,
		logger:   log,
		goos:     runtime.GOOS,
	}
	h.about = h.defaultAbout
	return h
}

// SetAboutHandler overrides what the predefined About entry shows.
func (h *Host) SetAboutHandler(fn func()) {
	if fn == nil {
		fn = h.defaultAbout
	}
	h.about = fn
}

// Install converts tree and sets it as the window's main menu. It may be
// called once; the tree is not retained.
func (h *Host) Install(tree *menu.Tree) error {
	if h.installed {
		return &InstallError{Err: ErrAlreadyInstalled}
	}
	if h.window == nil {
		return &InstallError{Err: ErrNoWindow}
	}
	if tree == nil || len(tree.Menus) == 0 {
		return &InstallError{Err: ErrEmptyTree}
	}
	if err := menu.Validate(tree); err != nil {
		return &InstallError{Err: err}
	}

	planned := planFor(tree, h.goos)
	mainMenu, err := h.convert(planned)
	if err != nil {
		return &InstallError{Err: err}
	}

	h.window.SetMainMenu(mainMenu)
	h.installed = true

	h.logger.Info("Host", "menu installed", map[string]interface{}{
		"profile":   tree.Profile.String(),
		"menus":     planned.Titles(),
		"actions":   len(planned.Actions()),
		"native_os": planned != tree,
	})
	return nil
}

// Labels the darwin fyne driver moves into the OS application menu.
const (
	nativeAboutLabel       = "About"
	nativePreferencesLabel = "Preferences…"
)

// planFor returns the tree as it is rendered on goos. On darwin the OS owns
// the application menu and already offers Services, Hide, Hide Others,
// Show All and Quit, so the App-identity submenu is not rendered as a menu
// of its own: About and its actions are moved to the front of the first
// remaining menu, under the labels fyne hoists into the OS menu. Everywhere
// else tree is returned unchanged.
func planFor(tree *menu.Tree, goos string) *menu.Tree {
	if goos != "darwin" || tree.Profile != menu.MacOS {
		return tree
	}

	var hoisted []menu.Entry
	menus := make([]menu.Submenu, 0, len(tree.Menus))
	for _, sub := range tree.Menus {
		if sub.Title != menu.AppName {
			menus = append(menus, sub)
			continue
		}
		for _, e := range sub.Entries {
			switch v := e.(type) {
			case menu.Predefined:
				if v.Kind == menu.About {
					hoisted = append(hoisted, menu.Predefined{Kind: menu.About, Label: nativeAboutLabel})
				}
			case menu.Action:
				if v.ID == menu.IDPreferences {
					v.Label = nativePreferencesLabel
				}
				hoisted = append(hoisted, v)
			}
		}
	}
	if len(menus) == 0 || len(menus) == len(tree.Menus) {
		return tree
	}

	first := menus[0]
	entries := make([]menu.Entry, 0, len(hoisted)+len(first.Entries))
	entries = append(entries, hoisted...)
	entries = append(entries, first.Entries...)
	menus[0] = menu.Submenu{Title: first.Title, Entries: entries}

	return &menu.Tree{Profile: tree.Profile, Menus: menus}
}

func (h *Host) convert(tree *menu.Tree) (*fyne.MainMenu, error) {
	menus := make([]*fyne.Menu, 0, len(tree.Menus))
	for _, sub := range tree.Menus {
		m, err := h.convertSubmenu(sub)
		if err != nil {
			return nil, err
		}
		menus = append(menus, m)
	}
	return fyne.NewMainMenu(menus...), nil
}

func (h *Host) convertSubmenu(sub menu.Submenu) (*fyne.Menu, error) {
	items := make([]*fyne.MenuItem, 0, len(sub.Entries))
	for _, e := range sub.Entries {
		item, err := h.convertEntry(e)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", sub.Title, err)
		}
		items = append(items, item)
	}
	return fyne.NewMenu(sub.Title, items...), nil
}

func (h *Host) convertEntry(e menu.Entry) (*fyne.MenuItem, error) {
	switch v := e.(type) {
	case menu.Action:
		return h.actionItem(v)
	case menu.Separator:
		return fyne.NewMenuItemSeparator(), nil
	case menu.Predefined:
		return h.predefinedItem(v), nil
	case menu.Submenu:
		child, err := h.convertSubmenu(v)
		if err != nil {
			return nil, err
		}
		item := fyne.NewMenuItem(v.Title, nil)
		item.ChildMenu = child
		return item, nil
	default:
		return nil, fmt.Errorf("unsupported entry %T", e)
	}
}

func (h *Host) actionItem(a menu.Action) (*fyne.MenuItem, error) {
	id := a.ID
	item := fyne.NewMenuItem(a.Label, func() {
		h.activate(id)
	})
	item.Disabled = !a.Enabled

	if a.Shortcut != nil {
		sc, err := fyneShortcut(*a.Shortcut)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", id, err)
		}
		item.Shortcut = sc
	}
	return item, nil
}

func (h *Host) predefinedItem(p menu.Predefined) *fyne.MenuItem {
	label := p.Label
	if label == "" {
		label = defaultLabels[p.Kind]
	}

	item := fyne.NewMenuItem(label, nil)
	switch p.Kind {
	case menu.About:
		item.Action = func() { h.about() }
	case menu.Quit:
		item.IsQuit = true
		item.Action = h.quit
	default:
		// Services, Hide, Hide Others and Show All belong to an OS
		// application menu; in-window menus cannot offer them.
		item.Disabled = true
	}
	return item
}

var defaultLabels = map[menu.PredefinedKind]string{
	menu.About:      "About",
	menu.Quit:       "Quit",
	menu.Hide:       "Hide",
	menu.Services:   "Services",
	menu.HideOthers: "Hide Others",
	menu.ShowAll:    "Show All",
}

func (h *Host) quit() {
	h.logger.Info("Host", "quit requested from menu", nil)
	if h.app != nil {
		h.app.Quit()
	}
}

func (h *Host) defaultAbout() {
	dialog.ShowInformation("About "+menu.AppName, menu.AppName, h.window)
}
