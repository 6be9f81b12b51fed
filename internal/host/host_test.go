package host

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdf-reader/internal/menu"
	"pdf-reader/internal/router"
)

func newTestHost(t *testing.T, activate func(string)) (*Host, fyne.Window) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)
	w := test.NewWindow(nil)
	t.Cleanup(w.Close)
	h := New(a, w, activate, nil)
	h.goos = "linux"
	return h, w
}

func findItem(t *testing.T, m *fyne.Menu, label string) *fyne.MenuItem {
	t.Helper()
	for _, item := range m.Items {
		if item.Label == label {
			return item
		}
	}
	t.Fatalf("no item %q in menu %q", label, m.Label)
	return nil
}

func menuLabels(mm *fyne.MainMenu) []string {
	out := make([]string, 0, len(mm.Items))
	for _, m := range mm.Items {
		out = append(out, m.Label)
	}
	return out
}

func TestInstallOther(t *testing.T) {
	h, w := newTestHost(t, func(string) {})
	tree, err := menu.Build(menu.Other)
	require.NoError(t, err)

	require.NoError(t, h.Install(tree))

	mm := w.MainMenu()
	require.NotNil(t, mm)
	assert.Equal(t, []string{"File", "View", "Help"}, menuLabels(mm))

	file := mm.Items[0]
	require.Len(t, file.Items, 5)
	assert.True(t, file.Items[1].IsSeparator)
	assert.True(t, file.Items[3].IsSeparator)
	assert.True(t, file.Items[4].IsQuit)
	assert.Equal(t, "Exit", file.Items[4].Label)

	open := file.Items[0]
	assert.Equal(t, "Open...", open.Label)
	assert.Equal(t, &desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierControl}, open.Shortcut)
}

func TestInstallMacOS(t *testing.T) {
	h, w := newTestHost(t, func(string) {})
	tree, err := menu.Build(menu.MacOS)
	require.NoError(t, err)

	require.NoError(t, h.Install(tree))

	mm := w.MainMenu()
	assert.Equal(t, []string{menu.AppName, "File", "View"}, menuLabels(mm))

	app := mm.Items[0]
	require.Len(t, app.Items, 11)
	assert.Equal(t, "About PDF Reader", app.Items[0].Label)
	assert.Equal(t, "Quit PDF Reader", app.Items[10].Label)
	assert.True(t, app.Items[10].IsQuit)

	for _, label := range []string{"Services", "Hide", "Hide Others", "Show All"} {
		assert.True(t, findItem(t, app, label).Disabled, label)
	}
	assert.False(t, findItem(t, app, "About PDF Reader").Disabled)

	prefs := findItem(t, app, "Preferences...")
	assert.Equal(t, &desktop.CustomShortcut{KeyName: fyne.KeyComma, Modifier: fyne.KeyModifierSuper}, prefs.Shortcut)

	for _, item := range mm.Items[1].Items {
		assert.False(t, item.IsQuit, "File menu must not carry Quit on macOS")
	}
}

func TestPlanFor(t *testing.T) {
	mac, err := menu.Build(menu.MacOS)
	require.NoError(t, err)
	other, err := menu.Build(menu.Other)
	require.NoError(t, err)

	assert.Same(t, mac, planFor(mac, "linux"))
	assert.Same(t, mac, planFor(mac, "windows"))
	assert.Same(t, other, planFor(other, "darwin"))

	planned := planFor(mac, "darwin")
	require.NoError(t, menu.Validate(planned))
	assert.Equal(t, []string{menu.TitleFile, menu.TitleView}, planned.Titles())
	assert.Equal(t, []string{menu.AppName, menu.TitleFile, menu.TitleView}, mac.Titles())

	file, ok := planned.Submenu(menu.TitleFile)
	require.True(t, ok)
	require.Len(t, file.Entries, 5)
	assert.Equal(t, menu.Predefined{Kind: menu.About, Label: "About"}, file.Entries[0])

	prefs, ok := file.Entries[1].(menu.Action)
	require.True(t, ok)
	assert.Equal(t, menu.IDPreferences, prefs.ID)
	assert.Equal(t, "Preferences…", prefs.Label)
	assert.Equal(t, "Super+,", prefs.Shortcut.String())

	planned.Walk(func(_ []string, e menu.Entry) bool {
		if p, ok := e.(menu.Predefined); ok {
			assert.Equal(t, menu.About, p.Kind, "OS-supplied %s rendered", p.Kind)
		}
		return true
	})

	// the built tree is left alone
	app, ok := mac.Submenu(menu.AppName)
	require.True(t, ok)
	assert.Equal(t, menu.Predefined{Kind: menu.About, Label: "About PDF Reader"}, app.Entries[0])
}

func TestInstallFoldsAppMenuOnDarwin(t *testing.T) {
	var activated []string
	h, w := newTestHost(t, func(id string) { activated = append(activated, id) })
	h.goos = "darwin"
	aboutCalls := 0
	h.SetAboutHandler(func() { aboutCalls++ })

	tree, err := menu.Build(menu.MacOS)
	require.NoError(t, err)
	require.NoError(t, h.Install(tree))

	mm := w.MainMenu()
	assert.Equal(t, []string{"File", "View"}, menuLabels(mm))

	file := mm.Items[0]
	findItem(t, file, "About").Action()
	assert.Equal(t, 1, aboutCalls)

	prefs := findItem(t, file, "Preferences…")
	assert.Equal(t, &desktop.CustomShortcut{KeyName: fyne.KeyComma, Modifier: fyne.KeyModifierSuper}, prefs.Shortcut)
	prefs.Action()
	assert.Equal(t, []string{menu.IDPreferences}, activated)

	for _, m := range mm.Items {
		for _, item := range m.Items {
			assert.False(t, item.IsQuit, "%s > %s", m.Label, item.Label)
		}
	}
}

func TestViewShortcuts(t *testing.T) {
	h, w := newTestHost(t, func(string) {})
	tree, err := menu.Build(menu.Other)
	require.NoError(t, err)
	require.NoError(t, h.Install(tree))

	view := w.MainMenu().Items[1]
	want := map[string]fyne.KeyName{
		"Zoom In":       fyne.KeyPlus,
		"Zoom Out":      fyne.KeyMinus,
		"Actual Size":   fyne.Key0,
		"Next Page":     fyne.KeyRightBracket,
		"Previous Page": fyne.KeyLeftBracket,
	}
	for label, key := range want {
		item := findItem(t, view, label)
		sc, ok := item.Shortcut.(*desktop.CustomShortcut)
		require.True(t, ok, label)
		assert.Equal(t, key, sc.KeyName, label)
		assert.Equal(t, fyne.KeyModifierControl, sc.Modifier, label)
	}
}

func TestActivationReachesRouter(t *testing.T) {
	var got []string
	r := router.New(nil)
	r.OnActivation(func(a router.Activation) { got = append(got, a.ID) })

	h, w := newTestHost(t, r.Activate)
	tree, err := menu.Build(menu.Other)
	require.NoError(t, err)
	require.NoError(t, h.Install(tree))

	view := w.MainMenu().Items[1]
	findItem(t, view, "Zoom In").Action()

	assert.Equal(t, []string{"zoom_in"}, got)
}

func TestPredefinedAboutStaysInHost(t *testing.T) {
	var activated []string
	h, w := newTestHost(t, func(id string) { activated = append(activated, id) })
	aboutCalls := 0
	h.SetAboutHandler(func() { aboutCalls++ })

	tree, err := menu.Build(menu.MacOS)
	require.NoError(t, err)
	require.NoError(t, h.Install(tree))

	w.MainMenu().Items[0].Items[0].Action()

	assert.Equal(t, 1, aboutCalls)
	assert.Empty(t, activated)
}

func TestDisabledAction(t *testing.T) {
	h, w := newTestHost(t, func(string) {})
	tree := &menu.Tree{Menus: []menu.Submenu{{Title: "File", Entries: []menu.Entry{
		menu.Action{ID: "open", Label: "Open"},
		menu.Submenu{Title: "Recent", Entries: []menu.Entry{
			menu.Action{ID: "recent_0", Label: "a.pdf", Enabled: true},
		}},
	}}}}

	require.NoError(t, h.Install(tree))

	file := w.MainMenu().Items[0]
	assert.True(t, file.Items[0].Disabled)
	recent := file.Items[1]
	require.NotNil(t, recent.ChildMenu)
	assert.Equal(t, "a.pdf", recent.ChildMenu.Items[0].Label)
}

func TestInstallErrors(t *testing.T) {
	tree, err := menu.Build(menu.Other)
	require.NoError(t, err)

	t.Run("twice", func(t *testing.T) {
		h, _ := newTestHost(t, func(string) {})
		require.NoError(t, h.Install(tree))
		err := h.Install(tree)
		assert.ErrorIs(t, err, ErrAlreadyInstalled)
	})

	t.Run("no window", func(t *testing.T) {
		h := New(nil, nil, func(string) {}, nil)
		var ie *InstallError
		err := h.Install(tree)
		require.ErrorAs(t, err, &ie)
		assert.ErrorIs(t, err, ErrNoWindow)
	})

	t.Run("empty tree", func(t *testing.T) {
		h, _ := newTestHost(t, func(string) {})
		assert.ErrorIs(t, h.Install(nil), ErrEmptyTree)
		assert.ErrorIs(t, h.Install(&menu.Tree{}), ErrEmptyTree)
	})

	t.Run("invalid tree", func(t *testing.T) {
		h, w := newTestHost(t, func(string) {})
		dup := &menu.Tree{Menus: []menu.Submenu{{Title: "File", Entries: []menu.Entry{
			menu.Action{ID: "open", Label: "Open"},
			menu.Action{ID: "open", Label: "Open"},
		}}}}
		err := h.Install(dup)
		assert.ErrorIs(t, err, menu.ErrDuplicateID)
		assert.Nil(t, w.MainMenu())
	})
}

func TestFyneShortcut(t *testing.T) {
	sc, err := fyneShortcut(menu.MustParseShortcut("Ctrl+Shift+Alt+Cmd+F5", menu.Other))
	require.NoError(t, err)
	assert.Equal(t, fyne.KeyF5, sc.KeyName)
	assert.Equal(t, fyne.KeyModifierControl|fyne.KeyModifierShift|fyne.KeyModifierAlt|fyne.KeyModifierSuper, sc.Modifier)

	sc, err = fyneShortcut(menu.MustParseShortcut("Option+PageDown", menu.MacOS))
	require.NoError(t, err)
	assert.Equal(t, fyne.KeyPageDown, sc.KeyName)

	_, err = fyneShortcut(menu.Shortcut{Key: "é"})
	assert.Error(t, err)
}
