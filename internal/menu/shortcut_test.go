package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShortcut(t *testing.T) {
	tests := []struct {
		spec    string
		profile PlatformProfile
		want    string
	}{
		{"CmdOrCtrl+O", MacOS, "Super+O"},
		{"CmdOrCtrl+O", Other, "Ctrl+O"},
		{"CmdOrCtrl+o", Other, "Ctrl+O"},
		{"CmdOrCtrl++", Other, "Ctrl++"},
		{"CmdOrCtrl+Plus", Other, "Ctrl++"},
		{"CmdOrCtrl+Minus", MacOS, "Super+-"},
		{"CmdOrCtrl+-", Other, "Ctrl+-"},
		{"CmdOrCtrl+,", MacOS, "Super+,"},
		{"CmdOrCtrl+]", Other, "Ctrl+]"},
		{"CmdOrCtrl+[", Other, "Ctrl+["},
		{"CmdOrCtrl+0", Other, "Ctrl+0"},
		{"Shift+Ctrl+Alt+Cmd+F5", Other, "Ctrl+Alt+Shift+Super+F5"},
		{"Option+PageDown", MacOS, "Alt+PageDown"},
		{" ctrl+shift++ ", Other, "Ctrl+Shift++"},
		{"F12", Other, "F12"},
		{"+", Other, "+"},
	}

	for _, tt := range tests {
		t.Run(tt.spec+"/"+tt.profile.String(), func(t *testing.T) {
			got, err := ParseShortcut(tt.spec, tt.profile)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseShortcutAliasesNormalize(t *testing.T) {
	a := MustParseShortcut("CmdOrCtrl+Plus", Other)
	b := MustParseShortcut("Control++", Other)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a, b)
}

func TestParseShortcutErrors(t *testing.T) {
	specs := []string{
		"",
		"   ",
		"Ctrl+",
		"Ctrl+Ctrl+O",
		"Hyper+O",
		"Ctrl+Banana",
		"Ctrl+F13",
		"Ctrl+F01",
		"+O",
		"Ctrl+é",
	}

	for _, spec := range specs {
		t.Run(spec, func(t *testing.T) {
			_, err := ParseShortcut(spec, Other)
			assert.ErrorIs(t, err, ErrMalformedShortcut)
		})
	}
}

func TestMustParseShortcutPanics(t *testing.T) {
	assert.Panics(t, func() { MustParseShortcut("Ctrl+", Other) })
}

func TestParseProfile(t *testing.T) {
	p, err := ParseProfile("macos")
	require.NoError(t, err)
	assert.Equal(t, MacOS, p)

	p, err = ParseProfile("Linux")
	require.NoError(t, err)
	assert.Equal(t, Other, p)

	p, err = ParseProfile("auto")
	require.NoError(t, err)
	assert.Equal(t, CurrentProfile(), p)

	_, err = ParseProfile("beos")
	assert.ErrorIs(t, err, ErrUnknownProfile)
}

func TestProfileFor(t *testing.T) {
	assert.Equal(t, MacOS, ProfileFor("darwin"))
	assert.Equal(t, Other, ProfileFor("linux"))
	assert.Equal(t, Other, ProfileFor("windows"))
}
