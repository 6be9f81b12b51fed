package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"pdf-reader/internal/menu"
)

func newMenuCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Print the application menu for the selected platform",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			profile, err := cfg.Profile()
			if err != nil {
				return err
			}
			tree, err := menu.Build(profile)
			if err != nil {
				return err
			}
			return writeTree(cmd.OutOrStdout(), tree)
		},
	}
}

// writeTree prints one entry per line, indented by depth.
func writeTree(w io.Writer, tree *menu.Tree) error {
	var err error
	tree.Walk(func(path []string, e menu.Entry) bool {
		indent := strings.Repeat("  ", len(path))
		var line string
		switch v := e.(type) {
		case menu.Submenu:
			line = v.Title
		case menu.Separator:
			line = "----"
		case menu.Predefined:
			line = fmt.Sprintf("<%s>", v.Kind)
			if v.Label != "" {
				line += " " + v.Label
			}
		case menu.Action:
			line = fmt.Sprintf("%s [%s]", v.Label, v.ID)
			if v.Shortcut != nil {
				line += " " + v.Shortcut.String()
			}
			if !v.Enabled {
				line += " (disabled)"
			}
		}
		_, err = fmt.Fprintln(w, indent+line)
		return err == nil
	})
	return err
}
