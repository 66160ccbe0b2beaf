package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sofmeright/shieldsvg/src/badge"
)

var badgeIcons []string

var badgeCmd = &cobra.Command{
	Use:   "badge",
	Short: "Badge rendering commands",
	Long:  "Render SVG badges from flags or from the badges defined in the config file.",
}

func init() {
	badgeCmd.PersistentFlags().StringArrayVar(&badgeIcons, "icon", nil, "register a logo as slug=path/to/icon.svg (repeatable)")
	rootCmd.AddCommand(badgeCmd)
}

// newEngine builds a render engine with the --icon registrations and the
// command logger.
func newEngine() (*badge.Engine, error) {
	icons, err := loadIcons(badgeIcons)
	if err != nil {
		return nil, err
	}
	return badge.New(badge.WithLogger(logger), badge.WithIcons(icons))
}

func loadIcons(specs []string) (map[string]string, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	icons := make(map[string]string, len(specs))
	for _, s := range specs {
		slug, path, ok := strings.Cut(s, "=")
		if !ok || slug == "" || path == "" {
			return nil, fmt.Errorf("invalid --icon %q (expected slug=path)", s)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading icon %s: %w", slug, err)
		}
		icons[slug] = strings.TrimSpace(string(data))
	}
	return icons, nil
}

// writeBadge writes svg to path, creating parent directories. A path of "-"
// writes to stdout.
func writeBadge(cmd *cobra.Command, path, svg string) error {
	if path == "-" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), svg)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating badge directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(svg), 0o644); err != nil {
		return fmt.Errorf("writing badge: %w", err)
	}
	return nil
}
