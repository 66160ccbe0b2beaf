package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sofmeright/shieldsvg/src/badge"
	"github.com/sofmeright/shieldsvg/src/gitver"
)

// Special item colors.
const (
	ColorAuto    = "auto"    // derived from the item's status
	ColorVersion = "version" // derived from the resolved message as a semver
)

// BadgeDefaults holds values applied to every badge item that leaves them unset.
type BadgeDefaults struct {
	Style      string `yaml:"style" toml:"style"`             // flat, flat-square, plastic, social, for-the-badge
	LabelColor string `yaml:"label_color" toml:"label_color"` // default: #555
	Logo       string `yaml:"logo" toml:"logo"`
	LogoColor  string `yaml:"logo_color" toml:"logo_color"`
	OutputDir  string `yaml:"output_dir" toml:"output_dir"` // default: badges
}

// BadgeItem defines a single badge to generate.
type BadgeItem struct {
	Name       string `yaml:"name" toml:"name"`                               // unique identifier
	Label      string `yaml:"label" toml:"label"`                             // left side text
	Message    string `yaml:"message" toml:"message"`                         // right side text (supports {version} etc. templates)
	Color      string `yaml:"color" toml:"color"`                             // badge color, "auto" or "version"
	Status     string `yaml:"status,omitempty" toml:"status,omitempty"`       // drives color: auto
	LabelColor string `yaml:"label_color,omitempty" toml:"label_color,omitempty"`
	Style      string `yaml:"style,omitempty" toml:"style,omitempty"`
	Logo       string `yaml:"logo,omitempty" toml:"logo,omitempty"`
	LogoColor  string `yaml:"logo_color,omitempty" toml:"logo_color,omitempty"`
	Link       string `yaml:"link,omitempty" toml:"link,omitempty"`
	ExtraLink  string `yaml:"extra_link,omitempty" toml:"extra_link,omitempty"`
	Output     string `yaml:"output,omitempty" toml:"output,omitempty"` // default: <output_dir>/<name>.svg
}

// DefaultBadgeDefaults returns sensible defaults for badge generation.
func DefaultBadgeDefaults() BadgeDefaults {
	return BadgeDefaults{
		Style:      badge.Flat.String(),
		LabelColor: badge.DefaultLabelColor,
		OutputDir:  "badges",
	}
}

// OutputPath returns where item is written.
func (c *Config) OutputPath(item BadgeItem) string {
	if item.Output != "" {
		return item.Output
	}
	dir := c.Defaults.OutputDir
	if dir == "" {
		dir = DefaultBadgeDefaults().OutputDir
	}
	return filepath.Join(dir, item.Name+".svg")
}

// NeedsVersion reports whether any item message uses git-derived templates.
func (c *Config) NeedsVersion() bool {
	for _, it := range c.Items {
		if gitver.NeedsVersion(it.Message) || gitver.NeedsVersion(it.Label) {
			return true
		}
	}
	return false
}

// Spec resolves item against the defaults into a badge spec. Templates in
// the label and message are expanded with v, which may be nil.
func (c *Config) Spec(item BadgeItem, v *gitver.VersionInfo) (badge.Spec, error) {
	styleName := firstNonEmpty(item.Style, c.Defaults.Style)
	style, err := badge.ParseStyle(styleName)
	if err != nil {
		return badge.Spec{}, fmt.Errorf("badge %s: %w", item.Name, err)
	}

	message := gitver.ResolveTemplate(item.Message, v)
	b := badge.NewBuilder(style).
		Label(gitver.ResolveTemplate(item.Label, v)).
		Message(message).
		LabelColor(firstNonEmpty(item.LabelColor, c.Defaults.LabelColor)).
		MessageColor(itemColor(item, message)).
		Logo(firstNonEmpty(item.Logo, c.Defaults.Logo)).
		LogoColor(firstNonEmpty(item.LogoColor, c.Defaults.LogoColor)).
		Link(item.Link).
		ExtraLink(item.ExtraLink)
	return b.Build()
}

func itemColor(item BadgeItem, message string) string {
	switch strings.ToLower(strings.TrimSpace(item.Color)) {
	case ColorAuto:
		return badge.StatusColor(item.Status)
	case ColorVersion:
		return badge.VersionColor(message)
	}
	return item.Color
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
