// Package icons bundles the simple-icons logos that badges can reference by slug.
package icons

import (
	"embed"
	"path"
	"sort"
	"strings"
)

//go:embed *.svg
var FS embed.FS

// Get returns the SVG markup for a slug such as "rust". Slugs are matched
// case-insensitively; ok is false for slugs that are not bundled.
func Get(slug string) (svg string, ok bool) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" || strings.ContainsAny(slug, `/\.`) {
		return "", false
	}
	data, err := FS.ReadFile(slug + ".svg")
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Slugs returns the sorted list of bundled icon slugs.
func Slugs() []string {
	entries, err := FS.ReadDir(".")
	if err != nil {
		return nil
	}
	slugs := make([]string, 0, len(entries))
	for _, e := range entries {
		slugs = append(slugs, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(slugs)
	return slugs
}
