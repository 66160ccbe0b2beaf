// Package narrator composes generated badges into markdown snippets.
//
// Modules render to inline markdown. Items are space-joined on one line
// until a BreakModule starts the next line.
package narrator

import "strings"

// Module produces inline markdown content for a single item.
type Module interface {
	Render() string
}

// BreakModule forces a line break in composition.
type BreakModule struct{}

// Render returns empty; breaks are handled by Compose.
func (BreakModule) Render() string { return "" }

// Compose joins modules into markdown lines. Modules rendering to "" are
// skipped, and consecutive breaks never produce blank lines.
func Compose(modules []Module) string {
	var lines []string
	var current []string

	for _, m := range modules {
		if _, isBreak := m.(BreakModule); isBreak {
			if len(current) > 0 {
				lines = append(lines, strings.Join(current, " "))
				current = nil
			}
			continue
		}
		if s := m.Render(); s != "" {
			current = append(current, s)
		}
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return strings.Join(lines, "\n")
}
