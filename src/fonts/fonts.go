// Package fonts provides the embedded glyph width tables used to measure badge text.
//
// The tables are generated offline from the reference font files with
// `shieldsvg widths generate` and are versioned together with the code that reads
// them. Changing a table changes rendered badge widths.
package fonts

import (
	"embed"
	"fmt"
	"sort"
)

//go:embed widths/*.json
var FS embed.FS

// Builtin maps width table names to embedded filenames.
var Builtin = map[string]string{
	"verdana-11-normal": "widths/verdana-11px-normal.json",
	"verdana-10-normal": "widths/verdana-10px-normal.json",
	"verdana-10-bold":   "widths/verdana-10px-bold.json",
	"helvetica-11-bold": "widths/helvetica-11px-bold.json",
}

// Names returns sorted list of available width table names.
func Names() []string {
	names := make([]string, 0, len(Builtin))
	for k := range Builtin {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Read returns the raw bytes of the named width table.
func Read(name string) ([]byte, error) {
	filename, ok := Builtin[name]
	if !ok {
		return nil, fmt.Errorf("unknown width table %q (available: %v)", name, Names())
	}
	return FS.ReadFile(filename)
}
