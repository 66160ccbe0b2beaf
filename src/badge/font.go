// Package badge renders shields.io-compatible SVG badges from static glyph metrics.
package badge

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/sofmeright/shieldsvg/src/fonts"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// FontVariant identifies one of the fixed typeface/weight/size combinations
// badge text is measured in.
type FontVariant int

const (
	VerdanaNormal11 FontVariant = iota // flat, flat-square, plastic
	HelveticaBold11                    // social
	VerdanaNormal10                    // for-the-badge label
	VerdanaBold10                      // for-the-badge message
	numFontVariants
)

// variantTables maps each variant to its embedded width table.
var variantTables = [numFontVariants]string{
	VerdanaNormal11: "verdana-11-normal",
	HelveticaBold11: "helvetica-11-bold",
	VerdanaNormal10: "verdana-10-normal",
	VerdanaBold10:   "verdana-10-bold",
}

func (v FontVariant) String() string {
	if v < 0 || v >= numFontVariants {
		return fmt.Sprintf("FontVariant(%d)", int(v))
	}
	return variantTables[v]
}

// WidthTable is the serialized form of a glyph width table. Advances are in
// font design units; Ranges holds inclusive [lo, hi, advance] rune runs.
type WidthTable struct {
	Family     string   `json:"family"`
	Weight     string   `json:"weight"`
	Size       float64  `json:"size"`
	UnitsPerEm int      `json:"units_per_em"`
	Default    int      `json:"default"`
	Ranges     [][3]int `json:"ranges"`
}

// FontMetrics holds glyph advances for one font variant.
type FontMetrics struct {
	family   string       // font family name
	size     float64      // pixel size
	upm      int          // design units per em
	advances map[rune]int // advances in design units
	fallback int          // advance for unmapped runes
}

// Advance returns the advance of r in design units. Control characters
// advance by zero.
func (m *FontMetrics) Advance(r rune) int {
	if r <= 31 || r == 127 {
		return 0
	}
	if adv, ok := m.advances[r]; ok {
		return adv
	}
	return m.fallback
}

// Units returns the summed advance of s in design units.
func (m *FontMetrics) Units(s string) int {
	var u int
	for _, r := range s {
		u += m.Advance(r)
	}
	return u
}

// TextWidth returns the unrounded pixel width of s.
func (m *FontMetrics) TextWidth(s string) float64 {
	// Multiply before dividing so whole-pixel widths stay exact.
	return float64(m.Units(s)) * m.size / float64(m.upm)
}

// FontName returns the font family name.
func (m *FontMetrics) FontName() string { return m.family }

// FontSize returns the pixel size the table was built for.
func (m *FontMetrics) FontSize() float64 { return m.size }

// LoadWidthTable parses a serialized width table.
func LoadWidthTable(data []byte) (*FontMetrics, error) {
	var t WidthTable
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing width table: %w", err)
	}
	return t.Metrics()
}

// Metrics validates the table and expands its ranges into a lookup map.
func (t *WidthTable) Metrics() (*FontMetrics, error) {
	if t.UnitsPerEm <= 0 {
		return nil, fmt.Errorf("width table %s: units_per_em must be positive, got %d", t.Family, t.UnitsPerEm)
	}
	if t.Size <= 0 {
		return nil, fmt.Errorf("width table %s: size must be positive, got %g", t.Family, t.Size)
	}

	advances := make(map[rune]int, 128)
	for i, r := range t.Ranges {
		lo, hi, adv := r[0], r[1], r[2]
		if lo > hi || adv < 0 {
			return nil, fmt.Errorf("width table %s: invalid range %d %v", t.Family, i, r)
		}
		for c := lo; c <= hi; c++ {
			advances[rune(c)] = adv
		}
	}

	return &FontMetrics{
		family:   t.Family,
		size:     t.Size,
		upm:      t.UnitsPerEm,
		advances: advances,
		fallback: t.Default,
	}, nil
}

var (
	builtinOnce    [numFontVariants]sync.Once
	builtinMetrics [numFontVariants]*FontMetrics
)

// Metrics returns the embedded metrics for v. Tables are parsed once per
// process; a broken embedded table is a build defect and panics.
func Metrics(v FontVariant) *FontMetrics {
	if v < 0 || v >= numFontVariants {
		panic(fmt.Sprintf("badge: unknown font variant %d", int(v)))
	}
	builtinOnce[v].Do(func() {
		data, err := fonts.Read(variantTables[v])
		if err != nil {
			panic(fmt.Sprintf("badge: reading embedded width table %s: %v", v, err))
		}
		m, err := LoadWidthTable(data)
		if err != nil {
			panic(fmt.Sprintf("badge: %v", err))
		}
		builtinMetrics[v] = m
	})
	return builtinMetrics[v]
}

// MeasureFont reads the advance of every printable BMP rune the font maps,
// straight from a TTF/OTF in design units, and returns them as a width table
// for the given pixel size.
// This is the generator path for the embedded tables; rendering never parses
// font files.
func MeasureFont(data []byte, size float64, weight string) (*WidthTable, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}

	buf := &sfnt.Buffer{}
	upm := int(f.UnitsPerEm())
	// At ppem == units-per-em one pixel is one design unit.
	ppem := fixed.I(upm)

	advances := make(map[rune]int, 1024)
	for r := rune(0x20); r <= 0xFFFF; r++ {
		if skipRune(r) {
			continue
		}
		idx, err := f.GlyphIndex(buf, r)
		if err != nil || idx == 0 {
			continue
		}
		adv, err := f.GlyphAdvance(buf, idx, ppem, font.HintingNone)
		if err != nil {
			return nil, fmt.Errorf("reading advance of %q: %w", r, err)
		}
		advances[r] = adv.Round()
	}
	if len(advances) == 0 {
		return nil, fmt.Errorf("font has no printable glyphs")
	}

	family := "unknown"
	if n, err := f.Name(buf, sfnt.NameIDFamily); err == nil && n != "" {
		family = n
	}

	// Unknown characters are measured as wide as "m".
	fallback, ok := advances['m']
	if !ok {
		fallback = upm
	}

	return &WidthTable{
		Family:     family,
		Weight:     weight,
		Size:       size,
		UnitsPerEm: upm,
		Default:    fallback,
		Ranges:     compactRanges(advances),
	}, nil
}

// skipRune reports runes never measured: C1 controls, DEL, surrogates and
// private use.
func skipRune(r rune) bool {
	switch {
	case r >= 0x7F && r <= 0x9F:
		return true
	case r >= 0xD800 && r <= 0xF8FF:
		return true
	}
	return false
}

// Encode writes t in the layout of the embedded tables, one range per line.
func (t *WidthTable) Encode(w io.Writer) error {
	family, err := json.Marshal(t.Family)
	if err != nil {
		return err
	}
	weight, err := json.Marshal(t.Weight)
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, `{"family":%s,"weight":%s,"size":%s,"units_per_em":%d,"default":%d,"ranges":[`,
		family, weight, strconv.FormatFloat(t.Size, 'f', -1, 64), t.UnitsPerEm, t.Default)
	for i, r := range t.Ranges {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "\n  [%d,%d,%d]", r[0], r[1], r[2])
	}
	b.WriteString("\n]}\n")

	_, err = io.WriteString(w, b.String())
	return err
}

// compactRanges folds consecutive runes with equal advances into runs.
func compactRanges(advances map[rune]int) [][3]int {
	runes := make([]int, 0, len(advances))
	for r := range advances {
		runes = append(runes, int(r))
	}
	sort.Ints(runes)

	var out [][3]int
	for _, r := range runes {
		adv := advances[rune(r)]
		if n := len(out); n > 0 && out[n-1][1] == r-1 && out[n-1][2] == adv {
			out[n-1][1] = r
			continue
		}
		out = append(out, [3]int{r, r, adv})
	}
	return out
}
