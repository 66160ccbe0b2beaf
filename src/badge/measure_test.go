package badge

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/sofmeright/shieldsvg/src/fonts"
)

func newTestMeasurer(t *testing.T) *Measurer {
	t.Helper()

	m, err := NewMeasurer(DefaultWidthCacheSize)
	if err != nil {
		t.Fatalf("NewMeasurer: %v", err)
	}
	return m
}

func TestMeasureKnownWidths(t *testing.T) {
	m := newTestMeasurer(t)

	tests := []struct {
		text    string
		variant FontVariant
		want    int
	}{
		{"", VerdanaNormal11, 0},
		{"build", VerdanaNormal11, 27},
		{"passing", VerdanaNormal11, 41},
		{"message", VerdanaNormal11, 49},
		{"v1.2.3", VerdanaNormal11, 35},
		{"Github", HelveticaBold11, 35},
		{"stars", HelveticaBold11, 27},
		{"label", HelveticaBold11, 25},
	}
	for _, tt := range tests {
		got := m.Measure(tt.text, tt.variant)
		if got.Width != tt.want {
			t.Errorf("Measure(%q, %s).Width = %d, want %d (raw %g)", tt.text, tt.variant, got.Width, tt.want, got.Raw)
		}
		if got.Width != 0 && got.Width%2 == 0 {
			t.Errorf("Measure(%q, %s).Width = %d, want odd", tt.text, tt.variant, got.Width)
		}
	}
}

func TestMeasureRawIsExact(t *testing.T) {
	// "build" is 4972 design units at 11px over 2048 units per em.
	got := newTestMeasurer(t).Measure("build", VerdanaNormal11).Raw
	if want := 4972.0 * 11 / 2048; got != want {
		t.Errorf("raw width = %v, want %v", got, want)
	}
}

func TestSpaced(t *testing.T) {
	m := newTestMeasurer(t)

	tests := []struct {
		text    string
		variant FontVariant
		want    int
	}{
		{"", VerdanaNormal10, 0},
		{"BUILDING", VerdanaNormal10, 61},
		{"PASS", VerdanaBold10, 34},
		{"PASSING", VerdanaBold10, 59},
	}
	for _, tt := range tests {
		got := m.Spaced(tt.text, tt.variant, ftbLetterSpacing)
		if got.Width != tt.want {
			t.Errorf("Spaced(%q, %s).Width = %d, want %d", tt.text, tt.variant, got.Width, tt.want)
		}
	}
}

func TestMeasureCache(t *testing.T) {
	m := newTestMeasurer(t)

	first := m.Measure("build", VerdanaNormal11)
	if m.Len() != 1 {
		t.Fatalf("Len = %d after one miss, want 1", m.Len())
	}
	if again := m.Measure("build", VerdanaNormal11); again != first {
		t.Errorf("cache hit = %+v, want %+v", again, first)
	}
	if m.Len() != 1 {
		t.Errorf("Len = %d after hit, want 1", m.Len())
	}

	// Same text in another variant is a separate entry.
	m.Measure("build", HelveticaBold11)
	if m.Len() != 2 {
		t.Errorf("Len = %d, want 2", m.Len())
	}

	m.Purge()
	if m.Len() != 0 {
		t.Errorf("Len = %d after Purge, want 0", m.Len())
	}
	if cold := m.Measure("build", VerdanaNormal11); cold != first {
		t.Errorf("cold measure = %+v, want %+v", cold, first)
	}
}

func TestMeasureLongTextNotCached(t *testing.T) {
	m := newTestMeasurer(t)

	long := strings.Repeat("a", maxCachedText+1)
	w := m.Measure(long, VerdanaNormal11)
	if w.Width == 0 {
		t.Fatal("long text measured zero wide")
	}
	if m.Len() != 0 {
		t.Errorf("Len = %d, want long text left uncached", m.Len())
	}
}

func TestMeasureMonotonic(t *testing.T) {
	m := newTestMeasurer(t)

	for _, v := range []FontVariant{VerdanaNormal11, HelveticaBold11, VerdanaNormal10, VerdanaBold10} {
		prev := 0
		text := ""
		for _, r := range "The quick brown fox, 0123456789!" {
			text += string(r)
			w := m.Measure(text, v).Width
			if w < prev {
				t.Fatalf("%s: width of %q = %d, shorter prefix was %d", v, text, w, prev)
			}
			prev = w
		}
	}
}

func TestMeasureControlAndUnknownRunes(t *testing.T) {
	m := newTestMeasurer(t)

	if got, want := m.Measure("a\tb\x7f", VerdanaNormal11), m.Measure("ab", VerdanaNormal11); got.Raw != want.Raw {
		t.Errorf("control characters changed raw width: %v vs %v", got.Raw, want.Raw)
	}
	if got, want := m.Measure("中", VerdanaNormal11), m.Measure("m", VerdanaNormal11); got != want {
		t.Errorf("unmapped rune = %+v, want the width of m %+v", got, want)
	}
}

func TestNewMeasurerRejectsZeroSize(t *testing.T) {
	if _, err := NewMeasurer(0); err == nil {
		t.Fatal("expected error for zero cache size")
	}
}

func TestMetricsTables(t *testing.T) {
	tests := []struct {
		variant FontVariant
		family  string
		size    float64
	}{
		{VerdanaNormal11, "Verdana", 11},
		{HelveticaBold11, "Helvetica", 11},
		{VerdanaNormal10, "Verdana", 10},
		{VerdanaBold10, "Verdana", 10},
	}
	for _, tt := range tests {
		m := Metrics(tt.variant)
		if !strings.HasPrefix(m.FontName(), tt.family) {
			t.Errorf("%s: family = %q, want prefix %q", tt.variant, m.FontName(), tt.family)
		}
		if m.FontSize() != tt.size {
			t.Errorf("%s: size = %v, want %v", tt.variant, m.FontSize(), tt.size)
		}
		if m.Advance(' ') == 0 {
			t.Errorf("%s: space has no advance", tt.variant)
		}
	}
}

func TestLoadWidthTableErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", `{`},
		{"zero upm", `{"family":"x","size":11,"units_per_em":0,"ranges":[]}`},
		{"zero size", `{"family":"x","size":0,"units_per_em":1000,"ranges":[]}`},
		{"inverted range", `{"family":"x","size":11,"units_per_em":1000,"ranges":[[66,65,500]]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadWidthTable([]byte(tt.data)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestCompactRanges(t *testing.T) {
	got := compactRanges(map[rune]int{'a': 5, 'b': 5, 'c': 7, 'e': 7})
	want := [][3]int{{'a', 'b', 5}, {'c', 'c', 7}, {'e', 'e', 7}}
	if len(got) != len(want) {
		t.Fatalf("compactRanges = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("range %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestWidthTableEncodeMatchesEmbedded(t *testing.T) {
	for _, name := range fonts.Names() {
		data, err := fonts.Read(name)
		if err != nil {
			t.Fatalf("Read %s: %v", name, err)
		}
		var table WidthTable
		if err := json.Unmarshal(data, &table); err != nil {
			t.Fatalf("Unmarshal %s: %v", name, err)
		}
		var buf bytes.Buffer
		if err := table.Encode(&buf); err != nil {
			t.Fatalf("Encode %s: %v", name, err)
		}
		if !bytes.Equal(buf.Bytes(), data) {
			t.Errorf("%s: re-encoded table differs from the embedded file", name)
		}
	}
}

func TestMetricsCoverAccentedLatin(t *testing.T) {
	pairs := [][2]rune{{'e', 'é'}, {'a', 'ä'}, {'c', 'ç'}, {'A', 'Å'}, {'n', 'ñ'}, {'s', 'š'}, {'o', 'ơ'}, {' ', '\u00a0'}}
	for v := FontVariant(0); v < numFontVariants; v++ {
		m := Metrics(v)
		for _, p := range pairs {
			if got, want := m.Advance(p[1]), m.Advance(p[0]); got != want {
				t.Errorf("%s: advance(%q) = %d, want %d like %q", v, p[1], got, want, p[0])
			}
		}
	}

	meas := newTestMeasurer(t)
	if got, want := meas.Measure("café", VerdanaNormal11), meas.Measure("cafe", VerdanaNormal11); got != want {
		t.Errorf("café = %+v, want %+v", got, want)
	}
}

func TestMeasureFontWalksBMP(t *testing.T) {
	table, err := MeasureFont(goregular.TTF, 11, "normal")
	if err != nil {
		t.Fatalf("MeasureFont: %v", err)
	}
	covered := func(r rune) bool {
		for _, rg := range table.Ranges {
			if int(r) >= rg[0] && int(r) <= rg[1] {
				return true
			}
		}
		return false
	}
	for _, r := range []rune{'A', 'é', 'Ł', 'Ж'} {
		if !covered(r) {
			t.Errorf("table does not cover %q", r)
		}
	}
	for _, r := range []rune{0x7F, 0x85, 0xE000} {
		if covered(r) {
			t.Errorf("table covers %U", r)
		}
	}
	if _, err := table.Metrics(); err != nil {
		t.Errorf("generated table does not load: %v", err)
	}
}
