package badge

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

const (
	// DefaultColorCacheSize is the number of raw color inputs kept.
	DefaultColorCacheSize = 512

	// FallbackColor is used for any input that is not a color.
	FallbackColor = "#555"

	brightnessThreshold = 0.69
)

// Contrast colors picked for text drawn on a background.
const (
	LightText   = "#fff"
	LightShadow = "#010101"
	DarkText    = "#333"
	DarkShadow  = "#ccc"
)

// namedColors is the shields.io palette.
var namedColors = map[string]string{
	"brightgreen": "#4c1",
	"green":       "#97ca00",
	"yellow":      "#dfb317",
	"yellowgreen": "#a4a61d",
	"orange":      "#fe7d37",
	"red":         "#e05d44",
	"blue":        "#007ec6",
	"grey":        "#555",
	"lightgrey":   "#9f9f9f",
}

// colorAliases maps alternative names onto the palette.
var colorAliases = map[string]string{
	"gray":          "grey",
	"lightgray":     "lightgrey",
	"critical":      "red",
	"important":     "orange",
	"success":       "brightgreen",
	"informational": "blue",
	"inactive":      "lightgrey",
}

// ResolvedColor is a color in the exact form written to the SVG, plus the
// text colors that stay legible on it.
type ResolvedColor struct {
	SVG      string // canonical fill value
	Text     string // foreground for text on this background
	Shadow   string // text shadow on this background
	Fallback bool   // input was not a color; SVG holds FallbackColor
}

// Resolver canonicalizes color expressions, memoized by raw input.
type Resolver struct {
	cache *lru.Cache[string, ResolvedColor]
}

// NewResolver returns a resolver caching up to size inputs.
func NewResolver(size int) (*Resolver, error) {
	cache, err := lru.New[string, ResolvedColor](size)
	if err != nil {
		return nil, fmt.Errorf("creating color cache: %w", err)
	}
	return &Resolver{cache: cache}, nil
}

// Resolve never fails: input that is not a color resolves to FallbackColor
// with Fallback set.
func (r *Resolver) Resolve(raw string) ResolvedColor {
	if c, ok := r.cache.Get(raw); ok {
		return c
	}
	c := resolveColor(raw)
	r.cache.Add(raw, c)
	return c
}

// Len returns the number of cached colors.
func (r *Resolver) Len() int { return r.cache.Len() }

// Purge empties the color cache.
func (r *Resolver) Purge() { r.cache.Purge() }

func resolveColor(raw string) ResolvedColor {
	svg, ok := Canonical(raw)
	if !ok {
		svg = FallbackColor
	}
	text, shadow := ContrastFor(svg)
	return ResolvedColor{SVG: svg, Text: text, Shadow: shadow, Fallback: !ok}
}

// Canonical returns the string shields.io writes for a color input:
// palette names and aliases become their hex value, bare or prefixed 3/6 digit
// hex becomes lowercase "#hex", and any other CSS color is kept as written
// (lowercased). ok is false when the input is not a color.
func Canonical(raw string) (string, bool) {
	c := strings.ToLower(strings.TrimSpace(raw))
	if c == "" {
		return "", false
	}
	if isHex(c) {
		return "#" + strings.TrimPrefix(c, "#"), true
	}
	if hex, ok := namedColors[c]; ok {
		return hex, true
	}
	if name, ok := colorAliases[c]; ok {
		return namedColors[name], true
	}
	if _, err := csscolorparser.Parse(c); err == nil {
		return c, true
	}
	return "", false
}

// isHex reports whether s is 3 or 6 hex digits, optionally prefixed by '#'.
func isHex(s string) bool {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 3 && len(s) != 6 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F') {
			return false
		}
	}
	return true
}

// ContrastFor picks text and shadow colors for a canonical background using
// perceived brightness. Backgrounds that cannot be parsed count as black.
func ContrastFor(svg string) (text, shadow string) {
	r, g, b := rgb255(svg)
	brightness := (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 255
	if brightness <= brightnessThreshold {
		return LightText, LightShadow
	}
	return DarkText, DarkShadow
}

func rgb255(svg string) (r, g, b uint8) {
	if isHex(svg) {
		c, err := colorful.Hex("#" + strings.ToLower(strings.TrimPrefix(svg, "#")))
		if err != nil {
			return 0, 0, 0
		}
		return c.RGB255()
	}
	c, err := csscolorparser.Parse(svg)
	if err != nil {
		return 0, 0, 0
	}
	r, g, b, _ = c.RGBA255()
	return r, g, b
}
