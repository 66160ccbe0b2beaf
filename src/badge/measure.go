package badge

import (
	"fmt"
	"math"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	// DefaultWidthCacheSize is the number of (variant, text) widths kept.
	DefaultWidthCacheSize = 1024
	// maxCachedText bounds the byte length of texts stored in the width cache.
	maxCachedText = 1024
)

// Measured is the width of a text run.
type Measured struct {
	Raw   float64 // unrounded pixel width
	Width int     // pixel width snapped to the badge grid
}

// Scaled returns the width in the 1/10 pixel text coordinate space.
func (m Measured) Scaled() int { return m.Width * fontScaleUpFactor }

// Empty reports whether the measured text was empty. Non-empty text always
// has a width of at least one pixel.
func (m Measured) Empty() bool { return m.Width == 0 }

type widthKey struct {
	variant FontVariant
	text    string
}

// Measurer computes text widths from the embedded metrics, memoized in an
// LRU cache shared by every render routed through it.
type Measurer struct {
	cache *lru.Cache[widthKey, Measured]
}

// NewMeasurer returns a measurer caching up to size entries.
func NewMeasurer(size int) (*Measurer, error) {
	cache, err := lru.New[widthKey, Measured](size)
	if err != nil {
		return nil, fmt.Errorf("creating width cache: %w", err)
	}
	return &Measurer{cache: cache}, nil
}

// Measure returns the width of text in variant v. The pixel width is the
// floored raw width rounded up to the next odd integer, which keeps text
// centered on the pixel grid the way shields.io does. Empty text is zero wide.
func (m *Measurer) Measure(text string, v FontVariant) Measured {
	if text == "" {
		return Measured{}
	}

	key := widthKey{variant: v, text: text}
	if w, ok := m.cache.Get(key); ok {
		return w
	}

	raw := Metrics(v).TextWidth(text)
	w := Measured{Raw: raw, Width: roundUpToOdd(int(math.Floor(raw)))}
	if len(text) <= maxCachedText {
		m.cache.Add(key, w)
	}
	return w
}

// Spaced returns the width of text with spacing extra pixels per character,
// truncated toward zero. Empty text is zero wide.
func (m *Measurer) Spaced(text string, v FontVariant, spacing float64) Measured {
	if text == "" {
		return Measured{}
	}
	raw := m.Measure(text, v).Raw + spacing*float64(utf8.RuneCountInString(text))
	w := int(raw)
	if w < 1 {
		w = 1
	}
	return Measured{Raw: raw, Width: w}
}

// Len returns the number of cached widths.
func (m *Measurer) Len() int { return m.cache.Len() }

// Purge empties the width cache.
func (m *Measurer) Purge() { m.cache.Purge() }

func roundUpToOdd(n int) int {
	if n%2 == 0 {
		return n + 1
	}
	return n
}
