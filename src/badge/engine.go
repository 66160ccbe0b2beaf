package badge

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Engine renders badges. It owns the width and color caches, so reusing one
// Engine across renders is what makes repeated texts and colors cheap.
// An Engine is safe for concurrent use.
type Engine struct {
	widths *Measurer
	colors *Resolver
	icons  map[string]string
	log    *zap.Logger
}

type options struct {
	widthCacheSize int
	colorCacheSize int
	icons          map[string]string
	log            *zap.Logger
}

// Option configures an Engine.
type Option func(*options)

// WithWidthCacheSize sets the number of text widths kept.
func WithWidthCacheSize(n int) Option {
	return func(o *options) { o.widthCacheSize = n }
}

// WithColorCacheSize sets the number of resolved colors kept.
func WithColorCacheSize(n int) Option {
	return func(o *options) { o.colorCacheSize = n }
}

// WithLogger routes engine diagnostics to log.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithIcons registers extra logo slugs. Registered icons shadow the bundled
// set; slugs are matched case-insensitively.
func WithIcons(icons map[string]string) Option {
	return func(o *options) {
		for slug, svg := range icons {
			o.icons[strings.ToLower(strings.TrimSpace(slug))] = svg
		}
	}
}

// New creates an engine. Cache sizes must be positive.
func New(opts ...Option) (*Engine, error) {
	o := options{
		widthCacheSize: DefaultWidthCacheSize,
		colorCacheSize: DefaultColorCacheSize,
		icons:          map[string]string{},
		log:            zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	widths, err := NewMeasurer(o.widthCacheSize)
	if err != nil {
		return nil, err
	}
	colors, err := NewResolver(o.colorCacheSize)
	if err != nil {
		return nil, err
	}
	return &Engine{widths: widths, colors: colors, icons: o.icons, log: o.log}, nil
}

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

// Default returns a process-wide engine with default cache sizes.
func Default() *Engine {
	defaultOnce.Do(func() {
		e, err := New()
		if err != nil {
			panic(fmt.Sprintf("badge: creating default engine: %v", err))
		}
		defaultEngine = e
	})
	return defaultEngine
}

// Render produces the SVG document for spec. The only error is
// ErrUnknownStyle; invalid colors and unknown logos degrade instead of failing.
func (e *Engine) Render(spec Spec) (string, error) {
	if !spec.Style.Valid() {
		return "", fmt.Errorf("%w: %d", ErrUnknownStyle, int(spec.Style))
	}

	label, message := spec.Style.Text(spec.Label, spec.Message)
	labelWidth, messageWidth := e.measure(spec.Style, label, message)

	logo := e.logoURI(spec)
	layout := ComputeLayout(spec.Style, labelWidth, messageWidth, logo != "")

	f := &frame{
		Layout:       layout,
		label:        label,
		message:      message,
		labelColor:   e.resolve(spec.LabelColor, DefaultLabelColor),
		messageColor: e.resolve(spec.MessageColor, DefaultMessageColor),
		logo:         logo,
		link:         strings.TrimSpace(spec.Link),
		extraLink:    strings.TrimSpace(spec.ExtraLink),
		title:        accessibleText(label, message),
	}
	return renderSVG(f), nil
}

// Render is shorthand for Default().Render.
func Render(spec Spec) (string, error) {
	return Default().Render(spec)
}

// measure returns the label and message widths as laid out in style.
func (e *Engine) measure(style Style, label, message string) (Measured, Measured) {
	lv, mv := style.Fonts()
	if style == ForTheBadge {
		return e.widths.Spaced(label, lv, ftbLetterSpacing), e.widths.Spaced(message, mv, ftbLetterSpacing)
	}
	return e.widths.Measure(label, lv), e.widths.Measure(message, mv)
}

// resolve maps raw to a color, using the region default def when raw is
// empty or not a color.
func (e *Engine) resolve(raw, def string) ResolvedColor {
	if strings.TrimSpace(raw) == "" {
		raw = def
	}
	c := e.colors.Resolve(raw)
	if c.Fallback {
		e.log.Debug("invalid color, using fallback",
			zap.String("color", raw), zap.String("fallback", def))
		return e.colors.Resolve(def)
	}
	return c
}

// Measurer returns the engine's width cache.
func (e *Engine) Measurer() *Measurer { return e.widths }

// Colors returns the engine's color cache.
func (e *Engine) Colors() *Resolver { return e.colors }

// Purge empties both caches.
func (e *Engine) Purge() {
	e.widths.Purge()
	e.colors.Purge()
}
