package badge

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStyle is returned for a style outside the supported set.
var ErrUnknownStyle = errors.New("unknown badge style")

// Style is one of the fixed badge visual treatments.
type Style int

const (
	Flat Style = iota
	FlatSquare
	Plastic
	Social
	ForTheBadge
	numStyles
)

var styleNames = [numStyles]string{
	Flat:        "flat",
	FlatSquare:  "flat-square",
	Plastic:     "plastic",
	Social:      "social",
	ForTheBadge: "for-the-badge",
}

func (s Style) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Style(%d)", int(s))
	}
	return styleNames[s]
}

// Valid reports whether s is a supported style.
func (s Style) Valid() bool { return s >= 0 && s < numStyles }

// Styles returns every supported style in declaration order.
func Styles() []Style {
	out := make([]Style, 0, numStyles)
	for s := Flat; s < numStyles; s++ {
		out = append(out, s)
	}
	return out
}

// ParseStyle maps a style name such as "flat-square" to its Style. The empty
// string selects Flat.
func ParseStyle(name string) (Style, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Flat, nil
	}
	for s, n := range styleNames {
		if n == name {
			return Style(s), nil
		}
	}
	return 0, fmt.Errorf("%w %q (supported: %s)", ErrUnknownStyle, name, strings.Join(styleNames[:], ", "))
}

// MarshalText implements encoding.TextMarshaler.
func (s Style) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStyle, int(s))
	}
	return []byte(styleNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Style) UnmarshalText(text []byte) error {
	v, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Default colors applied by the Builder.
const (
	DefaultLabelColor      = "#555"
	DefaultMessageColor    = "#007ec6"
	DefaultLogoColor       = "whitesmoke"
	DefaultSocialLogoColor = "#000000"
)

// Spec is a fully populated badge description. Build one with a Builder;
// renderers treat it as read-only.
type Spec struct {
	Style        Style
	Label        string // left text; empty hides the label region
	Message      string // right text
	LabelColor   string // label background, any color expression
	MessageColor string // message background, any color expression
	Logo         string // simple-icons slug, inline <svg> markup or data: URI
	LogoColor    string // fill applied to slug and inline logos
	Link         string // label link, or whole-badge link when ExtraLink is empty
	ExtraLink    string // message link
}

// Builder assembles a Spec with documented defaults for every field left unset.
type Builder struct {
	spec Spec
}

// NewBuilder starts a badge of the given style.
func NewBuilder(style Style) *Builder {
	return &Builder{spec: Spec{Style: style}}
}

// Label sets the left text.
func (b *Builder) Label(label string) *Builder {
	b.spec.Label = label
	return b
}

// Message sets the right text.
func (b *Builder) Message(message string) *Builder {
	b.spec.Message = message
	return b
}

// LabelColor sets the label background color.
func (b *Builder) LabelColor(color string) *Builder {
	b.spec.LabelColor = color
	return b
}

// MessageColor sets the message background color.
func (b *Builder) MessageColor(color string) *Builder {
	b.spec.MessageColor = color
	return b
}

// Logo sets the logo slug, inline SVG or data URI.
func (b *Builder) Logo(logo string) *Builder {
	b.spec.Logo = logo
	return b
}

// LogoColor sets the logo fill color.
func (b *Builder) LogoColor(color string) *Builder {
	b.spec.LogoColor = color
	return b
}

// Link sets the primary link.
func (b *Builder) Link(link string) *Builder {
	b.spec.Link = link
	return b
}

// ExtraLink sets the message link.
func (b *Builder) ExtraLink(link string) *Builder {
	b.spec.ExtraLink = link
	return b
}

// Build validates the style and fills defaults: label color #555, message
// color #007ec6, logo color whitesmoke (#000000 for social). Logo and link
// values are trimmed; empty means absent.
func (b *Builder) Build() (Spec, error) {
	s := b.spec
	if !s.Style.Valid() {
		return Spec{}, fmt.Errorf("%w: %d", ErrUnknownStyle, int(s.Style))
	}

	s.Logo = strings.TrimSpace(s.Logo)
	s.Link = strings.TrimSpace(s.Link)
	s.ExtraLink = strings.TrimSpace(s.ExtraLink)

	if strings.TrimSpace(s.LabelColor) == "" {
		s.LabelColor = DefaultLabelColor
	}
	if strings.TrimSpace(s.MessageColor) == "" {
		s.MessageColor = DefaultMessageColor
	}
	if strings.TrimSpace(s.LogoColor) == "" {
		s.LogoColor = s.Style.DefaultLogoColor()
	}
	return s, nil
}

// DefaultLogoColor returns the logo fill used when none is set.
func (s Style) DefaultLogoColor() string {
	if s == Social {
		return DefaultSocialLogoColor
	}
	return DefaultLogoColor
}
