package badge

import "strings"

const (
	fontScaleUpFactor = 10
	horizPadding      = 5
	logoWidth         = 14
	logoHeight        = 14
	logoPadding       = 3

	socialInternalHeight = 19
	socialLabelPadding   = 5
	socialMessagePadding = 4
	socialGutter         = 6

	ftbHeight        = 28
	ftbFontSize      = 10
	ftbLetterSpacing = 1.25
	ftbTextMargin    = 12
	ftbLogoMargin    = 9
	ftbLogoGutter    = 6
)

// LinkMode selects how links attach to the badge.
type LinkMode int

const (
	NoLinks    LinkMode = iota // plain image with an accessible title
	WholeLink                  // one anchor around the entire badge
	SplitLinks                 // label and message anchored independently
)

// LinkModeOf derives the link structure from the two link fields.
func LinkModeOf(link, extraLink string) LinkMode {
	switch {
	case extraLink != "":
		return SplitLinks
	case link != "":
		return WholeLink
	default:
		return NoLinks
	}
}

// Layout is the geometry of one badge. Text anchors and lengths are in the
// 1/10 scaled text space; everything else is in pixels.
type Layout struct {
	Style  Style
	Height int

	LeftWidth  int
	RightWidth int
	TotalWidth int

	HasLabel   bool
	HasMessage bool
	HasLogo    bool

	LogoX int
	LogoY int

	LabelX        float64
	MessageX      float64
	LabelLength   int
	MessageLength int

	// Click target rectangles used with SplitLinks.
	LabelLinkX       int
	LabelLinkWidth   int
	MessageLinkX     int
	MessageLinkWidth int

	// Social only.
	LabelRectWidth   int
	MessageRectWidth int
	BubbleMainX      float64
	BubbleNotchX     int
}

// Fonts returns the font variants a style measures its label and message in.
func (s Style) Fonts() (label, message FontVariant) {
	switch s {
	case Social:
		return HelveticaBold11, HelveticaBold11
	case ForTheBadge:
		return VerdanaNormal10, VerdanaBold10
	default:
		return VerdanaNormal11, VerdanaNormal11
	}
}

// Text applies the style's casing rules to label and message.
func (s Style) Text(label, message string) (string, string) {
	switch s {
	case Social:
		return capitalize(label), message
	case ForTheBadge:
		return strings.ToUpper(label), strings.ToUpper(message)
	default:
		return label, message
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	for i := range s {
		if i > 0 {
			return strings.ToUpper(s[:i]) + s[i:]
		}
	}
	return strings.ToUpper(s)
}

// ComputeLayout lays out a badge from already measured texts. Empty texts
// (see Measured.Empty) hide their region.
func ComputeLayout(style Style, label, message Measured, hasLogo bool) Layout {
	switch style {
	case Social:
		return socialLayout(label, message, hasLogo)
	case ForTheBadge:
		return forTheBadgeLayout(label, message, hasLogo)
	case Flat, FlatSquare:
		return flatLayout(style, 20, label, message, hasLogo)
	case Plastic:
		return flatLayout(style, 18, label, message, hasLogo)
	default:
		panic("badge: layout for unknown style " + style.String())
	}
}

// flatLayout covers flat, flat-square and plastic, which differ only in height.
func flatLayout(style Style, height int, label, message Measured, hasLogo bool) Layout {
	l := Layout{
		Style:      style,
		Height:     height,
		HasLabel:   !label.Empty(),
		HasMessage: !message.Empty(),
		HasLogo:    hasLogo,
		LogoX:      horizPadding,
		LogoY:      (height - logoHeight) / 2,
	}

	totalLogo := 0
	if hasLogo {
		totalLogo = logoWidth
		if l.HasLabel {
			totalLogo += logoPadding
		}
	}

	labelMargin := totalLogo + 1
	if l.HasLabel {
		l.LeftWidth = label.Width + 2*horizPadding + totalLogo
	}

	messageMargin := l.LeftWidth
	if l.HasMessage {
		messageMargin--
	}
	if !l.HasLabel {
		if hasLogo {
			messageMargin += totalLogo + horizPadding
		} else {
			messageMargin++
		}
	}

	if l.HasMessage || !l.HasLabel {
		l.RightWidth = message.Width + 2*horizPadding
		if hasLogo && !l.HasLabel {
			l.RightWidth += totalLogo
			if l.HasMessage {
				l.RightWidth += horizPadding - 1
			}
		}
	}
	l.TotalWidth = l.LeftWidth + l.RightWidth

	l.LabelX = fontScaleUpFactor * (float64(labelMargin) + 0.5*float64(label.Width) + horizPadding)
	l.MessageX = fontScaleUpFactor * (float64(messageMargin) + 0.5*float64(message.Width) + horizPadding)
	l.LabelLength = label.Scaled()
	l.MessageLength = message.Scaled()

	if labelMargin > 1 {
		l.LabelLinkX = labelMargin + 1
	}
	l.LabelLinkWidth = max(l.LeftWidth-l.LabelLinkX, 0)

	l.MessageLinkX = l.LeftWidth
	if hasLogo && !l.HasLabel {
		l.MessageLinkX = totalLogo + horizPadding
	}
	l.MessageLinkWidth = max(l.TotalWidth-l.MessageLinkX, 0)
	return l
}

func socialLayout(label, message Measured, hasLogo bool) Layout {
	l := Layout{
		Style:      Social,
		Height:     20,
		HasLabel:   !label.Empty(),
		HasMessage: !message.Empty(),
		HasLogo:    hasLogo,
		LogoX:      socialLabelPadding,
		LogoY:      (20 - logoHeight) / 2,
	}

	totalLogo := 0
	if hasLogo {
		totalLogo = logoWidth
		if l.HasLabel {
			totalLogo += logoPadding
		}
	}

	l.LabelRectWidth = label.Width + totalLogo + 2*socialLabelPadding
	l.MessageRectWidth = message.Width + 2*socialMessagePadding
	l.BubbleMainX = float64(l.LabelRectWidth+socialGutter) + 0.5
	l.BubbleNotchX = l.LabelRectWidth + socialGutter

	l.LabelX = fontScaleUpFactor * (float64(totalLogo) + float64(label.Width)/2 + socialLabelPadding)
	l.MessageX = fontScaleUpFactor * (float64(l.LabelRectWidth+socialGutter) + float64(l.MessageRectWidth)/2)
	l.LabelLength = label.Scaled()
	l.MessageLength = message.Scaled()

	l.LeftWidth = l.LabelRectWidth + 1
	if l.HasMessage {
		l.RightWidth = socialGutter + l.MessageRectWidth
	}
	l.TotalWidth = l.LeftWidth + l.RightWidth

	l.LabelLinkWidth = l.LabelRectWidth
	l.MessageLinkX = l.BubbleNotchX
	l.MessageLinkWidth = l.MessageRectWidth
	return l
}

// forTheBadgeLayout expects widths from Measurer.Spaced, which already
// include letter spacing.
func forTheBadgeLayout(label, message Measured, hasLogo bool) Layout {
	l := Layout{
		Style:      ForTheBadge,
		Height:     ftbHeight,
		HasLabel:   !label.Empty(),
		HasMessage: !message.Empty(),
		HasLogo:    hasLogo,
		LogoY:      (ftbHeight - logoHeight) / 2,
	}

	gutter := ftbLogoGutter
	if !l.HasLabel && !l.HasMessage {
		gutter -= ftbLogoMargin
	}

	labelTextMinX := ftbTextMargin
	if hasLogo {
		l.LogoX = ftbLogoMargin
		labelTextMinX = ftbLogoMargin + logoWidth + gutter
	}

	var messageTextMinX int
	switch {
	case l.HasLabel:
		l.LeftWidth = labelTextMinX + label.Width + ftbTextMargin
		messageTextMinX = l.LeftWidth + ftbTextMargin
		if l.HasMessage {
			l.RightWidth = 2*ftbTextMargin + message.Width
		}
	case hasLogo:
		messageTextMinX = ftbTextMargin + logoWidth + gutter
		l.RightWidth = 2*ftbTextMargin + logoWidth + gutter + message.Width
	default:
		messageTextMinX = ftbTextMargin
		l.RightWidth = 2*ftbTextMargin + message.Width
	}
	l.TotalWidth = l.LeftWidth + l.RightWidth

	l.LabelX = fontScaleUpFactor * (float64(labelTextMinX) + 0.5*float64(label.Width))
	l.MessageX = fontScaleUpFactor * (float64(messageTextMinX) + 0.5*float64(message.Width))
	l.LabelLength = label.Scaled()
	l.MessageLength = message.Scaled()

	l.LabelLinkWidth = l.LeftWidth
	l.MessageLinkX = l.LeftWidth
	l.MessageLinkWidth = l.RightWidth
	return l
}
