package badge

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	verdanaFamily   = "Verdana,Geneva,DejaVu Sans,sans-serif"
	helveticaFamily = "Helvetica Neue,Helvetica,Arial,sans-serif"
	transparent     = "rgba(0,0,0,0)"
)

// frame is everything the style renderers need for one badge.
type frame struct {
	Layout
	label        string // styled label text, unescaped
	message      string // styled message text, unescaped
	labelColor   ResolvedColor
	messageColor ResolvedColor
	logo         string // data URI, or empty for none
	link         string
	extraLink    string
	title        string // accessible text
}

func (f *frame) mode() LinkMode { return LinkModeOf(f.link, f.extraLink) }

// renderSVG wraps the style body in the document element. Split badges carry
// no title or role; their anchors are the accessible content.
func renderSVG(f *frame) string {
	var s strings.Builder
	s.Grow(1024 + len(f.logo))

	switch f.mode() {
	case SplitLinks:
		s.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`, f.TotalWidth, f.Height))
		writeBody(&s, f)
	case WholeLink:
		writeOpenImg(&s, f)
		s.WriteString(fmt.Sprintf(`<a target="_blank" href="%s">`, xmlEscape(f.link)))
		s.WriteString(fmt.Sprintf(`<title>%s</title>`, xmlEscape(f.title)))
		writeBody(&s, f)
		s.WriteString(`</a>`)
	default:
		writeOpenImg(&s, f)
		s.WriteString(fmt.Sprintf(`<title>%s</title>`, xmlEscape(f.title)))
		writeBody(&s, f)
	}

	s.WriteString(`</svg>`)
	return s.String()
}

func writeOpenImg(s *strings.Builder, f *frame) {
	s.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" role="img" aria-label="%s">`,
		f.TotalWidth, f.Height, xmlEscape(f.title)))
}

func writeBody(s *strings.Builder, f *frame) {
	switch f.Style {
	case Flat, Plastic:
		writeGradientBody(s, f)
	case FlatSquare:
		writeFlatSquareBody(s, f)
	case Social:
		writeSocialBody(s, f)
	case ForTheBadge:
		writeForTheBadgeBody(s, f)
	}
}

// writeGradientBody draws flat and plastic: a rounded clip, a gloss gradient
// and shadowed text.
func writeGradientBody(s *strings.Builder, f *frame) {
	radius, shadowY, textY := 3, 150, 140
	if f.Style == Plastic {
		radius, shadowY, textY = 4, 140, 130
		s.WriteString(`<linearGradient id="s" x2="0" y2="100%">`)
		s.WriteString(`<stop offset="0" stop-color="#fff" stop-opacity=".7"/>`)
		s.WriteString(`<stop offset=".1" stop-color="#aaa" stop-opacity=".1"/>`)
		s.WriteString(`<stop offset=".9" stop-opacity=".3"/>`)
		s.WriteString(`<stop offset="1" stop-opacity=".5"/>`)
		s.WriteString(`</linearGradient>`)
	} else {
		s.WriteString(`<linearGradient id="s" x2="0" y2="100%">`)
		s.WriteString(`<stop offset="0" stop-color="#bbb" stop-opacity=".1"/>`)
		s.WriteString(`<stop offset="1" stop-opacity=".1"/>`)
		s.WriteString(`</linearGradient>`)
	}
	s.WriteString(fmt.Sprintf(`<clipPath id="r"><rect width="%d" height="%d" rx="%d" fill="#fff"/></clipPath>`,
		f.TotalWidth, f.Height, radius))

	s.WriteString(`<g clip-path="url(#r)">`)
	writeRegions(s, f)
	s.WriteString(fmt.Sprintf(`<rect width="%d" height="%d" fill="url(#s)"/>`, f.TotalWidth, f.Height))
	s.WriteString(`</g>`)

	writeVerdanaGroup(s, f, func(x float64, length int, c ResolvedColor, text string) {
		s.WriteString(fmt.Sprintf(`<text aria-hidden="true" x="%s" y="%d" fill="%s" fill-opacity=".3" transform="scale(.1)" textLength="%d">%s</text>`,
			num(x), shadowY, c.Shadow, length, text))
		s.WriteString(fmt.Sprintf(`<text x="%s" y="%d" transform="scale(.1)" fill="%s" textLength="%d">%s</text>`,
			num(x), textY, c.Text, length, text))
	})
}

func writeFlatSquareBody(s *strings.Builder, f *frame) {
	s.WriteString(`<g shape-rendering="crispEdges">`)
	writeRegions(s, f)
	s.WriteString(`</g>`)

	writeVerdanaGroup(s, f, func(x float64, length int, c ResolvedColor, text string) {
		s.WriteString(fmt.Sprintf(`<text x="%s" y="140" transform="scale(.1)" fill="%s" textLength="%d">%s</text>`,
			num(x), c.Text, length, text))
	})
}

// writeRegions draws the label and message backgrounds of the flat family.
func writeRegions(s *strings.Builder, f *frame) {
	if f.LeftWidth > 0 {
		s.WriteString(fmt.Sprintf(`<rect width="%d" height="%d" fill="%s"/>`,
			f.LeftWidth, f.Height, xmlEscape(f.labelColor.SVG)))
	}
	if f.RightWidth > 0 {
		s.WriteString(fmt.Sprintf(`<rect x="%d" width="%d" height="%d" fill="%s"/>`,
			f.LeftWidth, f.RightWidth, f.Height, xmlEscape(f.messageColor.SVG)))
	}
}

// writeVerdanaGroup writes the text group shared by the flat family. text
// draws one escaped text run.
func writeVerdanaGroup(s *strings.Builder, f *frame, text func(x float64, length int, c ResolvedColor, text string)) {
	s.WriteString(fmt.Sprintf(`<g fill="#fff" text-anchor="middle" font-family="%s" text-rendering="geometricPrecision" font-size="110">`, verdanaFamily))
	writeLogo(s, f)

	split := f.mode() == SplitLinks
	if f.HasLabel {
		if split && f.link != "" {
			writeOverlayOpen(s, f.link, f.LabelLinkWidth, f.LabelLinkX, f.Height)
			text(f.LabelX, f.LabelLength, f.labelColor, xmlEscape(f.label))
			s.WriteString(`</a>`)
		} else {
			text(f.LabelX, f.LabelLength, f.labelColor, xmlEscape(f.label))
		}
	}
	if f.HasMessage {
		if split {
			writeOverlayOpen(s, f.extraLink, f.MessageLinkWidth, f.MessageLinkX, f.Height)
			text(f.MessageX, f.MessageLength, f.messageColor, xmlEscape(f.message))
			s.WriteString(`</a>`)
		} else {
			text(f.MessageX, f.MessageLength, f.messageColor, xmlEscape(f.message))
		}
	}
	s.WriteString(`</g>`)
}

// writeOverlayOpen opens an anchor holding a transparent click target.
func writeOverlayOpen(s *strings.Builder, href string, width, x, height int) {
	s.WriteString(fmt.Sprintf(`<a target="_blank" href="%s">`, xmlEscape(href)))
	s.WriteString(fmt.Sprintf(`<rect width="%d" x="%d" height="%d" fill="%s"/>`, width, x, height, transparent))
}

func writeLogo(s *strings.Builder, f *frame) {
	if f.logo == "" {
		return
	}
	s.WriteString(fmt.Sprintf(`<image x="%d" y="%d" width="%d" height="%d" href="%s"/>`,
		f.LogoX, f.LogoY, logoWidth, logoHeight, xmlEscape(f.logo)))
}

func writeSocialBody(s *strings.Builder, f *frame) {
	s.WriteString(`<style>a:hover #llink{fill:url(#b);stroke:#ccc}a:hover #rlink{fill:#4183c4}</style>`)
	s.WriteString(`<linearGradient id="a" x2="0" y2="100%">`)
	s.WriteString(`<stop offset="0" stop-color="#fcfcfc" stop-opacity="0"/>`)
	s.WriteString(`<stop offset="1" stop-opacity=".1"/>`)
	s.WriteString(`</linearGradient>`)
	s.WriteString(`<linearGradient id="b" x2="0" y2="100%">`)
	s.WriteString(`<stop offset="0" stop-color="#ccc" stop-opacity=".1"/>`)
	s.WriteString(`<stop offset="1" stop-opacity=".1"/>`)
	s.WriteString(`</linearGradient>`)

	s.WriteString(`<g stroke="#d5d5d5">`)
	s.WriteString(fmt.Sprintf(`<rect stroke="none" fill="#fcfcfc" x="0.5" y="0.5" width="%d" height="%d" rx="2"/>`,
		f.LabelRectWidth, socialInternalHeight))
	if f.HasMessage {
		s.WriteString(fmt.Sprintf(`<rect x="%s" y="0.5" width="%d" height="%d" rx="2" fill="#fafafa"/>`,
			num(f.BubbleMainX), f.MessageRectWidth, socialInternalHeight))
		s.WriteString(fmt.Sprintf(`<rect x="%d" y="7.5" width="0.5" height="5" stroke="#fafafa"/>`, f.BubbleNotchX))
		s.WriteString(fmt.Sprintf(`<path d="M%s 6.5 l-3 3v1 l3 3" stroke="d5d5d5" fill="#fafafa"/>`, num(f.BubbleMainX)))
	}
	s.WriteString(`</g>`)
	writeLogo(s, f)

	split := f.mode() == SplitLinks
	s.WriteString(fmt.Sprintf(`<g aria-hidden="%t" fill="#333" text-anchor="middle" font-family="%s" text-rendering="geometricPrecision" font-weight="700" font-size="110px" line-height="14px">`,
		!split, helveticaFamily))

	labelRect := fmt.Sprintf(`<rect id="llink" stroke="#d5d5d5" fill="url(#a)" x=".5" y=".5" width="%d" height="%d" rx="2"/>`,
		f.LabelRectWidth, socialInternalHeight)
	label := xmlEscape(f.label)
	labelTexts := ""
	if f.HasLabel {
		labelTexts = fmt.Sprintf(`<text aria-hidden="true" x="%s" y="150" fill="#fff" transform="scale(.1)" textLength="%d">%s</text>`,
			num(f.LabelX), f.LabelLength, label) +
			fmt.Sprintf(`<text x="%s" y="140" transform="scale(.1)" textLength="%d">%s</text>`,
				num(f.LabelX), f.LabelLength, label)
	}
	if split && f.link != "" {
		s.WriteString(fmt.Sprintf(`<a target="_blank" href="%s">`, xmlEscape(f.link)))
		s.WriteString(labelTexts)
		s.WriteString(labelRect)
		s.WriteString(`</a>`)
	} else {
		s.WriteString(labelRect)
		s.WriteString(labelTexts)
	}

	if f.HasMessage {
		message := xmlEscape(f.message)
		if split {
			writeOverlayOpen(s, f.extraLink, f.MessageLinkWidth, f.MessageLinkX, f.Height)
		}
		s.WriteString(fmt.Sprintf(`<text aria-hidden="true" x="%s" y="150" fill="#fff" transform="scale(.1)" textLength="%d">%s</text>`,
			num(f.MessageX), f.MessageLength, message))
		s.WriteString(fmt.Sprintf(`<text id="rlink" x="%s" y="140" transform="scale(.1)" textLength="%d">%s</text>`,
			num(f.MessageX), f.MessageLength, message))
		if split {
			s.WriteString(`</a>`)
		}
	}
	s.WriteString(`</g>`)
}

func writeForTheBadgeBody(s *strings.Builder, f *frame) {
	s.WriteString(`<g shape-rendering="crispEdges">`)
	writeRegions(s, f)
	s.WriteString(`</g>`)

	s.WriteString(fmt.Sprintf(`<g fill="#fff" text-anchor="middle" font-family="%s" text-rendering="geometricPrecision" font-size="%d">`,
		verdanaFamily, ftbFontSize*fontScaleUpFactor))
	writeLogo(s, f)

	split := f.mode() == SplitLinks
	if f.HasLabel {
		text := fmt.Sprintf(`<text transform="scale(.1)" x="%s" y="175" textLength="%d" fill="%s">%s</text>`,
			num(f.LabelX), f.LabelLength, f.labelColor.Text, xmlEscape(f.label))
		if split && f.link != "" {
			s.WriteString(fmt.Sprintf(`<a target="_blank" href="%s">`, xmlEscape(f.link)))
			s.WriteString(fmt.Sprintf(`<rect width="%d" height="%d" fill="%s"/>`, f.LabelLinkWidth, f.Height, transparent))
			s.WriteString(text)
			s.WriteString(`</a>`)
		} else {
			s.WriteString(text)
		}
	}
	if f.HasMessage {
		text := fmt.Sprintf(`<text transform="scale(.1)" x="%s" y="175" textLength="%d" fill="%s" font-weight="bold">%s</text>`,
			num(f.MessageX), f.MessageLength, f.messageColor.Text, xmlEscape(f.message))
		if split {
			s.WriteString(fmt.Sprintf(`<a target="_blank" href="%s">`, xmlEscape(f.extraLink)))
			s.WriteString(fmt.Sprintf(`<rect width="%d" height="%d" x="%d" fill="%s"/>`,
				f.MessageLinkWidth, f.Height, f.MessageLinkX, transparent))
			s.WriteString(text)
			s.WriteString(`</a>`)
		} else {
			s.WriteString(text)
		}
	}
	s.WriteString(`</g>`)
}

// accessibleText is "label: message", or the message alone without a label.
func accessibleText(label, message string) string {
	if label == "" {
		return message
	}
	return label + ": " + message
}

// num formats a coordinate in its shortest form: 595, 59.5, 6.5.
func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// xmlEscape escapes special XML characters in badge text and attributes.
func xmlEscape(s string) string {
	if !strings.ContainsAny(s, `&<>'"`) {
		return s
	}
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	return s
}
