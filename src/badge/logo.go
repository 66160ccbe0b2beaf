package badge

import (
	"encoding/base64"
	"strings"

	"go.uber.org/zap"

	"github.com/sofmeright/shieldsvg/src/icons"
)

const svgDataPrefix = "data:image/svg+xml;base64,"

// logoURI turns a logo field into an image href. data: URIs pass through;
// slugs and inline <svg> markup are filled with the logo color and
// base64-encoded. An unknown slug yields no logo.
func (e *Engine) logoURI(spec Spec) string {
	logo := strings.TrimSpace(spec.Logo)
	if logo == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(logo), "data:") {
		return logo
	}

	markup := logo
	if !strings.HasPrefix(logo, "<svg") {
		var ok bool
		markup, ok = e.icon(logo)
		if !ok {
			e.log.Debug("unknown logo, rendering without it", zap.String("logo", logo))
			return ""
		}
	}

	fill := e.logoColor(spec)
	markup = strings.Replace(markup, "<svg", `<svg fill="`+fill+`"`, 1)
	return svgDataPrefix + base64.StdEncoding.EncodeToString([]byte(markup))
}

// icon looks a slug up in the registered icons first, then the embedded set.
func (e *Engine) icon(slug string) (string, bool) {
	if svg, ok := e.icons[strings.ToLower(slug)]; ok {
		return svg, true
	}
	return icons.Get(slug)
}

// logoColor resolves the logo fill, falling back to the style default when
// the requested color is not a color.
func (e *Engine) logoColor(spec Spec) string {
	raw := spec.LogoColor
	if strings.TrimSpace(raw) == "" {
		raw = spec.Style.DefaultLogoColor()
	}
	c := e.colors.Resolve(raw)
	if c.Fallback {
		e.log.Debug("invalid logo color, using style default", zap.String("color", raw))
		return e.colors.Resolve(spec.Style.DefaultLogoColor()).SVG
	}
	return c.SVG
}
