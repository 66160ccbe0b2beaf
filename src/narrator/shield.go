package narrator

import (
	"net/url"
	"strings"

	"github.com/sofmeright/shieldsvg/src/badge"
)

const shieldsBaseURL = "https://img.shields.io/"

// ShieldModule renders the shields.io-hosted equivalent of a badge.
type ShieldModule struct {
	Spec badge.Spec
	Alt  string // alt text (empty = accessible text of the badge)
}

// Render produces the inline markdown for this shields.io badge. The primary
// link, when set, wraps the image.
func (s ShieldModule) Render() string {
	alt := s.Alt
	if alt == "" {
		alt = s.Spec.Message
		if s.Spec.Label != "" {
			alt = s.Spec.Label + ": " + s.Spec.Message
		}
	}
	return BadgeModule{Alt: alt, ImgURL: ShieldsURL(s.Spec), Link: s.Spec.Link}.Render()
}

// ShieldsURL returns the img.shields.io static badge URL that renders the
// same badge as spec. Defaults the service applies on its own are omitted
// from the query.
func ShieldsURL(spec badge.Spec) string {
	color := url.PathEscape(strings.TrimPrefix(strings.TrimSpace(spec.MessageColor), "#"))
	if color == "" {
		color = url.PathEscape(strings.TrimPrefix(badge.DefaultMessageColor, "#"))
	}

	path := escapeBadgeText(spec.Message) + "-" + color
	if spec.Label != "" {
		path = escapeBadgeText(spec.Label) + "-" + path
	}

	q := url.Values{}
	if spec.Style != badge.Flat {
		q.Set("style", spec.Style.String())
	}
	if c := strings.TrimSpace(spec.LabelColor); c != "" && c != badge.DefaultLabelColor {
		q.Set("labelColor", c)
	}
	if spec.Logo != "" {
		q.Set("logo", spec.Logo)
		if c := strings.TrimSpace(spec.LogoColor); c != "" && c != spec.Style.DefaultLogoColor() {
			q.Set("logoColor", c)
		}
	}
	if spec.Link != "" || spec.ExtraLink != "" {
		q.Add("link", spec.Link)
		if spec.ExtraLink != "" {
			q.Add("link", spec.ExtraLink)
		}
	}

	u := shieldsBaseURL + "badge/" + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

// escapeBadgeText applies the static badge path escapes: literal dashes and
// underscores are doubled, spaces become underscores.
func escapeBadgeText(s string) string {
	s = strings.ReplaceAll(s, "-", "--")
	s = strings.ReplaceAll(s, "_", "__")
	s = strings.ReplaceAll(s, " ", "_")
	return url.PathEscape(s)
}
