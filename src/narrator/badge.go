package narrator

import (
	"fmt"
	"strings"
)

// BadgeModule renders a markdown badge image, optionally wrapped in a link.
type BadgeModule struct {
	Alt    string // image alt text
	ImgURL string // image URL or repository-relative path
	Link   string // click target (empty = no link wrapper)
}

// Render produces the inline markdown for this badge.
func (b BadgeModule) Render() string {
	if b.ImgURL == "" {
		return ""
	}
	alt := markdownEscaper.Replace(b.Alt)
	if b.Link != "" {
		return fmt.Sprintf("[![%s](%s)](%s)", alt, b.ImgURL, b.Link)
	}
	return fmt.Sprintf("![%s](%s)", alt, b.ImgURL)
}

var markdownEscaper = strings.NewReplacer(`[`, `\[`, `]`, `\]`)
