package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sofmeright/shieldsvg/src/badge"
	"github.com/sofmeright/shieldsvg/src/gitver"
	"github.com/sofmeright/shieldsvg/src/narrator"
)

var (
	brLabel      string
	brMessage    string
	brColor      string
	brLabelColor string
	brStatus     string
	brStyle      string
	brLogo       string
	brLogoColor  string
	brLink       string
	brExtraLink  string
	brOutput     string
	brShieldsURL bool
)

var badgeRenderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a single badge from flags",
	Long: `Render a single SVG badge from flags.

The message accepts the same {version}, {sha}, {env:VAR} templates as config
badges. Use --output - to write the SVG to stdout.`,
	RunE: runBadgeRender,
}

func init() {
	badgeRenderCmd.Flags().StringVar(&brLabel, "label", "", "left side text")
	badgeRenderCmd.Flags().StringVar(&brMessage, "message", "", "right side text")
	badgeRenderCmd.Flags().StringVar(&brColor, "color", badge.DefaultMessageColor, "message color (hex, name or CSS color)")
	badgeRenderCmd.Flags().StringVar(&brLabelColor, "label-color", badge.DefaultLabelColor, "label color")
	badgeRenderCmd.Flags().StringVar(&brStatus, "status", "", "status-driven color: passed, warning, critical, unknown (overrides --color)")
	badgeRenderCmd.Flags().StringVar(&brStyle, "style", badge.Flat.String(), "flat, flat-square, plastic, social, for-the-badge")
	badgeRenderCmd.Flags().StringVar(&brLogo, "logo", "", "logo slug, inline <svg> or data: URI")
	badgeRenderCmd.Flags().StringVar(&brLogoColor, "logo-color", "", "logo fill (default depends on style)")
	badgeRenderCmd.Flags().StringVar(&brLink, "link", "", "click target for the badge or its label")
	badgeRenderCmd.Flags().StringVar(&brExtraLink, "extra-link", "", "click target for the message side")
	badgeRenderCmd.Flags().StringVarP(&brOutput, "output", "o", "badge.svg", "output file path, - for stdout")
	badgeRenderCmd.Flags().BoolVar(&brShieldsURL, "shields-url", false, "also print the equivalent img.shields.io URL")

	badgeCmd.AddCommand(badgeRenderCmd)
}

func runBadgeRender(cmd *cobra.Command, args []string) error {
	style, err := badge.ParseStyle(brStyle)
	if err != nil {
		return err
	}

	message := brMessage
	if gitver.NeedsVersion(message) {
		v, err := gitver.DetectVersion(".")
		if err != nil {
			return fmt.Errorf("resolving message template: %w", err)
		}
		message = gitver.ResolveTemplate(message, v)
	} else {
		message = gitver.ResolveTemplate(message, nil)
	}

	color := brColor
	if brStatus != "" {
		color = badge.StatusColor(brStatus)
	}

	spec, err := badge.NewBuilder(style).
		Label(brLabel).
		Message(message).
		LabelColor(brLabelColor).
		MessageColor(color).
		Logo(brLogo).
		LogoColor(brLogoColor).
		Link(brLink).
		ExtraLink(brExtraLink).
		Build()
	if err != nil {
		return err
	}

	eng, err := newEngine()
	if err != nil {
		return err
	}
	svg, err := eng.Render(spec)
	if err != nil {
		return err
	}
	if err := writeBadge(cmd, brOutput, svg); err != nil {
		return err
	}

	if brOutput != "-" {
		fmt.Fprintf(cmd.OutOrStdout(), "  badge → %s\n", brOutput)
	}
	if brShieldsURL {
		fmt.Fprintf(cmd.ErrOrStderr(), "  shields.io → %s\n", narrator.ShieldsURL(spec))
	}
	return nil
}
