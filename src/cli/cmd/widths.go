package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sofmeright/shieldsvg/src/badge"
	"github.com/sofmeright/shieldsvg/src/fonts"
)

var (
	wgFont   string
	wgSize   float64
	wgWeight string
	wgOutput string
)

var widthsCmd = &cobra.Command{
	Use:   "widths",
	Short: "Glyph width table commands",
}

var widthsGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a glyph width table from a TTF/OTF font",
	Long: `Read printable BMP advances from a font file and write them as a width
table in the embedded table format.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(wgFont)
		if err != nil {
			return fmt.Errorf("reading font: %w", err)
		}
		table, err := badge.MeasureFont(data, wgSize, wgWeight)
		if err != nil {
			return err
		}

		if wgOutput == "-" {
			return table.Encode(cmd.OutOrStdout())
		}
		if err := writeWidthTable(wgOutput, table); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  widths %s %s %gpx → %s\n", table.Family, table.Weight, table.Size, wgOutput)
		return nil
	},
}

// writeWidthTable encodes table to path. Nothing is written when encoding fails.
func writeWidthTable(path string, table *badge.WidthTable) error {
	var buf bytes.Buffer
	if err := table.Encode(&buf); err != nil {
		return fmt.Errorf("encoding width table: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

var widthsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the embedded width tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range fonts.Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	widthsGenerateCmd.Flags().StringVar(&wgFont, "font", "", "path to a TTF/OTF font file")
	widthsGenerateCmd.Flags().Float64Var(&wgSize, "size", 11, "pixel size the table is measured for")
	widthsGenerateCmd.Flags().StringVar(&wgWeight, "weight", "normal", "weight recorded in the table: normal or bold")
	widthsGenerateCmd.Flags().StringVarP(&wgOutput, "output", "o", "-", "output file path, - for stdout")
	_ = widthsGenerateCmd.MarkFlagRequired("font")

	widthsCmd.AddCommand(widthsGenerateCmd, widthsListCmd)
	rootCmd.AddCommand(widthsCmd)
}
