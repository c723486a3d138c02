package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"tinct/pkg/api"
	"tinct/pkg/swatch"
)

var renderCmd = &cobra.Command{
	Use:   "render <theme file>",
	Short: "Render a theme as a swatch-sheet PNG",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringP("out", "o", "sheet.png", "output PNG file")
	renderCmd.Flags().String("category", "", "render a single category")
	renderCmd.Flags().Int("size", 64, "swatch edge length in pixels")
	renderCmd.Flags().Int("columns", 6, "swatches per row")
	renderCmd.Flags().Float64("scale", 1.0, "scale factor")
	renderCmd.Flags().Bool("transparent", false, "transparent background")
}

func runRender(cmd *cobra.Command, args []string) error {
	th, err := api.Open(args[0])
	if err != nil {
		return err
	}

	out, err := cmd.Flags().GetString("out")
	if err != nil {
		return fmt.Errorf("failed to get out flag: %w", err)
	}
	category, err := cmd.Flags().GetString("category")
	if err != nil {
		return fmt.Errorf("failed to get category flag: %w", err)
	}
	size, err := cmd.Flags().GetInt("size")
	if err != nil {
		return fmt.Errorf("failed to get size flag: %w", err)
	}
	columns, err := cmd.Flags().GetInt("columns")
	if err != nil {
		return fmt.Errorf("failed to get columns flag: %w", err)
	}
	scale, err := cmd.Flags().GetFloat64("scale")
	if err != nil {
		return fmt.Errorf("failed to get scale flag: %w", err)
	}
	transparent, err := cmd.Flags().GetBool("transparent")
	if err != nil {
		return fmt.Errorf("failed to get transparent flag: %w", err)
	}

	opts := []swatch.Option{
		swatch.SwatchSize(size),
		swatch.Columns(columns),
		swatch.Scale(scale),
	}
	if transparent {
		opts = append(opts, swatch.Transparent())
	}

	var img *image.RGBA
	if category != "" {
		img, err = th.RenderCategory(category, opts...)
		if err != nil {
			return err
		}
	} else {
		img = th.RenderSheet(opts...)
	}

	// Ensure output directory exists
	dir := filepath.Dir(out)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}

	fmt.Printf("Saved %s (%dx%d pixels)\n", out, img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}
