// CLI-only companion tool (no GUI dependencies in its command paths).
package main

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tinct/pkg/paint"
)

var rootCmd = &cobra.Command{
	Use:   "tinct-cli",
	Short: "Design-token resolver and theme tooling",
	Long:  `Tinct resolves design-token references in theme files and renders resolved themes as swatch-sheet images`,
}

func main() {
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(renderCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// swatchDot returns a terminal color dot for hex color values, or an
// empty string for anything that is not a color.
func swatchDot(v any) string {
	s, ok := v.(string)
	if !ok || !strings.HasPrefix(s, "#") {
		return ""
	}

	c, err := paint.ParseHex(s)
	if err != nil {
		return ""
	}

	rgba := c.ToNRGBA()
	return color.RGB(int(rgba.R), int(rgba.G), int(rgba.B)).Sprint("●") + " "
}
