// GUI theme previewer entry point.
package main

import (
	"fmt"
	"os"
	"strings"

	"tinct/internal/gui"
)

func main() {
	if len(os.Args) < 2 {
		gui.NewApp().Run()
		return
	}

	arg := os.Args[1]
	switch arg {
	case "help", "-h", "--help":
		printUsage()
	default:
		lower := strings.ToLower(arg)
		if strings.HasSuffix(lower, ".json") || strings.HasSuffix(lower, ".toml") {
			gui.NewApp().RunWithFile(arg)
		} else {
			fmt.Printf("Unknown argument: %s\n", arg)
			printUsage()
			os.Exit(1)
		}
	}
}

func printUsage() {
	fmt.Println(`
  ████████╗██╗███╗   ██╗ ██████╗████████╗
  ╚══██╔══╝██║████╗  ██║██╔════╝╚══██╔══╝
     ██║   ██║██╔██╗ ██║██║        ██║
     ██║   ██║██║╚██╗██║██║        ██║
     ██║   ██║██║ ╚████║╚██████╗   ██║
     ╚═╝   ╚═╝╚═╝  ╚═══╝ ╚═════╝   ╚═╝

  A design-token theme previewer

Usage:
  tinct [theme.json|theme.toml]

With no arguments the previewer opens empty; use the Open button to load
a theme file. Edits to the loaded file reload the preview automatically.

For headless use (info, token listing, resolution, PNG rendering) see the
tinct-cli companion tool.`)
}
