package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tinct/pkg/api"
)

var infoCmd = &cobra.Command{
	Use:   "info <theme file>",
	Short: "Show theme metadata and category summary",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	th, err := api.Open(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("File: %s\n", args[0])
	fmt.Println("────────────────────────────────────────")

	info := th.Info()
	if info.Name != "" {
		fmt.Printf("Name: %s\n", info.Name)
	}
	if info.Version != "" {
		fmt.Printf("Version: %s\n", info.Version)
	}
	if info.Author != "" {
		fmt.Printf("Author: %s\n", info.Author)
	}

	fmt.Printf("Tokens: %d\n", len(th.TokenNames()))
	fmt.Println("\nCategories:")
	for _, category := range th.Categories() {
		fmt.Printf("  %-20s %d tokens\n", category, len(th.Namespace()[category]))
	}

	return nil
}
