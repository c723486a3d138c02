package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"tinct/pkg/api"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <theme file>",
	Short: "List resolved tokens",
	Long:  `List every token with its fully dereferenced value. With --category, list the raw values of one category instead`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	tokensCmd.Flags().String("category", "", "list raw values of a single category")
}

func runTokens(cmd *cobra.Command, args []string) error {
	th, err := api.Open(args[0])
	if err != nil {
		return err
	}

	category, err := cmd.Flags().GetString("category")
	if err != nil {
		return fmt.Errorf("failed to get category flag: %w", err)
	}

	if category != "" {
		toks, ok := th.Namespace()[category]
		if !ok {
			return fmt.Errorf("unknown category %q", category)
		}

		names := make([]string, 0, len(toks))
		for name := range toks {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			fmt.Printf("  %s%-24s %v\n", swatchDot(toks[name]), name, toks[name])
		}
		return nil
	}

	resolved := th.Tokens()
	for _, name := range th.TokenNames() {
		fmt.Printf("  %s%-24s %v\n", swatchDot(resolved[name]), name, resolved[name])
	}

	return nil
}
