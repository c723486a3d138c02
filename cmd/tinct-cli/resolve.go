package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tinct/pkg/api"
	"tinct/pkg/tokens"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <theme file> <reference>",
	Short: "Resolve a single token reference",
	Long:  `Resolve one token reference (e.g. "@primary-color") against a theme. Values that are not references, and references no token defines, come back unchanged`,
	Args:  cobra.ExactArgs(2),
	RunE:  runResolve,
}

func runResolve(cmd *cobra.Command, args []string) error {
	th, err := api.Open(args[0])
	if err != nil {
		return err
	}

	ref := args[1]
	out := th.Resolve(ref)

	fmt.Printf("%s%v\n", swatchDot(out), out)

	if s, ok := out.(string); ok && s == ref && strings.HasPrefix(ref, tokens.RefPrefix) {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s did not resolve\n", ref)
	}

	return nil
}
