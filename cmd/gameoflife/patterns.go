package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yitzhaks/gameoflife"
)

// NewPatternsCommand lists the built-in patterns followed by the user's.
func NewPatternsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "List available patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range gameoflife.Patterns() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			for _, name := range gameoflife.UserPatterns() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t(user)\n", name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
