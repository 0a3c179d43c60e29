package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yitzhaks/gameoflife"
	"pkt.systems/prettyx"
)

// NewConfigCommand builds the config command group.
func NewConfigCommand(loader *gameoflife.Loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}

	var board boardFlags
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, loader, &board)
			if err != nil {
				return err
			}
			data, err := json.Marshal(cfg)
			if err != nil {
				return err
			}
			return prettyx.PrettyTo(cmd.OutOrStdout(), data, prettyx.DefaultOptions)
		},
	}
	board.register(showCmd.Flags())

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config file in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := loader.ReadInConfig(); err != nil {
				return err
			}
			path := loader.ConfigFileUsed()
			if path == "" {
				path = gameoflife.DefaultConfigPath() + " (not present)"
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}

	cmd.AddCommand(showCmd, pathCmd)
	return cmd
}
