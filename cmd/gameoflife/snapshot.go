package main

import (
	"github.com/spf13/cobra"

	"github.com/yitzhaks/gameoflife"
	"pkt.systems/pslog"
)

// NewSnapshotCommand builds the snapshot command.
func NewSnapshotCommand(loader *gameoflife.Loader) *cobra.Command {
	var board boardFlags
	var generations int
	var format string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Advance a board and print its final frame",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, loader, &board)
			if err != nil {
				return err
			}
			logger := pslog.Ctx(cmd.Context()).With("component", "snapshot")
			return gameoflife.Snapshot(cmd.Context(), cmd.OutOrStdout(), gameoflife.SnapshotOptions{
				Config:      cfg,
				Generations: generations,
				Format:      format,
				Logger:      logger,
			})
		},
	}

	flags := cmd.Flags()
	board.register(flags)
	flags.IntVarP(&generations, "generations", "n", 0, "generations to advance before printing")
	flags.StringVarP(&format, "format", "f", "ansi", "output format: ansi or text")

	return cmd
}
