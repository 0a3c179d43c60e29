package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yitzhaks/gameoflife"
	"pkt.systems/pslog"
)

// NewVerifyCommand builds the verify command.
func NewVerifyCommand(loader *gameoflife.Loader) *cobra.Command {
	var board boardFlags
	var generations int
	var viewWidth int
	var viewHeight int
	var pan bool

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check differential frames against full paints in an emulator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, loader, &board)
			if err != nil {
				return err
			}
			logger := pslog.Ctx(cmd.Context()).With("component", "verify")
			rep, err := gameoflife.Verify(cmd.Context(), gameoflife.VerifyOptions{
				Config:      cfg,
				Generations: generations,
				ViewWidth:   viewWidth,
				ViewHeight:  viewHeight,
				Pan:         pan,
				Logger:      logger,
			})
			if err != nil {
				return err
			}
			saved := 0.0
			if rep.FullBytes > 0 {
				saved = 100 * (1 - float64(rep.DiffBytes)/float64(rep.FullBytes))
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(),
				"ok: %d frames, %d chars, %d moves, %d color changes, %d bytes (%.1f%% less than full paints)\n",
				rep.Frames, rep.Stats.Chars, rep.Stats.Moves, rep.Stats.Colors, rep.DiffBytes, saved)
			return err
		},
	}

	flags := cmd.Flags()
	board.register(flags)
	flags.IntVarP(&generations, "generations", "n", 100, "generations to verify")
	flags.IntVar(&viewWidth, "view-width", 0, "viewport width in cells (0 shows the whole board)")
	flags.IntVar(&viewHeight, "view-height", 0, "viewport height in cells (0 shows the whole board)")
	flags.BoolVar(&pan, "pan", false, "pan the viewport every generation")

	return cmd
}
