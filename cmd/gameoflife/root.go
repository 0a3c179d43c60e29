package main

import (
	"github.com/spf13/cobra"

	"github.com/yitzhaks/gameoflife"
	"pkt.systems/pslog"
)

// NewRootCommand builds the root CLI command, which plays the game.
func NewRootCommand(loader *gameoflife.Loader) *cobra.Command {
	var configFile string
	var board boardFlags
	var fps int
	var gps float64
	var paused bool
	var maxGenerations int
	var logFile string

	cmd := &cobra.Command{
		Use:   "gameoflife",
		Short: "Conway's Game of Life in the terminal",
		Long: "Plays Life in the terminal, redrawing only the cells that change.\n\n" +
			"Keys: space run/pause, n step, +/- speed, arrows or hjkl pan, HJKL pan a page,\n" +
			"c center, q quit.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if configFile != "" {
				loader.SetConfigFile(configFile)
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, loader, &board)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("fps") {
				cfg.Render.FPS = fps
			}
			if flags.Changed("gps") {
				cfg.Render.GenerationsPerSecond = gps
			}
			if flags.Changed("paused") {
				cfg.Render.Paused = paused
			}
			if flags.Changed("max-generations") {
				cfg.Render.MaxGenerations = maxGenerations
			}
			if flags.Changed("log-file") {
				cfg.Log.File = logFile
			}

			logger, closer, err := openFileLogger(cfg.Log.File)
			if err != nil {
				return err
			}
			defer func() {
				_ = closer.Close()
			}()
			logger = logger.With("component", "play")
			ctx := pslog.ContextWithLogger(cmd.Context(), logger)
			return gameoflife.Play(ctx, gameoflife.PlayOptions{
				Config: cfg,
				Logger: logger,
			})
		},
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")

	flags := cmd.Flags()
	board.register(flags)
	flags.IntVar(&fps, "fps", gameoflife.DefaultFPS, "frame-rate cap")
	flags.Float64Var(&gps, "gps", gameoflife.DefaultGenerationsPerSecond, "generations per second")
	flags.BoolVar(&paused, "paused", false, "start paused")
	flags.IntVar(&maxGenerations, "max-generations", 0, "stop the clock after this many generations (0 runs forever)")
	flags.StringVar(&logFile, "log-file", gameoflife.DefaultLogPath(), "log file used while the game owns the terminal")

	cmd.AddCommand(NewSnapshotCommand(loader))
	cmd.AddCommand(NewVerifyCommand(loader))
	cmd.AddCommand(NewPatternsCommand())
	cmd.AddCommand(NewConfigCommand(loader))
	cmd.AddCommand(NewBootstrapCommand())

	return cmd
}
