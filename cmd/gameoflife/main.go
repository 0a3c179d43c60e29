package main

import (
	"context"
	"fmt"
	"os"

	"github.com/yitzhaks/gameoflife"
	"pkt.systems/pslog"
)

func main() {
	loader := gameoflife.NewLoader()
	root := NewRootCommand(loader)
	logger := pslog.LoggerFromEnv(pslog.WithEnvWriter(os.Stderr))
	root.SetContext(pslog.ContextWithLogger(context.Background(), logger))
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
