package main

import (
	"context"
	"os"

	"github.com/desertthunder/spotify-backup/internal/shared"
)

func main() {
	logger := shared.NewLogger(nil)

	if err := shared.LoadEnvFile(".env"); err != nil {
		logger.Warn("ignoring .env file", "error", err)
	}

	runner := NewRunner(RunnerOpts{Logger: logger})

	if err := runner.Command().Run(context.Background(), os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
