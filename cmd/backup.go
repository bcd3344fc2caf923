package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotify-backup/internal/services"
	"github.com/desertthunder/spotify-backup/internal/shared"
	"github.com/desertthunder/spotify-backup/internal/tasks"
	"github.com/desertthunder/spotify-backup/internal/ui"
	"github.com/urfave/cli/v3"
)

// Backup exports the library into the output directory given as the only argument.
//
// The token is checked before any request is made. The summary is printed even when the run fails part way.
func (r *Runner) Backup(ctx context.Context, cmd *cli.Command) error {
	dir := cmd.StringArg("output-directory")
	if dir == "" {
		fmt.Fprintln(r.errOutput, usageLine)
		return fmt.Errorf("%w: output directory", shared.ErrMissingArgument)
	}

	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}
	config.Output.Directory = dir

	if config.Spotify.Token, err = r.token(); err != nil {
		return err
	}
	if err := config.Validate(); err != nil {
		return err
	}

	logger := shared.WithLogger(r.logger, "run", shared.GenerateID())
	if cmd.Bool("debug") {
		shared.SetLogLevel(logger, log.DebugLevel)
	}

	session, err := services.NewSession(services.SessionOpts{
		BaseURL:    config.Spotify.BaseURL,
		Token:      config.Spotify.Token,
		HTTPClient: r.httpClient,
		RateLimit:  config.Client.RateLimit,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	exporter := tasks.NewExporter(session, logger)
	result, err := exporter.Backup(ctx, tasks.BackupOpts{
		OutputDir: config.Output.Directory,
		Pretty:    config.Output.Pretty,
		Now:       r.now(),
	})

	stats := ui.Stats{Requests: session.Requests(), Cached: session.CacheSize()}
	fmt.Fprint(r.output, ui.RenderSummary(result, stats, err))

	return err
}

// loadConfig resolves the run configuration: the injected or file config, then flag overrides.
func (r *Runner) loadConfig(cmd *cli.Command) (*shared.Config, error) {
	var config *shared.Config

	switch {
	case r.config != nil:
		c := *r.config
		config = &c
	default:
		configPath := cmd.String("config")
		if _, err := os.Stat(configPath); err == nil {
			if config, err = shared.LoadConfig(configPath); err != nil {
				return nil, err
			}
		} else {
			r.logger.Debug("config file not found, using defaults", "path", configPath)
			config = shared.DefaultConfig()
		}
	}

	if cmd.IsSet("base-url") {
		config.Spotify.BaseURL = cmd.String("base-url")
	}
	if cmd.IsSet("pretty") {
		config.Output.Pretty = cmd.Bool("pretty")
	}
	if cmd.IsSet("rate-limit") {
		config.Client.RateLimit = cmd.Float("rate-limit")
	}

	return config, nil
}
