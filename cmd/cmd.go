// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

const usageLine = "Usage: spotify-backup <output-directory>"

// Command returns the root command, which runs a full backup into its positional output directory.
func (r *Runner) Command() *cli.Command {
	return &cli.Command{
		Name:      "spotify-backup",
		Usage:     "Back up saved tracks, followed artists and playlists to timestamped JSON files",
		ArgsUsage: "<output-directory>",
		Version:   "0.1.0",
		Writer:    r.output,
		ErrWriter: r.errOutput,
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "output-directory"},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
			&cli.StringFlag{
				Name:  "base-url",
				Usage: "Web API root to resolve request paths against",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print the written JSON",
			},
			&cli.FloatFlag{
				Name:  "rate-limit",
				Usage: "Maximum uncached requests per second (0 disables pacing)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Action: r.Backup,
	}
}
