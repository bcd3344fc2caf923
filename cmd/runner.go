package main

import (
	"io"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotify-backup/internal/shared"
)

// Runner holds all dependencies for the CLI and provides the command action.
type Runner struct {
	config     *shared.Config
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
	errOutput  io.Writer
	token      func() (string, error)
	now        func() time.Time
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config         // Used as-is instead of reading the --config file
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer              // Summary destination (default: stdout)
	ErrOutput  io.Writer              // Usage destination (default: stderr)
	Token      func() (string, error) // Credential source (default: [shared.LookupToken])
	Now        func() time.Time
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.ErrOutput == nil {
		opts.ErrOutput = os.Stderr
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.Token == nil {
		opts.Token = shared.LookupToken
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Runner{
		config:     opts.Config,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
		errOutput:  opts.ErrOutput,
		token:      opts.Token,
		now:        opts.Now,
	}
}
