package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/desertthunder/spotify-backup/internal/formatter"
	"github.com/desertthunder/spotify-backup/internal/models"
	"github.com/desertthunder/spotify-backup/internal/shared"
)

// BackupOpts contains configuration for a backup run.
type BackupOpts struct {
	OutputDir string    // Directory receiving the export files, created if absent
	Pretty    bool      // Indent the written JSON
	Now       time.Time // Run time used in file names (default: time.Now())
}

// ExportFile describes one written artifact.
type ExportFile struct {
	Kind    models.Kind
	Path    string
	Records int
}

// BackupResult contains the outcome of a backup run.
type BackupResult struct {
	Timestamp  string
	OutputDir  string
	CreatedDir bool
	Files      []ExportFile
}

// Backup exports tracks, artists and playlists, in that order, writing each artifact as soon as it is built.
func (e *Exporter) Backup(ctx context.Context, opts BackupOpts) (*BackupResult, error) {
	if opts.OutputDir == "" {
		return nil, fmt.Errorf("%w: output directory", shared.ErrMissingArgument)
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	created, err := formatter.EnsureDir(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if created {
		e.logger.Infof("Creating output directory: %s", opts.OutputDir)
	}

	result := &BackupResult{
		Timestamp:  formatter.Timestamp(opts.Now),
		OutputDir:  opts.OutputDir,
		CreatedDir: created,
		Files:      make([]ExportFile, 0, len(models.Kinds)),
	}

	for _, kind := range models.Kinds {
		data, records, err := e.build(ctx, kind)
		if err != nil {
			return result, err
		}

		path := formatter.ExportPath(opts.OutputDir, result.Timestamp, kind)
		e.logger.Infof("Writing %s", path)

		if err := formatter.WriteJSON(path, data, opts.Pretty); err != nil {
			return result, err
		}

		result.Files = append(result.Files, ExportFile{Kind: kind, Path: path, Records: records})
	}

	return result, nil
}

func (e *Exporter) build(ctx context.Context, kind models.Kind) (any, int, error) {
	switch kind {
	case models.KindTracks:
		tracks, err := e.Tracks(ctx)
		return tracks, len(tracks), err
	case models.KindArtists:
		artists, err := e.Artists(ctx)
		return artists, len(artists), err
	case models.KindPlaylists:
		playlists, err := e.Playlists(ctx)
		return playlists, len(playlists), err
	default:
		return nil, 0, fmt.Errorf("unknown export kind %q", kind)
	}
}
