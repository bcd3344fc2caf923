package ui

import (
	"fmt"
	"strings"

	"github.com/desertthunder/spotify-backup/internal/tasks"
)

// Stats carries session counters shown below the file list.
type Stats struct {
	Requests int
	Cached   int
}

// RenderSummary formats the outcome of a backup run with the default palette.
func RenderSummary(result *tasks.BackupResult, stats Stats, runErr error) string {
	return Summary(styles, result, stats, runErr)
}

// Summary formats the outcome of a backup run using p.
//
// result may be nil when the run failed before the output directory was prepared.
func Summary(p Painter, result *tasks.BackupResult, stats Stats, runErr error) string {
	var b strings.Builder

	if result == nil {
		result = &tasks.BackupResult{}
	}

	title := "Spotify backup"
	if result.Timestamp != "" {
		title += " " + result.Timestamp
	}
	b.WriteString(p.Title(title) + "\n")

	if result.CreatedDir {
		b.WriteString(p.Help("created "+result.OutputDir) + "\n")
	}

	for _, f := range result.Files {
		fmt.Fprintf(&b, "%s %-9s %6d  %s\n", p.OK("✓"), f.Kind, f.Records, f.Path)
	}

	if runErr != nil {
		fmt.Fprintf(&b, "%s %s\n", p.Err("✗"), p.Warn("backup incomplete: "+runErr.Error()))
	}

	b.WriteString(p.Help(fmt.Sprintf("%d requests, %d cached responses", stats.Requests, stats.Cached)) + "\n")
	return b.String()
}
