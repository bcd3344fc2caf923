// package formatter names and writes the JSON export files
package formatter

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/desertthunder/spotify-backup/internal/models"
	"github.com/desertthunder/spotify-backup/internal/shared"
)

// TimestampLayout formats the run time embedded in every file name (YYYYMMDD-HHMMSS).
const TimestampLayout = "20060102-150405"

// Timestamp formats t with [TimestampLayout].
func Timestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// Filename returns the export file name for one artifact, e.g. spotify-20240102-150405-tracks.json
func Filename(stamp string, kind models.Kind) string {
	return fmt.Sprintf("spotify-%s-%s.json", stamp, kind)
}

// ExportPath joins the output directory with [Filename].
func ExportPath(dir, stamp string, kind models.Kind) string {
	return filepath.Join(dir, Filename(stamp, kind))
}

// WriteJSON serializes v as one JSON document terminated by a newline and writes it to path.
func WriteJSON(path string, v any, pretty bool) error {
	data, err := shared.MarshalJSON(v, pretty)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal %s: %v", shared.ErrWriteFailed, filepath.Base(path), err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrWriteFailed, err)
	}

	return nil
}

// EnsureDir creates dir and any missing parents. It reports whether the directory had to be created.
func EnsureDir(dir string) (bool, error) {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return false, fmt.Errorf("%w: %s is not a directory", shared.ErrWriteFailed, dir)
		}
		return false, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, fmt.Errorf("%w: failed to create output directory: %v", shared.ErrWriteFailed, err)
	}
	return true, nil
}
