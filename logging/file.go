package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	// DefaultFileName is the active log file inside the log directory
	DefaultFileName = "rockets.log"

	// MaxFileSize triggers rotation when the active file grows past it
	MaxFileSize = 10 * 1024 * 1024
)

// OpenFile opens dir/name for appending, rotating the existing file to a
// timestamped name first if it is larger than MaxFileSize.
// The terminal owns stdout/stderr while the view is up, so interactive runs log here.
func OpenFile(dir, name string) (*os.File, error) {
	if name == "" {
		name = DefaultFileName
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, name)
	if info, err := os.Stat(path); err == nil && info.Size() > MaxFileSize {
		ext := filepath.Ext(name)
		base := name[:len(name)-len(ext)]
		rotated := filepath.Join(dir, fmt.Sprintf("%s-%s%s", base, time.Now().Format("20060102-150405"), ext))
		if err := os.Rename(path, rotated); err != nil {
			return nil, fmt.Errorf("rotate log file: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
