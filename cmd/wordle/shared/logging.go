package shared

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// SetupLogger returns a logger writing to path, or discarding everything when
// path is empty so the game screen stays clean. The returned func closes the
// file.
func SetupLogger(path string, level log.Level) (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = func() {
			if err := f.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "wordle",
		Level:           level,
	})
	return logger, closeFn, nil
}
