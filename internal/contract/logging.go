package contract

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger builds the run-scoped logger. Records always go to stderr;
// when logFile is non-empty they are mirrored to that file as well. The
// returned cleanup func closes the file sink and must be called once the
// run finishes.
func NewLogger(logFile string) (*log.Logger, func(), error) {
	var sink io.Writer = os.Stderr
	cleanup := func() {}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		sink = io.MultiWriter(os.Stderr, f)
		cleanup = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(sink, log.Options{
		ReportTimestamp: true,
	})
	return logger, cleanup, nil
}
