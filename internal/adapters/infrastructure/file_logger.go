package infrastructure

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// FileLoggerAdapter writes JSON log lines to a file. The gateway logging
// decorator uses it to keep remote API traffic out of the main log.
type FileLoggerAdapter struct {
	*SlogLoggerAdapter
	file      *os.File
	closeOnce sync.Once
}

// NewFileLoggerAdapter opens (or creates) logPath in append mode
func NewFileLoggerAdapter(logPath string, level slog.Level) (*FileLoggerAdapter, error) {
	if logPath == "" {
		return nil, errors.NewConfigurationError("log file path cannot be empty", nil)
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, errors.NewConfigurationError("failed to create log directory", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.NewConfigurationError("failed to open log file", err)
	}

	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level})
	return &FileLoggerAdapter{
		SlogLoggerAdapter: NewSlogLoggerAdapter(slog.New(handler)),
		file:              file,
	}, nil
}

// Close flushes and closes the underlying file
func (f *FileLoggerAdapter) Close() error {
	var err error
	f.closeOnce.Do(func() {
		if syncErr := f.file.Sync(); syncErr != nil {
			err = syncErr
		}
		if closeErr := f.file.Close(); closeErr != nil {
			err = closeErr
		}
	})
	return err
}

var _ ports.Logger = (*FileLoggerAdapter)(nil)
