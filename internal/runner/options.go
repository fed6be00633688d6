package runner

import (
	"io"
	"log/slog"
)

// Option configures a Runner.
type Option func(*Runner)

// WithStdout sets the writer that receives the echoed argument and the success message.
func WithStdout(w io.Writer) Option {
	return func(r *Runner) {
		if w != nil {
			r.stdout = w
		}
	}
}

// WithLogger sets the logger for diagnostic output.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}
