package runner

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/scribe/internal/logging"
)

// Runner performs the echo-write-report sequence.
type Runner struct {
	cfg    Config
	stdout io.Writer
	logger *slog.Logger
}

// New creates a Runner for cfg. Output goes to os.Stdout and logging is
// discarded unless overridden by options.
func New(cfg Config, opts ...Option) *Runner {
	r := &Runner{
		cfg:    cfg,
		stdout: os.Stdout,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run prints the last element of argv, writes the configured content to the
// output file (creating or truncating it) and prints the success message.
// Nothing is printed or written when argv is empty.
func (r *Runner) Run(argv []string) error {
	if len(argv) == 0 {
		return ErrNoArguments
	}

	if _, err := fmt.Fprintln(r.stdout, argv[len(argv)-1]); err != nil {
		return fmt.Errorf("failed to print argument: %w", err)
	}

	path := r.cfg.OutputPath()
	if err := r.writeOutput(path); err != nil {
		return err
	}
	r.logger.Debug("output written", "path", path, "bytes", len(r.cfg.Content))

	if _, err := fmt.Fprintln(r.stdout, r.cfg.SuccessMessage); err != nil {
		return fmt.Errorf("failed to print success message: %w", err)
	}
	return nil
}

// writeOutput holds the file handle for the duration of the write only.
// The parent directory must already exist.
func (r *Runner) writeOutput(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	if _, err := io.WriteString(f, r.cfg.Content); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
