package runner

import "path/filepath"

// Defaults used by DefaultConfig.
const (
	DefaultOutputDir      = "/data"
	DefaultFileName       = "out.png"
	DefaultContent        = "Hello"
	DefaultSuccessMessage = "Success"
)

// Config is the fixed configuration of a Runner.
// It is passed by value and never changed after New.
type Config struct {
	OutputDir      string
	FileName       string
	Content        string
	SuccessMessage string
}

// DefaultConfig returns the configuration used by the scribe binary.
// The content is plain text even though the file name ends in .png.
func DefaultConfig() Config {
	return Config{
		OutputDir:      DefaultOutputDir,
		FileName:       DefaultFileName,
		Content:        DefaultContent,
		SuccessMessage: DefaultSuccessMessage,
	}
}

// OutputPath returns the full path of the output file.
func (c Config) OutputPath() string {
	return filepath.Join(c.OutputDir, c.FileName)
}
