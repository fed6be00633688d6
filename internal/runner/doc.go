/*
Package runner implements the single pass performed by the scribe command.

A Runner echoes the last element of the argument list, writes the configured
content to the configured output file and reports success on its stdout writer.

# Usage

	r := runner.New(runner.DefaultConfig(),
		runner.WithStdout(os.Stdout),
		runner.WithLogger(logger),
	)
	if err := r.Run(os.Args); err != nil {
		// propagate to the process boundary
	}
*/
package runner
