package runner

import "errors"

// ErrNoArguments is returned when Run is called with an empty argument list.
var ErrNoArguments = errors.New("no arguments")
