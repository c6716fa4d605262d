package cli

import (
	"errors"
	"fmt"

	"github.com/read-lnk/read-lnk/internal/branding"
)

// Exit statuses.
const (
	exitOK      = 0
	exitUsage   = 1
	exitDecode  = 2
	exitFailure = 3
)

// exitError attaches an exit status to a failure. usage asks for the usage
// line on stdout; err, when set, is reported on stderr.
type exitError struct {
	code  int
	err   error
	usage bool
}

func (e *exitError) Error() string {
	if e.err == nil {
		return "usage error"
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

func usageLine() string {
	return "Usage: " + branding.CLIName() + " path_to_shortcut.lnk"
}

func exitCode(e env, err error) int {
	if err == nil {
		return exitOK
	}

	var xe *exitError
	if !errors.As(err, &xe) {
		fmt.Fprintf(e.stderr, "error: %v\n", err)
		return exitFailure
	}
	if xe.err != nil {
		fmt.Fprintf(e.stderr, "error: %v\n", xe.err)
	}
	if xe.usage {
		fmt.Fprintln(e.stdout, usageLine())
	}
	return xe.code
}
