package cli

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/xmlnav/pkg/source"
)

// Exit codes for xmlnav, following the sysexits convention.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitUsage indicates invalid command-line usage.
	ExitUsage = 64

	// ExitData indicates bad input data or configuration.
	ExitData = 65

	// ExitNoInput indicates a missing or unreadable input file.
	ExitNoInput = 66

	// ExitInternal indicates an internal error.
	ExitInternal = 70

	// ExitIO indicates a file I/O error.
	ExitIO = 74
)

// ErrNotTerminal is returned when an interactive command is run with
// stdout redirected away from a terminal.
var ErrNotTerminal = errors.New("stdout is not a terminal")

// errUsage marks command-line misuse detected after flag parsing.
var errUsage = errors.New("invalid usage")

// errConfig marks configuration loading or validation failures.
var errConfig = errors.New("configuration error")

// errIO marks write failures on otherwise valid operations.
var errIO = errors.New("i/o error")

// ExitCode maps an error returned by command execution to a process
// exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrNotTerminal), errors.Is(err, errUsage):
		return ExitUsage
	case errors.Is(err, errConfig), errors.Is(err, source.ErrInvalidEncoding):
		return ExitData
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		return ExitNoInput
	case errors.Is(err, errIO):
		return ExitIO
	default:
		return ExitInternal
	}
}
