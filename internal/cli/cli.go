// Package cli holds the pieces shared by the command entry points.
package cli

import (
	"flag"
	"fmt"
	"io"

	"github.com/muhammadchandra19/wb-report/pkg/errors"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitCode maps an error to the process exit code. Invalid input is a usage
// error, everything else a failure.
func ExitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return ExitOK
	case errors.CategoryOf(errors.CodeOf(err)) == errors.CategoryValidation:
		return ExitUsage
	default:
		return ExitFailure
	}
}

// Usage returns a usage error.
func Usage(format string, args ...any) error {
	return errors.Newf(errors.GeneralBadRequestError, format, args...)
}

// Fail reports err on w and returns its exit code.
func Fail(w io.Writer, err error) int {
	code := ExitCode(err)
	if code == ExitOK {
		return code
	}

	fmt.Fprintf(w, "error: %v\n", err)
	switch {
	case errors.IsCode(err, errors.UnauthorizedError):
		fmt.Fprintln(w, "hint: check the API token (--token, WB_API_TOKEN or the configuration file)")
	case errors.IsCode(err, errors.RateLimitedError):
		fmt.Fprintln(w, "hint: the API rate limit was hit, try again later")
	case errors.IsCode(err, errors.TimeoutError):
		fmt.Fprintln(w, "hint: the API did not answer in time, try a shorter period")
	}
	return code
}

// ParseArgs parses flags that may be interleaved with positional arguments
// and returns the positional ones in order.
func ParseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			return positional, nil
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
}
