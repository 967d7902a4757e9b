package cli

import (
	relerr "github.com/relkit/relkit/internal/errors"
)

// Exit codes for the relkit CLI, following the sysexits convention so CI
// pipelines can distinguish failure classes.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitUsage indicates a malformed command line: an explicit version or
	// build number that does not parse, unknown flags, missing required
	// flags, or unexpected positional arguments
	ExitUsage = 64

	// ExitNoInput indicates missing input: no manifest version line, no
	// changelog file, or no section for the requested version
	ExitNoInput = 66

	// ExitSoftware is the generic code for all other classified failures
	ExitSoftware = 70
)

// ExitCode maps a command error to the process exit code. Classified errors
// map exhaustively by kind; anything else is a software error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	relErr := relerr.As(err)
	if relErr == nil {
		return ExitSoftware
	}

	switch relErr.Kind {
	case relerr.InvalidVersion, relerr.InvalidBuildNumber, relerr.InvalidArguments:
		return ExitUsage
	case relerr.MalformedManifest, relerr.MissingChangelog, relerr.VersionNotFound:
		return ExitNoInput
	case relerr.NoNewChanges, relerr.ExternalCommand, relerr.WebhookConfig, relerr.WebhookNotFound:
		return ExitSoftware
	default:
		return ExitSoftware
	}
}

// ReportError prints the error in its classified single-line form, or with
// raw detail for unclassified errors.
func ReportError(err error) {
	if err == nil {
		return
	}
	if relErr := relerr.As(err); relErr != nil {
		relerr.PrintError(relErr)
		return
	}
	relerr.PrintUnclassified(err)
}
