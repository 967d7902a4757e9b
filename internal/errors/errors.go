// Package errors provides the closed error taxonomy for the relkit CLI.
// Every classified failure carries a Kind; the command boundary maps the
// kind to a single-line message and a process exit code.
package errors

import "fmt"

// Kind identifies the category of a classified failure.
type Kind int

const (
	// MalformedManifest means the manifest version line is missing or unparseable.
	MalformedManifest Kind = iota
	// InvalidVersion means an explicit version argument is not three integers.
	InvalidVersion
	// InvalidBuildNumber means an explicit build number argument is not an integer.
	InvalidBuildNumber
	// InvalidArguments means the command line itself is malformed: unknown
	// flags, missing required flags, or unexpected positional arguments.
	InvalidArguments
	// MissingChangelog means the changelog file does not exist.
	MissingChangelog
	// NoNewChanges means the target version's section is already at the document head.
	NoNewChanges
	// VersionNotFound means a query asked for a version with no matching section.
	VersionNotFound
	// ExternalCommand means a git/aws invocation exited non-zero.
	ExternalCommand
	// WebhookConfig means no notification webhook is configured at all.
	WebhookConfig
	// WebhookNotFound means no webhook entry exists for the requested app.
	WebhookNotFound
)

// String returns a human-readable label for the kind. The switch is
// exhaustive over the Kind constants.
func (k Kind) String() string {
	switch k {
	case MalformedManifest:
		return "Malformed Manifest"
	case InvalidVersion:
		return "Invalid Version"
	case InvalidBuildNumber:
		return "Invalid Build Number"
	case InvalidArguments:
		return "Invalid Arguments"
	case MissingChangelog:
		return "Missing Changelog"
	case NoNewChanges:
		return "No New Changes"
	case VersionNotFound:
		return "Version Not Found"
	case ExternalCommand:
		return "External Command Failed"
	case WebhookConfig:
		return "Webhook Not Configured"
	case WebhookNotFound:
		return "Webhook Not Found"
	default:
		return "Error"
	}
}

// Error is a classified failure with a kind and a single-line message.
type Error struct {
	Kind    Kind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// New creates a classified error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates a classified error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error under a kind, preserving its message.
func Wrap(err error, kind Kind) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Message: err.Error()}
}

// WrapWithMessage wraps an error under a kind with a message prefix.
func WrapWithMessage(err error, kind Kind, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Message: fmt.Sprintf("%s: %v", message, err)}
}

// As attempts to convert an error to a classified *Error.
// Returns nil if the error is not classified.
func As(err error) *Error {
	relErr, ok := err.(*Error)
	if ok {
		return relErr
	}
	return nil
}

// IsKind reports whether err is a classified error of the given kind.
func IsKind(err error, kind Kind) bool {
	relErr := As(err)
	return relErr != nil && relErr.Kind == kind
}
