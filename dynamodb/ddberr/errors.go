// Package ddberr classifies failures into the small set of kinds the CLI
// needs to pick an exit code: caller mistakes, upstream service failures and
// broken invariants in data returned by the service.
package ddberr

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// Kind is the category of a failure.
type Kind int

const (
	// KindUser is a mistake in the command line or an unknown named resource.
	KindUser Kind = iota + 1
	// KindUpstream is a failed call to the DynamoDB or EC2 control plane.
	KindUpstream
	// KindInternal means the service returned data that violates its own contract.
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindUser:
		return "user error"
	case KindUpstream:
		return "upstream error"
	case KindInternal:
		return "internal error"
	default:
		return "unknown error"
	}
}

// Error carries a Kind alongside the operation that failed.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// User returns a KindUser error with a formatted message.
func User(op string, format string, args ...any) error {
	return &Error{Kind: KindUser, Op: op, Err: fmt.Errorf(format, args...)}
}

// Internal returns a KindInternal error with a formatted message.
func Internal(op string, format string, args ...any) error {
	return &Error{Kind: KindInternal, Op: op, Err: fmt.Errorf(format, args...)}
}

// Upstream wraps an error returned by an AWS API call.
func Upstream(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindUpstream, Op: op, Err: err}
}

// KindOf reports the Kind of err. Unclassified errors count as upstream.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUpstream
}

// Is reports whether err is classified as kind.
func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// APICode returns the service error code (e.g. "BackupInUseException")
// when err wraps a smithy API error, and "" otherwise.
func APICode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}

// ExitCode maps err to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
