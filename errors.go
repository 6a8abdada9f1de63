package urlcore

import (
	"braces.dev/errtrace"

	"github.com/go-urlcore/urlcore/internal/errorutil"
)

// Sentinel errors for each recoverable error class this module produces.
// Every fallible exported function wraps one of these with errtrace.Wrap
// at its return site, so callers get both errors.Is granularity and a
// source-line trace without being forced to check the error on the hot
// path — the boolean "valid" result remains the primary signal.
const (
	ErrMalformedScheme      errorutil.Error = "urlcore: malformed scheme"
	ErrBadPort              errorutil.Error = "urlcore: bad port"
	ErrBadHost              errorutil.Error = "urlcore: bad host"
	ErrMalformedEscape      errorutil.Error = "urlcore: malformed percent escape"
	ErrMalformedUTF         errorutil.Error = "urlcore: malformed UTF sequence"
	ErrUnresolvableRelative errorutil.Error = "urlcore: unresolvable relative reference"
)

// wrapErr annotates sentinel with a source-line trace. Returns nil if
// sentinel is nil, so call sites can pass through a possibly-nil error
// pointer target unconditionally.
func wrapErr(sentinel error) error {
	if sentinel == nil {
		return nil
	}
	return errtrace.Wrap(errorutil.NewWrapperError(sentinel))
}

// wrapErrf is wrapErr with a formatted detail message appended to
// sentinel, for call sites where the bare sentinel alone would lose
// useful context. errors.Is against sentinel still succeeds.
func wrapErrf(sentinel error, format string, args ...any) error {
	if sentinel == nil {
		return nil
	}
	allArgs := append([]any{format}, args...)
	return errtrace.Wrap(errorutil.NewWrapperError(sentinel, allArgs...))
}

// setErr stores err into *dst if dst is non-nil. Callers pass nil when
// they only care about the boolean valid result.
func setErr(dst *error, err error) {
	if dst != nil {
		*dst = err
	}
}

// ErrInvalidArgument is returned when a caller passes a structurally
// invalid argument, as opposed to a spec that merely fails to
// canonicalize. See [errorutil.Error].
const ErrInvalidArgument = errorutil.ErrInvalidArgument

// NewInvalidArgumentError creates a new error with [ErrInvalidArgument]
// or wraps the provided error/message with it.
func NewInvalidArgumentError(args ...any) error {
	return errorutil.NewInvalidArgumentError(args...) //errtrace:skip
}
