package filelog

import (
	stderrs "errors"
	"fmt"

	smerrors "github.com/Station-Manager/errors"
)

// Sentinel causes distinguishing the two failure classes every operation
// can return. They sit at the root of each error chain so callers can
// classify a failure without parsing messages.
var (
	errPrecondition = stderrs.New("precondition violation")
	errIOFailure    = stderrs.New("i/o failure")
)

// IsPrecondition reports whether err was caused by a violated precondition
// (nil channel, empty argument, inactive channel). Such failures are
// detected before any filesystem access.
func IsPrecondition(err error) bool {
	return hasCause(err, errPrecondition)
}

// IsIOFailure reports whether err was caused by the log file failing to
// open, append, or close. I/O failures are never retried; the record of
// that call is dropped.
func IsIOFailure(err error) bool {
	return hasCause(err, errIOFailure)
}

// hasCause walks an error's cause chain looking for target. The traversal
// prefers Station-Manager DetailedError.Cause() and falls back to stdlib
// errors.Is/Unwrap, guarding against excessive depth.
func hasCause(err error, target error) bool {
	const maxDepth = 50
	for depth := 0; err != nil && depth < maxDepth; depth++ {
		if stderrs.Is(err, target) {
			return true
		}
		if dErr, ok := smerrors.AsDetailedError(err); ok && dErr != nil {
			err = dErr.Cause()
			continue
		}
		err = stderrs.Unwrap(err)
	}
	return false
}

// ioError wraps a filesystem error with the I/O failure cause and the
// operation that observed it.
func ioError(op smerrors.Op, msg string, err error) error {
	return smerrors.New(op).Err(fmt.Errorf("%w: %w", errIOFailure, err)).Msg(msg)
}

// preconditionError builds the status for a violated precondition.
func preconditionError(op smerrors.Op, msg string) error {
	return smerrors.New(op).Err(errPrecondition).Msg(msg)
}
