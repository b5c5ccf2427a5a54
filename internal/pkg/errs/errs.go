package errs

import (
	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark attaches markErr so errors.Is(err, markErr) holds while keeping the
// original cause chain intact.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	// cr.Mark alone is only visible to cockroachdb's errors.Is; joining markErr
	// into the chain makes the mark visible to stdlib errors.Is as documented.
	return cr.Mark(cr.Join(err, markErr), markErr)
}
