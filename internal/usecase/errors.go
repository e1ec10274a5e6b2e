package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSession = errors.New("invalid session")
	ErrForbidden      = errors.New("forbidden")
)

// StoreError reports a failed document store call. The operation was not
// applied and nothing was changed locally; retrying the action is safe.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *StoreError
	if errors.As(err, &se) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}
