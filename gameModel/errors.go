package gameModel

import (
	"errors"
	"fmt"
)

type InputReason int

const (
	NotAnInteger InputReason = iota + 1
	InvalidBestOf
)

var (
	ErrNotAnInteger     = errors.New("not an integer")
	ErrInvalidBestOf    = errors.New("only positive odd integers are valid")
	ErrExhaustedRetries = errors.New("too many invalid inputs")
)

// InputError reports malformed or out-of-policy setup input.
type InputError struct {
	Reason InputReason
	Input  string
}

func (e *InputError) Error() string {
	if e.Input == "" {
		return e.Unwrap().Error()
	}
	return fmt.Sprintf("%v: %q", e.Unwrap(), e.Input)
}

func (e *InputError) Unwrap() error {
	if e.Reason == NotAnInteger {
		return ErrNotAnInteger
	}
	return ErrInvalidBestOf
}
