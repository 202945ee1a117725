package storage

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrInvalidKey is matched by every *KeyError.
	ErrInvalidKey = errors.New("invalid object key")
	// ErrNotFound is matched by every *NotFoundError.
	ErrNotFound = errors.New("object not found")
	// ErrIO is matched by every *IOError.
	ErrIO = errors.New("storage I/O error")
)

// KeyError reports a key that failed validation.
type KeyError struct {
	Key    string
	Reason string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidKey, e.Reason)
}

func (e *KeyError) Is(target error) bool {
	return target == ErrInvalidKey
}

// NotFoundError reports a valid key with no stored object.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrNotFound, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// IOError wraps any other filesystem failure.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrIO, e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// Detail describes the failure without the filesystem path, so it is safe to
// hand to remote callers.
func (e *IOError) Detail() string {
	var pathErr *fs.PathError
	if errors.As(e.Err, &pathErr) {
		return fmt.Sprintf("%s: %v", e.Op, pathErr.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func ioError(op string, err error) error {
	return &IOError{Op: op, Err: err}
}
