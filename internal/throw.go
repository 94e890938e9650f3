package internal

import "github.com/pkg/errors"

// The ghost builder walks index arrays that came from outside and may be
// corrupt. Rather than thread errors through every lookup, it panics with a
// MeshError, and the public API recovers to convert to an error.

type MeshError struct {
	Err error
}

func (e MeshError) Error() string {
	return e.Err.Error()
}

func (e MeshError) Unwrap() error {
	return e.Err
}

// Panic with a MeshError wrapping cause, so that errors.Is still matches the
// sentinel after recovery.
func fatalf(cause error, format string, args ...interface{}) {
	panic(MeshError{errors.Wrapf(cause, format, args...)})
}

func HandleMeshPanicRecover(r interface{}) error {
	if r != nil {
		if meshError, ok := r.(MeshError); ok {
			return meshError.Err
		}
		panic(r)
	}
	return nil
}
