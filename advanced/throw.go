package advanced

import "github.com/pkg/errors"

// Checking slice lengths happens while converting arguments, in helpers that
// return plain points. Rather than giving every one of those an error return,
// they panic with an inputPanic, and the public API recovers to convert it to
// an error.

// ErrInvalidInput is the only error the predicates produce: a coordinate slice
// shorter than the predicate's dimension.
var ErrInvalidInput = errors.New("invalid input")

// inputPanic wraps the error so recovery can tell our panics apart from real
// ones, including runtime errors, which are also errors.
type inputPanic struct {
	err error
}

// Panic with an error wrapping ErrInvalidInput.
func fatalf(format string, args ...interface{}) {
	panic(inputPanic{errors.Wrapf(ErrInvalidInput, format, args...)})
}

// HandlePanicRecover converts the value returned by recover() into an error.
// Call it from a deferred function. A nil value means there was no panic. Any
// panic that didn't come from fatalf is re-raised.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if p, ok := r.(inputPanic); ok {
			return p.err
		}
		panic(r)
	}
	return nil
}
