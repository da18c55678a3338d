package layout

import (
	"errors"
	"fmt"
)

var (
	// ErrInvariant marks programming errors such as malformed persisted sizes.
	ErrInvariant = errors.New("layout: invariant violation")
	// ErrItemNotFound is returned when an item path does not resolve.
	ErrItemNotFound = errors.New("layout: item not found")
	// ErrDocumentNotFound is returned by stores for unknown document ids.
	ErrDocumentNotFound = errors.New("layout: document not found")
	// ErrMissingStore is returned by commands that need a layout store.
	ErrMissingStore = errors.New("layout: layout store not configured")
	// ErrInvalidDocument wraps document decoding and schema failures.
	ErrInvalidDocument = errors.New("layout: invalid document")
	// ErrInvalidArgument wraps malformed item paths and breakpoint names.
	ErrInvalidArgument = errors.New("layout: invalid argument")
)

// InvariantError is the panic value raised when sizing inputs break a
// documented invariant. It unwraps to ErrInvariant.
type InvariantError struct {
	Op     string
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("layout: %s: %s", e.Op, e.Detail)
}

func (e *InvariantError) Unwrap() error {
	return ErrInvariant
}

func invariant(cond bool, op, format string, args ...any) {
	if cond {
		return
	}
	panic(&InvariantError{Op: op, Detail: fmt.Sprintf(format, args...)})
}

// Recover runs fn and converts an invariant panic into an error. Any other
// panic is re-raised.
func Recover(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if inv, ok := r.(*InvariantError); ok {
			err = inv
			return
		}
		panic(r)
	}()
	fn()
	return nil
}

func recoverInvariant(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if inv, ok := r.(*InvariantError); ok {
		*err = inv
		return
	}
	panic(r)
}
