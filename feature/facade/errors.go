package facade

import (
	"errors"
	"fmt"
	"io/fs"

	"storage-facade/core/storage"
)

// Kind classifies why an operation failed.
type Kind int

const (
	// KindTransient covers network failures, timeouts and unclassified service errors.
	KindTransient Kind = iota
	KindNotFound
	KindConflict
	KindDenied
	KindInvalid
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindDenied:
		return "denied"
	case KindInvalid:
		return "invalid"
	default:
		return "transient"
	}
}

// OpError is returned by every facade operation that fails.
type OpError struct {
	Op     string
	Bucket string
	Key    string
	Kind   Kind
	Err    error
}

func (e *OpError) Error() string {
	target := e.Bucket
	if e.Key != "" {
		target += "/" + e.Key
	}
	return fmt.Sprintf("%s %s: %v", e.Op, target, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

// KindOf returns the failure kind carried by err. Errors that did not come
// from the facade are classified the same way the facade would.
func KindOf(err error) Kind {
	var opErr *OpError
	if errors.As(err, &opErr) {
		return opErr.Kind
	}
	return classify(err)
}

// classify maps storage and filesystem error classes to a Kind. Context
// cancellation, timeouts and network errors fall through to KindTransient.
func classify(err error) Kind {
	switch {
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, storage.ErrConflict), errors.Is(err, fs.ErrExist):
		return KindConflict
	case errors.Is(err, storage.ErrDenied), errors.Is(err, fs.ErrPermission):
		return KindDenied
	case errors.Is(err, storage.ErrInvalid):
		return KindInvalid
	default:
		return KindTransient
	}
}
