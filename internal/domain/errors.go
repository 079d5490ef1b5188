package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a critical failure that prevents a report.
type ErrorKind int

const (
	KindNotFound ErrorKind = iota + 1
	KindMalformed
	KindUnreadable
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindMalformed:
		return "malformed"
	case KindUnreadable:
		return "unreadable"
	default:
		return "unknown"
	}
}

// Sentinels matched with errors.Is against a *BundleError.
var (
	ErrNotFound   = errors.New("bundle not found")
	ErrMalformed  = errors.New("bundle malformed")
	ErrUnreadable = errors.New("bundle unreadable")
)

// BundleError is returned when a bundle cannot be read into BundleFacts.
type BundleError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *BundleError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Path, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s %s", e.Path, e.Kind)
}

func (e *BundleError) Unwrap() error { return e.Err }

// Is lets errors.Is match the kind sentinels.
func (e *BundleError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrMalformed:
		return e.Kind == KindMalformed
	case ErrUnreadable:
		return e.Kind == KindUnreadable
	default:
		return false
	}
}

// IsCritical reports whether err stops a run before a report exists.
func IsCritical(err error) bool {
	var be *BundleError
	return errors.As(err, &be)
}
