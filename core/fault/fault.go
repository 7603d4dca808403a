package fault

import (
	"errors"
	"fmt"
)

// Kind classifies an error into one of the stable caller-facing categories.
// Every public operation maps its lower-level failures onto exactly one Kind
// at its boundary, so callers never need to inspect wrapped errors to decide
// how to react.
type Kind string

const (
	// KindConfig covers configuration problems: missing or empty root,
	// unsupported language, and any path validation failure.
	KindConfig Kind = "config"

	// KindCategoryNotFound indicates the caller named a category that does
	// not exist in the closet.
	KindCategoryNotFound Kind = "category-not-found"

	// KindFilesystem covers listing failures: not found, permission denied,
	// and generic I/O errors. Transient vs permanent is not distinguished;
	// retry policy belongs to the caller.
	KindFilesystem Kind = "filesystem"

	// KindCache covers rotation-state persistence failures, including decode
	// failures on load. A corrupt state file is never treated as empty.
	KindCache Kind = "cache"

	// KindInvalidInput indicates a malformed caller argument, such as an
	// empty outfit name or one without the recognized extension.
	KindInvalidInput Kind = "invalid-input"
)

// Error carries a Kind alongside the underlying cause.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a classified error from a message.
func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Err: errors.New(msg)}
}

// Newf creates a classified error from a format string.
func Newf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// Wrap classifies an existing error. A nil err returns nil. If err is
// already classified, its original Kind is preserved so that inner
// boundaries win over outer ones.
func Wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	var fe *Error
	if errors.As(err, &fe) {
		return err
	}
	return &Error{Kind: kind, Err: err}
}

// KindOf extracts the Kind from a classified error. For unclassified errors
// ok is false and callers should treat the error as internal.
func KindOf(err error) (Kind, bool) {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind, true
	}
	return "", false
}

// IsKind reports whether err is classified with the given kind.
func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
