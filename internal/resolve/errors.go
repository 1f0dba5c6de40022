package resolve

import "errors"

var (
	// ErrPinnedNotFound reports that an explicitly pinned version is not installed.
	ErrPinnedNotFound = errors.New("pinned version not installed")
	// ErrUnresolved reports that no source produced a usable version.
	ErrUnresolved = errors.New("no usable version")
)

// resolveError carries a user-facing message while matching its sentinel with errors.Is.
type resolveError struct {
	kind error
	msg  string
}

func (e *resolveError) Error() string {
	return e.msg
}

func (e *resolveError) Unwrap() error {
	return e.kind
}
