package errs

import "errors"

// Domain outcome sentinels. Services wrap them with context via
// fmt.Errorf("...: %w", ...), controllers map them to status codes
// with errors.Is.
var (
	// ErrNotFound means the entity does not exist within the caller's
	// scope. A record owned by another account is indistinguishable
	// from a missing one.
	ErrNotFound = errors.New("not found")

	// ErrPreconditionFailed means a referenced parent or foreign entity
	// is missing (account before workspace, user before membership).
	ErrPreconditionFailed = errors.New("precondition failed")

	// ErrConflict means a uniqueness rule was violated, e.g. a duplicate
	// workspace name under the same account.
	ErrConflict = errors.New("conflict")
)
