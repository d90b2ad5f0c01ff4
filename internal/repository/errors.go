package repository

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors shared by all repositories. Store failures always
// propagate to the caller; an empty result never hides a broken backend.
var (
	// ErrNotFound reports that no row matched the given id, email or name.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate reports a uniqueness conflict (email, category name).
	ErrDuplicate = errors.New("already exists")
	// ErrMalformedDueTime reports a stored due_time that does not parse.
	// Only surfaced under DueTimeReject; see DueTimePolicy.
	ErrMalformedDueTime = errors.New("malformed due time")
)

// AdminScope marks calls that intentionally read across every account.
// Scoped finders are the norm; requiring this token keeps an owner
// isolation bypass from being typed by accident.
type AdminScope struct{}

// translate maps gorm's errors onto the package sentinels.
func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}
