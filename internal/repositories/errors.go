package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Failure taxonomy shared by every repository. Handlers classify with
// errors.Is to pick a status code.
var (
	// ErrNotFound means an update or delete matched zero rows.
	ErrNotFound = errors.New("record not found")
	// ErrConflict means a uniqueness or foreign key rule was broken.
	ErrConflict = errors.New("constraint violation")
	// ErrStoreUnavailable means the statement could not be executed at all.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// classify maps a raw GORM error onto the repository taxonomy. Relies on the
// store handle being opened with TranslateError so driver-specific constraint
// errors arrive as gorm sentinels.
func classify(err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrConflict
	case strings.Contains(err.Error(), "FOREIGN KEY constraint failed"):
		// SQLite reports a foreign key broken by deleting the parent row
		// (SQLITE_CONSTRAINT_TRIGGER) without a translated gorm sentinel.
		return ErrConflict
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	default:
		return ErrStoreUnavailable
	}
}
