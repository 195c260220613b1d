package dbx

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/eduhub/eduhub/internal/common"
)

// Classify maps a driver error onto the repository error taxonomy:
// sql.ErrNoRows becomes common.ErrorNotFound, unique and foreign key
// violations wrap common.ErrConflict, anything else is wrapped as a db error.
func Classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return common.ErrorNotFound
	case IsUniqueViolation(err), IsForeignKeyViolation(err):
		return fmt.Errorf("%w: %w", common.ErrConflict, err)
	default:
		return fmt.Errorf("db error: %w", err)
	}
}
