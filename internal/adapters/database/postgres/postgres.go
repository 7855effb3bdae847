package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/clubmate/backend/internal/domain/common/errorz"
)

// translateError maps gorm errors to domain errors. Requires the gorm
// config to run with TranslateError so driver unique violations surface as
// gorm.ErrDuplicatedKey.
func translateError(err error, notFoundMsg, conflictMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errorz.NotFound(notFoundMsg)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errorz.Conflict(conflictMsg)
	}
	return err
}
