package gorm

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/traPtitech/atelier/repository"
	"github.com/traPtitech/atelier/utils/gormutil"
)

func convertError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repository.ErrNotFound
	case gormutil.IsDuplicatedRecordErr(err):
		return repository.ErrAlreadyExists
	case gormutil.IsConnectionError(err):
		return fmt.Errorf("%w: %w", repository.ErrUnavailable, err)
	default:
		return err
	}
}
