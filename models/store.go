package models

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"drillhub/api/errs"
)

// Persist creates a record and folds the store's rejections (uniqueness,
// foreign key, range check) into the single constraint sentinel, keeping
// the original message for the caller.
func Persist(db *gorm.DB, value any) error {
	if err := db.Create(value).Error; err != nil {
		return translate(err)
	}
	return nil
}

// Update applies column updates to a record, with the same error folding
// as Persist.
func Update(db *gorm.DB, value any, columns map[string]any) error {
	if err := db.Model(value).Updates(columns).Error; err != nil {
		return translate(err)
	}
	return nil
}

func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("duplicate value: %w", errs.ErrConstraint)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("unknown reference: %w", errs.ErrConstraint)
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return fmt.Errorf("value out of range: %w", errs.ErrConstraint)
	default:
		return fmt.Errorf("%v: %w", err, errs.ErrConstraint)
	}
}
