package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Eric-317/StudySync/internal/model"
)

// CategoryRepository manages the shared task label set.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// List returns every category in creation order.
func (r *CategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&category).Error; err != nil {
		return nil, fmt.Errorf("find category %q: %w", name, translate(err))
	}
	return &category, nil
}

// Add inserts a category with insert-or-ignore semantics: adding an
// existing name is a no-op and leaves a single row.
func (r *CategoryRepository) Add(ctx context.Context, name string) error {
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.Category{Name: name})
	if res.Error != nil {
		return fmt.Errorf("add category %q: %w", name, res.Error)
	}
	return nil
}

// GetOrCreate resolves a name to a category, creating it when absent.
func (r *CategoryRepository) GetOrCreate(ctx context.Context, name string) (*model.Category, error) {
	var category model.Category
	db := r.db.WithContext(ctx)
	err := db.Where("name = ?", name).First(&category).Error
	switch {
	case err == nil:
		return &category, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		category = model.Category{Name: name}
		if err := db.Create(&category).Error; err != nil {
			return nil, fmt.Errorf("create category %q: %w", name, translate(err))
		}
		return &category, nil
	default:
		return nil, fmt.Errorf("find category %q: %w", name, err)
	}
}

// Rename changes oldName to newName. It returns false without mutating
// anything when newName is already taken or when no row matches oldName.
func (r *CategoryRepository) Rename(ctx context.Context, oldName, newName string) (bool, error) {
	db := r.db.WithContext(ctx)

	var taken int64
	if err := db.Model(&model.Category{}).Where("name = ?", newName).Count(&taken).Error; err != nil {
		return false, fmt.Errorf("check category %q: %w", newName, err)
	}
	if taken > 0 {
		return false, nil
	}

	res := db.Model(&model.Category{}).Where("name = ?", oldName).Update("name", newName)
	if res.Error != nil {
		return false, fmt.Errorf("rename category %q: %w", oldName, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// DeleteAndReassign removes a category after reassigning every task that
// references it, all inside one transaction so the delete cannot commit
// with dangling references. reassignTo empty moves the tasks to no
// category; otherwise they move to the named category, which must exist.
func (r *CategoryRepository) DeleteAndReassign(ctx context.Context, name, reassignTo string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var category model.Category
		if err := tx.Where("name = ?", name).First(&category).Error; err != nil {
			return fmt.Errorf("find category %q: %w", name, translate(err))
		}

		var target *uint
		if reassignTo != "" {
			var to model.Category
			if err := tx.Where("name = ?", reassignTo).First(&to).Error; err != nil {
				return fmt.Errorf("find category %q: %w", reassignTo, translate(err))
			}
			target = &to.ID
		}

		if err := tx.Model(&model.Task{}).
			Where("category_id = ?", category.ID).
			Update("category_id", target).Error; err != nil {
			return fmt.Errorf("reassign tasks of %q: %w", name, err)
		}

		if err := tx.Delete(&category).Error; err != nil {
			return fmt.Errorf("delete category %q: %w", name, err)
		}
		return nil
	})
}
