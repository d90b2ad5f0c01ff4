package service

import (
	"context"

	"github.com/Eric-317/StudySync/internal/model"
	"github.com/Eric-317/StudySync/internal/repository"
)

// CategoryAll is the sentinel label the list views use for "no category
// filter". It is never stored.
const CategoryAll = "All Categories"

// CategoryService provides the label set behind the task filter combo.
type CategoryService struct {
	repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// ListNames returns the category names in creation order, optionally with
// the CategoryAll sentinel prepended for filter dropdowns.
func (s *CategoryService) ListNames(ctx context.Context, includeAll bool) ([]string, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(categories)+1)
	if includeAll {
		names = append(names, CategoryAll)
	}
	for _, c := range categories {
		names = append(names, c.Name)
	}
	return names, nil
}

func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.repo.List(ctx)
}

// Add inserts a label; adding an existing name is a silent no-op.
func (s *CategoryService) Add(ctx context.Context, name string) error {
	return s.repo.Add(ctx, name)
}

// Rename reports false when the new name is taken or the old one does not
// exist.
func (s *CategoryService) Rename(ctx context.Context, oldName, newName string) (bool, error) {
	return s.repo.Rename(ctx, oldName, newName)
}

// Delete removes a label after moving its tasks to reassignTo (empty
// means no category). The reassignment and the delete commit together.
func (s *CategoryService) Delete(ctx context.Context, name, reassignTo string) error {
	return s.repo.DeleteAndReassign(ctx, name, reassignTo)
}
