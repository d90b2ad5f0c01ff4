package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Eric-317/StudySync/internal/model"
	"github.com/Eric-317/StudySync/internal/repository"
)

// TaskFilter selects one of the list views.
type TaskFilter string

const (
	FilterAll       TaskFilter = "all"
	FilterToday     TaskFilter = "today"
	FilterCompleted TaskFilter = "completed"
)

// TaskService wraps task CRUD and translates (filter, category) pairs
// into the matching repository query.
type TaskService struct {
	taskRepo     *repository.TaskRepository
	categoryRepo *repository.CategoryRepository
	now          func() time.Time
}

func NewTaskService(taskRepo *repository.TaskRepository, categoryRepo *repository.CategoryRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo, categoryRepo: categoryRepo, now: time.Now}
}

// AddTask creates a task owned by userID. An unknown category label is
// created on the fly; an empty one leaves the task unlabeled.
func (s *TaskService) AddTask(ctx context.Context, userID uint, title, category string, due time.Time) (*model.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}

	var categoryID *uint
	if category != "" && !strings.EqualFold(category, CategoryAll) {
		cat, err := s.categoryRepo.GetOrCreate(ctx, category)
		if err != nil {
			return nil, err
		}
		categoryID = &cat.ID
	}

	task := model.Task{
		UserID:     userID,
		CategoryID: categoryID,
		Title:      title,
		DueTime:    model.NewDueTime(due),
	}
	if _, err := s.taskRepo.Insert(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// TasksByUser lists everything the user owns, newest first.
func (s *TaskService) TasksByUser(ctx context.Context, userID uint) ([]model.Task, error) {
	return s.taskRepo.FindByUser(ctx, userID)
}

// GetTasks resolves the filter/category pair:
//
//	all        -> every task, or every task with the label
//	today      -> tasks due between 00:00:00 and 23:59:59 of today
//	completed  -> finished tasks, optionally narrowed by label
//
// Category is "no filter" when empty or the CategoryAll sentinel. A label
// that matches no stored category cannot match any task and yields an
// empty list. Any other filter kind is ErrInvalidFilter.
func (s *TaskService) GetTasks(ctx context.Context, userID uint, filter TaskFilter, category string) ([]model.Task, error) {
	categoryID, filtered, err := s.resolveCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	switch filter {
	case FilterAll:
		if !filtered {
			return s.taskRepo.FindByUser(ctx, userID)
		}
		return s.taskRepo.FindByUserAndCategory(ctx, userID, *categoryID)

	case FilterToday:
		start, end := dayBounds(s.now())
		if !filtered {
			return s.taskRepo.FindByUserAndDueRange(ctx, userID, start, end)
		}
		return s.taskRepo.FindByUserCategoryAndDueRange(ctx, userID, *categoryID, start, end)

	case FilterCompleted:
		if !filtered {
			return s.taskRepo.FindByUserAndStatus(ctx, userID, true)
		}
		return s.taskRepo.FindByUserCategoryAndStatus(ctx, userID, *categoryID, true)

	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFilter, filter)
	}
}

func (s *TaskService) UpdateTask(ctx context.Context, task *model.Task) error {
	return s.taskRepo.Update(ctx, task)
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint) error {
	return s.taskRepo.Delete(ctx, id)
}

func (s *TaskService) CompleteTask(ctx context.Context, id uint) error {
	return s.taskRepo.MarkCompleted(ctx, id)
}

// resolveCategory maps a label to its id. filtered is false for the
// "no filter" sentinels. A label that matches no stored category
// resolves to id 0, which no task row references.
func (s *TaskService) resolveCategory(ctx context.Context, category string) (id *uint, filtered bool, err error) {
	category = strings.TrimSpace(category)
	if category == "" || strings.EqualFold(category, CategoryAll) {
		return nil, false, nil
	}

	cat, err := s.categoryRepo.FindByName(ctx, category)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			var none uint
			return &none, true, nil
		}
		return nil, true, err
	}
	return &cat.ID, true, nil
}

// dayBounds returns 00:00:00 and 23:59:59 of now's date.
func dayBounds(now time.Time) (time.Time, time.Time) {
	y, m, d := now.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	end := time.Date(y, m, d, 23, 59, 59, 0, now.Location())
	return start, end
}
