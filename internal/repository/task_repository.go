package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/Eric-317/StudySync/internal/model"
)

// DueTimePolicy controls what finders do with rows whose stored due_time
// text does not parse.
type DueTimePolicy int

const (
	// DueTimeSubstituteNow keeps the row and substitutes the current
	// wall-clock time, logging a warning. This is the behavior the
	// desktop client shipped with.
	DueTimeSubstituteNow DueTimePolicy = iota
	// DueTimeReject fails the read with ErrMalformedDueTime instead of
	// silently inventing a deadline.
	DueTimeReject
)

// TaskRepository handles task rows, including the filtered query variants
// behind the list views.
type TaskRepository struct {
	db     *gorm.DB
	log    zerolog.Logger
	policy DueTimePolicy
	now    func() time.Time
}

func NewTaskRepository(db *gorm.DB, log zerolog.Logger, policy DueTimePolicy) *TaskRepository {
	return &TaskRepository{db: db, log: log, policy: policy, now: time.Now}
}

// Insert writes the task and fills in the generated id.
func (r *TaskRepository) Insert(ctx context.Context, task *model.Task) (uint, error) {
	res := r.db.WithContext(ctx).Create(task)
	if res.Error != nil {
		return 0, fmt.Errorf("create task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, fmt.Errorf("create task: no row inserted")
	}
	return task.ID, nil
}

// FindAll returns every task regardless of owner. The AdminScope argument
// marks the deliberate isolation bypass.
func (r *TaskRepository) FindAll(ctx context.Context, _ AdminScope) ([]model.Task, error) {
	return r.find(ctx, r.db.WithContext(ctx))
}

func (r *TaskRepository) FindByUser(ctx context.Context, userID uint) ([]model.Task, error) {
	return r.find(ctx, r.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (r *TaskRepository) FindByUserAndCategory(ctx context.Context, userID, categoryID uint) ([]model.Task, error) {
	return r.find(ctx, r.db.WithContext(ctx).
		Where("user_id = ? AND category_id = ?", userID, categoryID))
}

// FindByUserAndDueRange returns tasks due inside [start, end], both ends
// inclusive. The bounds compare as formatted text, which is total for the
// fixed-width layout.
func (r *TaskRepository) FindByUserAndDueRange(ctx context.Context, userID uint, start, end time.Time) ([]model.Task, error) {
	return r.find(ctx, r.db.WithContext(ctx).
		Where("user_id = ? AND due_time >= ? AND due_time <= ?",
			userID, model.NewDueTime(start), model.NewDueTime(end)))
}

func (r *TaskRepository) FindByUserCategoryAndDueRange(ctx context.Context, userID, categoryID uint, start, end time.Time) ([]model.Task, error) {
	return r.find(ctx, r.db.WithContext(ctx).
		Where("user_id = ? AND category_id = ? AND due_time >= ? AND due_time <= ?",
			userID, categoryID, model.NewDueTime(start), model.NewDueTime(end)))
}

func (r *TaskRepository) FindByUserAndStatus(ctx context.Context, userID uint, completed bool) ([]model.Task, error) {
	return r.find(ctx, r.db.WithContext(ctx).
		Where("user_id = ? AND completed = ?", userID, completed))
}

func (r *TaskRepository) FindByUserCategoryAndStatus(ctx context.Context, userID, categoryID uint, completed bool) ([]model.Task, error) {
	return r.find(ctx, r.db.WithContext(ctx).
		Where("user_id = ? AND category_id = ? AND completed = ?", userID, categoryID, completed))
}

// Update overwrites the full row by id, owner included.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	res := r.db.WithContext(ctx).Model(task).Select("title", "due_time", "category_id", "completed", "user_id").Updates(task)
	if res.Error != nil {
		return fmt.Errorf("update task %d: %w", task.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update task %d: %w", task.ID, ErrNotFound)
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.Task{}, id).Error; err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	return nil
}

// MarkCompleted sets the completed flag unconditionally.
func (r *TaskRepository) MarkCompleted(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Model(&model.Task{}).Where("id = ?", id).Update("completed", true)
	if res.Error != nil {
		return fmt.Errorf("complete task %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("complete task %d: %w", id, ErrNotFound)
	}
	return nil
}

// find runs the prepared query newest-id first and applies the due-time
// policy to the scanned rows.
func (r *TaskRepository) find(ctx context.Context, query *gorm.DB) ([]model.Task, error) {
	var tasks []model.Task
	if err := query.Order("id DESC").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("find tasks: %w", err)
	}
	return r.applyDueTimePolicy(tasks)
}

func (r *TaskRepository) applyDueTimePolicy(tasks []model.Task) ([]model.Task, error) {
	for i := range tasks {
		raw, bad := tasks[i].DueTime.Malformed()
		if !bad {
			continue
		}
		switch r.policy {
		case DueTimeReject:
			return nil, fmt.Errorf("task %d: %w: %q", tasks[i].ID, ErrMalformedDueTime, raw)
		default:
			r.log.Warn().
				Uint("task_id", tasks[i].ID).
				Str("due_time", raw).
				Msg("unparseable due time, substituting current time")
			tasks[i].DueTime = model.NewDueTime(r.now())
		}
	}
	return tasks, nil
}
