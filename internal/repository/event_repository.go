package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Eric-317/StudySync/internal/model"
)

// EventRepository handles persisted calendar entries. Task projections
// never pass through here.
type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Insert writes the event and returns it with the generated id. The
// IsTask flag is not a column and is dropped on the way in.
func (r *EventRepository) Insert(ctx context.Context, event *model.CalendarEvent) (*model.CalendarEvent, error) {
	event.IsTask = false
	if event.EventType == "" {
		event.EventType = model.DefaultEventType
	}
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

// FindByDate returns every event on the date regardless of owner; the
// AdminScope argument marks the deliberate isolation bypass. Ordered by
// time ascending with all-day (NULL) entries first.
func (r *EventRepository) FindByDate(ctx context.Context, _ AdminScope, date string) ([]model.CalendarEvent, error) {
	var events []model.CalendarEvent
	if err := r.db.WithContext(ctx).
		Where("event_date = ?", date).
		Order("event_time").
		Find(&events).Error; err != nil {
		return nil, fmt.Errorf("find events on %s: %w", date, err)
	}
	return events, nil
}

// FindByDateAndUser returns one user's events on the date, time ascending
// with all-day entries first.
func (r *EventRepository) FindByDateAndUser(ctx context.Context, date string, userID uint) ([]model.CalendarEvent, error) {
	var events []model.CalendarEvent
	if err := r.db.WithContext(ctx).
		Where("event_date = ? AND user_id = ?", date, userID).
		Order("event_time").
		Find(&events).Error; err != nil {
		return nil, fmt.Errorf("find events on %s for user %d: %w", date, userID, err)
	}
	return events, nil
}

// Update overwrites the mutable columns of the event row.
func (r *EventRepository) Update(ctx context.Context, event *model.CalendarEvent) error {
	res := r.db.WithContext(ctx).Model(event).
		Select("event_date", "event_time", "description", "event_type", "user_id").
		Updates(event)
	if res.Error != nil {
		return fmt.Errorf("update event %d: %w", event.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update event %d: %w", event.ID, ErrNotFound)
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.CalendarEvent{}, id).Error; err != nil {
		return fmt.Errorf("delete event %d: %w", id, err)
	}
	return nil
}
