package service

import (
	"context"
	"sort"
	"time"

	"github.com/Eric-317/StudySync/internal/model"
	"github.com/Eric-317/StudySync/internal/repository"
)

// CalendarService handles persisted events and builds the merged agenda
// the calendar view renders: events plus ephemeral projections of task
// due times.
type CalendarService struct {
	eventRepo *repository.EventRepository
	taskRepo  *repository.TaskRepository
}

func NewCalendarService(eventRepo *repository.EventRepository, taskRepo *repository.TaskRepository) *CalendarService {
	return &CalendarService{eventRepo: eventRepo, taskRepo: taskRepo}
}

// AddEvent persists an event for the user on the given date. timeOfDay
// nil means all-day.
func (s *CalendarService) AddEvent(ctx context.Context, userID uint, date string, timeOfDay *string, description, eventType string) (*model.CalendarEvent, error) {
	event := model.CalendarEvent{
		UserID:      userID,
		EventDate:   date,
		EventTime:   timeOfDay,
		Description: description,
		EventType:   eventType,
	}
	return s.eventRepo.Insert(ctx, &event)
}

// EventsByDate returns the user's persisted events for one date, all-day
// first then ascending time.
func (s *CalendarService) EventsByDate(ctx context.Context, userID uint, date string) ([]model.CalendarEvent, error) {
	return s.eventRepo.FindByDateAndUser(ctx, date, userID)
}

func (s *CalendarService) UpdateEvent(ctx context.Context, event *model.CalendarEvent) error {
	return s.eventRepo.Update(ctx, event)
}

func (s *CalendarService) DeleteEvent(ctx context.Context, id uint) error {
	return s.eventRepo.Delete(ctx, id)
}

// DayAgenda merges the user's persisted events with projections of tasks
// due on the date, ordered all-day first, then ascending time; ties keep
// insertion order, events before projections.
func (s *CalendarService) DayAgenda(ctx context.Context, userID uint, date string) ([]model.CalendarEvent, error) {
	events, err := s.eventRepo.FindByDateAndUser(ctx, date, userID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, t := range tasks {
		if p, ok := projectTask(t); ok && p.EventDate == date {
			events = append(events, p)
		}
	}

	sortAgenda(events)
	return events, nil
}

// MonthAgenda builds the full agenda for a visible month, keyed by date
// (model.DateLayout). The view recomputes this on every navigation; there
// is no cache to invalidate.
func (s *CalendarService) MonthAgenda(ctx context.Context, userID uint, year int, month time.Month) (map[string][]model.CalendarEvent, error) {
	agenda := make(map[string][]model.CalendarEvent)

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	for day := first; day.Month() == month; day = day.AddDate(0, 0, 1) {
		date := day.Format(model.DateLayout)
		events, err := s.eventRepo.FindByDateAndUser(ctx, date, userID)
		if err != nil {
			return nil, err
		}
		if len(events) > 0 {
			agenda[date] = events
		}
	}

	tasks, err := s.taskRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, t := range tasks {
		p, ok := projectTask(t)
		if !ok {
			continue
		}
		if d, err := time.ParseInLocation(model.DateLayout, p.EventDate, time.Local); err != nil ||
			d.Year() != year || d.Month() != month {
			continue
		}
		agenda[p.EventDate] = append(agenda[p.EventDate], p)
	}

	for _, events := range agenda {
		sortAgenda(events)
	}
	return agenda, nil
}

// projectTask turns a task with a due time into an ephemeral agenda
// entry. The projection carries the title as description and is marked
// IsTask so the view can style it; it is never persisted.
func projectTask(t model.Task) (model.CalendarEvent, bool) {
	if t.DueTime.IsZero() {
		return model.CalendarEvent{}, false
	}
	timeOfDay := t.DueTime.Format(model.TimeLayout)
	return model.CalendarEvent{
		UserID:      t.UserID,
		EventDate:   t.DueTime.Format(model.DateLayout),
		EventTime:   &timeOfDay,
		Description: t.Title,
		IsTask:      true,
	}, true
}

// sortAgenda orders one day's entries: all-day first, then ascending
// time-of-day. The stable sort keeps events ahead of task projections on
// equal times because they are appended in that order.
func sortAgenda(events []model.CalendarEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i].EventTime, events[j].EventTime
		switch {
		case a == nil && b == nil:
			return false
		case a == nil:
			return true
		case b == nil:
			return false
		default:
			return *a < *b
		}
	})
}
