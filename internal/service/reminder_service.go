package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Eric-317/StudySync/internal/model"
	"github.com/Eric-317/StudySync/internal/repository"
)

// Notifier delivers a digest to one user. The daemon wires a log-backed
// implementation; a UI or mail transport can slot in without touching the
// service.
type Notifier interface {
	Notify(ctx context.Context, user model.User, message string) error
}

// ReminderService builds human-readable daily digests: today's agenda
// plus open tasks that are overdue or due today.
type ReminderService struct {
	userRepo *repository.UserRepository
	taskRepo *repository.TaskRepository
	calendar *CalendarService
	notifier Notifier
}

func NewReminderService(userRepo *repository.UserRepository, taskRepo *repository.TaskRepository, calendar *CalendarService, notifier Notifier) *ReminderService {
	return &ReminderService{userRepo: userRepo, taskRepo: taskRepo, calendar: calendar, notifier: notifier}
}

// SendDailyDigests builds and delivers a digest for every account. One
// failing delivery does not stop the fan-out; the first error is
// reported after the loop.
func (s *ReminderService) SendDailyDigests(ctx context.Context, now time.Time) error {
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		return err
	}

	var firstErr error
	for _, user := range users {
		digest, err := s.DailyDigest(ctx, user, now)
		if err == nil {
			err = s.notifier.Notify(ctx, user, digest)
		}
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("digest for %s: %w", user.Email, err)
		}
	}
	return firstErr
}

// DailyDigest renders one user's digest for the date of now.
func (s *ReminderService) DailyDigest(ctx context.Context, user model.User, now time.Time) (string, error) {
	date := now.Format(model.DateLayout)

	agenda, err := s.calendar.DayAgenda(ctx, user.ID, date)
	if err != nil {
		return "", err
	}

	open, err := s.taskRepo.FindByUserAndStatus(ctx, user.ID, false)
	if err != nil {
		return "", err
	}

	var overdue []model.Task
	for _, t := range open {
		if t.DueTime.Before(now) && t.DueTime.Format(model.DateLayout) != date {
			overdue = append(overdue, t)
		}
	}
	sort.SliceStable(overdue, func(i, j int) bool {
		return overdue[i].DueTime.Before(overdue[j].DueTime.Time)
	})

	var b strings.Builder
	fmt.Fprintf(&b, "StudySync digest for %s\n", date)

	b.WriteString("\nToday:\n")
	if len(agenda) == 0 {
		b.WriteString("  nothing scheduled\n")
	}
	for _, entry := range agenda {
		b.WriteString("  " + formatAgendaEntry(entry) + "\n")
	}

	if len(overdue) > 0 {
		b.WriteString("\nOverdue:\n")
		for _, t := range overdue {
			fmt.Fprintf(&b, "  %s (due %s)\n", t.Title, t.DueTime.String())
		}
	}

	return strings.TrimRight(b.String(), "\n"), nil
}

func formatAgendaEntry(e model.CalendarEvent) string {
	when := "all day"
	if e.EventTime != nil {
		when = *e.EventTime
	}
	kind := "event"
	if e.IsTask {
		kind = "task"
	}
	return fmt.Sprintf("%s  %s (%s)", when, e.Description, kind)
}
