package model

import "time"

// TimeLayout is the format for the time-of-day column of events and for
// task projections on the agenda.
const TimeLayout = "15:04:05"

// DefaultEventType is applied when the caller gives no event type.
const DefaultEventType = "General"

// CalendarEvent is one entry on the calendar. EventTime nil means an
// all-day entry. IsTask marks ephemeral projections of task due times
// built by the agenda; those are never written to the store.
type CalendarEvent struct {
	ID          uint    `gorm:"primaryKey"`
	UserID      uint    `gorm:"index;not null"`
	EventDate   string  `gorm:"size:10;index;not null"` // DateLayout
	EventTime   *string `gorm:"size:8"`                 // TimeLayout, nil = all-day
	Description string  `gorm:"size:255"`
	EventType   string  `gorm:"size:50;default:General"`
	IsTask      bool    `gorm:"-"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (CalendarEvent) TableName() string { return "events" }

// AllDay reports whether the event has no time-of-day component.
func (e CalendarEvent) AllDay() bool { return e.EventTime == nil }
