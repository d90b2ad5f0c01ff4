package model

import "time"

// DateLayout is the format for date-only values (birth dates, calendar
// event dates).
const DateLayout = "2006-01-02"

// User is a StudySync account. Email doubles as the login identity.
// The password is stored and compared verbatim, as the desktop client
// expects.
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex;size:255;not null"`
	Password  string `gorm:"size:255;not null"`
	BirthDate string `gorm:"size:10;not null"` // DateLayout
	CreatedAt time.Time
	UpdatedAt time.Time

	Tasks  []Task          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Events []CalendarEvent `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
