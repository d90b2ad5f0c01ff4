package model

import "time"

// Task is a single item on a user's list. CategoryID is nullable; a task
// without a label is legal. Deleting a category reassigns its tasks first
// (see CategoryRepository), so the reference never dangles.
type Task struct {
	ID         uint    `gorm:"primaryKey"`
	UserID     uint    `gorm:"index;not null"`
	CategoryID *uint   `gorm:"index"`
	Title      string  `gorm:"size:255;not null"`
	DueTime    DueTime `gorm:"type:varchar(19);not null"`
	Completed  bool    `gorm:"default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
