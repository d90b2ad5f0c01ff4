package model

import "time"

// Category is a task label. Names are unique across the whole store;
// the seeded defaults live in the repository package.
type Category struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:50;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Tasks []Task `gorm:"foreignKey:CategoryID"`
}
