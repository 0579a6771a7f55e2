package models

import (
	"time"

	"gorm.io/gorm"
)

// One logged meal (breakfast/lunch/…). Meals are immutable once written;
// the daily totals table is reconciled against them, never the other way.
type Meal struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null"` // FK → users.id
	MealType string    `gorm:"size:16;not null"`
	AteAt    time.Time // timestamp of the meal

	// DayKey is the civil date (YYYY-MM-DD) AteAt fell on in the timezone
	// the logging request carried. Stored for querying convenience only —
	// reconciliation re-derives the day from AteAt and never trusts this.
	DayKey string `gorm:"index;size:10"`

	TotalCalories float64
	PhotoURL      string
	Items         []FoodItem
}
