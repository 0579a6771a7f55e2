package models

import (
	"time"

	"gorm.io/gorm"
)

// DailyTotal is a denormalized running calorie total per (user, day).
// It is a cache over the meals table: whenever it disagrees with the
// sum of the day's meals, the meals win and this row is rewritten.
type DailyTotal struct {
	gorm.Model
	UserID uint   `gorm:"not null;uniqueIndex:idx_daily_totals_user_day"`
	DayKey string `gorm:"size:10;not null;uniqueIndex:idx_daily_totals_user_day"`

	TotalCalories float64
	LastUpdated   time.Time
}
