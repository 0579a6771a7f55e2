package models

import "gorm.io/gorm"

// StepLog holds one step-count entry per (user, day), synced from the
// phone's health app. Upserted by day like DailyTotal.
type StepLog struct {
	gorm.Model
	UserID uint   `gorm:"not null;uniqueIndex:idx_step_logs_user_day"`
	DayKey string `gorm:"size:10;not null;uniqueIndex:idx_step_logs_user_day"`
	Steps  int
}
