package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	FullName string

	// Profile attributes used by the calorie target calculation.
	Gender        string    `gorm:"size:16"` // "male" | "female" | "other"
	HeightCm      float64
	WeightKg      float64
	Birthday      time.Time
	ActivityLevel string `gorm:"size:16"` // sedentary|light|moderate|active|very_active
	FitnessGoal   string `gorm:"size:16"` // lose_weight|maintain|gain_weight|build_muscle

	// Preferred IANA timezone, used when a request doesn't carry one.
	Timezone string `gorm:"size:64"`
}

// HasProfile reports whether enough of the profile is filled in to
// compute a personal calorie target instead of the 2000 kcal default.
func (u *User) HasProfile() bool {
	return u != nil && u.HeightCm > 0 && u.WeightKg > 0
}
