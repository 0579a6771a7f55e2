package utils

import (
	"math"
	"time"

	"nutritrack/models"
)

// activityMultipliers maps activity level strings to their TDEE multiplier.
// Single source of truth for valid activity levels — also used for input
// validation when the profile is updated.
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

const (
	// DefaultCalorieTarget is returned when no usable profile exists.
	DefaultCalorieTarget = 2000

	defaultActivityMultiplier = 1.55 // assume "moderate" when unset

	// Goal adjustments applied after the activity multiplier.
	// Symmetric −500/+500 kcal; keep these two in sync with the docs.
	loseWeightAdjustment = -500
	gainWeightAdjustment = 500
)

// DefaultAge is assumed when the profile has no birthday. Exposed as a
// variable so deployments can tune the assumption instead of it being
// buried in the formula.
var DefaultAge = 25

// ValidActivityLevel reports whether s is a recognized activity level.
func ValidActivityLevel(s string) bool {
	_, ok := activityMultipliers[s]
	return ok
}

// CalorieTarget computes a daily calorie target from profile attributes
// via Harris-Benedict BMR × activity multiplier, adjusted for the fitness
// goal and rounded to the nearest integer.
func CalorieTarget(gender string, weightKg, heightCm float64, age int, activityLevel, fitnessGoal string) int {
	var bmr float64
	if gender == "male" {
		bmr = 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*float64(age)
	} else {
		bmr = 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*float64(age)
	}

	mult, ok := activityMultipliers[activityLevel]
	if !ok {
		mult = defaultActivityMultiplier
	}
	target := bmr * mult

	switch fitnessGoal {
	case "lose_weight":
		target += loseWeightAdjustment
	case "gain_weight", "build_muscle":
		target += gainWeightAdjustment
	}

	return int(math.Round(target))
}

// CalorieTargetForUser derives the target from a stored user record,
// degrading to documented defaults instead of failing: no usable profile
// → DefaultCalorieTarget, no birthday → DefaultAge.
func CalorieTargetForUser(u *models.User) int {
	if !u.HasProfile() {
		return DefaultCalorieTarget
	}
	age := DefaultAge
	if !u.Birthday.IsZero() {
		age = CalculateAge(u.Birthday)
	}
	return CalorieTarget(u.Gender, u.WeightKg, u.HeightCm, age, u.ActivityLevel, u.FitnessGoal)
}

// CalculateAge returns full years elapsed since birthday.
func CalculateAge(birthday time.Time) int {
	now := time.Now()
	age := now.Year() - birthday.Year()
	if now.Before(birthday.AddDate(age, 0, 0)) {
		age--
	}
	return age
}
