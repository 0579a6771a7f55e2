package models

import "gorm.io/gorm"

// FoodItem is one entry inside a meal, with its nutrition snapshot.
type FoodItem struct {
	gorm.Model
	MealID uint `gorm:"index;not null"`

	Name        string `gorm:"not null"`
	Calories    float64
	ServingSize string `gorm:"size:32"` // e.g. "100g"
	MealType    string `gorm:"size:16"`
	IsHealthy   bool
	Protein     float64
	Carbs       float64
	Fat         float64
	Fiber       float64
}
