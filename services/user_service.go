package services

import (
	"errors"
	"time"

	"nutritrack/config"
	"nutritrack/models"
	"nutritrack/utils"
)

type ProfileInput struct {
	FullName      string  `json:"full_name"`
	Gender        string  `json:"gender"`
	Birthday      string  `json:"birthday"` // sent as YYYY-MM-DD
	Height        float64 `json:"height"`   // cm
	Weight        float64 `json:"weight"`   // kg
	ActivityLevel string  `json:"activity_level"`
	FitnessGoal   string  `json:"fitness_goal"`
	Timezone      string  `json:"timezone"`
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}

	age := 0
	if !user.Birthday.IsZero() {
		age = utils.CalculateAge(user.Birthday)
	}

	profile := map[string]interface{}{
		"id":             user.ID,
		"email":          user.Email,
		"full_name":      user.FullName,
		"gender":         user.Gender,
		"age":            age,
		"height":         user.HeightCm,
		"weight":         user.WeightKg,
		"activity_level": user.ActivityLevel,
		"fitness_goal":   user.FitnessGoal,
		"timezone":       user.Timezone,
		"calorie_target": utils.CalorieTargetForUser(&user),
	}
	if !user.Birthday.IsZero() {
		profile["birthday"] = user.Birthday.Format("2006-01-02")
	}
	if bmi, err := utils.CalculateBMI(user.HeightCm, user.WeightKg); err == nil {
		profile["bmi"] = bmi
		profile["bmi_category"] = utils.BMICategory(bmi)
	}
	return profile, nil
}

func UpdateUserProfile(userID uint, input ProfileInput) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return errors.New("user not found")
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.Gender != "" {
		user.Gender = input.Gender
	}
	if input.Birthday != "" {
		if birthday, err := time.Parse("2006-01-02", input.Birthday); err == nil {
			user.Birthday = birthday
		}
	}
	if input.Height > 0 {
		user.HeightCm = input.Height
	}
	if input.Weight > 0 {
		user.WeightKg = input.Weight
	}
	if utils.ValidActivityLevel(input.ActivityLevel) {
		user.ActivityLevel = input.ActivityLevel
	}
	if input.FitnessGoal != "" {
		user.FitnessGoal = input.FitnessGoal
	}
	if input.Timezone != "" {
		user.Timezone = input.Timezone
	}

	return config.DB.Save(&user).Error
}
