package services

import (
	"errors"
	"time"

	"nutritrack/models"
	"nutritrack/utils"

	"gorm.io/gorm"
)

var ErrNegativeSteps = errors.New("steps must be non-negative")

// StepService syncs step counts from the phone's health app, one row per
// (user, day). Persistent on purpose: an in-process map would silently
// lose everything on restart.
type StepService struct {
	db *gorm.DB
}

func NewStepService(db *gorm.DB) *StepService {
	return &StepService{db: db}
}

// UpsertSteps records the step count for "today" in the given timezone,
// replacing any earlier sync for the same day.
func (s *StepService) UpsertSteps(userID uint, timezone string, steps int) (*models.StepLog, error) {
	if steps < 0 {
		return nil, ErrNegativeSteps
	}
	dayKey := utils.ResolveDayKey(time.Now(), timezone)

	log := models.StepLog{
		UserID: userID,
		DayKey: dayKey,
		Steps:  steps,
	}
	err := s.db.
		Where("user_id = ? AND day_key = ?", userID, dayKey).
		Assign(log).
		FirstOrCreate(&log).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// GetSteps returns the count for dateOverride when given, else today.
// A day with no sync reads as zero.
func (s *StepService) GetSteps(userID uint, timezone, dateOverride string) (int, string, error) {
	dayKey := utils.ResolveDayKey(time.Now(), timezone)
	if dateOverride != "" {
		if _, err := time.Parse("2006-01-02", dateOverride); err != nil {
			return 0, "", ErrBadDate
		}
		dayKey = dateOverride
	}

	var log models.StepLog
	err := s.db.Where("user_id = ? AND day_key = ?", userID, dayKey).First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, dayKey, nil
		}
		return 0, "", err
	}
	return log.Steps, dayKey, nil
}
