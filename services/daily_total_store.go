package services

import (
	"errors"
	"time"

	"nutritrack/models"

	"gorm.io/gorm"
)

// DailyTotalStore persists the per-(user, day) calorie cache. The unique
// composite index on (user_id, day_key) plus the Assign/FirstOrCreate
// upsert means concurrent writers for the same day collapse onto one row.
type DailyTotalStore struct {
	db *gorm.DB
}

func NewDailyTotalStore(db *gorm.DB) *DailyTotalStore {
	return &DailyTotalStore{db: db}
}

// FindByUserAndDayKey returns (nil, nil) when no row exists yet.
func (s *DailyTotalStore) FindByUserAndDayKey(userID uint, dayKey string) (*models.DailyTotal, error) {
	var total models.DailyTotal
	err := s.db.Where("user_id = ? AND day_key = ?", userID, dayKey).First(&total).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &total, nil
}

// Upsert writes the recomputed total for (userID, dayKey). Because both
// sides of a racing upsert recompute the same value from the meals table,
// last-writer-wins is correct here.
func (s *DailyTotalStore) Upsert(userID uint, dayKey string, totalCalories float64) error {
	row := models.DailyTotal{UserID: userID, DayKey: dayKey}
	// Assign with a map, not the struct: a recomputed total of 0 is a
	// legitimate value and a zero struct field would be skipped.
	return s.db.
		Where("user_id = ? AND day_key = ?", userID, dayKey).
		Assign(map[string]interface{}{
			"total_calories": totalCalories,
			"last_updated":   time.Now(),
		}).
		FirstOrCreate(&row).Error
}

func (s *DailyTotalStore) FindAllByUser(userID uint) ([]models.DailyTotal, error) {
	var totals []models.DailyTotal
	err := s.db.
		Where("user_id = ?", userID).
		Order("day_key DESC").
		Find(&totals).Error
	return totals, err
}
