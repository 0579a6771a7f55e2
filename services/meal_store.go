package services

import (
	"nutritrack/models"

	"gorm.io/gorm"
)

// MealStore wraps meal persistence. Meals are append-only: there is no
// update or delete path, which is what makes them safe to treat as the
// source of truth during reconciliation.
type MealStore struct {
	db *gorm.DB
}

func NewMealStore(db *gorm.DB) *MealStore {
	return &MealStore{db: db}
}

func (s *MealStore) Insert(meal *models.Meal) error {
	return s.db.Create(meal).Error
}

func (s *MealStore) FindAllByUser(userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Preload("Items").
		Where("user_id = ?", userID).
		Order("ate_at DESC").
		Find(&meals).Error
	return meals, err
}

// FindByUserAndDayKey filters on the persisted day key. Fine for display
// lists; reconciliation deliberately does NOT use this query because stored
// day keys may have been derived under a different timezone than the
// current request (see ReconcileService).
func (s *MealStore) FindByUserAndDayKey(userID uint, dayKey string) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Preload("Items").
		Where("user_id = ? AND day_key = ?", userID, dayKey).
		Order("ate_at ASC").
		Find(&meals).Error
	return meals, err
}

func (s *MealStore) ListRecent(userID uint, limit int) ([]models.Meal, error) {
	if limit <= 0 {
		limit = 10
	}
	var meals []models.Meal
	err := s.db.
		Preload("Items").
		Where("user_id = ?", userID).
		Order("ate_at DESC").
		Limit(limit).
		Find(&meals).Error
	return meals, err
}
