package services

import (
	"errors"
	"math"
	"time"

	"nutritrack/models"
	"nutritrack/utils"

	"gorm.io/gorm"
)

var ErrBadDate = errors.New("invalid date format, expected YYYY-MM-DD")

type DailySummary struct {
	Date               string  `json:"date"`
	TotalCalories      float64 `json:"totalCalories"`
	CalorieTarget      int     `json:"calorieTarget"`
	Remaining          float64 `json:"remaining"`
	PercentageConsumed int     `json:"percentageConsumed"`
	MealCount          int     `json:"mealCount"`
}

// SummaryService is the read path: reconcile the requested day and combine
// the total with the user's calorie target.
type SummaryService struct {
	db  *gorm.DB
	rec *ReconcileService
}

func NewSummaryService(db *gorm.DB) *SummaryService {
	return &SummaryService{
		db:  db,
		rec: NewReconcileService(db),
	}
}

// Summarize builds the daily summary for dateOverride (YYYY-MM-DD) when
// given, else for "today" in the request's timezone. Remaining may go
// negative once the user eats past the target.
func (s *SummaryService) Summarize(userID uint, timezone, dateOverride string) (*DailySummary, error) {
	dayKey := utils.ResolveDayKey(time.Now(), timezone)
	if dateOverride != "" {
		if _, err := time.Parse("2006-01-02", dateOverride); err != nil {
			return nil, ErrBadDate
		}
		dayKey = dateOverride
	}

	total, mealCount, err := s.rec.Reconcile(userID, dayKey, timezone)
	if err != nil {
		return nil, err
	}

	target := utils.DefaultCalorieTarget
	var user models.User
	if err := s.db.First(&user, userID).Error; err == nil {
		target = utils.CalorieTargetForUser(&user)
	}

	pct := 0
	if target > 0 {
		pct = int(math.Round(100 * total / float64(target)))
	}

	return &DailySummary{
		Date:               dayKey,
		TotalCalories:      total,
		CalorieTarget:      target,
		Remaining:          float64(target) - total,
		PercentageConsumed: pct,
		MealCount:          mealCount,
	}, nil
}

// MealsForDay exposes the day's meals for the /meals/daily endpoint.
func (s *SummaryService) MealsForDay(userID uint, timezone, dateOverride string) ([]models.Meal, error) {
	dayKey := utils.ResolveDayKey(time.Now(), timezone)
	if dateOverride != "" {
		if _, err := time.Parse("2006-01-02", dateOverride); err != nil {
			return nil, ErrBadDate
		}
		dayKey = dateOverride
	}
	return s.rec.MealsForDay(userID, dayKey, timezone)
}
