package services

import (
	"nutritrack/models"
	"nutritrack/utils"

	"gorm.io/gorm"
)

// ReconcileService recomputes the authoritative calorie total for one
// (user, day) from the meals table and repairs the cached DailyTotal row
// if it disagrees. Meals are the source of truth; the cached row is only
// ever corrected toward them.
type ReconcileService struct {
	meals  *MealStore
	totals *DailyTotalStore
}

func NewReconcileService(db *gorm.DB) *ReconcileService {
	return &ReconcileService{
		meals:  NewMealStore(db),
		totals: NewDailyTotalStore(db),
	}
}

// Reconcile returns the reconciled total plus the number of meals that
// landed on dayKey under the given timezone.
//
// The day each meal belongs to is re-derived here from its stored AteAt
// timestamp using the request's timezone. Persisted day keys are ignored:
// they were computed with whatever timezone the logging request carried,
// which need not match the timezone of the request now asking. Re-deriving
// keeps the answer consistent with how the caller currently slices days.
//
// Repeated calls with no intervening meal writes converge after the first
// call and perform no further store writes. Racing calls both recompute
// the same value, so the upsert's last writer winning is harmless.
func (s *ReconcileService) Reconcile(userID uint, dayKey, timezone string) (float64, int, error) {
	meals, err := s.meals.FindAllByUser(userID)
	if err != nil {
		return 0, 0, err
	}

	var total float64
	count := 0
	for _, m := range meals {
		if utils.ResolveDayKey(m.AteAt, timezone) != dayKey {
			continue
		}
		total += m.TotalCalories
		count++
	}

	cached, err := s.totals.FindByUserAndDayKey(userID, dayKey)
	if err != nil {
		return 0, 0, err
	}

	switch {
	case cached == nil && total == 0:
		// Nothing eaten, nothing cached: don't create empty rows for
		// every day someone looks at.
	case cached == nil:
		if err := s.totals.Upsert(userID, dayKey, total); err != nil {
			return 0, 0, err
		}
	case cached.TotalCalories != total:
		// Routine drift, not an error: fix silently.
		if err := s.totals.Upsert(userID, dayKey, total); err != nil {
			return 0, 0, err
		}
	}

	return total, count, nil
}

// MealsForDay returns the meals counted by Reconcile, for endpoints that
// show the day's meals next to the total.
func (s *ReconcileService) MealsForDay(userID uint, dayKey, timezone string) ([]models.Meal, error) {
	meals, err := s.meals.FindAllByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]models.Meal, 0, len(meals))
	for _, m := range meals {
		if utils.ResolveDayKey(m.AteAt, timezone) == dayKey {
			out = append(out, m)
		}
	}
	return out, nil
}
