package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"nutritrack/models"
	"nutritrack/utils"

	"gorm.io/gorm"
)

// Validation errors, surfaced as 400s by the controllers.
var (
	ErrNoFoodItems = errors.New("at least one food item is required")
)

var validMealTypes = map[string]bool{
	"breakfast": true,
	"lunch":     true,
	"dinner":    true,
	"snack":     true,
}

type FoodItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Calories    float64 `json:"calories"`
	ServingSize string  `json:"servingSize"`
	MealType    string  `json:"mealType"`
	IsHealthy   bool    `json:"isHealthy"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	Fiber       float64 `json:"fiber"`
}

// NutritionTotals aggregates macros across the submitted items,
// rounded to one decimal.
type NutritionTotals struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
	Fiber   float64 `json:"fiber"`
}

type IngestResult struct {
	Meal           *models.Meal    `json:"meal"`
	TotalNutrition NutritionTotals `json:"totalNutrition"`
	DailyTotal     float64         `json:"dailyTotal"`
}

// FoodService is the ingestion workflow: validate items, persist the meal,
// reconcile the day's total, notify.
type FoodService struct {
	db    *gorm.DB
	meals *MealStore
	rec   *ReconcileService
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{
		db:    db,
		meals: NewMealStore(db),
		rec:   NewReconcileService(db),
	}
}

// AddAnalyzedFood logs the analyzed items as one meal and returns the meal,
// its macro totals and the reconciled daily total. totalCalories, when nil,
// is computed as the sum of item calories. Unrecognized meal types are
// coerced to "snack" rather than rejected — the mobile client sends odd
// values ("brunch") and losing the log entry is worse than reclassifying it.
func (s *FoodService) AddAnalyzedFood(userID uint, timezone string, items []FoodItemRequest, mealType string, totalCalories *float64, photoURL string) (*IngestResult, error) {
	if len(items) == 0 {
		return nil, ErrNoFoodItems
	}
	if !validMealTypes[mealType] {
		mealType = "snack"
	}

	now := time.Now()
	dayKey := utils.ResolveDayKey(now, timezone)

	var itemSum float64
	var totals NutritionTotals
	foodItems := make([]models.FoodItem, 0, len(items))
	for _, it := range items {
		itemType := it.MealType
		if !validMealTypes[itemType] {
			itemType = mealType
		}
		serving := it.ServingSize
		if serving == "" {
			serving = "100g"
		}
		itemSum += it.Calories
		totals.Protein += it.Protein
		totals.Carbs += it.Carbs
		totals.Fat += it.Fat
		totals.Fiber += it.Fiber

		foodItems = append(foodItems, models.FoodItem{
			Name:        it.Name,
			Calories:    it.Calories,
			ServingSize: serving,
			MealType:    itemType,
			IsHealthy:   it.IsHealthy,
			Protein:     it.Protein,
			Carbs:       it.Carbs,
			Fat:         it.Fat,
			Fiber:       it.Fiber,
		})
	}
	totals.Protein = round1(totals.Protein)
	totals.Carbs = round1(totals.Carbs)
	totals.Fat = round1(totals.Fat)
	totals.Fiber = round1(totals.Fiber)

	mealTotal := itemSum
	if totalCalories != nil {
		mealTotal = *totalCalories
	}

	meal := &models.Meal{
		UserID:        userID,
		MealType:      mealType,
		AteAt:         now,
		DayKey:        dayKey,
		TotalCalories: mealTotal,
		PhotoURL:      photoURL,
		Items:         foodItems,
	}

	// The insert must be durable before reconciliation reads the day's
	// meals, so this response's daily total already includes the new meal.
	if err := s.meals.Insert(meal); err != nil {
		return nil, err
	}

	dailyTotal, _, err := s.rec.Reconcile(userID, dayKey, timezone)
	if err != nil {
		return nil, err
	}

	s.notifyDailyTotal(userID, dayKey, dailyTotal, mealTotal)

	return &IngestResult{
		Meal:           meal,
		TotalNutrition: totals,
		DailyTotal:     dailyTotal,
	}, nil
}

// notifyDailyTotal pushes the fresh total to connected clients and raises
// an alert the first time the day's total crosses the user's target.
func (s *FoodService) notifyDailyTotal(userID uint, dayKey string, total, lastMeal float64) {
	BroadcastDailyTotal(userID, dayKey, total)

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return
	}
	target := float64(utils.CalorieTargetForUser(&user))
	if target > 0 && total > target && total-lastMeal <= target {
		EmitAlert(userID, "target_exceeded",
			fmt.Sprintf("You've passed your %d kcal target for %s.", int(target), dayKey))
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
