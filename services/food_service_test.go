package services_test

import (
	"testing"
	"time"

	"nutritrack/models"
	"nutritrack/services"
	"nutritrack/testutil"
	"nutritrack/utils"
)

func TestAddAnalyzedFood_RoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := createTestUser(t, db)
	foodSvc := services.NewFoodService(db)

	items := []services.FoodItemRequest{
		{Name: "Oatmeal", Calories: 150, Protein: 5, Carbs: 27, Fat: 3, Fiber: 4},
	}
	result, err := foodSvc.AddAnalyzedFood(user.ID, "", items, "breakfast", nil, "")
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}

	if result.Meal.TotalCalories != 150 {
		t.Errorf("meal total = %v, want 150", result.Meal.TotalCalories)
	}
	if result.DailyTotal < 150 {
		t.Errorf("daily total = %v, want >= 150", result.DailyTotal)
	}
	if result.TotalNutrition.Protein != 5 || result.TotalNutrition.Carbs != 27 {
		t.Errorf("nutrition totals = %+v", result.TotalNutrition)
	}

	wantKey := utils.ResolveDayKey(time.Now(), "")
	if result.Meal.DayKey != wantKey {
		t.Errorf("day key = %q, want %q", result.Meal.DayKey, wantKey)
	}

	// A subsequent summary for the same day must include the meal
	summary, err := services.NewSummaryService(db).Summarize(user.ID, "", "")
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if summary.TotalCalories < 150 {
		t.Errorf("summary total = %v, want >= 150", summary.TotalCalories)
	}
	if summary.MealCount != 1 {
		t.Errorf("meal count = %d, want 1", summary.MealCount)
	}
}

func TestAddAnalyzedFood_CoercesInvalidMealType(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := createTestUser(t, db)
	foodSvc := services.NewFoodService(db)

	result, err := foodSvc.AddAnalyzedFood(user.ID, "",
		[]services.FoodItemRequest{{Name: "Pancakes", Calories: 350}}, "brunch", nil, "")
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if result.Meal.MealType != "snack" {
		t.Errorf("meal type = %q, want \"snack\"", result.Meal.MealType)
	}

	var stored models.Meal
	if err := db.First(&stored, result.Meal.ID).Error; err != nil {
		t.Fatalf("loading stored meal: %v", err)
	}
	if stored.MealType != "snack" {
		t.Errorf("stored meal type = %q, want \"snack\"", stored.MealType)
	}
}

func TestAddAnalyzedFood_ItemDefaults(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := createTestUser(t, db)
	foodSvc := services.NewFoodService(db)

	result, err := foodSvc.AddAnalyzedFood(user.ID, "",
		[]services.FoodItemRequest{
			{Name: "Rice", Calories: 200},                         // no serving, no meal type
			{Name: "Egg", Calories: 80, MealType: "breakfast"},    // valid item type kept
			{Name: "Mystery", Calories: 20, MealType: "elevensies"}, // invalid item type replaced
		}, "dinner", nil, "")
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}

	items := result.Meal.Items
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	if items[0].ServingSize != "100g" {
		t.Errorf("serving size = %q, want \"100g\"", items[0].ServingSize)
	}
	if items[0].MealType != "dinner" {
		t.Errorf("item 0 meal type = %q, want \"dinner\"", items[0].MealType)
	}
	if items[1].MealType != "breakfast" {
		t.Errorf("item 1 meal type = %q, want \"breakfast\"", items[1].MealType)
	}
	if items[2].MealType != "dinner" {
		t.Errorf("item 2 meal type = %q, want \"dinner\"", items[2].MealType)
	}
	if items[0].Protein != 0 || items[0].Fiber != 0 {
		t.Errorf("missing macros should default to 0: %+v", items[0])
	}
}

func TestAddAnalyzedFood_TotalCaloriesHint(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := createTestUser(t, db)
	foodSvc := services.NewFoodService(db)

	hint := 999.0
	result, err := foodSvc.AddAnalyzedFood(user.ID, "",
		[]services.FoodItemRequest{{Name: "Curry", Calories: 400}}, "dinner", &hint, "")
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if result.Meal.TotalCalories != 999 {
		t.Errorf("meal total = %v, want the 999 hint", result.Meal.TotalCalories)
	}
	if result.DailyTotal != 999 {
		t.Errorf("daily total = %v, want 999", result.DailyTotal)
	}
}

func TestAddAnalyzedFood_RejectsEmptyItems(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := createTestUser(t, db)
	foodSvc := services.NewFoodService(db)

	if _, err := foodSvc.AddAnalyzedFood(user.ID, "", nil, "lunch", nil, ""); err != services.ErrNoFoodItems {
		t.Errorf("err = %v, want ErrNoFoodItems", err)
	}
}

func TestAddAnalyzedFood_MacroTotalsRounded(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := createTestUser(t, db)
	foodSvc := services.NewFoodService(db)

	result, err := foodSvc.AddAnalyzedFood(user.ID, "",
		[]services.FoodItemRequest{
			{Name: "A", Calories: 100, Protein: 1.23, Carbs: 2.22},
			{Name: "B", Calories: 100, Protein: 1.23, Carbs: 2.22},
		}, "lunch", nil, "")
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if result.TotalNutrition.Protein != 2.5 {
		t.Errorf("protein = %v, want 2.5 (rounded to 1 decimal)", result.TotalNutrition.Protein)
	}
	if result.TotalNutrition.Carbs != 4.4 {
		t.Errorf("carbs = %v, want 4.4", result.TotalNutrition.Carbs)
	}
}
