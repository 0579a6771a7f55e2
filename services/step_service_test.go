package services_test

import (
	"errors"
	"testing"

	"nutritrack/models"
	"nutritrack/services"
	"nutritrack/testutil"
)

func TestUpsertSteps(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := createTestUser(t, db)
	stepSvc := services.NewStepService(db)

	first, err := stepSvc.UpsertSteps(user.ID, "", 4000)
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	// Re-sync later the same day replaces, never duplicates
	second, err := stepSvc.UpsertSteps(user.ID, "", 8200)
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if second.DayKey != first.DayKey {
		t.Errorf("day keys differ: %q vs %q", first.DayKey, second.DayKey)
	}

	var count int64
	db.Model(&models.StepLog{}).Where("user_id = ?", user.ID).Count(&count)
	if count != 1 {
		t.Errorf("step rows = %d, want 1", count)
	}

	steps, _, err := stepSvc.GetSteps(user.ID, "", "")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if steps != 8200 {
		t.Errorf("steps = %d, want 8200", steps)
	}
}

func TestGetSteps_DefaultsToZero(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := createTestUser(t, db)

	steps, _, err := services.NewStepService(db).GetSteps(user.ID, "", "2025-06-01")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if steps != 0 {
		t.Errorf("steps = %d, want 0 for an unsynced day", steps)
	}
}

func TestUpsertSteps_RejectsNegative(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := createTestUser(t, db)

	if _, err := services.NewStepService(db).UpsertSteps(user.ID, "", -5); !errors.Is(err, services.ErrNegativeSteps) {
		t.Errorf("err = %v, want ErrNegativeSteps", err)
	}
}
