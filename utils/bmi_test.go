package utils

import "testing"

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(175, 70)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bmi < 22.8 || bmi > 22.9 {
		t.Errorf("BMI = %.2f, want ~22.86", bmi)
	}

	for _, tc := range []struct{ h, w float64 }{
		{0, 70}, {175, 0}, {30, 70}, {175, 500},
	} {
		if _, err := CalculateBMI(tc.h, tc.w); err == nil {
			t.Errorf("CalculateBMI(%v, %v): expected error", tc.h, tc.w)
		}
	}
}

func TestBMICategory(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{17, "Underweight"},
		{22, "Normal weight"},
		{27, "Overweight"},
		{32, "Obesity class I"},
		{42, "Obesity class III"},
	}
	for _, tc := range tests {
		if got := BMICategory(tc.bmi); got != tc.want {
			t.Errorf("BMICategory(%v) = %q, want %q", tc.bmi, got, tc.want)
		}
	}
}
