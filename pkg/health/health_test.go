package health

import (
	"errors"
	"testing"
	"time"
)

func TestBMI(t *testing.T) {
	tests := []struct {
		name         string
		weightKg     float64
		heightCm     float64
		wantBMI      float64
		wantCategory BMICategory
		wantErr      error
	}{
		{
			name:     "normal range",
			weightKg: 65, heightCm: 170,
			wantBMI: 22.5, wantCategory: BMINormal,
		},
		{
			name:     "underweight",
			weightKg: 50, heightCm: 170,
			wantBMI: 17.3, wantCategory: BMILow,
		},
		{
			name:     "mild obesity",
			weightKg: 75, heightCm: 170,
			wantBMI: 26.0, wantCategory: BMIObese1,
		},
		{
			name:     "moderate obesity",
			weightKg: 90, heightCm: 170,
			wantBMI: 31.1, wantCategory: BMIObese2,
		},
		{
			name:     "severe obesity",
			weightKg: 110, heightCm: 170,
			wantBMI: 38.1, wantCategory: BMIObese3,
		},
		{
			name:     "boundary 18.5 is normal",
			weightKg: 18.5, heightCm: 100,
			wantBMI: 18.5, wantCategory: BMINormal,
		},
		{
			name:     "boundary 25 is obese-1",
			weightKg: 25, heightCm: 100,
			wantBMI: 25.0, wantCategory: BMIObese1,
		},
		{
			name:     "zero weight",
			weightKg: 0, heightCm: 170,
			wantErr: ErrInvalidMeasurement,
		},
		{
			name:     "zero height",
			weightKg: 65, heightCm: 0,
			wantErr: ErrInvalidMeasurement,
		},
		{
			name:     "negative weight",
			weightKg: -5, heightCm: 170,
			wantErr: ErrInvalidMeasurement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BMI(tt.weightKg, tt.heightCm)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("BMI() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if got.BMI != tt.wantBMI {
				t.Errorf("BMI() = %v, want %v", got.BMI, tt.wantBMI)
			}
			if got.Category != tt.wantCategory {
				t.Errorf("Category = %v, want %v", got.Category, tt.wantCategory)
			}
			if got.Description == "" {
				t.Error("Description should not be empty")
			}
		})
	}
}

func TestBMI_Deterministic(t *testing.T) {
	first, err := BMI(65, 170)
	if err != nil {
		t.Fatalf("BMI() error = %v", err)
	}
	for i := 0; i < 5; i++ {
		got, err := BMI(65, 170)
		if err != nil {
			t.Fatalf("BMI() error = %v", err)
		}
		if got != first {
			t.Fatalf("BMI() = %+v, want %+v", got, first)
		}
	}
}

func TestIdealWeight(t *testing.T) {
	if got := IdealWeight(170, GenderMale); got != 63.6 {
		t.Errorf("IdealWeight(170) = %v, want 63.6", got)
	}

	// Both coefficient sets collapsed onto the same reference BMI, so the
	// gender argument must not change the result.
	if m, f := IdealWeight(170, GenderMale), IdealWeight(170, GenderFemale); m != f {
		t.Errorf("IdealWeight male = %v, female = %v; want equal", m, f)
	}
}

func TestWeightChangeRate(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		target  float64
		days    int
		want    float64
	}{
		{name: "losing", current: 70, target: 65, days: 10, want: -0.5},
		{name: "gaining", current: 60, target: 63, days: 30, want: 0.1},
		{name: "zero days", current: 70, target: 65, days: 0, want: 0},
		{name: "negative days", current: 70, target: 65, days: -3, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeightChangeRate(tt.current, tt.target, tt.days); got != tt.want {
				t.Errorf("WeightChangeRate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBodyComposition(t *testing.T) {
	if got := BodyFatMass(70, 20); got != 14.0 {
		t.Errorf("BodyFatMass(70, 20) = %v, want 14.0", got)
	}
	if got := LeanBodyMass(70, 20); got != 56.0 {
		t.Errorf("LeanBodyMass(70, 20) = %v, want 56.0", got)
	}
}

func TestAgeOn(t *testing.T) {
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		birthDate string
		want      int
	}{
		{name: "birthday passed", birthDate: "1990-01-01", want: 35},
		{name: "birthday not yet", birthDate: "1990-12-31", want: 34},
		{name: "birthday today", birthDate: "1990-06-01", want: 35},
		{name: "malformed date", birthDate: "not-a-date", want: 0},
		{name: "wrong layout", birthDate: "01/01/1990", want: 0},
		{name: "empty", birthDate: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ageOn(tt.birthDate, today); got != tt.want {
				t.Errorf("ageOn(%q) = %v, want %v", tt.birthDate, got, tt.want)
			}
		})
	}
}
