// Package health derives biometric summary values from raw measurements.
// Every function is pure and stateless: identical inputs always produce
// identical outputs, and nothing here performs I/O.
package health

import (
	"errors"
	"math"
	"time"
)

var (
	// ErrInvalidMeasurement is returned when a weight or height is not a
	// positive value.
	ErrInvalidMeasurement = errors.New("weight and height must be positive")
	// ErrInvalidTimeframe is returned when a plan period is not positive.
	ErrInvalidTimeframe = errors.New("target weeks must be positive")
)

// Gender selects the coefficient set for metabolic formulas.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ActivityLevel scales basal metabolic rate into daily expenditure.
type ActivityLevel string

const (
	ActivityLow      ActivityLevel = "low"
	ActivityModerate ActivityLevel = "moderate"
	ActivityHigh     ActivityLevel = "high"
)

// multiplier returns the expenditure factor for the level. Unknown levels
// fall back to the sedentary factor.
func (a ActivityLevel) multiplier() float64 {
	switch a {
	case ActivityModerate:
		return 1.55
	case ActivityHigh:
		return 1.725
	default:
		return 1.2
	}
}

// BMICategory is the classification band for a BMI value.
type BMICategory string

const (
	BMILow    BMICategory = "low"
	BMINormal BMICategory = "normal"
	BMIObese1 BMICategory = "obese-1"
	BMIObese2 BMICategory = "obese-2"
	BMIObese3 BMICategory = "obese-3"
)

// BMIResult is a computed body mass index with its classification.
type BMIResult struct {
	BMI         float64     `json:"bmi"`
	Category    BMICategory `json:"category"`
	Description string      `json:"description"`
}

// BMI computes body mass index from weight in kilograms and height in
// centimeters. Thresholds are evaluated in ascending order; first match
// wins: <18.5 low, <25 normal, <30 obese-1, <35 obese-2, else obese-3.
func BMI(weightKg, heightCm float64) (BMIResult, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return BMIResult{}, ErrInvalidMeasurement
	}

	heightM := heightCm / 100
	bmi := weightKg / (heightM * heightM)

	var category BMICategory
	var description string
	switch {
	case bmi < 18.5:
		category, description = BMILow, "Possibly underweight"
	case bmi < 25:
		category, description = BMINormal, "Healthy weight range"
	case bmi < 30:
		category, description = BMIObese1, "Mild obesity"
	case bmi < 35:
		category, description = BMIObese2, "Moderate obesity"
	default:
		category, description = BMIObese3, "Severe obesity"
	}

	return BMIResult{BMI: round1(bmi), Category: category, Description: description}, nil
}

// referenceBMI is the target body mass index used for ideal weight.
const referenceBMI = 22.0

// IdealWeight computes the weight in kilograms that would put someone at
// the reference BMI. The gender argument is accepted for API compatibility
// but does not affect the result: both branches of the legacy computation
// used the same reference BMI.
func IdealWeight(heightCm float64, gender Gender) float64 {
	heightM := heightCm / 100
	return round1(referenceBMI * heightM * heightM)
}

// WeightChangeRate computes the daily rate in kg/day needed to move from
// current to target weight over the given number of days. A non-positive
// period yields 0 rather than an error.
func WeightChangeRate(currentWeight, targetWeight float64, days int) float64 {
	if days <= 0 {
		return 0
	}
	return round3((targetWeight - currentWeight) / float64(days))
}

// BodyFatMass computes fat mass in kilograms from total weight and body fat
// percentage.
func BodyFatMass(weightKg, bodyFatPct float64) float64 {
	return round1(weightKg * bodyFatPct / 100)
}

// LeanBodyMass computes fat-free mass in kilograms.
func LeanBodyMass(weightKg, bodyFatPct float64) float64 {
	return round1(weightKg - BodyFatMass(weightKg, bodyFatPct))
}

// AgeFromBirthDate computes full years elapsed since a YYYY-MM-DD birth
// date. Malformed input yields 0 rather than an error; callers render 0 as
// "unknown".
func AgeFromBirthDate(birthDate string) int {
	return ageOn(birthDate, time.Now())
}

func ageOn(birthDate string, today time.Time) int {
	birth, err := time.Parse("2006-01-02", birthDate)
	if err != nil {
		return 0
	}

	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() ||
		(today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	return age
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
