package format

import (
	"fmt"
	"math"

	"github.com/carebridge/healthcore/pkg/locale"
)

const (
	kgToLb      = 2.20462
	cmPerInch   = 2.54
	inchPerFoot = 12
)

// Weight renders a weight stored in kilograms, converting to pounds for
// imperial locales.
func Weight(weightKg float64, prefs locale.Preferences) string {
	if prefs.MeasurementUnit == locale.UnitImperial {
		return fmt.Sprintf("%.1f lbs", weightKg*kgToLb)
	}
	return fmt.Sprintf("%.1f kg", weightKg)
}

// Height renders a height stored in centimeters. Imperial locales get
// feet and inches with both components truncated toward zero.
func Height(heightCm float64, prefs locale.Preferences) string {
	if prefs.MeasurementUnit == locale.UnitImperial {
		totalInches := heightCm / cmPerInch
		feet := int(totalInches / inchPerFoot)
		inches := int(math.Mod(totalInches, inchPerFoot))
		return fmt.Sprintf("%d'%d\"", feet, inches)
	}
	return fmt.Sprintf("%.1f cm", heightCm)
}

// Temperature renders a temperature stored in Celsius, converting to
// Fahrenheit for imperial locales.
func Temperature(tempC float64, prefs locale.Preferences) string {
	if prefs.MeasurementUnit == locale.UnitImperial {
		return fmt.Sprintf("%.1f°F", tempC*9/5+32)
	}
	return fmt.Sprintf("%.1f°C", tempC)
}
