package locale

import "time"

// IsValidLanguage reports whether code is a registered language code.
func IsValidLanguage(code string) bool {
	return isSupportedLanguage(code)
}

// IsValidCountry reports whether code is a registered country code.
func IsValidCountry(code string) bool {
	for _, info := range supportedCountries {
		if string(info.Code) == code {
			return true
		}
	}
	return false
}

// IsValidTimezone reports whether name resolves against the IANA database.
func IsValidTimezone(name string) bool {
	_, err := time.LoadLocation(name)
	return err == nil
}

// IsValidDateFormat reports whether value is one of the supported layouts.
func IsValidDateFormat(value string) bool {
	switch DateFormat(value) {
	case DateFormatISO, DateFormatUS, DateFormatEU, DateFormatJapan:
		return true
	}
	return false
}

// IsValidTimeFormat reports whether value is a supported clock format.
func IsValidTimeFormat(value string) bool {
	switch TimeFormat(value) {
	case TimeFormat24h, TimeFormat12h:
		return true
	}
	return false
}

// IsValidCurrency reports whether code is a registered currency code.
func IsValidCurrency(code string) bool {
	switch Currency(code) {
	case CurrencyUSD, CurrencyJPY, CurrencyEUR, CurrencyGBP, CurrencyCNY, CurrencyKRW,
		CurrencyCAD, CurrencyAUD, CurrencyBRL, CurrencyINR, CurrencyRUB, CurrencySAR:
		return true
	}
	return false
}

// IsValidMeasurementUnit reports whether value names a measurement system.
func IsValidMeasurementUnit(value string) bool {
	return MeasurementUnit(value) == UnitMetric || MeasurementUnit(value) == UnitImperial
}

// RawPreferences holds unvalidated locale fields as received from a client.
// Empty strings mean the field was not supplied.
type RawPreferences struct {
	Language        string `json:"language,omitempty"`
	Country         string `json:"country,omitempty"`
	Timezone        string `json:"timezone,omitempty"`
	DateFormat      string `json:"date_format,omitempty"`
	TimeFormat      string `json:"time_format,omitempty"`
	Currency        string `json:"currency,omitempty"`
	MeasurementUnit string `json:"measurement_unit,omitempty"`
}

// PreferencesCheck reports the outcome of validating raw preferences.
type PreferencesCheck struct {
	Valid  bool     `json:"is_valid"`
	Issues []string `json:"issues"`
}

// ValidatePreferences checks every supplied field of raw preferences
// against the supported sets. Absent fields are skipped.
func ValidatePreferences(raw RawPreferences) PreferencesCheck {
	result := PreferencesCheck{Valid: true}

	check := func(value string, ok func(string) bool, issue string) {
		if value != "" && !ok(value) {
			result.Valid = false
			result.Issues = append(result.Issues, issue)
		}
	}

	check(raw.Language, IsValidLanguage, "Invalid language code")
	check(raw.Country, IsValidCountry, "Invalid country code")
	check(raw.Timezone, IsValidTimezone, "Invalid timezone")
	check(raw.DateFormat, IsValidDateFormat, "Invalid date format")
	check(raw.TimeFormat, IsValidTimeFormat, "Invalid time format")
	check(raw.Currency, IsValidCurrency, "Invalid currency code")
	check(raw.MeasurementUnit, IsValidMeasurementUnit, "Invalid measurement unit")

	return result
}
