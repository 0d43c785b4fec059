package locale

import "strings"

// Resolve derives a complete Preferences bundle from an Accept-Language
// header value and an optional IANA timezone hint.
//
// Language candidates are taken in header order; quality weights are ignored
// and only the primary subtag before "-" is compared against the supported
// set. The first supported candidate wins, with English as the fallback.
// When the timezone matches a registered country timezone, that country's
// bundle (timezone, currency, date format, measurement unit) is adopted;
// otherwise the United States bundle applies.
//
// Resolve never fails: absent or malformed input always yields defaults.
func Resolve(acceptLanguage, timezone string) Preferences {
	var languages []Language
	if acceptLanguage != "" {
		for _, part := range strings.Split(acceptLanguage, ",") {
			code := strings.TrimSpace(part)
			if i := strings.Index(code, ";"); i >= 0 {
				code = code[:i]
			}
			if i := strings.Index(code, "-"); i >= 0 {
				code = code[:i]
			}
			if isSupportedLanguage(code) {
				languages = append(languages, Language(code))
			}
		}
	}
	if len(languages) == 0 {
		languages = []Language{LanguageEnglish}
	}

	country := CountryUnitedStates
	if timezone != "" {
		for _, info := range supportedCountries {
			if string(info.Timezone) == timezone {
				country = info.Code
				break
			}
		}
	}

	prefs := DefaultPreferences()
	prefs.Language = languages[0]
	prefs.Country = country

	if bundle, ok := CountryBundle(country); ok {
		prefs.Timezone = bundle.Timezone
		prefs.Currency = bundle.Currency
		prefs.DateFormat = bundle.DateFormat
		prefs.MeasurementUnit = bundle.MeasurementUnit
	}

	return prefs
}

// isSupportedLanguage compares a parsed subtag against the full registered
// code set. Region-qualified codes such as zh-CN are registered with their
// region, so a bare "zh" subtag never matches.
func isSupportedLanguage(code string) bool {
	for _, info := range supportedLanguages {
		if string(info.Code) == code {
			return true
		}
	}
	return false
}
