package locale

// Language is an ISO 639-1 language code supported by the platform.
// Chinese variants carry their region subtag (zh-CN, zh-TW).
type Language string

const (
	LanguageEnglish            Language = "en"
	LanguageJapanese           Language = "ja"
	LanguageChineseSimplified  Language = "zh-CN"
	LanguageChineseTraditional Language = "zh-TW"
	LanguageKorean             Language = "ko"
	LanguageSpanish            Language = "es"
	LanguageFrench             Language = "fr"
	LanguageGerman             Language = "de"
	LanguageItalian            Language = "it"
	LanguagePortuguese         Language = "pt"
	LanguageRussian            Language = "ru"
	LanguageArabic             Language = "ar"
	LanguageHindi              Language = "hi"
)

// Country is an ISO 3166-1 alpha-2 country code supported by the platform.
type Country string

const (
	CountryUnitedStates  Country = "US"
	CountryJapan         Country = "JP"
	CountryChina         Country = "CN"
	CountrySouthKorea    Country = "KR"
	CountryUnitedKingdom Country = "GB"
	CountryCanada        Country = "CA"
	CountryAustralia     Country = "AU"
	CountryGermany       Country = "DE"
	CountryFrance        Country = "FR"
	CountrySpain         Country = "ES"
	CountryItaly         Country = "IT"
	CountryBrazil        Country = "BR"
	CountryIndia         Country = "IN"
	CountryRussia        Country = "RU"
	CountrySaudiArabia   Country = "SA"
)

// Timezone is an IANA timezone name from the supported set.
type Timezone string

const (
	TimezoneUTC        Timezone = "UTC"
	TimezoneTokyo      Timezone = "Asia/Tokyo"
	TimezoneNewYork    Timezone = "America/New_York"
	TimezoneLondon     Timezone = "Europe/London"
	TimezoneParis      Timezone = "Europe/Paris"
	TimezoneBeijing    Timezone = "Asia/Shanghai"
	TimezoneSeoul      Timezone = "Asia/Seoul"
	TimezoneSydney     Timezone = "Australia/Sydney"
	TimezoneLosAngeles Timezone = "America/Los_Angeles"
	TimezoneChicago    Timezone = "America/Chicago"
	TimezoneDenver     Timezone = "America/Denver"
)

// DateFormat selects one of the four supported date layouts.
// The enum value is the human-readable pattern, matching what clients store.
type DateFormat string

const (
	DateFormatISO   DateFormat = "YYYY-MM-DD"
	DateFormatUS    DateFormat = "MM/DD/YYYY"
	DateFormatEU    DateFormat = "DD/MM/YYYY"
	DateFormatJapan DateFormat = "YYYY年MM月DD日"
)

// TimeFormat selects 24-hour or 12-hour clock rendering.
type TimeFormat string

const (
	TimeFormat24h TimeFormat = "24h"
	TimeFormat12h TimeFormat = "12h"
)

// MeasurementUnit selects the measurement system for weight, height and
// temperature rendering.
type MeasurementUnit string

const (
	UnitMetric   MeasurementUnit = "metric"
	UnitImperial MeasurementUnit = "imperial"
)

// Currency is an ISO 4217 currency code from the supported set.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyJPY Currency = "JPY"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyCNY Currency = "CNY"
	CurrencyKRW Currency = "KRW"
	CurrencyCAD Currency = "CAD"
	CurrencyAUD Currency = "AUD"
	CurrencyBRL Currency = "BRL"
	CurrencyINR Currency = "INR"
	CurrencyRUB Currency = "RUB"
	CurrencySAR Currency = "SAR"
)

// Preferences is the complete locale bundle for one user. It is a value
// object: constructed once per request from headers or a stored profile and
// never mutated afterwards.
type Preferences struct {
	Language        Language        `json:"language"`
	Country         Country         `json:"country"`
	Timezone        Timezone        `json:"timezone"`
	DateFormat      DateFormat      `json:"date_format"`
	TimeFormat      TimeFormat      `json:"time_format"`
	Currency        Currency        `json:"currency"`
	MeasurementUnit MeasurementUnit `json:"measurement_unit"`
}

// DefaultPreferences returns the zero-configuration locale bundle:
// English, United States, UTC, ISO dates, 24-hour clock, USD, metric.
func DefaultPreferences() Preferences {
	return Preferences{
		Language:        LanguageEnglish,
		Country:         CountryUnitedStates,
		Timezone:        TimezoneUTC,
		DateFormat:      DateFormatISO,
		TimeFormat:      TimeFormat24h,
		Currency:        CurrencyUSD,
		MeasurementUnit: UnitMetric,
	}
}
