package locale

// LanguageInfo describes one supported language for settings UIs.
type LanguageInfo struct {
	Code       Language `json:"code"`
	Name       string   `json:"name"`
	NativeName string   `json:"native_name"`
	IsRTL      bool     `json:"is_rtl"`
	IsActive   bool     `json:"is_active"`
	SortOrder  int      `json:"sort_order"`
}

// CountryInfo is the locale bundle registered for one country: the defaults
// adopted when a request resolves to that country.
type CountryInfo struct {
	Code            Country         `json:"code"`
	Name            string          `json:"name"`
	NativeName      string          `json:"native_name"`
	Language        Language        `json:"language"`
	Timezone        Timezone        `json:"timezone"`
	Currency        Currency        `json:"currency"`
	DateFormat      DateFormat      `json:"date_format"`
	MeasurementUnit MeasurementUnit `json:"measurement_unit"`
	IsActive        bool            `json:"is_active"`
}

// supportedLanguages is the static language registry. Order matters: it is
// the sort order shown to users and the tie-break order for content lookups.
var supportedLanguages = []LanguageInfo{
	{Code: LanguageEnglish, Name: "English", NativeName: "English", IsActive: true, SortOrder: 1},
	{Code: LanguageJapanese, Name: "Japanese", NativeName: "日本語", IsActive: true, SortOrder: 2},
	{Code: LanguageChineseSimplified, Name: "Chinese (Simplified)", NativeName: "简体中文", IsActive: true, SortOrder: 3},
	{Code: LanguageChineseTraditional, Name: "Chinese (Traditional)", NativeName: "繁體中文", IsActive: true, SortOrder: 4},
	{Code: LanguageKorean, Name: "Korean", NativeName: "한국어", IsActive: true, SortOrder: 5},
	{Code: LanguageSpanish, Name: "Spanish", NativeName: "Español", IsActive: true, SortOrder: 6},
	{Code: LanguageFrench, Name: "French", NativeName: "Français", IsActive: true, SortOrder: 7},
	{Code: LanguageGerman, Name: "German", NativeName: "Deutsch", IsActive: true, SortOrder: 8},
	{Code: LanguageItalian, Name: "Italian", NativeName: "Italiano", IsActive: true, SortOrder: 9},
	{Code: LanguagePortuguese, Name: "Portuguese", NativeName: "Português", IsActive: true, SortOrder: 10},
	{Code: LanguageRussian, Name: "Russian", NativeName: "Русский", IsActive: true, SortOrder: 11},
	{Code: LanguageArabic, Name: "Arabic", NativeName: "العربية", IsRTL: true, IsActive: true, SortOrder: 12},
	{Code: LanguageHindi, Name: "Hindi", NativeName: "हिन्दी", IsActive: true, SortOrder: 13},
}

// supportedCountries is the static country registry. Order matters: the
// first country whose timezone matches a hint wins during resolution, so
// Europe/Paris maps to Germany and America/Chicago to Canada.
var supportedCountries = []CountryInfo{
	{
		Code: CountryUnitedStates, Name: "United States", NativeName: "United States",
		Language: LanguageEnglish, Timezone: TimezoneNewYork, Currency: CurrencyUSD,
		DateFormat: DateFormatUS, MeasurementUnit: UnitImperial, IsActive: true,
	},
	{
		Code: CountryJapan, Name: "Japan", NativeName: "日本",
		Language: LanguageJapanese, Timezone: TimezoneTokyo, Currency: CurrencyJPY,
		DateFormat: DateFormatISO, MeasurementUnit: UnitMetric, IsActive: true,
	},
	{
		Code: CountryChina, Name: "China", NativeName: "中国",
		Language: LanguageChineseSimplified, Timezone: TimezoneBeijing, Currency: CurrencyCNY,
		DateFormat: DateFormatISO, MeasurementUnit: UnitMetric, IsActive: true,
	},
	{
		Code: CountrySouthKorea, Name: "South Korea", NativeName: "대한민국",
		Language: LanguageKorean, Timezone: TimezoneSeoul, Currency: CurrencyKRW,
		DateFormat: DateFormatISO, MeasurementUnit: UnitMetric, IsActive: true,
	},
	{
		Code: CountryUnitedKingdom, Name: "United Kingdom", NativeName: "United Kingdom",
		Language: LanguageEnglish, Timezone: TimezoneLondon, Currency: CurrencyGBP,
		DateFormat: DateFormatEU, MeasurementUnit: UnitMetric, IsActive: true,
	},
	{
		Code: CountryGermany, Name: "Germany", NativeName: "Deutschland",
		Language: LanguageGerman, Timezone: TimezoneParis, Currency: CurrencyEUR,
		DateFormat: DateFormatEU, MeasurementUnit: UnitMetric, IsActive: true,
	},
	{
		Code: CountryFrance, Name: "France", NativeName: "France",
		Language: LanguageFrench, Timezone: TimezoneParis, Currency: CurrencyEUR,
		DateFormat: DateFormatEU, MeasurementUnit: UnitMetric, IsActive: true,
	},
	{
		Code: CountrySpain, Name: "Spain", NativeName: "España",
		Language: LanguageSpanish, Timezone: TimezoneParis, Currency: CurrencyEUR,
		DateFormat: DateFormatEU, MeasurementUnit: UnitMetric, IsActive: true,
	},
	{
		Code: CountryItaly, Name: "Italy", NativeName: "Italia",
		Language: LanguageItalian, Timezone: TimezoneParis, Currency: CurrencyEUR,
		DateFormat: DateFormatEU, MeasurementUnit: UnitMetric, IsActive: true,
	},
	{
		Code: CountryCanada, Name: "Canada", NativeName: "Canada",
		Language: LanguageEnglish, Timezone: TimezoneChicago, Currency: CurrencyCAD,
		DateFormat: DateFormatISO, MeasurementUnit: UnitMetric, IsActive: true,
	},
	{
		Code: CountryAustralia, Name: "Australia", NativeName: "Australia",
		Language: LanguageEnglish, Timezone: TimezoneSydney, Currency: CurrencyAUD,
		DateFormat: DateFormatISO, MeasurementUnit: UnitMetric, IsActive: true,
	},
	{
		Code: CountryBrazil, Name: "Brazil", NativeName: "Brasil",
		Language: LanguagePortuguese, Timezone: TimezoneChicago, Currency: CurrencyBRL,
		DateFormat: DateFormatISO, MeasurementUnit: UnitMetric, IsActive: true,
	},
	{
		Code: CountryIndia, Name: "India", NativeName: "भारत",
		Language: LanguageHindi, Timezone: TimezoneBeijing, Currency: CurrencyINR,
		DateFormat: DateFormatISO, MeasurementUnit: UnitMetric, IsActive: true,
	},
	{
		Code: CountryRussia, Name: "Russia", NativeName: "Россия",
		Language: LanguageRussian, Timezone: TimezoneBeijing, Currency: CurrencyRUB,
		DateFormat: DateFormatISO, MeasurementUnit: UnitMetric, IsActive: true,
	},
	{
		Code: CountrySaudiArabia, Name: "Saudi Arabia", NativeName: "المملكة العربية السعودية",
		Language: LanguageArabic, Timezone: TimezoneBeijing, Currency: CurrencySAR,
		DateFormat: DateFormatISO, MeasurementUnit: UnitMetric, IsActive: true,
	},
}

// SupportedLanguages returns the language registry in display order.
func SupportedLanguages() []LanguageInfo {
	out := make([]LanguageInfo, len(supportedLanguages))
	copy(out, supportedLanguages)
	return out
}

// SupportedCountries returns the country registry in registration order.
func SupportedCountries() []CountryInfo {
	out := make([]CountryInfo, len(supportedCountries))
	copy(out, supportedCountries)
	return out
}

// CountryBundle returns the registered locale bundle for a country.
func CountryBundle(c Country) (CountryInfo, bool) {
	for _, info := range supportedCountries {
		if info.Code == c {
			return info, true
		}
	}
	return CountryInfo{}, false
}
