package locale

import "strings"

// scriptRange is a closed interval of Unicode code points.
type scriptRange struct {
	lo, hi rune
}

var (
	japaneseRanges = []scriptRange{
		{0x3040, 0x309F}, // Hiragana
		{0x30A0, 0x30FF}, // Katakana
		{0x4E00, 0x9FAF}, // CJK ideographs
	}
	hanRanges        = []scriptRange{{0x4E00, 0x9FAF}}
	hangulRanges     = []scriptRange{{0xAC00, 0xD7AF}}
	arabicRanges     = []scriptRange{{0x0600, 0x06FF}}
	devanagariRanges = []scriptRange{{0x0900, 0x097F}}
	cyrillicRanges   = []scriptRange{{0x0400, 0x04FF}}
)

// DetectLanguage guesses the language of a text from its Unicode script.
// The checks run in a fixed order: because the Japanese check includes the
// shared CJK ideograph block, Han-only text is classified as Japanese and
// the Chinese branch only exists for parity with the settings registry.
// Returns ok=false only for empty input; Latin script defaults to English.
func DetectLanguage(text string) (Language, bool) {
	if text == "" {
		return "", false
	}

	if containsScript(text, japaneseRanges) {
		return LanguageJapanese, true
	}
	if containsScript(text, hanRanges) {
		return LanguageChineseSimplified, true
	}
	if containsScript(text, hangulRanges) {
		return LanguageKorean, true
	}
	if containsScript(text, arabicRanges) {
		return LanguageArabic, true
	}
	if containsScript(text, devanagariRanges) {
		return LanguageHindi, true
	}
	if containsScript(text, cyrillicRanges) {
		return LanguageRussian, true
	}

	return LanguageEnglish, true
}

func containsScript(text string, ranges []scriptRange) bool {
	for _, r := range text {
		for _, sr := range ranges {
			if r >= sr.lo && r <= sr.hi {
				return true
			}
		}
	}
	return false
}

// Direction returns "rtl" for right-to-left languages and "ltr" otherwise.
// Hindi is treated as RTL here to match the legacy rendering behavior, even
// though the language registry marks only Arabic as RTL.
func Direction(lang Language) string {
	if lang == LanguageArabic || lang == LanguageHindi {
		return "rtl"
	}
	return "ltr"
}

// languageNames maps a language to its name in a set of display languages.
// Only English and Japanese have curated entries; everything else falls back
// to a title-cased language code.
var languageNames = map[Language]map[Language]string{
	LanguageEnglish: {
		LanguageEnglish:           "English",
		LanguageJapanese:          "英語",
		LanguageChineseSimplified: "英语",
		LanguageKorean:            "영어",
		LanguageSpanish:           "Inglés",
		LanguageFrench:            "Anglais",
		LanguageGerman:            "Englisch",
		LanguageItalian:           "Inglese",
		LanguagePortuguese:        "Inglês",
		LanguageRussian:           "Английский",
		LanguageArabic:            "الإنجليزية",
		LanguageHindi:             "अंग्रेजी",
	},
	LanguageJapanese: {
		LanguageEnglish:           "Japanese",
		LanguageJapanese:          "日本語",
		LanguageChineseSimplified: "日语",
		LanguageKorean:            "일본어",
		LanguageSpanish:           "Japonés",
		LanguageFrench:            "Japonais",
		LanguageGerman:            "Japanisch",
		LanguageItalian:           "Giapponese",
		LanguagePortuguese:        "Japonês",
		LanguageRussian:           "Японский",
		LanguageArabic:            "اليابانية",
		LanguageHindi:             "जापानी",
	},
}

// LanguageName returns the display name of lang rendered in target.
func LanguageName(lang, target Language) string {
	if names, ok := languageNames[lang]; ok {
		if name, ok := names[target]; ok {
			return name
		}
	}
	return titleCode(string(lang))
}

// titleCode capitalizes each hyphen-separated segment of a language code,
// e.g. "zh-cn" -> "Zh-Cn".
func titleCode(code string) string {
	parts := strings.Split(code, "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + strings.ToLower(p[1:])
	}
	return strings.Join(parts, "-")
}
