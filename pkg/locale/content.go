package locale

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// LocalizedContent picks the best translation from a multilingual content
// map: the preferred language first, then the fallback, then English, then
// the first available entry in registry order. Empty map yields "".
func LocalizedContent(content map[Language]string, preferred, fallback Language) string {
	if v, ok := content[preferred]; ok {
		return v
	}
	if v, ok := content[fallback]; ok {
		return v
	}
	if v, ok := content[LanguageEnglish]; ok {
		return v
	}
	for _, info := range supportedLanguages {
		if v, ok := content[info.Code]; ok {
			return v
		}
	}
	return ""
}

// MultilingualContent projects a content map onto the requested languages,
// substituting the fallback chain for missing translations.
func MultilingualContent(content map[Language]string, requested []Language, fallback Language) map[Language]string {
	result := make(map[Language]string, len(requested))
	for _, lang := range requested {
		switch {
		case content[lang] != "":
			result[lang] = content[lang]
		case content[fallback] != "":
			result[lang] = content[fallback]
		case content[LanguageEnglish] != "":
			result[lang] = content[LanguageEnglish]
		default:
			result[lang] = ""
		}
	}
	return result
}

// IsMultilingual reports whether content carries more than one translation.
func IsMultilingual(content map[Language]string) bool {
	return len(content) > 1
}

// PrimaryLanguage returns the first language present in registry order.
func PrimaryLanguage(content map[Language]string) (Language, bool) {
	if len(content) == 0 {
		return "", false
	}
	for _, info := range supportedLanguages {
		if _, ok := content[info.Code]; ok {
			return info.Code, true
		}
	}
	return "", false
}

// TranslationCheck is the result of a translation quality check.
type TranslationCheck struct {
	Valid       bool     `json:"is_valid"`
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
}

const (
	minTranslationLengthRatio = 0.1
	maxTranslationLengthRatio = 10
)

// ValidateTranslation runs basic quality checks on a translation: empty
// output, extreme length ratios against the original, and a detected-script
// mismatch with the target language. Only an empty translation marks the
// result invalid; the other findings are advisory issues.
func ValidateTranslation(original, translation string, target Language) TranslationCheck {
	result := TranslationCheck{Valid: true}

	if strings.TrimSpace(translation) == "" {
		result.Valid = false
		result.Issues = append(result.Issues, "Translation is empty")
		return result
	}

	ratio := 1.0
	if original != "" {
		ratio = float64(utf8.RuneCountInString(translation)) / float64(utf8.RuneCountInString(original))
	}
	if ratio < minTranslationLengthRatio {
		result.Issues = append(result.Issues, "Translation is too short")
		result.Suggestions = append(result.Suggestions, "Check if translation is complete")
	} else if ratio > maxTranslationLengthRatio {
		result.Issues = append(result.Issues, "Translation is too long")
		result.Suggestions = append(result.Suggestions, "Check if translation is too verbose")
	}

	detected, ok := DetectLanguage(translation)
	if detected != target {
		got := "unknown"
		if ok {
			got = string(detected)
		}
		result.Issues = append(result.Issues,
			fmt.Sprintf("Translation language mismatch: expected %s, got %s", target, got))
	}

	return result
}
