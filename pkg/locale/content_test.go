package locale

import (
	"strings"
	"testing"
)

func TestLocalizedContent(t *testing.T) {
	content := map[Language]string{
		LanguageEnglish:  "Hello",
		LanguageJapanese: "こんにちは",
		LanguageFrench:   "Bonjour",
	}

	tests := []struct {
		name      string
		content   map[Language]string
		preferred Language
		fallback  Language
		want      string
	}{
		{name: "preferred present", content: content, preferred: LanguageJapanese, fallback: LanguageFrench, want: "こんにちは"},
		{name: "fallback used", content: content, preferred: LanguageKorean, fallback: LanguageFrench, want: "Bonjour"},
		{name: "english used", content: content, preferred: LanguageKorean, fallback: LanguageGerman, want: "Hello"},
		{
			name:      "first in registry order",
			content:   map[Language]string{LanguageRussian: "Привет", LanguageFrench: "Bonjour"},
			preferred: LanguageKorean, fallback: LanguageGerman,
			want: "Bonjour",
		},
		{name: "empty map", content: map[Language]string{}, preferred: LanguageEnglish, fallback: LanguageEnglish, want: ""},
		{name: "nil map", content: nil, preferred: LanguageEnglish, fallback: LanguageEnglish, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LocalizedContent(tt.content, tt.preferred, tt.fallback)
			if got != tt.want {
				t.Errorf("LocalizedContent() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMultilingualContent(t *testing.T) {
	content := map[Language]string{
		LanguageEnglish:  "Hello",
		LanguageJapanese: "こんにちは",
	}

	got := MultilingualContent(content, []Language{LanguageJapanese, LanguageKorean}, LanguageEnglish)

	if got[LanguageJapanese] != "こんにちは" {
		t.Errorf("ja = %q, want こんにちは", got[LanguageJapanese])
	}
	if got[LanguageKorean] != "Hello" {
		t.Errorf("ko = %q, want fallback Hello", got[LanguageKorean])
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}

func TestMultilingualContent_NothingAvailable(t *testing.T) {
	got := MultilingualContent(map[Language]string{}, []Language{LanguageKorean}, LanguageFrench)
	if got[LanguageKorean] != "" {
		t.Errorf("ko = %q, want empty", got[LanguageKorean])
	}
}

func TestIsMultilingual(t *testing.T) {
	if IsMultilingual(map[Language]string{LanguageEnglish: "Hello"}) {
		t.Error("single translation reported multilingual")
	}
	if !IsMultilingual(map[Language]string{LanguageEnglish: "Hello", LanguageJapanese: "こんにちは"}) {
		t.Error("two translations not reported multilingual")
	}
}

func TestPrimaryLanguage(t *testing.T) {
	lang, ok := PrimaryLanguage(map[Language]string{LanguageFrench: "Bonjour", LanguageJapanese: "こんにちは"})
	if !ok || lang != LanguageJapanese {
		t.Errorf("PrimaryLanguage() = %v, %v; want ja in registry order", lang, ok)
	}

	if _, ok := PrimaryLanguage(map[Language]string{}); ok {
		t.Error("PrimaryLanguage(empty) = ok")
	}
}

func TestValidateTranslation(t *testing.T) {
	tests := []struct {
		name        string
		original    string
		translation string
		target      Language
		wantValid   bool
		wantIssue   string
	}{
		{
			name:     "good translation",
			original: "Hello, how are you?", translation: "こんにちは、お元気ですか？",
			target: LanguageJapanese, wantValid: true,
		},
		{
			name:     "empty translation",
			original: "Hello", translation: "   ",
			target: LanguageJapanese, wantValid: false, wantIssue: "Translation is empty",
		},
		{
			name:     "too short",
			original: strings.Repeat("a", 100), translation: "短い",
			target: LanguageJapanese, wantValid: true, wantIssue: "Translation is too short",
		},
		{
			name:     "too long",
			original: "Hi", translation: strings.Repeat("こんにちは", 10),
			target: LanguageJapanese, wantValid: true, wantIssue: "Translation is too long",
		},
		{
			name:     "language mismatch",
			original: "Hello", translation: "Bonjour",
			target: LanguageJapanese, wantValid: true,
			wantIssue: "Translation language mismatch: expected ja, got en",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateTranslation(tt.original, tt.translation, tt.target)
			if got.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v", got.Valid, tt.wantValid)
			}
			if tt.wantIssue == "" {
				if len(got.Issues) != 0 {
					t.Errorf("Issues = %v, want none", got.Issues)
				}
				return
			}
			found := false
			for _, issue := range got.Issues {
				if issue == tt.wantIssue {
					found = true
				}
			}
			if !found {
				t.Errorf("Issues = %v, want %q", got.Issues, tt.wantIssue)
			}
		})
	}
}
