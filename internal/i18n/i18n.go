// Package i18n resolves display text for the languages the assessment
// supports. Question content carries its own per-language variants;
// this package owns the fallback chain and the fixed message table for
// feedback labels.
package i18n

import "sort"

const (
	LangEnglish = "en"
	LangArabic  = "ar"
	LangHebrew  = "he"

	// DefaultLanguage is the fallback when a requested variant is
	// missing.
	DefaultLanguage = LangEnglish
)

// Supported lists the language codes content may be authored in.
var Supported = []string{LangEnglish, LangArabic, LangHebrew}

// IsSupported reports whether code is a known language code.
func IsSupported(code string) bool {
	for _, l := range Supported {
		if l == code {
			return true
		}
	}
	return false
}

var translations = map[string]map[string]string{
	"quickAndCorrect": {
		LangEnglish: "Quick and correct! Excellent!",
		LangArabic:  "سريع وصحيح! ممتاز!",
		LangHebrew:  "מהיר ונכון! מצוין!",
	},
	"correctAnswer": {
		LangEnglish: "Correct answer!",
		LangArabic:  "إجابة صحيحة!",
		LangHebrew:  "תשובה נכונה!",
	},
	"thoughtfulCorrect": {
		LangEnglish: "Thoughtful and correct!",
		LangArabic:  "مدروس وصحيح!",
		LangHebrew:  "מחושב ונכון!",
	},
	"admitDontKnow": {
		LangEnglish: "It's honest to admit when you don't know",
		LangArabic:  "من الصدق الاعتراف عندما لا تعرف",
		LangHebrew:  "זה כנה להודות כשלא יודעים",
	},
	"incorrectTryAgain": {
		LangEnglish: "Not quite, keep trying!",
		LangArabic:  "ليس تماماً، واصل المحاولة!",
		LangHebrew:  "לא מדויק, המשך לנסות!",
	},
	"topStrengths": {
		LangEnglish: "Your Top Strengths",
		LangArabic:  "نقاط قوتك الرئيسية",
		LangHebrew:  "החוזקות המובילות שלך",
	},
	"careerSuggestions": {
		LangEnglish: "Career Suggestions",
		LangArabic:  "اقتراحات مهنية",
		LangHebrew:  "הצעות קריירה",
	},
}

// T looks up a message key for a language, falling back to the default
// language and then to the raw key.
func T(key, lang string) string {
	entry, ok := translations[key]
	if !ok {
		return key
	}
	if text, ok := entry[lang]; ok && text != "" {
		return text
	}
	if text, ok := entry[DefaultLanguage]; ok && text != "" {
		return text
	}
	return key
}

// ResolveText picks the variant for lang from a per-language text map,
// falling back to the default language and then to the lowest-sorted
// variant present. Empty string when the map has no text at all.
func ResolveText(texts map[string]string, lang string) string {
	if len(texts) == 0 {
		return ""
	}
	if text, ok := texts[lang]; ok && text != "" {
		return text
	}
	if text, ok := texts[DefaultLanguage]; ok && text != "" {
		return text
	}
	keys := make([]string, 0, len(texts))
	for k, v := range texts {
		if v != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)
	return texts[keys[0]]
}
