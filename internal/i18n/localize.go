package i18n

import "assessment-service/internal/models"

// LocalizeQuestion fills the question's display fields, and those of
// its options, for the requested language. The stored per-language
// variants are left untouched.
func LocalizeQuestion(q *models.Question, lang string) {
	q.DisplayText = ResolveText(q.Texts, lang)
	q.DisplayExplanation = ResolveText(q.Explanations, lang)
	for i := range q.Options {
		q.Options[i].DisplayText = ResolveText(q.Options[i].Texts, lang)
	}
}
