// Package feedback classifies one answer into a display category from
// its correctness, timing and honesty signal. The classification is a
// pure function; rendering a category to text belongs to i18n.
package feedback

type Category string

const (
	CategoryQuickCorrect      Category = "quick-and-correct"
	CategoryCorrect           Category = "correct"
	CategoryThoughtfulCorrect Category = "thoughtful-correct"
	CategoryHonestDontKnow    Category = "honest-dont-know"
	CategoryIncorrect         Category = "incorrect"
)

// Time thresholds, in seconds, separating quick, normal and thoughtful
// correct answers.
const (
	quickThreshold      = 10.0
	thoughtfulThreshold = 30.0
)

// Categorize applies the decision table top to bottom, first match
// wins. It depends on nothing but its three inputs.
func Categorize(isCorrect bool, timeSpentSeconds float64, choseDontKnow bool) Category {
	switch {
	case isCorrect && timeSpentSeconds < quickThreshold:
		return CategoryQuickCorrect
	case isCorrect && timeSpentSeconds < thoughtfulThreshold:
		return CategoryCorrect
	case isCorrect:
		return CategoryThoughtfulCorrect
	case choseDontKnow:
		return CategoryHonestDontKnow
	default:
		return CategoryIncorrect
	}
}

// MessageKey returns the i18n key whose translation announces the
// category to the student.
func (c Category) MessageKey() string {
	switch c {
	case CategoryQuickCorrect:
		return "quickAndCorrect"
	case CategoryCorrect:
		return "correctAnswer"
	case CategoryThoughtfulCorrect:
		return "thoughtfulCorrect"
	case CategoryHonestDontKnow:
		return "admitDontKnow"
	default:
		return "incorrectTryAgain"
	}
}
