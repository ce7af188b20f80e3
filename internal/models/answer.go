package models

import "time"

// Answer is one recorded response. Created once per question per
// session and never mutated afterwards. IsCorrect and PointsEarned are
// denormalized from the selected option at write time.
type Answer struct {
	ID               string    `bson:"_id,omitempty" json:"id"`
	SessionID        string    `bson:"session_id" json:"session_id"`
	QuestionID       string    `bson:"question_id" json:"question_id"`
	SelectedOptionID string    `bson:"selected_option_id" json:"selected_option_id"`
	TimeSpentMS      int64     `bson:"time_spent_ms" json:"time_spent_ms"`
	UsedHint         bool      `bson:"used_hint" json:"used_hint"`
	ConfidenceLevel  int       `bson:"confidence_level" json:"confidence_level"`
	ChoseDontKnow    bool      `bson:"chose_dont_know" json:"chose_dont_know"`
	UserLanguage     string    `bson:"user_language" json:"user_language"`
	IsCorrect        bool      `bson:"is_correct" json:"is_correct"`
	PointsEarned     float64   `bson:"points_earned" json:"points_earned"`
	AnsweredAt       time.Time `bson:"answered_at" json:"answered_at"`
}

// TimeSpentSeconds converts the stored millisecond value back to the
// seconds the engine works in.
func (a *Answer) TimeSpentSeconds() float64 {
	return float64(a.TimeSpentMS) / 1000.0
}
