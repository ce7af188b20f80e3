package models

import "time"

// Strength is one subject the student scored well in, with its
// per-subject accuracy in [0,1].
type Strength struct {
	SubjectID   string  `bson:"subject_id" json:"subject_id"`
	SubjectName string  `bson:"subject_name" json:"subject_name"`
	Score       float64 `bson:"score" json:"score"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
}

type CareerSuggestion struct {
	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description" json:"description"`
	Tags        []string `bson:"tags" json:"tags"`
	Match       int      `bson:"match" json:"match"`
}

// Report is the synthesized end-of-test summary. Sample marks reports
// fabricated by the demo generator rather than aggregated from real
// answer history.
type Report struct {
	ID                string             `bson:"_id,omitempty" json:"id"`
	SessionID         string             `bson:"session_id,omitempty" json:"session_id,omitempty"`
	UserID            string             `bson:"user_id,omitempty" json:"user_id,omitempty"`
	OverallScore      float64            `bson:"overall_score" json:"overall_score"`
	QuestionsAnswered int                `bson:"questions_answered" json:"questions_answered"`
	AverageTime       float64            `bson:"average_time" json:"average_time"`
	TopStrengths      []Strength         `bson:"top_strengths" json:"top_strengths"`
	CareerSuggestions []CareerSuggestion `bson:"career_suggestions" json:"career_suggestions"`
	Sample            bool               `bson:"sample" json:"sample"`
	CreatedAt         time.Time          `bson:"created_at" json:"created_at"`
}
