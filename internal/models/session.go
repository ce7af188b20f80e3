package models

import "time"

const (
	SessionStatusActive    = "active"
	SessionStatusCompleted = "completed"
)

type Performance struct {
	TotalAnswered      int     `bson:"total_answered" json:"total_answered"`
	CorrectAnswers     int     `bson:"correct_answers" json:"correct_answers"`
	TotalTimeSeconds   float64 `bson:"total_time" json:"total_time"`
	AverageTimeSeconds float64 `bson:"average_time" json:"average_time"`
}

// ProgressSnapshot is the accumulating summary of a session's answers,
// embedded in the session record. QuestionsAnswered always equals
// Performance.TotalAnswered after an answer is applied.
type ProgressSnapshot struct {
	SubjectsTested    []string           `bson:"subjects_tested" json:"subjects_tested"`
	AbilityScores     map[string]float64 `bson:"ability_scores" json:"ability_scores"`
	InterestScores    map[string]float64 `bson:"interest_scores" json:"interest_scores"`
	QuestionsAnswered int                `bson:"questions_answered" json:"questions_answered"`
	PreferredLanguage string             `bson:"preferred_language" json:"preferred_language"`
	Performance       Performance        `bson:"performance" json:"performance"`
}

type Session struct {
	ID           string           `bson:"_id,omitempty" json:"id"`
	UserID       string           `bson:"user_id" json:"user_id"`
	SessionToken string           `bson:"session_token" json:"session_token"`
	Status       string           `bson:"status" json:"status"`
	DayNumber    int              `bson:"day_number" json:"day_number"`
	Progress     ProgressSnapshot `bson:"progress_data" json:"progress_data"`
	CreatedAt    time.Time        `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time        `bson:"updated_at" json:"updated_at"`
	CompletedAt  *time.Time       `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
}

// NewProgressSnapshot returns an empty snapshot for a session started in
// the given language.
func NewProgressSnapshot(language string) ProgressSnapshot {
	return ProgressSnapshot{
		SubjectsTested:    []string{},
		AbilityScores:     map[string]float64{},
		InterestScores:    map[string]float64{},
		PreferredLanguage: language,
	}
}

// AnswerRecord carries the facts about one answered question that the
// snapshot accumulates.
type AnswerRecord struct {
	QuestionID       string
	SubjectID        string
	IsCorrect        bool
	TimeSpentSeconds float64
	InterestTags     []string
}

// ApplyAnswer folds one answered question into the snapshot. The average
// is recomputed from the running totals, never stored independently.
func (p *ProgressSnapshot) ApplyAnswer(rec AnswerRecord) {
	p.QuestionsAnswered++

	p.Performance.TotalAnswered++
	if rec.IsCorrect {
		p.Performance.CorrectAnswers++
	}
	p.Performance.TotalTimeSeconds += rec.TimeSpentSeconds
	p.Performance.AverageTimeSeconds = p.Performance.TotalTimeSeconds / float64(p.Performance.TotalAnswered)

	if rec.SubjectID != "" {
		if !p.hasSubject(rec.SubjectID) {
			p.SubjectsTested = append(p.SubjectsTested, rec.SubjectID)
		}
		if p.AbilityScores == nil {
			p.AbilityScores = map[string]float64{}
		}
		if rec.IsCorrect {
			p.AbilityScores[rec.SubjectID]++
		} else if _, ok := p.AbilityScores[rec.SubjectID]; !ok {
			p.AbilityScores[rec.SubjectID] = 0
		}
	}

	if len(rec.InterestTags) > 0 {
		if p.InterestScores == nil {
			p.InterestScores = map[string]float64{}
		}
		for _, tag := range rec.InterestTags {
			p.InterestScores[tag]++
		}
	}
}

func (p *ProgressSnapshot) hasSubject(subjectID string) bool {
	for _, s := range p.SubjectsTested {
		if s == subjectID {
			return true
		}
	}
	return false
}
