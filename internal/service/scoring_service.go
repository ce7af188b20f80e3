package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"assessment-service/internal/feedback"
	"assessment-service/internal/i18n"
	"assessment-service/internal/models"
	"assessment-service/internal/repository"
)

// ScoringService validates a submitted answer against the authored
// ground truth, persists it, updates the session's progress and derives
// the feedback category.
type ScoringService struct {
	Sessions  *SessionService
	Questions QuestionStore
	Answers   AnswerStore
}

func NewScoringService(sessions *SessionService, questions QuestionStore, answers AnswerStore) *ScoringService {
	return &ScoringService{
		Sessions:  sessions,
		Questions: questions,
		Answers:   answers,
	}
}

// SubmitInput carries everything the UI knows about one response. The
// language is the one active at submission time; it is a parameter,
// never engine state.
type SubmitInput struct {
	SessionID        string
	QuestionID       string
	OptionID         string
	TimeSpentSeconds float64
	ConfidenceLevel  int
	UsedHint         bool
	ChoseDontKnow    bool
	Language         string
}

// Submit records one answer. At most one answer may exist per question
// per session; a duplicate fails with ErrAlreadyAnswered and leaves the
// first answer and the progress snapshot untouched. Points are earned
// only when the selected option is correct.
func (s *ScoringService) Submit(ctx context.Context, in SubmitInput) (*models.Answer, feedback.Category, error) {
	session, err := s.Sessions.Get(ctx, in.SessionID)
	if err != nil {
		return nil, "", err
	}
	if session.Status != models.SessionStatusActive {
		return nil, "", ErrSessionCompleted
	}

	question, err := s.Questions.FindByID(ctx, in.QuestionID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, "", ErrQuestionNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("loading question: %w", err)
	}

	option := question.OptionByID(in.OptionID)
	if option == nil {
		return nil, "", ErrOptionNotFound
	}

	if _, err := s.Answers.FindBySessionAndQuestion(ctx, in.SessionID, in.QuestionID); err == nil {
		return nil, "", ErrAlreadyAnswered
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", fmt.Errorf("checking for prior answer: %w", err)
	}

	points := 0.0
	if option.IsCorrect {
		points = option.PointsValue
	}

	lang := in.Language
	if !i18n.IsSupported(lang) {
		lang = i18n.DefaultLanguage
	}

	answer := &models.Answer{
		SessionID:        in.SessionID,
		QuestionID:       in.QuestionID,
		SelectedOptionID: in.OptionID,
		TimeSpentMS:      int64(in.TimeSpentSeconds * 1000),
		UsedHint:         in.UsedHint,
		ConfidenceLevel:  in.ConfidenceLevel,
		ChoseDontKnow:    in.ChoseDontKnow,
		UserLanguage:     lang,
		IsCorrect:        option.IsCorrect,
		PointsEarned:     points,
		AnsweredAt:       time.Now().UTC(),
	}
	if err := s.Answers.Create(ctx, answer); err != nil {
		if errors.Is(err, repository.ErrDuplicateAnswer) {
			return nil, "", ErrAlreadyAnswered
		}
		return nil, "", fmt.Errorf("persisting answer: %w", err)
	}

	_, err = s.Sessions.RecordAnswer(ctx, in.SessionID, models.AnswerRecord{
		QuestionID:       in.QuestionID,
		SubjectID:        question.SubjectID,
		IsCorrect:        option.IsCorrect,
		TimeSpentSeconds: in.TimeSpentSeconds,
		InterestTags:     option.InterestTags,
	})
	if err != nil {
		return nil, "", fmt.Errorf("answer %s saved but progress update failed: %w", answer.ID, err)
	}

	category := feedback.Categorize(option.IsCorrect, in.TimeSpentSeconds, in.ChoseDontKnow)
	return answer, category, nil
}

// AnsweredQuestionIDs returns the ids of every question the session has
// already answered, for use as a selection exclusion set.
func (s *ScoringService) AnsweredQuestionIDs(ctx context.Context, sessionID string) ([]string, error) {
	answers, err := s.Answers.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("loading session answers: %w", err)
	}
	ids := make([]string, 0, len(answers))
	for _, a := range answers {
		ids = append(ids, a.QuestionID)
	}
	return ids, nil
}

// SessionAnswers returns every recorded answer for the session.
func (s *ScoringService) SessionAnswers(ctx context.Context, sessionID string) ([]models.Answer, error) {
	return s.Answers.FindBySession(ctx, sessionID)
}
