package service

import (
	"context"
	"time"

	"assessment-service/internal/models"
)

// The engine talks to persistence through these narrow store contracts.
// The Mongo repositories implement them; tests substitute in-memory
// fakes.

type SessionStore interface {
	Create(ctx context.Context, session *models.Session) error
	FindByID(ctx context.Context, id string) (*models.Session, error)
	FindByUser(ctx context.Context, userID string) ([]models.Session, error)
	// UpdateProgress must fail with repository.ErrVersionConflict when
	// expectedAnswered no longer matches the stored counter.
	UpdateProgress(ctx context.Context, id string, expectedAnswered int, snapshot models.ProgressSnapshot) error
	// MarkCompleted must only match an active session.
	MarkCompleted(ctx context.Context, id string, at time.Time) error
}

type QuestionStore interface {
	FindByID(ctx context.Context, id string) (*models.Question, error)
}

type AnswerStore interface {
	Create(ctx context.Context, answer *models.Answer) error
	FindBySessionAndQuestion(ctx context.Context, sessionID, questionID string) (*models.Answer, error)
	FindBySession(ctx context.Context, sessionID string) ([]models.Answer, error)
}

type SubjectStore interface {
	FindByID(ctx context.Context, id string) (*models.Subject, error)
	FindActive(ctx context.Context) ([]models.Subject, error)
}

type ReportStore interface {
	Create(ctx context.Context, report *models.Report) error
	FindBySession(ctx context.Context, sessionID string) (*models.Report, error)
	FindByUser(ctx context.Context, userID string) ([]models.Report, error)
}
