package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"assessment-service/internal/i18n"
	"assessment-service/internal/models"
	"assessment-service/internal/repository"

	"github.com/google/uuid"
)

// progressRetryLimit bounds the compare-and-swap loop in RecordAnswer.
// A session is driven by one client, so more than one retry means a
// duplicate network submission racing us.
const progressRetryLimit = 3

// SessionService owns the lifecycle of one assessment attempt. A
// session is mutated only through this API.
type SessionService struct {
	Store SessionStore
}

func NewSessionService(store SessionStore) *SessionService {
	return &SessionService{Store: store}
}

// Start creates a new active session for the user. Every call creates a
// new session; deduplicating concurrent starts is the caller's job. The
// language becomes the snapshot's preferred language.
func (s *SessionService) Start(ctx context.Context, userID, language string) (*models.Session, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}
	if !i18n.IsSupported(language) {
		language = i18n.DefaultLanguage
	}

	now := time.Now().UTC()
	session := &models.Session{
		UserID:       userID,
		SessionToken: uuid.NewString(),
		Status:       models.SessionStatusActive,
		DayNumber:    1,
		Progress:     models.NewProgressSnapshot(language),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	return session, nil
}

func (s *SessionService) Get(ctx context.Context, id string) (*models.Session, error) {
	session, err := s.Store.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	return session, nil
}

func (s *SessionService) ListByUser(ctx context.Context, userID string) ([]models.Session, error) {
	return s.Store.FindByUser(ctx, userID)
}

// RecordAnswer folds one answered question into the session's progress
// snapshot. The write is a compare-and-swap on the answered counter;
// on conflict the snapshot is re-read and reapplied, so concurrent
// duplicate submissions cannot lose updates. Counters are incremented
// after the answer is recorded; the caller checks its stopping
// condition before requesting the next question.
func (s *SessionService) RecordAnswer(ctx context.Context, sessionID string, rec models.AnswerRecord) (*models.ProgressSnapshot, error) {
	for attempt := 0; attempt < progressRetryLimit; attempt++ {
		session, err := s.Store.FindByID(ctx, sessionID)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("loading session: %w", err)
		}
		if session.Status != models.SessionStatusActive {
			return nil, ErrSessionCompleted
		}

		snapshot := session.Progress
		snapshot.ApplyAnswer(rec)

		err = s.Store.UpdateProgress(ctx, sessionID, session.Progress.Performance.TotalAnswered, snapshot)
		if errors.Is(err, repository.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("updating progress: %w", err)
		}
		return &snapshot, nil
	}
	return nil, fmt.Errorf("recording answer for session %s: %w", sessionID, repository.ErrVersionConflict)
}

// Complete transitions the session from active to completed and stamps
// the completion time. Completing twice fails with ErrSessionCompleted.
func (s *SessionService) Complete(ctx context.Context, sessionID string) (*models.Session, error) {
	session, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status == models.SessionStatusCompleted {
		return nil, ErrSessionCompleted
	}

	now := time.Now().UTC()
	err = s.Store.MarkCompleted(ctx, sessionID, now)
	if errors.Is(err, repository.ErrNotFound) {
		// The session was active a moment ago; a racing call completed it.
		return nil, ErrSessionCompleted
	}
	if err != nil {
		return nil, fmt.Errorf("completing session: %w", err)
	}

	session.Status = models.SessionStatusCompleted
	session.CompletedAt = &now
	session.UpdatedAt = now
	return session, nil
}
