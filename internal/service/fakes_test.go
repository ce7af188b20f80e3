package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"assessment-service/internal/models"
	"assessment-service/internal/repository"
)

// In-memory stores standing in for the Mongo repositories. They honor
// the same error contracts, including the compare-and-swap on the
// progress counter and the unique (session, question) constraint.

type memSessionStore struct {
	mu       sync.Mutex
	sessions map[string]*models.Session

	// beforeUpdate runs once at the start of the next UpdateProgress,
	// letting tests interleave a competing write.
	beforeUpdate func()
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]*models.Session)}
}

func (m *memSessionStore) Create(_ context.Context, session *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if session.ID == "" {
		session.ID = fmt.Sprintf("sess-%d", len(m.sessions)+1)
	}
	m.sessions[session.ID] = cloneSession(session)
	return nil
}

func (m *memSessionStore) FindByID(_ context.Context, id string) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneSession(session), nil
}

func (m *memSessionStore) FindByUser(_ context.Context, userID string) ([]models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Session
	for _, s := range m.sessions {
		if s.UserID == userID {
			out = append(out, *cloneSession(s))
		}
	}
	return out, nil
}

func (m *memSessionStore) UpdateProgress(_ context.Context, id string, expectedAnswered int, snapshot models.ProgressSnapshot) error {
	if hook := m.takeHook(); hook != nil {
		hook()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[id]
	if !ok {
		return repository.ErrNotFound
	}
	if session.Progress.Performance.TotalAnswered != expectedAnswered {
		return repository.ErrVersionConflict
	}
	session.Progress = *cloneSnapshot(&snapshot)
	session.UpdatedAt = time.Now().UTC()
	return nil
}

func (m *memSessionStore) MarkCompleted(_ context.Context, id string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[id]
	if !ok || session.Status != models.SessionStatusActive {
		return repository.ErrNotFound
	}
	session.Status = models.SessionStatusCompleted
	session.CompletedAt = &at
	session.UpdatedAt = at
	return nil
}

func (m *memSessionStore) takeHook() func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	hook := m.beforeUpdate
	m.beforeUpdate = nil
	return hook
}

func cloneSession(s *models.Session) *models.Session {
	out := *s
	out.Progress = *cloneSnapshot(&s.Progress)
	if s.CompletedAt != nil {
		at := *s.CompletedAt
		out.CompletedAt = &at
	}
	return &out
}

func cloneSnapshot(p *models.ProgressSnapshot) *models.ProgressSnapshot {
	out := *p
	out.SubjectsTested = append([]string(nil), p.SubjectsTested...)
	out.AbilityScores = make(map[string]float64, len(p.AbilityScores))
	for k, v := range p.AbilityScores {
		out.AbilityScores[k] = v
	}
	out.InterestScores = make(map[string]float64, len(p.InterestScores))
	for k, v := range p.InterestScores {
		out.InterestScores[k] = v
	}
	return &out
}

type memQuestionStore struct {
	questions map[string]*models.Question
}

func newMemQuestionStore(questions ...*models.Question) *memQuestionStore {
	store := &memQuestionStore{questions: make(map[string]*models.Question)}
	for _, q := range questions {
		store.questions[q.ID] = q
	}
	return store
}

func (m *memQuestionStore) FindByID(_ context.Context, id string) (*models.Question, error) {
	q, ok := m.questions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *q
	out.Options = append([]models.Option(nil), q.Options...)
	return &out, nil
}

type memAnswerStore struct {
	mu      sync.Mutex
	answers []models.Answer
}

func newMemAnswerStore() *memAnswerStore { return &memAnswerStore{} }

func (m *memAnswerStore) Create(_ context.Context, answer *models.Answer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.answers {
		if a.SessionID == answer.SessionID && a.QuestionID == answer.QuestionID {
			return repository.ErrDuplicateAnswer
		}
	}
	if answer.ID == "" {
		answer.ID = fmt.Sprintf("ans-%d", len(m.answers)+1)
	}
	m.answers = append(m.answers, *answer)
	return nil
}

func (m *memAnswerStore) FindBySessionAndQuestion(_ context.Context, sessionID, questionID string) (*models.Answer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.answers {
		if a.SessionID == sessionID && a.QuestionID == questionID {
			out := a
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memAnswerStore) FindBySession(_ context.Context, sessionID string) ([]models.Answer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Answer
	for _, a := range m.answers {
		if a.SessionID == sessionID {
			out = append(out, a)
		}
	}
	return out, nil
}

type memSubjectStore struct {
	subjects map[string]*models.Subject
}

func newMemSubjectStore(subjects ...*models.Subject) *memSubjectStore {
	store := &memSubjectStore{subjects: make(map[string]*models.Subject)}
	for _, s := range subjects {
		store.subjects[s.ID] = s
	}
	return store
}

func (m *memSubjectStore) FindByID(_ context.Context, id string) (*models.Subject, error) {
	s, ok := m.subjects[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return s, nil
}

func (m *memSubjectStore) FindActive(_ context.Context) ([]models.Subject, error) {
	var out []models.Subject
	for _, s := range m.subjects {
		if s.IsActive {
			out = append(out, *s)
		}
	}
	return out, nil
}

type memReportStore struct {
	mu      sync.Mutex
	reports []models.Report
}

func newMemReportStore() *memReportStore { return &memReportStore{} }

func (m *memReportStore) Create(_ context.Context, report *models.Report) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if report.ID == "" {
		report.ID = fmt.Sprintf("rep-%d", len(m.reports)+1)
	}
	m.reports = append(m.reports, *report)
	return nil
}

func (m *memReportStore) FindBySession(_ context.Context, sessionID string) (*models.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.reports {
		if r.SessionID == sessionID {
			out := r
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memReportStore) FindByUser(_ context.Context, userID string) ([]models.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Report
	for _, r := range m.reports {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}
