// Package selection draws the next question to present. Candidates are
// filtered in the application layer and drawn uniformly from an
// injected random source, so the policy is testable without a live
// store.
package selection

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"assessment-service/internal/i18n"
	"assessment-service/internal/models"
)

// ErrPoolExhausted reports that no eligible question remains outside
// the exclusion set. The caller must be told the assessment cannot
// continue as planned; exhaustion is never silent.
var ErrPoolExhausted = errors.New("question pool exhausted")

// QuestionSource is the slice of the persistence gateway the selector
// reads from.
type QuestionSource interface {
	FindIDs(ctx context.Context, excludeIDs []string) ([]string, error)
	FindByID(ctx context.Context, id string) (*models.Question, error)
}

// Selector picks one question at a time. It holds no per-session state;
// the caller supplies the exclusion set and decides when to stop asking.
type Selector struct {
	source QuestionSource

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSelector creates a selector over the given source. A nil rng gets
// a time-seeded source.
func NewSelector(source QuestionSource, rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{source: source, rng: rng}
}

// Next returns one question drawn uniformly from the pool minus
// excludeIDs, with display text resolved for lang.
func (s *Selector) Next(ctx context.Context, excludeIDs []string, lang string) (*models.Question, error) {
	ids, err := s.source.FindIDs(ctx, excludeIDs)
	if err != nil {
		return nil, fmt.Errorf("listing eligible questions: %w", err)
	}
	if len(ids) == 0 {
		return nil, ErrPoolExhausted
	}

	s.mu.Lock()
	id := ids[s.rng.Intn(len(ids))]
	s.mu.Unlock()

	question, err := s.source.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading question %s: %w", id, err)
	}

	i18n.LocalizeQuestion(question, lang)
	return question, nil
}
