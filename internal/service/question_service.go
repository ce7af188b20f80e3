package service

import (
	"context"
	"fmt"

	"assessment-service/internal/models"
	"assessment-service/internal/repository"

	"github.com/google/uuid"
)

// QuestionService is the authoring surface for question content. The
// engine itself only ever reads questions.
type QuestionService struct {
	Repo *repository.QuestionRepository
}

func NewQuestionService(repo *repository.QuestionRepository) *QuestionService {
	return &QuestionService{Repo: repo}
}

func (s *QuestionService) ListQuestions(ctx context.Context) ([]models.Question, error) {
	return s.Repo.FindAll(ctx)
}

func (s *QuestionService) GetQuestion(ctx context.Context, id string) (*models.Question, error) {
	return s.Repo.FindByID(ctx, id)
}

// CreateQuestion validates well-formedness before saving: at least two
// options, exactly one of them correct, no negative points.
func (s *QuestionService) CreateQuestion(ctx context.Context, question *models.Question) error {
	if err := validateQuestion(question); err != nil {
		return err
	}
	for i := range question.Options {
		if question.Options[i].ID == "" {
			question.Options[i].ID = uuid.NewString()
		}
	}
	return s.Repo.Create(ctx, question)
}

func (s *QuestionService) UpdateQuestion(ctx context.Context, id string, update map[string]any) error {
	return s.Repo.Update(ctx, id, update)
}

func (s *QuestionService) DeleteQuestion(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func validateQuestion(q *models.Question) error {
	if len(q.Options) < 2 {
		return fmt.Errorf("question needs at least 2 options, got %d", len(q.Options))
	}
	correct := 0
	for _, opt := range q.Options {
		if opt.IsCorrect {
			correct++
		}
		if opt.PointsValue < 0 {
			return fmt.Errorf("option points must be non-negative, got %v", opt.PointsValue)
		}
	}
	if correct != 1 {
		return fmt.Errorf("question needs exactly 1 correct option, got %d", correct)
	}
	return nil
}
