package service

import (
	"context"

	"assessment-service/internal/models"
)

type SubjectService struct {
	Store SubjectStore
}

func NewSubjectService(store SubjectStore) *SubjectService {
	return &SubjectService{Store: store}
}

// GetAllActiveSubjects returns the subjects questions may belong to.
func (s *SubjectService) GetAllActiveSubjects(ctx context.Context) ([]models.Subject, error) {
	return s.Store.FindActive(ctx)
}

func (s *SubjectService) GetSubjectByID(ctx context.Context, id string) (*models.Subject, error) {
	return s.Store.FindByID(ctx, id)
}
