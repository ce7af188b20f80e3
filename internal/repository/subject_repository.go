package repository

import (
	"context"
	"errors"

	"assessment-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type SubjectRepository struct {
	Col *mongo.Collection
}

func NewSubjectRepository(db *mongo.Database) *SubjectRepository {
	return &SubjectRepository{Col: db.Collection("subjects")}
}

func (r *SubjectRepository) FindByID(ctx context.Context, id string) (*models.Subject, error) {
	var subject models.Subject
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&subject)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &subject, nil
}

func (r *SubjectRepository) FindActive(ctx context.Context) ([]models.Subject, error) {
	cur, err := r.Col.Find(ctx, bson.M{"is_active": true})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var subjects []models.Subject
	for cur.Next(ctx) {
		var subject models.Subject
		if err := cur.Decode(&subject); err != nil {
			return nil, err
		}
		subjects = append(subjects, subject)
	}
	return subjects, cur.Err()
}
