package repository

import (
	"context"
	"errors"

	"assessment-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AnswerRepository struct {
	Col *mongo.Collection
}

func NewAnswerRepository(db *mongo.Database) *AnswerRepository {
	return &AnswerRepository{Col: db.Collection("answers")}
}

// EnsureIndexes installs the unique (session_id, question_id) index
// that backs the one-answer-per-question rule.
func (r *AnswerRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "session_id", Value: 1},
			{Key: "question_id", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *AnswerRepository) Create(ctx context.Context, answer *models.Answer) error {
	if answer.ID == "" {
		answer.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Col.InsertOne(ctx, answer)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateAnswer
	}
	return err
}

func (r *AnswerRepository) FindBySessionAndQuestion(ctx context.Context, sessionID, questionID string) (*models.Answer, error) {
	var answer models.Answer
	err := r.Col.FindOne(ctx, bson.M{"session_id": sessionID, "question_id": questionID}).Decode(&answer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *AnswerRepository) FindBySession(ctx context.Context, sessionID string) ([]models.Answer, error) {
	cur, err := r.Col.Find(ctx, bson.M{"session_id": sessionID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var answers []models.Answer
	for cur.Next(ctx) {
		var a models.Answer
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	return answers, cur.Err()
}
