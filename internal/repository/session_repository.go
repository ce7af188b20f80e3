package repository

import (
	"context"
	"errors"
	"time"

	"assessment-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type SessionRepository struct {
	Col *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{Col: db.Collection("sessions")}
}

// Create inserts the session, generating its opaque id.
func (r *SessionRepository) Create(ctx context.Context, session *models.Session) error {
	if session.ID == "" {
		session.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Col.InsertOne(ctx, session)
	return err
}

func (r *SessionRepository) FindByID(ctx context.Context, id string) (*models.Session, error) {
	var session models.Session
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// UpdateProgress writes the snapshot back only if no other submission
// landed since it was read. The filter on the answered counter makes
// the read-modify-write a compare-and-swap; a miss returns
// ErrVersionConflict so the caller can re-read and retry.
func (r *SessionRepository) UpdateProgress(ctx context.Context, id string, expectedAnswered int, snapshot models.ProgressSnapshot) error {
	res, err := r.Col.UpdateOne(ctx,
		bson.M{
			"_id": id,
			"progress_data.performance.total_answered": expectedAnswered,
		},
		bson.M{"$set": bson.M{
			"progress_data": snapshot,
			"updated_at":    time.Now().UTC(),
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrVersionConflict
	}
	return nil
}

// MarkCompleted flips an active session to completed. The status filter
// makes completion one-way at the storage layer; a miss returns
// ErrNotFound, which the caller disambiguates against the session's
// current status.
func (r *SessionRepository) MarkCompleted(ctx context.Context, id string, at time.Time) error {
	res, err := r.Col.UpdateOne(ctx,
		bson.M{"_id": id, "status": models.SessionStatusActive},
		bson.M{"$set": bson.M{
			"status":       models.SessionStatusCompleted,
			"completed_at": at,
			"updated_at":   at,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SessionRepository) FindByUser(ctx context.Context, userID string) ([]models.Session, error) {
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var sessions []models.Session
	for cur.Next(ctx) {
		var s models.Session
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, cur.Err()
}
