package repository

import (
	"context"
	"errors"

	"assessment-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ReportRepository struct {
	Col *mongo.Collection
}

func NewReportRepository(db *mongo.Database) *ReportRepository {
	return &ReportRepository{Col: db.Collection("reports")}
}

func (r *ReportRepository) Create(ctx context.Context, report *models.Report) error {
	if report.ID == "" {
		report.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Col.InsertOne(ctx, report)
	return err
}

func (r *ReportRepository) FindBySession(ctx context.Context, sessionID string) (*models.Report, error) {
	var report models.Report
	err := r.Col.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&report)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *ReportRepository) FindByUser(ctx context.Context, userID string) ([]models.Report, error) {
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var reports []models.Report
	for cur.Next(ctx) {
		var rep models.Report
		if err := cur.Decode(&rep); err != nil {
			return nil, err
		}
		reports = append(reports, rep)
	}
	return reports, cur.Err()
}
