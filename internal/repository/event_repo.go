// Package repository holds the MongoDB archive for analytics events.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"dumbuddy/internal/model"
)

// EventRepo persists analytics events so the admin dashboard survives
// process restarts. Room state is deliberately never stored here.
type EventRepo interface {
	Insert(ctx context.Context, event model.AnalyticsEvent) error
	Recent(ctx context.Context, limit int) ([]model.AnalyticsEvent, error)
}

type eventRepo struct {
	collection *mongo.Collection
}

// NewEventRepo creates an event repository on the given database.
func NewEventRepo(db *mongo.Database) EventRepo {
	return &eventRepo{
		collection: db.Collection("analytics_events"),
	}
}

func (r *eventRepo) Insert(ctx context.Context, event model.AnalyticsEvent) error {
	_, err := r.collection.InsertOne(ctx, event)
	return err
}

func (r *eventRepo) Recent(ctx context.Context, limit int) ([]model.AnalyticsEvent, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []model.AnalyticsEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}
