package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const keyField = "course_code"

func NewMongoClient(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(options.Client().
		ApplyURI(uri).
		SetBSONOptions(
			&options.BSONOptions{
				ObjectIDAsHexString: true,
			},
		))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, nil
}

// MongoStore stores records in one collection keyed by course_code.
type MongoStore[T Record] struct {
	collection *mongo.Collection
}

// NewMongoStore wraps collection and makes sure lookups by key are indexed.
func NewMongoStore[T Record](ctx context.Context, collection *mongo.Collection) (*MongoStore[T], error) {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: keyField, Value: 1},
			{Key: "created_at", Value: -1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create index on %s: %w", collection.Name(), err)
	}
	return &MongoStore[T]{collection: collection}, nil
}

func (s *MongoStore[T]) Put(ctx context.Context, record T) error {
	_, err := s.collection.InsertOne(ctx, record)
	return err
}

func (s *MongoStore[T]) Get(ctx context.Context, key string) (T, error) {
	var record T
	opts := options.FindOne().SetSort(bson.D{
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: -1},
	})
	err := s.collection.FindOne(ctx, bson.M{keyField: key}, opts).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return record, ErrNotFound
	}
	return record, err
}

func (s *MongoStore[T]) List(ctx context.Context) ([]T, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "created_at", Value: 1},
		{Key: "_id", Value: 1},
	})
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []T
	for cursor.Next(ctx) {
		var record T
		if err := cursor.Decode(&record); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, cursor.Err()
}
