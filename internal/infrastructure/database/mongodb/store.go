package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"loan-tracker/internal/pkg/apperrors"
	"loan-tracker/internal/pkg/docid"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is the slice of *mongo.Collection the store depends on,
// kept as an interface so repositories can be tested with mocks.
type Collection interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
}

// Store provides the generic create/read operations of the document
// store for one collection.
type Store[T any] struct {
	collection Collection
	name       string
	logger     *slog.Logger
}

func NewStore[T any](client *Client, name string, logger *slog.Logger) *Store[T] {
	return NewStoreWithCollection[T](client.Database.Collection(name), name, logger)
}

func NewStoreWithCollection[T any](collection Collection, name string, logger *slog.Logger) *Store[T] {
	return &Store[T]{
		collection: collection,
		name:       name,
		logger:     logger.With(slog.String("collection", name)),
	}
}

// Insert persists a document and returns its newly assigned identifier.
func (s *Store[T]) Insert(ctx context.Context, document T) (docid.ID, error) {
	result, err := s.collection.InsertOne(ctx, document)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to insert document", slog.Any("error", err))
		return docid.ID{}, apperrors.WrapStoreError(err, fmt.Sprintf("failed to insert into %s", s.name))
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return docid.ID{}, apperrors.WrapStoreError(
			fmt.Errorf("unexpected inserted id type %T", result.InsertedID),
			fmt.Sprintf("failed to insert into %s", s.name),
		)
	}

	id := docid.FromObjectID(oid)
	s.logger.DebugContext(ctx, "Inserted document", slog.String("id", id.Hex()))
	return id, nil
}

// Find returns all documents matching the filter, in store-defined
// order. The result is finite and fully materialized.
func (s *Store[T]) Find(ctx context.Context, filter bson.M) ([]T, error) {
	if filter == nil {
		filter = bson.M{}
	}

	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to query documents", slog.Any("error", err))
		return nil, apperrors.WrapStoreError(err, fmt.Sprintf("failed to query %s", s.name))
	}
	defer cursor.Close(ctx)

	var results []T
	for cursor.Next(ctx) {
		var entity T
		if err := cursor.Decode(&entity); err != nil {
			return nil, apperrors.WrapStoreError(err, fmt.Sprintf("failed to decode %s document", s.name))
		}
		results = append(results, entity)
	}
	if err := cursor.Err(); err != nil {
		return nil, apperrors.WrapStoreError(err, fmt.Sprintf("failed to iterate %s", s.name))
	}

	return results, nil
}

// FindByID resolves a document by the canonical string form of its
// identifier. Malformed input yields apperrors.ErrMalformedID and an
// unknown identifier apperrors.ErrNotFound; callers must not treat
// either as fatal.
func (s *Store[T]) FindByID(ctx context.Context, id string) (*T, error) {
	parsed, err := docid.Parse(id)
	if err != nil {
		s.logger.WarnContext(ctx, "Malformed document identifier", slog.String("id", id))
		return nil, err
	}

	var entity T
	err = s.collection.FindOne(ctx, bson.M{"_id": parsed.ObjectID()}).Decode(&entity)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: no %s document with id %s", apperrors.ErrNotFound, s.name, id)
		}
		s.logger.ErrorContext(ctx, "Failed to find document by id", slog.String("id", id), slog.Any("error", err))
		return nil, apperrors.WrapStoreError(err, fmt.Sprintf("failed to read %s", s.name))
	}

	return &entity, nil
}

// Count returns how many documents match the filter.
func (s *Store[T]) Count(ctx context.Context, filter bson.M) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}

	count, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, apperrors.WrapStoreError(err, fmt.Sprintf("failed to count %s", s.name))
	}
	return count, nil
}
