package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Store is the document store adapter. All reads and writes are direct,
// synchronous operations against the backing MongoDB database; there is no
// caching, batching, or transaction handling at this layer.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// New creates a Store over the named database of an already-connected client.
func New(client *mongo.Client, database string) *Store {
	return &Store{client: client, db: client.Database(database)}
}

// Insert serializes the document and appends it to the named collection.
// It returns the store-generated identifier as an opaque hex string.
// No deduplication is performed; Insert always inserts.
func (s *Store) Insert(ctx context.Context, collection string, doc interface{}) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// Find returns all documents matching the equality filter in store-native
// order, truncated to limit when limit > 0, decoded into out (a pointer to a
// slice).
func (s *Store) Find(ctx context.Context, collection string, filter Filter, limit int64, out interface{}) error {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := s.db.Collection(collection).Find(ctx, filter.BSON(), opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, out)
}

// UpdateSet applies a partial field update to exactly one document identified
// by its internal id.
func (s *Store) UpdateSet(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid document id %q: %w", id, err)
	}
	_, err = s.db.Collection(collection).UpdateByID(ctx, oid, bson.M{"$set": bson.M(fields)})
	return err
}

// FindOrInsert atomically looks up one document matching the filter,
// inserting a document built from defaults when none exists. When the
// document already existed it is decoded into out and created is false; when
// it was just inserted, out is left untouched and created is true.
func (s *Store) FindOrInsert(ctx context.Context, collection string, filter Filter, defaults map[string]interface{}, out interface{}) (created bool, err error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.Before)
	res := s.db.Collection(collection).FindOneAndUpdate(ctx, filter.BSON(),
		bson.M{"$setOnInsert": bson.M(defaults)}, opts)
	if err := res.Decode(out); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}

// IncrementUpsert atomically increments a numeric field on the one document
// matching the filter, inserting a document built from defaults (plus the
// incremented field at delta) when none exists. found reports whether a
// document already existed; total is the post-increment value and is only
// meaningful when found is true.
func (s *Store) IncrementUpsert(ctx context.Context, collection string, filter Filter, defaults map[string]interface{}, field string, delta int64) (found bool, total int64, err error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.Before)
	res := s.db.Collection(collection).FindOneAndUpdate(ctx, filter.BSON(),
		bson.M{"$inc": bson.M{field: delta}, "$setOnInsert": bson.M(defaults)}, opts)

	var before bson.M
	if err := res.Decode(&before); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, 0, nil
		}
		return false, 0, err
	}
	return true, asInt64(before[field]) + delta, nil
}

// CollectionNames lists the collections known to the backing database.
func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.M{})
}

// Ping verifies connectivity to the backing database.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// asInt64 coerces the numeric representations BSON may hand back.
func asInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int32:
		return int64(n)
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	}
	return 0
}
