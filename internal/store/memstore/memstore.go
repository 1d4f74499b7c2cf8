// Package memstore provides an in-memory document store double implementing
// the same operations as the MongoDB-backed adapter. It exists so that
// repository, service, and handler tests can run without a database; it is
// not wired into the server.
package memstore

import (
	"context"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/eclatdelune/lune_api/internal/store"
)

// Store holds documents per collection, in insertion order.
type Store struct {
	mu          sync.Mutex
	collections map[string][]bson.M

	// FailWith, when set, is returned by every operation. Used to exercise
	// degraded-store paths such as the health probe.
	FailWith error
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{collections: make(map[string][]bson.M)}
}

// Insert appends the document to the named collection and returns a generated
// object id as hex.
func (s *Store) Insert(ctx context.Context, collection string, doc interface{}) (string, error) {
	if s.FailWith != nil {
		return "", s.FailWith
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := toDoc(doc)
	if err != nil {
		return "", err
	}
	oid := primitive.NewObjectID()
	m["_id"] = oid
	s.collections[collection] = append(s.collections[collection], m)
	return oid.Hex(), nil
}

// Find decodes all documents matching the equality filter into out, in
// insertion order, truncated to limit when limit > 0.
func (s *Store) Find(ctx context.Context, collection string, filter store.Filter, limit int64, out interface{}) error {
	if s.FailWith != nil {
		return s.FailWith
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []bson.M
	for _, doc := range s.collections[collection] {
		if matches(doc, filter) {
			matched = append(matched, doc)
			if limit > 0 && int64(len(matched)) == limit {
				break
			}
		}
	}
	return decodeAll(matched, out)
}

// UpdateSet applies a partial field update to the document with the given id.
func (s *Store) UpdateSet(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	if s.FailWith != nil {
		return s.FailWith
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	for _, doc := range s.collections[collection] {
		if doc["_id"] == oid {
			for k, v := range fields {
				doc[k] = v
			}
			return nil
		}
	}
	return nil
}

// FindOrInsert mirrors the adapter's atomic find-or-provision primitive.
func (s *Store) FindOrInsert(ctx context.Context, collection string, filter store.Filter, defaults map[string]interface{}, out interface{}) (bool, error) {
	if s.FailWith != nil {
		return false, s.FailWith
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range s.collections[collection] {
		if matches(doc, filter) {
			return false, decodeOne(doc, out)
		}
	}
	m, err := toDoc(defaults)
	if err != nil {
		return false, err
	}
	m["_id"] = primitive.NewObjectID()
	s.collections[collection] = append(s.collections[collection], m)
	return true, nil
}

// IncrementUpsert mirrors the adapter's atomic increment-or-provision
// primitive.
func (s *Store) IncrementUpsert(ctx context.Context, collection string, filter store.Filter, defaults map[string]interface{}, field string, delta int64) (bool, int64, error) {
	if s.FailWith != nil {
		return false, 0, s.FailWith
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range s.collections[collection] {
		if matches(doc, filter) {
			total := asInt64(doc[field]) + delta
			doc[field] = total
			return true, total, nil
		}
	}
	m, err := toDoc(defaults)
	if err != nil {
		return false, 0, err
	}
	m["_id"] = primitive.NewObjectID()
	m[field] = delta
	s.collections[collection] = append(s.collections[collection], m)
	return false, 0, nil
}

// CollectionNames lists collections that have received at least one document.
func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	if s.FailWith != nil {
		return nil, s.FailWith
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	return names, nil
}

// Count returns the number of documents in a collection.
func (s *Store) Count(collection string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.collections[collection])
}

// toDoc normalizes any document or default-field map through a BSON round
// trip so stored values use driver-native types.
func toDoc(doc interface{}) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	// Strip a zero _id carried in from a model's omitted field.
	if oid, ok := m["_id"].(primitive.ObjectID); ok && oid.IsZero() {
		delete(m, "_id")
	}
	return m, nil
}

func matches(doc bson.M, filter store.Filter) bool {
	for _, eq := range filter {
		if !reflect.DeepEqual(normalize(doc[eq.Field]), normalize(eq.Value)) {
			return false
		}
	}
	return true
}

// normalize passes a value through a BSON round trip so typed strings and
// integer widths compare equal to their stored representation.
func normalize(v interface{}) interface{} {
	raw, err := bson.Marshal(bson.M{"v": v})
	if err != nil {
		return v
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return v
	}
	return m["v"]
}

func decodeOne(doc bson.M, out interface{}) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}

func decodeAll(docs []bson.M, out interface{}) error {
	slicev := reflect.ValueOf(out).Elem()
	result := reflect.MakeSlice(slicev.Type(), 0, len(docs))
	for _, doc := range docs {
		elem := reflect.New(slicev.Type().Elem())
		if err := decodeOne(doc, elem.Interface()); err != nil {
			return err
		}
		result = reflect.Append(result, elem.Elem())
	}
	slicev.Set(result)
	return nil
}

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
