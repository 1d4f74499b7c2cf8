package store

import "go.mongodb.org/mongo-driver/bson"

// Eq is a single exact-equality clause: field must equal value.
type Eq struct {
	Field string
	Value interface{}
}

// Filter is an ordered set of equality clauses, all of which must match.
// An empty filter matches every document in a collection.
type Filter []Eq

// Where returns a filter with a single equality clause.
func Where(field string, value interface{}) Filter {
	return Filter{{Field: field, Value: value}}
}

// And appends an equality clause to the filter.
func (f Filter) And(field string, value interface{}) Filter {
	return append(f, Eq{Field: field, Value: value})
}

// BSON converts the filter to the driver's document representation.
func (f Filter) BSON() bson.D {
	d := bson.D{}
	for _, eq := range f {
		d = append(d, bson.E{Key: eq.Field, Value: eq.Value})
	}
	return d
}
