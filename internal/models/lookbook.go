package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// LookbookEntry is a seasonal editorial frame referencing products by slug.
// Collection: "lookbookentry". References are informational only.
type LookbookEntry struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Season       string             `bson:"season" json:"season"`
	Title        string             `bson:"title" json:"title"`
	Slug         string             `bson:"slug" json:"slug"`
	Image        string             `bson:"image" json:"image"`
	ProductSlugs []string           `bson:"product_slugs" json:"product_slugs"`
	Order        int                `bson:"order" json:"order"`
}

// Normalize applies creation-time defaults.
func (e *LookbookEntry) Normalize() {
	if e.ProductSlugs == nil {
		e.ProductSlugs = []string{}
	}
}
