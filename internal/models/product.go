package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Category enumerates the merchandising categories a product can belong to.
type Category string

const (
	CategoryNew         Category = "New"
	CategoryReadyToWear Category = "Ready-to-Wear"
	CategoryOccasion    Category = "Occasion"
	CategoryAtelier     Category = "Atelier"
)

// IsValid reports whether the category is one of the known values.
func (c Category) IsValid() bool {
	switch c {
	case CategoryNew, CategoryReadyToWear, CategoryOccasion, CategoryAtelier:
		return true
	}
	return false
}

// DefaultSizes is the size run applied when a product is created without one.
var DefaultSizes = []string{"XS", "S", "M", "L", "XL"}

// Product represents a sellable garment listing.
// Collection: "product". The store id is never serialized to clients.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Title       string             `bson:"title" json:"title"`
	Slug        string             `bson:"slug" json:"slug"`
	Description *string            `bson:"description,omitempty" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Category    Category           `bson:"category" json:"category"`
	Images      []string           `bson:"images" json:"images"`
	GLBURL      *string            `bson:"glb_url,omitempty" json:"glb_url"`
	Colorways   []string           `bson:"colorways" json:"colorways"`
	Sizes       []string           `bson:"sizes" json:"sizes"`
	CO2SavedKg  *float64           `bson:"co2_saved_kg,omitempty" json:"co2_saved_kg"`
	InStock     bool               `bson:"in_stock" json:"in_stock"`
}

// Normalize applies creation-time defaults for fields the client may omit.
func (p *Product) Normalize() {
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Colorways == nil {
		p.Colorways = []string{}
	}
	if p.Sizes == nil {
		p.Sizes = append([]string{}, DefaultSizes...)
	}
}
