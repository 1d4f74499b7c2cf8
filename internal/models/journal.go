package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// JournalPost is an editorial article. Collection: "journalpost".
type JournalPost struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Title   string             `bson:"title" json:"title"`
	Slug    string             `bson:"slug" json:"slug"`
	Cover   string             `bson:"cover" json:"cover"`
	Content *string            `bson:"content,omitempty" json:"content"`
}
