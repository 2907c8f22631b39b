package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StyleUsed is an immutable audit copy of the style sheet at generation time.
type StyleUsed struct {
	Tone  string `bson:"tone" json:"tone"`
	Voice string `bson:"voice" json:"voice"`
}

// Pitch is generated promotional text responding to a Query. Multiple
// pitches may exist per query; query_id is a soft reference.
type Pitch struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	QueryID   string             `bson:"query_id" json:"query_id"`
	Content   string             `bson:"content" json:"content"`
	StyleUsed StyleUsed          `bson:"style_used" json:"style_used"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
