package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EmailDraft is a composed, not-yet-sent email combining intro, pitch and
// signature. Created with approved=false; updated_at is refreshed on each
// approval action.
type EmailDraft struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	QueryID   string             `bson:"query_id" json:"query_id"`
	ToEmail   string             `bson:"to_email" json:"to_email"`
	Subject   string             `bson:"subject" json:"subject"`
	Body      string             `bson:"body" json:"body"`
	Approved  bool               `bson:"approved" json:"approved"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time         `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
