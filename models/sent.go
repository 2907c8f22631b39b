package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SentRecord is the append-only audit record standing in for an actual
// email transmission. The message id carries a "sim-" prefix to make the
// simulated transport unmistakable.
type SentRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	DraftID   string             `bson:"draft_id" json:"draft_id"`
	To        string             `bson:"to" json:"to"`
	Subject   string             `bson:"subject" json:"subject"`
	Body      string             `bson:"body" json:"body"`
	MessageID string             `bson:"message_id" json:"message_id"`
	SentAt    time.Time          `bson:"sent_at" json:"sent_at"`
}
