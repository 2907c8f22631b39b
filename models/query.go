package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Query lifecycle states. Only "sent" is driven by this service (via the
// send simulator) and "ignored" by the deadline worker; the rest are
// reserved for external components.
const (
	QueryStatusNew      = "new"
	QueryStatusDrafted  = "drafted"
	QueryStatusApproved = "approved"
	QueryStatusSent     = "sent"
	QueryStatusIgnored  = "ignored"
)

// Query is a detected request for expert commentary, the unit of work
// flowing through the pipeline.
type Query struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Subject         string             `bson:"subject" json:"subject"`
	SenderEmail     string             `bson:"sender_email" json:"sender_email"`
	SenderName      string             `bson:"sender_name,omitempty" json:"sender_name,omitempty"`
	ReceivedAt      time.Time          `bson:"received_at" json:"received_at"`
	Deadline        *time.Time         `bson:"deadline,omitempty" json:"deadline,omitempty"`
	BodyText        string             `bson:"body_text" json:"body_text"`
	SourceMessageID string             `bson:"source_message_id,omitempty" json:"source_message_id,omitempty"`
	Status          string             `bson:"status" json:"status"`
	Tags            []string           `bson:"tags" json:"tags"`
	UpdatedAt       *time.Time         `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// DeadlineExpired reports whether the query's deadline has passed. Queries
// without a deadline never expire.
func (q Query) DeadlineExpired(now time.Time) bool {
	return q.Deadline != nil && q.Deadline.Before(now)
}
