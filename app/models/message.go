package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Announcement is a dated notice shown on the public portal.
type Announcement struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title" validate:"required"`
	Date        time.Time          `bson:"date" json:"date" validate:"required"`
	Description string             `bson:"description" json:"description" validate:"required"`
}

// Event is a scheduled school event.
type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name" validate:"required"`
	Date        time.Time          `bson:"date" json:"date" validate:"required"`
	Time        string             `bson:"time" json:"time" validate:"required"`
	Description string             `bson:"description" json:"description" validate:"required"`
}

// ContactSubmission is one message sent through the contact form.
// Submissions are append-only and carry no scoping.
type ContactSubmission struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name" validate:"required"`
	Email     string             `bson:"email" json:"email" validate:"required,email"`
	Phone     string             `bson:"phone" json:"phone" validate:"required"`
	Subject   string             `bson:"subject" json:"subject" validate:"required"`
	Message   string             `bson:"message" json:"message" validate:"required"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}
