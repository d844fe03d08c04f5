package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Ananya-1041/Prerana/app/models"
)

const (
	announcementsCollection = "announcements"
	eventsCollection        = "events"
	contactCollection       = "contact_submissions"
)

// CreateAnnouncement adds a new announcement.
func CreateAnnouncement(ctx context.Context, db *mongo.Database, a *models.Announcement) error {
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := db.Collection(announcementsCollection).InsertOne(opCtx, a)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		a.ID = oid
	}
	return nil
}

// GetAnnouncements lists announcements, newest date first.
func GetAnnouncements(ctx context.Context, db *mongo.Database) ([]models.Announcement, error) {
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := db.Collection(announcementsCollection).Find(opCtx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(opCtx)

	out := []models.Announcement{}
	for cursor.Next(opCtx) {
		var a models.Announcement
		if err := cursor.Decode(&a); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, cursor.Err()
}

// DeleteAnnouncement deletes an announcement by its id.
func DeleteAnnouncement(ctx context.Context, db *mongo.Database, id primitive.ObjectID) error {
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := db.Collection(announcementsCollection).DeleteOne(opCtx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateEvent adds a new event.
func CreateEvent(ctx context.Context, db *mongo.Database, e *models.Event) error {
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := db.Collection(eventsCollection).InsertOne(opCtx, e)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		e.ID = oid
	}
	return nil
}

// GetEvents lists events in date order, soonest first.
func GetEvents(ctx context.Context, db *mongo.Database) ([]models.Event, error) {
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := db.Collection(eventsCollection).Find(opCtx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(opCtx)

	out := []models.Event{}
	for cursor.Next(opCtx) {
		var e models.Event
		if err := cursor.Decode(&e); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, cursor.Err()
}

// DeleteEvent deletes an event by its id.
func DeleteEvent(ctx context.Context, db *mongo.Database, id primitive.ObjectID) error {
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := db.Collection(eventsCollection).DeleteOne(opCtx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateContactSubmission appends one contact-form message.
func CreateContactSubmission(ctx context.Context, db *mongo.Database, s *models.ContactSubmission) error {
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if s.Timestamp.IsZero() {
		s.Timestamp = time.Now()
	}
	res, err := db.Collection(contactCollection).InsertOne(opCtx, s)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		s.ID = oid
	}
	return nil
}

// GetContactSubmissions lists submissions, newest first.
func GetContactSubmissions(ctx context.Context, db *mongo.Database) ([]models.ContactSubmission, error) {
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := db.Collection(contactCollection).Find(opCtx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(opCtx)

	out := []models.ContactSubmission{}
	for cursor.Next(opCtx) {
		var s models.ContactSubmission
		if err := cursor.Decode(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, cursor.Err()
}
