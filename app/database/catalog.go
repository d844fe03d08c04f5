package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Ananya-1041/Prerana/app/models"
)

// filterQuery converts a ResourceFilter into a Mongo equality filter.
func filterQuery(f models.ResourceFilter) bson.M {
	q := bson.M{}
	if f.Class != "" {
		q["class"] = f.Class
	}
	if f.Subject != "" {
		q["subject"] = f.Subject
	}
	if f.Year != "" {
		q["year"] = f.Year
	}
	return q
}

// InsertResource appends a new catalog record. Study materials and
// question papers are history: duplicate subject/class uploads are allowed
// and simply accumulate.
func InsertResource(ctx context.Context, db *mongo.Database, kind models.ResourceKind, rec *models.ResourceRecord) error {
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if rec.UploadDate.IsZero() {
		rec.UploadDate = time.Now()
	}
	res, err := db.Collection(kind.Collection()).InsertOne(opCtx, rec)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		rec.ID = oid
	}
	rec.Kind = kind
	return nil
}

// UpsertTimetable replaces the timetable for a class, or creates it when
// absent. One atomic upsert keyed by class keeps the at-most-one-per-class
// invariant even under concurrent uploads; the unique class index backs it.
func UpsertTimetable(ctx context.Context, db *mongo.Database, class, filePath string) (*models.ResourceRecord, error) {
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	now := time.Now()
	after := options.After
	var rec models.ResourceRecord
	err := db.Collection(models.KindTimetable.Collection()).FindOneAndUpdate(opCtx,
		bson.M{"class": class},
		bson.M{
			"$set":         bson.M{"file_path": filePath, "upload_date": now},
			"$setOnInsert": bson.M{"class": class},
		},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(after),
	).Decode(&rec)
	if err != nil {
		return nil, err
	}
	rec.Kind = models.KindTimetable
	return &rec, nil
}

// QueryResources lists catalog records matching the filter, most recent
// upload first. A zero limit means no limit. An Empty filter short-circuits
// to no records without touching the store.
func QueryResources(ctx context.Context, db *mongo.Database, kind models.ResourceKind, filter models.ResourceFilter, limit int64) ([]models.ResourceRecord, error) {
	if filter.Empty {
		return []models.ResourceRecord{}, nil
	}

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	findOpts := options.Find().SetSort(bson.D{{Key: "upload_date", Value: -1}})
	if limit > 0 {
		findOpts.SetLimit(limit)
	}

	cursor, err := db.Collection(kind.Collection()).Find(opCtx, filterQuery(filter), findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(opCtx)

	records := []models.ResourceRecord{}
	for cursor.Next(opCtx) {
		var rec models.ResourceRecord
		if err := cursor.Decode(&rec); err != nil {
			return nil, err
		}
		rec.Kind = kind
		records = append(records, rec)
	}
	return records, cursor.Err()
}

// FindTimetable resolves the unique timetable for a class, if any.
func FindTimetable(ctx context.Context, db *mongo.Database, class string) (*models.ResourceRecord, error) {
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var rec models.ResourceRecord
	err := db.Collection(models.KindTimetable.Collection()).FindOne(opCtx, bson.M{"class": class}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	rec.Kind = models.KindTimetable
	return &rec, nil
}

// DistinctValues lists the distinct values a field takes across all records
// of a kind. Used to populate class pickers.
func DistinctValues(ctx context.Context, db *mongo.Database, kind models.ResourceKind, field string) ([]string, error) {
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	raw, err := db.Collection(kind.Collection()).Distinct(opCtx, field, bson.M{})
	if err != nil {
		return nil, err
	}
	values := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			values = append(values, s)
		}
	}
	return values, nil
}

// CountResources counts records of a kind matching the filter.
func CountResources(ctx context.Context, db *mongo.Database, kind models.ResourceKind, filter models.ResourceFilter) (int64, error) {
	if filter.Empty {
		return 0, nil
	}

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	return db.Collection(kind.Collection()).CountDocuments(opCtx, filterQuery(filter))
}
