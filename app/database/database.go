package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Ananya-1041/Prerana/app/models"
)

const opTimeout = 10 * time.Second

// Connect opens the Mongo client, verifies the connection, and returns the
// portal database. The handle is opened once at startup and passed to every
// component; call Disconnect on shutdown.
func Connect(ctx context.Context, uri, name string) (*mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client.Database(name), nil
}

// Disconnect closes the client behind the database handle.
func Disconnect(ctx context.Context, db *mongo.Database) error {
	return db.Client().Disconnect(ctx)
}

// EnsureIndexes creates the indexes the invariants depend on: principal ids
// unique within each role collection, and at most one timetable per class.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	for _, role := range []models.Role{models.RoleStudent, models.RoleTeacher, models.RoleAdmin} {
		_, err := db.Collection(role.Collection()).Indexes().CreateOne(opCtx, mongo.IndexModel{
			Keys:    bson.D{{Key: "principal_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return fmt.Errorf("index %s: %w", role.Collection(), err)
		}
	}

	_, err := db.Collection(models.KindTimetable.Collection()).Indexes().CreateOne(opCtx, mongo.IndexModel{
		Keys:    bson.D{{Key: "class", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("index timetables: %w", err)
	}
	return nil
}
