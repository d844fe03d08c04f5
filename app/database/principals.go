package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/Ananya-1041/Prerana/app/models"
)

var (
	// ErrNotFound means the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict means an insert hit an existing id.
	ErrConflict = errors.New("record already exists")
	// ErrBadCredentials means the supplied password did not verify.
	ErrBadCredentials = errors.New("invalid credentials")
)

// hashPassword hashes a password using bcrypt.
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

// checkPasswordHash compares a candidate password against a stored hash.
func checkPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// CreatePrincipal stores a new principal with a hashed credential. Every
// role is hashed the same way, admins included. Returns ErrConflict when
// the id is already taken within the role.
func CreatePrincipal(ctx context.Context, db *mongo.Database, role models.Role, req *models.NewPrincipalRequest) (*models.Principal, error) {
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	p := &models.Principal{
		PrincipalID: req.ID,
		Password:    hash,
		Name:        req.Name,
		Role:        role,
		Class:       req.Class,
		Subject:     req.Subject,
		Phone:       req.Phone,
		CreatedAt:   time.Now(),
	}

	res, err := db.Collection(role.Collection()).InsertOne(opCtx, p)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return p, nil
}

// GetPrincipal fetches a principal by id within a role collection.
func GetPrincipal(ctx context.Context, db *mongo.Database, role models.Role, id string) (*models.Principal, error) {
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var p models.Principal
	err := db.Collection(role.Collection()).FindOne(opCtx, bson.M{"principal_id": id}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	p.Role = role
	return &p, nil
}

// VerifyCredential checks a password against the stored hash. The bcrypt
// comparison is constant-time for all roles.
func VerifyCredential(ctx context.Context, db *mongo.Database, role models.Role, id, password string) (*models.Principal, error) {
	p, err := GetPrincipal(ctx, db, role, id)
	if err != nil {
		return nil, err
	}
	if !checkPasswordHash(password, p.Password) {
		return nil, ErrBadCredentials
	}
	return p, nil
}

// ChangePassword replaces a principal's hash after proving the current
// password. Returns ErrBadCredentials when the proof fails.
func ChangePassword(ctx context.Context, db *mongo.Database, role models.Role, id, currentPassword, newPassword string) error {
	if _, err := VerifyCredential(ctx, db, role, id, currentPassword); err != nil {
		return err
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := db.Collection(role.Collection()).UpdateOne(opCtx,
		bson.M{"principal_id": id},
		bson.M{"$set": bson.M{"password": hash}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePrincipal removes a principal by id. Returns ErrNotFound when no
// record matched, leaving the collection unchanged.
func DeletePrincipal(ctx context.Context, db *mongo.Database, role models.Role, id string) error {
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := db.Collection(role.Collection()).DeleteOne(opCtx, bson.M{"principal_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// TouchLastLogin stamps an admin's last successful login.
func TouchLastLogin(ctx context.Context, db *mongo.Database, role models.Role, id string) error {
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := db.Collection(role.Collection()).UpdateOne(opCtx,
		bson.M{"principal_id": id},
		bson.M{"$set": bson.M{"last_login": time.Now()}},
	)
	return err
}
