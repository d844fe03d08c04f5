package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role identifies which kind of portal account a principal holds.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// ParseRole normalizes a role string from a request path or body.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleStudent:
		return RoleStudent, nil
	case RoleTeacher:
		return RoleTeacher, nil
	case RoleAdmin:
		return RoleAdmin, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Collection returns the collection holding principals of this role.
// Principal ids are unique per role collection, not globally.
func (r Role) Collection() string {
	switch r {
	case RoleStudent:
		return "students"
	case RoleTeacher:
		return "teachers"
	default:
		return "admins"
	}
}

// Principal is a portal account: a student, teacher, or admin.
// Password always holds a bcrypt hash and is never serialized.
type Principal struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	PrincipalID string             `bson:"principal_id" json:"id" validate:"required"`
	Password    string             `bson:"password" json:"-"`
	Name        string             `bson:"name" json:"name" validate:"required"`
	Role        Role               `bson:"-" json:"role,omitempty"`
	Class       string             `bson:"class,omitempty" json:"class,omitempty"`     // students only
	Subject     string             `bson:"subject,omitempty" json:"subject,omitempty"` // teachers only
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
	LastLogin   *time.Time         `bson:"last_login,omitempty" json:"last_login,omitempty"` // admins only
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

// NewPrincipalRequest is the payload for creating a principal.
type NewPrincipalRequest struct {
	ID       string `json:"id" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
	Class    string `json:"class,omitempty"`
	Subject  string `json:"subject,omitempty"`
	Phone    string `json:"phone,omitempty"`
}
