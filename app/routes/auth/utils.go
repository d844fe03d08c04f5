package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Ananya-1041/Prerana/app/models"
)

// jwtSecret is set once by SetupAuthRoutes.
var jwtSecret []byte

// Claims carries the principal identity inside a session token.
type Claims struct {
	PrincipalID string      `json:"principal_id"`
	Role        models.Role `json:"role"`
	Name        string      `json:"name"`
	Class       string      `json:"class,omitempty"`
	jwt.RegisteredClaims
}

// GenerateJWT signs a session token for a verified principal.
func GenerateJWT(p *models.Principal) (string, error) {
	claims := Claims{
		PrincipalID: p.PrincipalID,
		Role:        p.Role,
		Name:        p.Name,
		Class:       p.Class,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "prerana-portal",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ValidateJWT parses and verifies a session token.
func ValidateJWT(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrInvalidKey
}
