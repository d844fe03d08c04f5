package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ananya-1041/Prerana/app/models"
)

func TestJWTRoundTrip(t *testing.T) {
	jwtSecret = []byte("test-secret")

	p := &models.Principal{
		PrincipalID: "S1001",
		Name:        "Asha",
		Role:        models.RoleStudent,
		Class:       "9",
	}

	token, err := GenerateJWT(p)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	assert.NoError(t, err)
	assert.Equal(t, "S1001", claims.PrincipalID)
	assert.Equal(t, models.RoleStudent, claims.Role)
	assert.Equal(t, "9", claims.Class)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	jwtSecret = []byte("test-secret")

	_, err := ValidateJWT("not-a-token")
	assert.Error(t, err)
}

func TestValidateJWTRejectsWrongKey(t *testing.T) {
	jwtSecret = []byte("key-one")
	token, err := GenerateJWT(&models.Principal{PrincipalID: "A1", Role: models.RoleAdmin})
	assert.NoError(t, err)

	jwtSecret = []byte("key-two")
	_, err = ValidateJWT(token)
	assert.Error(t, err)
}
