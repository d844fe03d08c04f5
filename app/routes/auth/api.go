package auth

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Ananya-1041/Prerana/app/database"
	"github.com/Ananya-1041/Prerana/app/models"
)

// LoginAPI verifies a principal's password and issues a session token.
func LoginAPI(c *fiber.Ctx, db *mongo.Database) error {
	type LoginRequest struct {
		Role     string `json:"role"`
		ID       string `json:"id"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.ID == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Id and password are required"})
	}

	role, err := models.ParseRole(req.Role)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown role"})
	}

	p, err := database.VerifyCredential(c.Context(), db, role, req.ID, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrNotFound):
			return c.Status(404).JSON(fiber.Map{"error": "Account not found"})
		case errors.Is(err, database.ErrBadCredentials):
			return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Login failed"})
	}

	if role == models.RoleAdmin {
		// Login stands even if the stamp fails.
		_ = database.TouchLastLogin(c.Context(), db, role, p.PrincipalID)
	}

	token, err := GenerateJWT(p)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"role":    p.Role,
		"id":      p.PrincipalID,
	})
}

// LogoutAPI clears the session cookie.
func LogoutAPI(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.JSON(fiber.Map{"message": "Logged out"})
}

// ChangePasswordAPI replaces a principal's password after proving the
// current one.
func ChangePasswordAPI(c *fiber.Ctx, db *mongo.Database) error {
	type ChangePasswordRequest struct {
		Role            string `json:"role"`
		ID              string `json:"id"`
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.ID == "" || req.CurrentPassword == "" || req.NewPassword == "" {
		return c.Status(400).JSON(fiber.Map{"error": "All fields are required"})
	}

	role, err := models.ParseRole(req.Role)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown role"})
	}

	err = database.ChangePassword(c.Context(), db, role, req.ID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrNotFound):
			return c.Status(404).JSON(fiber.Map{"error": "Account not found"})
		case errors.Is(err, database.ErrBadCredentials):
			return c.Status(401).JSON(fiber.Map{"error": "Current password is incorrect"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to change password"})
	}

	return c.JSON(fiber.Map{"message": "Password updated successfully"})
}
