package principals

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Ananya-1041/Prerana/app/database"
	"github.com/Ananya-1041/Prerana/app/models"
)

func parseRoleParam(c *fiber.Ctx) (models.Role, error) {
	role, err := models.ParseRole(c.Params("role"))
	if err != nil {
		return "", err
	}
	return role, nil
}

// AddPrincipalAPI creates a student, teacher, or admin account.
func AddPrincipalAPI(c *fiber.Ctx, db *mongo.Database) error {
	role, err := parseRoleParam(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown role"})
	}

	var req models.NewPrincipalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := models.Validate(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Id, password, and name are required"})
	}
	if role == models.RoleStudent && req.Class == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Class is required for students"})
	}
	if role == models.RoleTeacher && req.Subject == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Subject is required for teachers"})
	}

	p, err := database.CreatePrincipal(c.Context(), db, role, &req)
	if err != nil {
		if errors.Is(err, database.ErrConflict) {
			return c.Status(409).JSON(fiber.Map{
				"error": fmt.Sprintf("%s with this id already exists", role),
			})
		}
		return c.Status(500).JSON(fiber.Map{"error": fmt.Sprintf("Failed to add %s", role)})
	}

	return c.Status(201).JSON(fiber.Map{
		"message":   fmt.Sprintf("%s added successfully", role),
		"principal": p,
	})
}

// GetPrincipalAPI returns a principal's profile without the credential.
func GetPrincipalAPI(c *fiber.Ctx, db *mongo.Database) error {
	role, err := parseRoleParam(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown role"})
	}

	p, err := database.GetPrincipal(c.Context(), db, role, c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": fmt.Sprintf("%s not found", role)})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch account"})
	}

	return c.JSON(p)
}

// DeletePrincipalAPI removes a principal by id.
func DeletePrincipalAPI(c *fiber.Ctx, db *mongo.Database) error {
	role, err := parseRoleParam(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown role"})
	}

	id := c.Params("id")
	if err := database.DeletePrincipal(c.Context(), db, role, id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{
				"error": fmt.Sprintf("%s with id %s not found", role, id),
			})
		}
		return c.Status(500).JSON(fiber.Map{"error": fmt.Sprintf("Failed to delete %s", role)})
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("%s with id %s deleted successfully", role, id),
	})
}
