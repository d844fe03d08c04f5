package contact

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Ananya-1041/Prerana/app/database"
	"github.com/Ananya-1041/Prerana/app/models"
	"github.com/Ananya-1041/Prerana/app/routes/auth"
)

// SetupContactRoutes sets up the public contact form and the admin view of
// its submissions.
func SetupContactRoutes(app *fiber.App, db *mongo.Database) {
	app.Post("/contact", func(c *fiber.Ctx) error { return SubmitContactAPI(c, db) })
	app.Get("/contact/submissions",
		auth.AuthMiddleware,
		auth.RequireRole(models.RoleAdmin),
		func(c *fiber.Ctx) error { return GetSubmissionsAPI(c, db) },
	)
}

// SubmitContactAPI appends one contact-form message.
func SubmitContactAPI(c *fiber.Ctx, db *mongo.Database) error {
	var s models.ContactSubmission
	if err := c.BodyParser(&s); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := models.Validate(&s); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "All fields are required"})
	}

	if err := database.CreateContactSubmission(c.Context(), db, &s); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to send message"})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Message sent successfully"})
}

// GetSubmissionsAPI lists contact submissions, newest first.
func GetSubmissionsAPI(c *fiber.Ctx, db *mongo.Database) error {
	out, err := database.GetContactSubmissions(c.Context(), db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch contact submissions"})
	}
	return c.JSON(out)
}
