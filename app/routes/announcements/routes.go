package announcements

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Ananya-1041/Prerana/app/database"
	"github.com/Ananya-1041/Prerana/app/models"
	"github.com/Ananya-1041/Prerana/app/routes/auth"
)

// SetupAnnouncementRoutes sets up announcement listing and admin CRUD.
// Announcements carry a stable id assigned at creation; deletion is by id,
// never by title.
func SetupAnnouncementRoutes(app *fiber.App, db *mongo.Database) {
	grp := app.Group("/announcements")
	grp.Get("/", func(c *fiber.Ctx) error { return GetAnnouncementsAPI(c, db) })

	admin := grp.Group("", auth.AuthMiddleware, auth.RequireRole(models.RoleAdmin))
	admin.Post("/", func(c *fiber.Ctx) error { return CreateAnnouncementAPI(c, db) })
	admin.Delete("/:id", func(c *fiber.Ctx) error { return DeleteAnnouncementAPI(c, db) })
}

// GetAnnouncementsAPI lists announcements, newest date first.
func GetAnnouncementsAPI(c *fiber.Ctx, db *mongo.Database) error {
	out, err := database.GetAnnouncements(c.Context(), db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch announcements"})
	}
	return c.JSON(out)
}

// CreateAnnouncementAPI adds an announcement; all fields are required.
func CreateAnnouncementAPI(c *fiber.Ctx, db *mongo.Database) error {
	var a models.Announcement
	if err := c.BodyParser(&a); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := models.Validate(&a); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "All fields are required"})
	}

	if err := database.CreateAnnouncement(c.Context(), db, &a); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to add announcement"})
	}
	return c.Status(201).JSON(fiber.Map{
		"message":      "Announcement added successfully",
		"announcement": a,
	})
}

// DeleteAnnouncementAPI removes an announcement by its id.
func DeleteAnnouncementAPI(c *fiber.Ctx, db *mongo.Database) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid announcement id"})
	}

	if err := database.DeleteAnnouncement(c.Context(), db, id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Announcement not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete announcement"})
	}
	return c.JSON(fiber.Map{"message": "Announcement deleted successfully"})
}
