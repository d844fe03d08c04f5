package events

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Ananya-1041/Prerana/app/database"
	"github.com/Ananya-1041/Prerana/app/models"
	"github.com/Ananya-1041/Prerana/app/routes/auth"
)

// SetupEventsRoutes sets up event listing and admin CRUD. Events carry a
// stable id assigned at creation; deletion is by id, never by name.
func SetupEventsRoutes(app *fiber.App, db *mongo.Database) {
	grp := app.Group("/events")
	grp.Get("/", func(c *fiber.Ctx) error { return GetEventsAPI(c, db) })

	admin := grp.Group("", auth.AuthMiddleware, auth.RequireRole(models.RoleAdmin))
	admin.Post("/", func(c *fiber.Ctx) error { return CreateEventAPI(c, db) })
	admin.Delete("/:id", func(c *fiber.Ctx) error { return DeleteEventAPI(c, db) })
}

// GetEventsAPI lists events in date order, soonest first.
func GetEventsAPI(c *fiber.Ctx, db *mongo.Database) error {
	out, err := database.GetEvents(c.Context(), db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch events"})
	}
	return c.JSON(out)
}

// CreateEventAPI adds an event; all fields are required.
func CreateEventAPI(c *fiber.Ctx, db *mongo.Database) error {
	var e models.Event
	if err := c.BodyParser(&e); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := models.Validate(&e); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "All fields are required"})
	}

	if err := database.CreateEvent(c.Context(), db, &e); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to add event"})
	}
	return c.Status(201).JSON(fiber.Map{
		"message": "Event added successfully",
		"event":   e,
	})
}

// DeleteEventAPI removes an event by its id.
func DeleteEventAPI(c *fiber.Ctx, db *mongo.Database) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid event id"})
	}

	if err := database.DeleteEvent(c.Context(), db, id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Event not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete event"})
	}
	return c.JSON(fiber.Map{"message": "Event deleted successfully"})
}
