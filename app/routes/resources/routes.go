package resources

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Ananya-1041/Prerana/app/models"
	"github.com/Ananya-1041/Prerana/app/routes/auth"
	"github.com/Ananya-1041/Prerana/app/storage"
)

// SetupResourceRoutes sets up catalog listing, upload, and blob viewing.
// Uploads are restricted to staff; reads are open like the rest of the
// portal.
func SetupResourceRoutes(app *fiber.App, db *mongo.Database, store *storage.Store) {
	grp := app.Group("/resources")

	// Specific paths first so ":kind" does not swallow them.
	grp.Get("/view/:name", func(c *fiber.Ctx) error { return ViewBlobAPI(c, store) })
	grp.Get("/timetable/classes", func(c *fiber.Ctx) error { return TimetableClassesAPI(c, db) })
	grp.Get("/timetable/:class", func(c *fiber.Ctx) error { return TimetableByClassAPI(c, db) })

	grp.Get("/:kind", func(c *fiber.Ctx) error { return ListResourcesAPI(c, db) })
	grp.Post("/:kind",
		auth.AuthMiddleware,
		auth.RequireRole(models.RoleAdmin, models.RoleTeacher),
		func(c *fiber.Ctx) error { return UploadResourceAPI(c, db, store) },
	)
}
