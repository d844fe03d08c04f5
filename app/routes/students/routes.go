package students

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupStudentRoutes sets up the student-facing, class-scoped views over
// the resource catalog.
func SetupStudentRoutes(app *fiber.App, db *mongo.Database) {
	grp := app.Group("/student/:id")
	grp.Get("/materials", func(c *fiber.Ctx) error { return StudentMaterialsAPI(c, db) })
	grp.Get("/papers", func(c *fiber.Ctx) error { return StudentPapersAPI(c, db) })
	grp.Get("/timetable", func(c *fiber.Ctx) error { return StudentTimetableAPI(c, db) })
	grp.Get("/summary", func(c *fiber.Ctx) error { return StudentSummaryAPI(c, db) })
}
