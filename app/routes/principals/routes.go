package principals

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Ananya-1041/Prerana/app/models"
	"github.com/Ananya-1041/Prerana/app/routes/auth"
)

// SetupPrincipalRoutes sets up principal management routes. Creation and
// deletion are admin operations; profile reads need any valid session.
func SetupPrincipalRoutes(app *fiber.App, db *mongo.Database) {
	grp := app.Group("/principal")
	grp.Get("/:role/:id", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		return GetPrincipalAPI(c, db)
	})

	admin := grp.Group("", auth.AuthMiddleware, auth.RequireRole(models.RoleAdmin))
	admin.Post("/:role", func(c *fiber.Ctx) error { return AddPrincipalAPI(c, db) })
	admin.Delete("/:role/:id", func(c *fiber.Ctx) error { return DeletePrincipalAPI(c, db) })
}
