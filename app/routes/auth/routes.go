package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Ananya-1041/Prerana/app/models"
)

// SetupAuthRoutes sets up login, logout, and password-change routes.
func SetupAuthRoutes(app *fiber.App, db *mongo.Database, secret string) {
	jwtSecret = []byte(secret)

	grp := app.Group("/auth")
	grp.Post("/login", func(c *fiber.Ctx) error { return LoginAPI(c, db) })
	grp.Post("/logout", LogoutAPI)
	grp.Post("/change-password", func(c *fiber.Ctx) error { return ChangePasswordAPI(c, db) })
}

// AuthMiddleware validates the session token and sets the principal context.
func AuthMiddleware(c *fiber.Ctx) error {
	tokenString := c.Cookies("jwt_token")
	if tokenString == "" {
		header := c.Get("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			tokenString = strings.TrimPrefix(header, "Bearer ")
		}
	}
	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"error": "No token found"})
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
	}

	c.Locals("principal_id", claims.PrincipalID)
	c.Locals("role", claims.Role)
	c.Locals("class", claims.Class)
	return c.Next()
}

// RequireRole passes only principals holding one of the given roles.
func RequireRole(roles ...models.Role) fiber.Handler {
	allowed := make(map[models.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(models.Role)
		if _, ok := allowed[role]; !ok {
			return c.Status(403).JSON(fiber.Map{"error": "Forbidden"})
		}
		return c.Next()
	}
}
