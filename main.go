package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/Ananya-1041/Prerana/app/config"
	"github.com/Ananya-1041/Prerana/app/database"
	"github.com/Ananya-1041/Prerana/app/routes/announcements"
	"github.com/Ananya-1041/Prerana/app/routes/auth"
	"github.com/Ananya-1041/Prerana/app/routes/contact"
	"github.com/Ananya-1041/Prerana/app/routes/events"
	"github.com/Ananya-1041/Prerana/app/routes/principals"
	"github.com/Ananya-1041/Prerana/app/routes/resources"
	"github.com/Ananya-1041/Prerana/app/routes/students"
	"github.com/Ananya-1041/Prerana/app/storage"
)

// errorHandler turns uncaught failures into the portal's JSON error shape.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}

func main() {
	cfg := config.Load()
	ctx := context.Background()

	// Open the store once; every component receives the handle.
	db, err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB: ", err)
	}
	defer database.Disconnect(ctx, db)
	log.Println("Connected to MongoDB")

	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatal("Failed to create indexes: ", err)
	}

	store, err := storage.New(cfg.UploadDir)
	if err != nil {
		log.Fatal("Failed to prepare upload directory: ", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Uploaded blobs are served statically from the flat uploads directory.
	app.Static("/uploads", store.Dir)

	// Routes
	auth.SetupAuthRoutes(app, db, cfg.JWTSecret)
	principals.SetupPrincipalRoutes(app, db)
	resources.SetupResourceRoutes(app, db, store)
	students.SetupStudentRoutes(app, db)
	announcements.SetupAnnouncementRoutes(app, db)
	events.SetupEventsRoutes(app, db)
	contact.SetupContactRoutes(app, db)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).JSON(fiber.Map{"error": "Not found"})
	})

	log.Println("Server starting on :" + cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
