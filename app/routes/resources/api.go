package resources

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Ananya-1041/Prerana/app/database"
	"github.com/Ananya-1041/Prerana/app/models"
	"github.com/Ananya-1041/Prerana/app/policy"
	"github.com/Ananya-1041/Prerana/app/storage"
)

// requestFilter reads the optional equality filters off the query string.
func requestFilter(c *fiber.Ctx) models.ResourceFilter {
	return models.ResourceFilter{
		Class:   c.Query("class"),
		Subject: c.Query("subject"),
		Year:    c.Query("year"),
	}
}

// attachURLs fills the derived URLs on every record of a listing.
func attachURLs(records []models.ResourceRecord) {
	for i := range records {
		records[i].AttachURLs()
	}
}

// ListResourcesAPI lists catalog records of one kind, newest upload first,
// narrowed by the optional class/subject/year filters ("All" disables one).
func ListResourcesAPI(c *fiber.Ctx, db *mongo.Database) error {
	kind, err := models.ParseKind(c.Params("kind"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown resource kind"})
	}

	filter := policy.Narrow(models.ResourceFilter{}, requestFilter(c))

	limit, _ := strconv.ParseInt(c.Query("limit"), 10, 64)
	records, err := database.QueryResources(c.Context(), db, kind, filter, limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch resources"})
	}
	attachURLs(records)

	return c.JSON(fiber.Map{
		"resources": records,
		"count":     len(records),
	})
}

// TimetableByClassAPI resolves the single timetable for a class.
func TimetableByClassAPI(c *fiber.Ctx, db *mongo.Database) error {
	rec, err := database.FindTimetable(c.Context(), db, c.Params("class"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Timetable not found for this class"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch timetable"})
	}
	rec.AttachURLs()
	return c.JSON(rec)
}

// TimetableClassesAPI lists the classes that currently have a timetable.
func TimetableClassesAPI(c *fiber.Ctx, db *mongo.Database) error {
	classes, err := database.DistinctValues(c.Context(), db, models.KindTimetable, "class")
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch timetable classes"})
	}
	return c.JSON(classes)
}

// ViewBlobAPI serves a stored blob inline. The portal stores PDFs, so the
// content type is set unconditionally; a missing blob is a 404 even when
// the catalog still references it.
func ViewBlobAPI(c *fiber.Ctx, store *storage.Store) error {
	name := c.Params("name")
	path, err := store.Path(name)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid file name"})
	}
	if !store.Exists(name) {
		return c.Status(404).JSON(fiber.Map{"error": "File not found"})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, "inline")
	return c.SendFile(path)
}
