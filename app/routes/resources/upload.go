package resources

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Ananya-1041/Prerana/app/database"
	"github.com/Ananya-1041/Prerana/app/models"
	"github.com/Ananya-1041/Prerana/app/storage"
)

// UploadResourceAPI accepts one file plus kind-specific metadata. The blob
// is persisted first; the catalog record is only written once the blob is
// safely on disk, so a failed upload never leaves a dangling record.
func UploadResourceAPI(c *fiber.Ctx, db *mongo.Database, store *storage.Store) error {
	kind, err := models.ParseKind(c.Params("kind"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown resource kind"})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "No file uploaded"})
	}

	class := c.FormValue("class")
	if class == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Class is required"})
	}

	subject := c.FormValue("subject")
	if kind.RequiresSubject() && subject == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Subject is required"})
	}

	blobPath, err := store.Save(file)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to store file"})
	}

	if kind == models.KindTimetable {
		rec, err := database.UpsertTimetable(c.Context(), db, class, blobPath)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to save timetable"})
		}
		rec.AttachURLs()
		return c.JSON(fiber.Map{
			"message":  "Timetable uploaded successfully",
			"resource": rec,
		})
	}

	rec := &models.ResourceRecord{
		FileName: file.Filename,
		Subject:  subject,
		Class:    class,
		Year:     c.FormValue("year"),
		ExamType: c.FormValue("type"),
		FilePath: blobPath,
	}
	if err := database.InsertResource(c.Context(), db, kind, rec); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Upload failed"})
	}
	rec.AttachURLs()

	msg := "Study material uploaded successfully"
	if kind == models.KindQuestionPaper {
		msg = "Question paper uploaded successfully"
	}
	return c.JSON(fiber.Map{
		"message":  msg,
		"resource": rec,
	})
}
