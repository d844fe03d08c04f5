package students

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Ananya-1041/Prerana/app/database"
	"github.com/Ananya-1041/Prerana/app/models"
	"github.com/Ananya-1041/Prerana/app/policy"
)

// lookupStudent resolves the student behind a scoped request.
func lookupStudent(c *fiber.Ctx, db *mongo.Database) (*models.Principal, error) {
	return database.GetPrincipal(c.Context(), db, models.RoleStudent, c.Params("id"))
}

func requestFilter(c *fiber.Ctx) models.ResourceFilter {
	return models.ResourceFilter{
		Class:   c.Query("class"),
		Subject: c.Query("subject"),
		Year:    c.Query("year"),
	}
}

// StudentMaterialsAPI lists study materials visible to a student: exactly
// the records of the student's own class, newest first. An optional limit
// serves the recent-materials widget.
func StudentMaterialsAPI(c *fiber.Ctx, db *mongo.Database) error {
	student, err := lookupStudent(c, db)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}

	scope := policy.ScopeFor(models.KindStudyMaterial, student.Class)
	filter := policy.Narrow(scope, requestFilter(c))

	limit, _ := strconv.ParseInt(c.Query("limit"), 10, 64)
	records, err := database.QueryResources(c.Context(), db, models.KindStudyMaterial, filter, limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch study materials"})
	}
	for i := range records {
		records[i].AttachURLs()
	}

	return c.JSON(fiber.Map{
		"materials": records,
		"count":     len(records),
	})
}

// StudentPapersAPI lists question papers visible to a student. Papers are
// not scoped to the student's class: every paper is visible unless the
// request filters explicitly by class, subject, or year.
func StudentPapersAPI(c *fiber.Ctx, db *mongo.Database) error {
	student, err := lookupStudent(c, db)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}

	scope := policy.ScopeFor(models.KindQuestionPaper, student.Class)
	filter := policy.Narrow(scope, requestFilter(c))

	records, err := database.QueryResources(c.Context(), db, models.KindQuestionPaper, filter, 0)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch question papers"})
	}
	for i := range records {
		records[i].AttachURLs()
	}

	return c.JSON(fiber.Map{
		"papers": records,
		"count":  len(records),
	})
}

// StudentTimetableAPI resolves the timetable for the student's own class.
func StudentTimetableAPI(c *fiber.Ctx, db *mongo.Database) error {
	student, err := lookupStudent(c, db)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}

	rec, err := database.FindTimetable(c.Context(), db, student.Class)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Timetable not found for your class"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch timetable"})
	}
	rec.AttachURLs()
	return c.JSON(rec)
}

// StudentSummaryAPI returns the home-page counts: all question papers, and
// study materials for the student's class.
func StudentSummaryAPI(c *fiber.Ctx, db *mongo.Database) error {
	student, err := lookupStudent(c, db)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}

	papers, err := database.CountResources(c.Context(), db, models.KindQuestionPaper,
		policy.ScopeFor(models.KindQuestionPaper, student.Class))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch counts"})
	}
	materials, err := database.CountResources(c.Context(), db, models.KindStudyMaterial,
		policy.ScopeFor(models.KindStudyMaterial, student.Class))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch counts"})
	}

	return c.JSON(fiber.Map{
		"question_papers": papers,
		"study_materials": materials,
	})
}
