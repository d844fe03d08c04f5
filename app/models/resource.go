package models

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ResourceKind discriminates the three catalog categories.
type ResourceKind string

const (
	KindStudyMaterial ResourceKind = "studymaterial"
	KindQuestionPaper ResourceKind = "questionpaper"
	KindTimetable     ResourceKind = "timetable"
)

// ParseKind accepts the kind path segment in singular or plural form.
func ParseKind(s string) (ResourceKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "studymaterial", "studymaterials", "materials":
		return KindStudyMaterial, nil
	case "questionpaper", "questionpapers", "papers":
		return KindQuestionPaper, nil
	case "timetable", "timetables":
		return KindTimetable, nil
	}
	return "", fmt.Errorf("unknown resource kind %q", s)
}

// Collection returns the collection backing this kind.
func (k ResourceKind) Collection() string {
	switch k {
	case KindStudyMaterial:
		return "study_materials"
	case KindQuestionPaper:
		return "question_papers"
	default:
		return "timetables"
	}
}

// RequiresSubject reports whether uploads of this kind must carry a subject.
func (k ResourceKind) RequiresSubject() bool {
	return k != KindTimetable
}

// ResourceRecord is the catalog metadata for one uploaded file. The raw
// bytes live in the blob store and are referenced by FilePath; removing a
// record does not cascade to the blob.
type ResourceRecord struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Kind       ResourceKind       `bson:"-" json:"kind,omitempty"`
	FileName   string             `bson:"file_name,omitempty" json:"file_name,omitempty"`
	Subject    string             `bson:"subject,omitempty" json:"subject,omitempty"`
	Class      string             `bson:"class" json:"class"`
	Year       string             `bson:"year,omitempty" json:"year,omitempty"`
	ExamType   string             `bson:"exam_type,omitempty" json:"exam_type,omitempty"`
	UploadDate time.Time          `bson:"upload_date" json:"upload_date"`
	FilePath   string             `bson:"file_path" json:"file_path"`

	// Derived at response time, never stored.
	DownloadURL string `bson:"-" json:"download_url,omitempty"`
	ViewURL     string `bson:"-" json:"view_url,omitempty"`
}

// AttachURLs derives the download and inline-view URLs from the blob path.
// Only PDFs go through the inline view endpoint; anything else views as a
// plain download.
func (r *ResourceRecord) AttachURLs() {
	name := filepath.Base(r.FilePath)
	r.DownloadURL = "/uploads/" + name
	if strings.EqualFold(filepath.Ext(name), ".pdf") {
		r.ViewURL = "/resources/view/" + name
	} else {
		r.ViewURL = r.DownloadURL
	}
}

// ResourceFilter is a set of optional equality predicates over catalog
// fields. An empty (or "All") value places no constraint on that field.
// None set means every record of the kind matches; Empty set means no
// record matches regardless of the other fields.
type ResourceFilter struct {
	Class   string
	Subject string
	Year    string
	Empty   bool
}
