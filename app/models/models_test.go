package models

import "testing"

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    ResourceKind
		wantErr bool
	}{
		{in: "studymaterial", want: KindStudyMaterial},
		{in: "studymaterials", want: KindStudyMaterial},
		{in: "materials", want: KindStudyMaterial},
		{in: "QuestionPapers", want: KindQuestionPaper},
		{in: "papers", want: KindQuestionPaper},
		{in: "timetable", want: KindTimetable},
		{in: " timetables ", want: KindTimetable},
		{in: "homework", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseKind(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseKind(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseRole(t *testing.T) {
	for in, want := range map[string]Role{
		"student": RoleStudent,
		"Teacher": RoleTeacher,
		" admin ": RoleAdmin,
	} {
		got, err := ParseRole(in)
		if err != nil || got != want {
			t.Errorf("ParseRole(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseRole("parent"); err == nil {
		t.Error("ParseRole(\"parent\") should fail")
	}
}

func TestRoleCollections(t *testing.T) {
	if RoleStudent.Collection() == RoleTeacher.Collection() ||
		RoleTeacher.Collection() == RoleAdmin.Collection() {
		t.Error("role collections must be distinct: ids are unique per role, not globally")
	}
}

func TestRequiresSubject(t *testing.T) {
	if !KindStudyMaterial.RequiresSubject() || !KindQuestionPaper.RequiresSubject() {
		t.Error("materials and papers require a subject")
	}
	if KindTimetable.RequiresSubject() {
		t.Error("timetables carry no subject")
	}
}

func TestAttachURLs(t *testing.T) {
	pdf := ResourceRecord{FilePath: "uploads/abc-notes.PDF"}
	pdf.AttachURLs()
	if pdf.DownloadURL != "/uploads/abc-notes.PDF" {
		t.Errorf("DownloadURL = %q", pdf.DownloadURL)
	}
	if pdf.ViewURL != "/resources/view/abc-notes.PDF" {
		t.Errorf("ViewURL = %q, want the inline view endpoint for PDFs", pdf.ViewURL)
	}

	img := ResourceRecord{FilePath: "uploads/abc-diagram.png"}
	img.AttachURLs()
	if img.ViewURL != img.DownloadURL {
		t.Errorf("non-PDF ViewURL = %q, want the download URL %q", img.ViewURL, img.DownloadURL)
	}
}
