package storage

import (
	"bytes"
	"io"
	"mime/multipart"
	"os"
	"strings"
	"testing"
)

// makeFileHeader builds a real multipart.FileHeader around some content.
func makeFileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := io.WriteString(part, content); err != nil {
		t.Fatal(err)
	}
	w.Close()

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["file"][0]
}

func TestSaveWritesBlob(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	path, err := store.Save(makeFileHeader(t, "notes.pdf", "pdf bytes"))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "pdf bytes" {
		t.Errorf("blob content = %q, want %q", data, "pdf bytes")
	}
	if !strings.HasSuffix(path, "-notes.pdf") {
		t.Errorf("blob path %q should end with the original name", path)
	}
}

func TestSaveNeverCollides(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	first, err := store.Save(makeFileHeader(t, "timetable.pdf", "v1"))
	if err != nil {
		t.Fatal(err)
	}
	second, err := store.Save(makeFileHeader(t, "timetable.pdf", "v2"))
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Errorf("same filename produced the same blob path %q", first)
	}
}

func TestPathRejectsTraversal(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"", "../secret", "a/b.pdf", "/etc/passwd"} {
		if _, err := store.Path(name); err == nil {
			t.Errorf("Path(%q) should be rejected", name)
		}
	}
}

func TestExists(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if store.Exists("missing.pdf") {
		t.Error("Exists() = true for a missing blob")
	}

	path, err := store.Save(makeFileHeader(t, "here.pdf", "x"))
	if err != nil {
		t.Fatal(err)
	}
	name := path[strings.LastIndex(path, string(os.PathSeparator))+1:]
	if !store.Exists(name) {
		t.Errorf("Exists(%q) = false after Save", name)
	}
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain.pdf", "plain.pdf"},
		{"with space.pdf", "with_space.pdf"},
		{"../../evil.pdf", "evil.pdf"},
		{"weird$chars!.pdf", "weird_chars_.pdf"},
		{"", "file"},
	}
	for _, tt := range tests {
		if got := sanitizeName(tt.in); got != tt.want {
			t.Errorf("sanitizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
