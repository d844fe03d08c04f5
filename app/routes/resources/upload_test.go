package resources

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ananya-1041/Prerana/app/storage"
)

// newTestApp wires the handlers without auth so validation paths can be
// exercised directly. Requests that fail validation never reach the store.
func newTestApp(t *testing.T) (*fiber.App, *storage.Store) {
	t.Helper()

	store, err := storage.New(t.TempDir())
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/resources/view/:name", func(c *fiber.Ctx) error { return ViewBlobAPI(c, store) })
	app.Get("/resources/:kind", func(c *fiber.Ctx) error { return ListResourcesAPI(c, nil) })
	app.Post("/resources/:kind", func(c *fiber.Ctx) error { return UploadResourceAPI(c, nil, store) })
	return app, store
}

// multipartBody builds a multipart payload from fields plus an optional file.
func multipartBody(t *testing.T, fields map[string]string, fileName string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileName != "" {
		part, err := w.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = io.WriteString(part, "%PDF-1.4 test")
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestUploadRejectsUnknownKind(t *testing.T) {
	app, _ := newTestApp(t)

	body, ctype := multipartBody(t, map[string]string{"class": "9"}, "x.pdf")
	req := httptest.NewRequest(http.MethodPost, "/resources/homework", body)
	req.Header.Set("Content-Type", ctype)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadRequiresFile(t *testing.T) {
	app, _ := newTestApp(t)

	body, ctype := multipartBody(t, map[string]string{"class": "9", "subject": "Math"}, "")
	req := httptest.NewRequest(http.MethodPost, "/resources/studymaterials", body)
	req.Header.Set("Content-Type", ctype)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadRequiresClass(t *testing.T) {
	app, _ := newTestApp(t)

	body, ctype := multipartBody(t, map[string]string{"subject": "Math"}, "notes.pdf")
	req := httptest.NewRequest(http.MethodPost, "/resources/studymaterials", body)
	req.Header.Set("Content-Type", ctype)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadRequiresSubjectForPapers(t *testing.T) {
	app, _ := newTestApp(t)

	body, ctype := multipartBody(t, map[string]string{"class": "9", "year": "2024"}, "paper.pdf")
	req := httptest.NewRequest(http.MethodPost, "/resources/questionpapers", body)
	req.Header.Set("Content-Type", ctype)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListRejectsUnknownKind(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/resources/homework", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestViewMissingBlobIs404(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/resources/view/gone.pdf", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestViewServesInlinePDF(t *testing.T) {
	app, store := newTestApp(t)

	require.NoError(t, os.WriteFile(filepath.Join(store.Dir, "doc.pdf"), []byte("%PDF-1.4"), 0o644))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/resources/view/doc.pdf", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Equal(t, "inline", resp.Header.Get("Content-Disposition"))
}
