package contact

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitContactValidation(t *testing.T) {
	app := fiber.New()
	app.Post("/contact", func(c *fiber.Ctx) error { return SubmitContactAPI(c, nil) })

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "hello"},
		{name: "missing fields", body: `{"name":"Ravi"}`},
		{name: "bad email", body: `{"name":"Ravi","email":"not-an-email","phone":"123","subject":"Fees","message":"hi"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}
