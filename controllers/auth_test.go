package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) *http.Response {
	t.Helper()
	return doJSON(t, app, http.MethodPost, path, body)
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	app := fiber.New()
	app.Post("/api/auth/register", Register)

	resp := postJSON(t, app, "/api/auth/register", map[string]string{
		"email": "a@x.com",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Missing required fields", body["error"])
	assert.NotEmpty(t, body["details"])
}

func TestRegisterRejectsInvalidRole(t *testing.T) {
	app := fiber.New()
	app.Post("/api/auth/register", Register)

	for _, role := range []string{"admin", "superuser"} {
		resp := postJSON(t, app, "/api/auth/register", map[string]string{
			"name":     "A",
			"email":    "a@x.com",
			"password": "secret1",
			"role":     role,
		})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	}
}

func TestRegisterRejectsMalformedJSON(t *testing.T) {
	app := fiber.New()
	app.Post("/api/auth/register", Register)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLoginRejectsMissingCredentials(t *testing.T) {
	app := fiber.New()
	app.Post("/api/auth/login", Login)

	resp := postJSON(t, app, "/api/auth/login", map[string]string{
		"email": "a@x.com",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
