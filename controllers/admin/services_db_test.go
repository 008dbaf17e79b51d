package admin

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postService(t *testing.T, app *fiber.App, body interface{}) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/services", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestCreateServiceDuplicateNameCategory(t *testing.T) {
	mock := mockDB(t)

	mock.ExpectQuery(`INSERT INTO "services"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO "services"`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	app := fiber.New()
	app.Post("/api/services", CreateService)

	payload := map[string]string{
		"name":          "Pipe Repair",
		"category":      "Plumbing",
		"pricing_model": "hourly",
	}

	first := postService(t, app, payload)
	assert.Equal(t, fiber.StatusCreated, first.StatusCode)

	second := postService(t, app, payload)
	assert.Equal(t, fiber.StatusBadRequest, second.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(second.Body).Decode(&body))
	assert.Equal(t, "Service with this name and category already exists", body["error"])

	assert.NoError(t, mock.ExpectationsWereMet())
}
