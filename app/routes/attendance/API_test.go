package attendance

import (
	"database/sql"
	"encoding/json"
	"io"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nautical-institute/app/config"
	"nautical-institute/app/models"
)

func setupTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	config.AppConfig = &config.Config{DB: db}

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user", &models.User{
			ID:    "user-1",
			Roles: []*models.Role{{Name: models.RoleInstructor}},
		})
		return c.Next()
	})
	app.Post("/api/logbooks/:id/daily-log", SubmitDailyLogAPI)
	return app, mock
}

func postDailyLog(t *testing.T, app *fiber.App, body string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest("POST", "/api/logbooks/lb-1/daily-log", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

func TestSubmitDailyLogAPI_InvalidDate(t *testing.T) {
	app, mock := setupTestApp(t)

	status, body := postDailyLog(t, app, `{"date":"14/03/2024","content":"x","hours":"4"}`)

	assert.Equal(t, 400, status)
	assert.Contains(t, body["error"], "invalid date format")
	assert.NoError(t, mock.ExpectationsWereMet(), "no database calls expected")
}

func TestSubmitDailyLogAPI_NonNumericHours(t *testing.T) {
	app, mock := setupTestApp(t)

	status, body := postDailyLog(t, app, `{"date":"2024-03-14","content":"x","hours":"abc"}`)

	assert.Equal(t, 400, status)
	assert.Contains(t, body["error"], "hours must be a decimal number")
	assert.NoError(t, mock.ExpectationsWereMet(), "no database calls expected")
}

func TestSubmitDailyLogAPI_NegativeHours(t *testing.T) {
	app, mock := setupTestApp(t)

	status, body := postDailyLog(t, app, `{"date":"2024-03-14","content":"x","hours":"-1"}`)

	assert.Equal(t, 400, status)
	assert.Contains(t, body["error"], "hours must not be negative")
	assert.NoError(t, mock.ExpectationsWereMet(), "no database calls expected")
}

func TestSubmitDailyLogAPI_InvalidState(t *testing.T) {
	app, mock := setupTestApp(t)

	status, _ := postDailyLog(t, app,
		`{"date":"2024-03-14","content":"x","hours":"4","marks":[{"national_id":"1","state":"late"}]}`)

	assert.Equal(t, 400, status)
	assert.NoError(t, mock.ExpectationsWereMet(), "no database calls expected")
}

func TestSubmitDailyLogAPI_Success(t *testing.T) {
	app, mock := setupTestApp(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT status FROM logbooks`)).
		WithArgs("lb-1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("active"))
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM weekly_contents`)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO weekly_contents`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("week-1"))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO daily_contents`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("day-1"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT national_id FROM students WHERE national_id`)).
		WithArgs("30111222").
		WillReturnRows(sqlmock.NewRows([]string{"national_id"}).AddRow("30111222"))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO attendance_marks`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	status, body := postDailyLog(t, app,
		`{"date":"2024-03-14","content":"Buoyage systems","hours":"4","marks":[{"national_id":"30111222","state":"present"}]}`)

	assert.Equal(t, 200, status)
	result, ok := body["result"].(map[string]interface{})
	require.True(t, ok, "response should carry a result object")
	assert.Equal(t, "week-1", result["weekly_content_id"])
	assert.Equal(t, "day-1", result["daily_content_id"])
	assert.Equal(t, float64(1), result["marks_saved"])
	assert.Equal(t, float64(0), result["marks_skipped"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
