package v1

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stabtrack/database"
	"github.com/stabtrack/models"
	"github.com/stabtrack/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupAPI wires a test router against an in-memory sqlite database
func setupAPI(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.ScheduleTemplate{},
		&models.FTCycleTemplate{},
		&models.Product{},
		&models.Task{},
	))
	database.DB = db

	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"))
	return router
}

// authedUser creates an account and returns it with a valid bearer token
func authedUser(t *testing.T, email string) (models.User, string) {
	t.Helper()

	user := models.User{Email: email, Password: "irrelevant"}
	require.NoError(t, database.DB.Create(&user).Error)

	token, _, err := services.GenerateToken(user.ID, user.Email)
	require.NoError(t, err)

	return user, token
}

// doRequest performs a JSON request against the test router
func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a response body into a generic map
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// dataList pulls the "data" field out of an envelope as a list
func dataList(t *testing.T, w *httptest.ResponseRecorder) []interface{} {
	t.Helper()

	body := decodeBody(t, w)
	list, ok := body["data"].([]interface{})
	require.True(t, ok, "expected data to be a list, got %T", body["data"])
	return list
}

// dataObject pulls the "data" field out of an envelope as an object
func dataObject(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	body := decodeBody(t, w)
	obj, ok := body["data"].(map[string]interface{})
	require.True(t, ok, "expected data to be an object, got %T", body["data"])
	return obj
}
