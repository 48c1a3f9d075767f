// internals/testutil/testutil.go
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"inventaris_backend/internals/configs"
	database "inventaris_backend/internals/databases"
)

const TestJWTSecret = "rahasia-test"

// NewTestDB membuat SQLite in-memory dengan skema lengkap.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("buka sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// NewTestApp membuat fiber.App dengan group /api siap dipasangi route.
func NewTestApp(t *testing.T, register func(api fiber.Router)) *fiber.App {
	t.Helper()

	configs.JWTSecret = TestJWTSecret

	app := fiber.New()
	api := app.Group("/api")
	register(api)
	return app
}

// SignToken menghasilkan JWT HS256 valid untuk endpoint mutasi.
func SignToken(t *testing.T) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub": "tester",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(TestJWTSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

// SignExpiredToken menghasilkan JWT yang sudah lewat masa berlakunya.
func SignExpiredToken(t *testing.T) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub": "tester",
		"exp": time.Now().Add(-time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(TestJWTSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

// DoJSON mengirim request (body opsional) dan mengembalikan status + body terurai.
func DoJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	out := map[string]interface{}{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil && err.Error() != "EOF" {
		t.Fatalf("decode body %s %s: %v", method, path, err)
	}
	return resp.StatusCode, out
}

// Data mengambil field data dari amplop response.
func Data(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()

	data, ok := body["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("data bukan objek: %v", body)
	}
	return data
}

// ListData mengambil data.data (baris list) dari amplop response.
func ListData(t *testing.T, body map[string]interface{}) []interface{} {
	t.Helper()

	rows, ok := Data(t, body)["data"].([]interface{})
	if !ok {
		t.Fatalf("data.data bukan array: %v", body)
	}
	return rows
}

// Pagination mengambil data.pagination dari amplop response.
func Pagination(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()

	p, ok := Data(t, body)["pagination"].(map[string]interface{})
	if !ok {
		t.Fatalf("data.pagination bukan objek: %v", body)
	}
	return p
}
