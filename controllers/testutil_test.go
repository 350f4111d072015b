package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/erickhangati/JobApplicationApp/auth"
	"github.com/erickhangati/JobApplicationApp/models"
)

const testPassword = "test1234"

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	tokens *auth.TokenManager
}

// newTestEnv builds a router over a fresh in-memory database. TEST_DB_URL
// overrides the DSN; by default each test gets its own named shared-cache
// sqlite database so gorm's pooled connections see the same data.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := os.Getenv("TEST_DB_URL")
	if dsn == "" {
		name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
		dsn = fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := models.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM applied_jobs")
		db.Exec("DELETE FROM jobs")
		db.Exec("DELETE FROM users")
	})

	tokens := auth.NewTokenManager("test-secret-key", time.Hour)
	return &testEnv{
		router: NewRouter(db, tokens),
		db:     db,
		tokens: tokens,
	}
}

func (e *testEnv) createUser(t *testing.T, username, email string, role models.Role) *models.User {
	t.Helper()

	hashed, err := auth.HashPassword(testPassword)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := models.User{
		FirstName:      "Jane",
		LastName:       "Doe",
		Username:       username,
		Email:          email,
		HashedPassword: hashed,
		Role:           role,
	}
	if err := e.db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return &user
}

func (e *testEnv) createJob(t *testing.T) *models.Job {
	t.Helper()

	expiry := time.Now().UTC().Add(30 * 24 * time.Hour)
	job := models.Job{
		Title:           "Test Job",
		Description:     "Test Description",
		Company:         "Test Company",
		Location:        "Test Location",
		MinSalary:       10000,
		MaxSalary:       12000,
		MedSalary:       11000,
		PayPeriod:       "Monthly",
		ListedTime:      time.Now().UTC(),
		Expiry:          &expiry,
		RemoteAllowed:   true,
		ApplicationType: "Online",
		ExperienceLevel: "Mid-Level",
		SkillsDesc:      "Go, gin, gorm",
		WorkType:        "FULL_TIME",
		Currency:        "USD",
	}
	if err := e.db.Create(&job).Error; err != nil {
		t.Fatalf("failed to create test job: %v", err)
	}
	return &job
}

func (e *testEnv) token(t *testing.T, user *models.User) string {
	t.Helper()

	token, err := e.tokens.Create(user.ID, user.Username, string(user.Role))
	if err != nil {
		t.Fatalf("failed to create token: %v", err)
	}
	return token
}

// ghostToken returns a valid token for a user that does not exist in the
// database.
func (e *testEnv) ghostToken(t *testing.T) string {
	t.Helper()

	token, err := e.tokens.Create(9999, "ghost_user", "USER")
	if err != nil {
		t.Fatalf("failed to create token: %v", err)
	}
	return token
}

func (e *testEnv) request(t *testing.T, method, path string, body io.Reader, contentType, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// queryEscape makes a human-readable query string safe for
// httptest.NewRequest, which rejects raw spaces in the request target.
func queryEscape(q string) string {
	return strings.ReplaceAll(q, " ", "%20")
}

// envelope is the standard {message, data} success response.
type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) (string, map[string]any) {
	t.Helper()

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to unmarshal envelope: %v (body: %s)", err, w.Body.String())
	}

	var data map[string]any
	if len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, &data); err != nil {
			t.Fatalf("failed to unmarshal envelope data: %v", err)
		}
	}
	return env.Message, data
}

func decodeDetail(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal error body: %v (body: %s)", err, w.Body.String())
	}
	return body.Detail
}
