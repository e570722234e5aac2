package helpers

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"jobportal_backend/internal/app"
	"jobportal_backend/internal/config"
	"jobportal_backend/internal/database"
)

// TestServer runs the full router over an isolated sqlite database and a
// throwaway resume directory.
type TestServer struct {
	Server    *httptest.Server
	DB        *gorm.DB
	ResumeDir string
}

func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	dir := t.TempDir()

	db, err := gorm.Open(sqlite.Open(filepath.Join(dir, "test.db")), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	cfg := &config.Config{}
	cfg.Server.Env = "development"
	cfg.Session.Secret = "test-session-secret"
	cfg.Session.TTLMinutes = 60
	cfg.Storage.ResumeDir = filepath.Join(dir, "resumes")

	router, err := app.SetupRouter(cfg, db)
	if err != nil {
		t.Fatalf("failed to set up router: %v", err)
	}

	server := httptest.NewServer(router)
	t.Cleanup(func() {
		server.Close()
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return &TestServer{
		Server:    server,
		DB:        db,
		ResumeDir: cfg.Storage.ResumeDir,
	}
}

// NewClient returns a cookie-jar client that does not follow redirects, so
// tests can assert on Location headers and flash cookies directly.
func (ts *TestServer) NewClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("failed to create cookie jar: %v", err)
	}
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// Get issues a GET through client and returns the response with its body read.
func (ts *TestServer) Get(t *testing.T, client *http.Client, path string) (*http.Response, string) {
	t.Helper()
	res, err := client.Get(ts.Server.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	return res, readBody(t, res)
}

// PostForm posts url-encoded form values.
func (ts *TestServer) PostForm(t *testing.T, client *http.Client, path string, form url.Values) (*http.Response, string) {
	t.Helper()
	res, err := client.Post(ts.Server.URL+path, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	return res, readBody(t, res)
}

// PostMultipart posts a multipart form with a single file field.
func (ts *TestServer) PostMultipart(t *testing.T, client *http.Client, path, fileField, filename string, content []byte) (*http.Response, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if filename != "" {
		part, err := writer.CreateFormFile(fileField, filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	res, err := client.Post(ts.Server.URL+path, writer.FormDataContentType(), &buf)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	return res, readBody(t, res)
}

func readBody(t *testing.T, res *http.Response) string {
	t.Helper()
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return string(body)
}
