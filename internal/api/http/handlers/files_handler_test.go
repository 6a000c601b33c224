package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/smallbizniz/support-portal/internal/api/http"
	"github.com/smallbizniz/support-portal/internal/api/http/handlers"
	"github.com/smallbizniz/support-portal/internal/storage"
	apperrors "github.com/smallbizniz/support-portal/pkg/util"
)

type stubStore struct {
	lastFileName string
	lastFileSize int64
}

func (s *stubStore) PresignUpload(_ context.Context, fileName, _ string, fileSize int64) (*storage.PresignedUpload, error) {
	if fileSize > storage.MaxUploadBytes {
		return nil, apperrors.NewValidationError("file size exceeds 2MB limit", nil)
	}
	s.lastFileName = fileName
	s.lastFileSize = fileSize
	return &storage.PresignedUpload{
		URL: "https://bucket.s3.example.com/upload",
		Key: "tickets/1-" + fileName,
	}, nil
}

func (s *stubStore) PresignDownload(_ context.Context, key string) (string, error) {
	return "https://bucket.s3.example.com/" + key, nil
}

func newFilesApp(store storage.ObjectStore) *fiber.App {
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), nil, 0)
	handler := handlers.NewFilesHandler(store)
	app.Post("/api/upload", handler.Upload)
	app.Get("/api/download", handler.Download)
	return app
}

func TestUpload(t *testing.T) {
	store := &stubStore{}
	app := newFilesApp(store)

	status, body := postJSON(t, app, "/api/upload",
		`{"fileName":"screenshot.png","fileType":"image/png","fileSize":2048}`)
	if status != 200 {
		t.Fatalf("status = %d, body = %v", status, body)
	}
	data := body["data"].(map[string]any)
	if data["presignedUrl"] == "" || data["s3Key"] != "tickets/1-screenshot.png" {
		t.Errorf("data = %v", data)
	}
	if store.lastFileSize != 2048 {
		t.Errorf("store received size %d", store.lastFileSize)
	}
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	app := newFilesApp(&stubStore{})

	status, body := postJSON(t, app, "/api/upload",
		fmt.Sprintf(`{"fileName":"huge.zip","fileType":"application/zip","fileSize":%d}`, storage.MaxUploadBytes+1))
	if status != 400 {
		t.Fatalf("status = %d, body = %v", status, body)
	}
}

func TestUploadValidation(t *testing.T) {
	app := newFilesApp(&stubStore{})

	for _, body := range []string{
		`{"fileType":"image/png","fileSize":10}`,
		`{"fileName":"a.png","fileSize":10}`,
		`{"fileName":"a.png","fileType":"image/png","fileSize":0}`,
	} {
		status, _ := postJSON(t, app, "/api/upload", body)
		if status != 400 {
			t.Errorf("body %s: status = %d", body, status)
		}
	}
}

func TestFilesUnavailableWithoutStore(t *testing.T) {
	app := newFilesApp(nil)

	status, _ := postJSON(t, app, "/api/upload",
		`{"fileName":"a.png","fileType":"image/png","fileSize":10}`)
	if status != 503 {
		t.Errorf("upload without store: status = %d, want 503", status)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/api/download?key=tickets/1-a.png", nil))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 503 {
		t.Errorf("download without store: status = %d, want 503", resp.StatusCode)
	}
}

func TestDownload(t *testing.T) {
	app := newFilesApp(&stubStore{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/download?key=tickets/1-a.png", nil))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	data := body["data"].(map[string]any)
	if data["url"] != "https://bucket.s3.example.com/tickets/1-a.png" {
		t.Errorf("data = %v", data)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/api/download", nil))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 400 {
		t.Errorf("missing key: status = %d, want 400", resp.StatusCode)
	}
}
