package handler_test

import (
	"PhotoVault/config"
	"PhotoVault/internal/dto"
	"PhotoVault/internal/handler"
	"PhotoVault/internal/identity"
	"PhotoVault/internal/service"
	"PhotoVault/internal/storage"
	"PhotoVault/model"
	"PhotoVault/router"
	"PhotoVault/utils"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.InitConfig()
	os.Exit(m.Run())
}

type memRepo struct {
	mu     sync.Mutex
	photos []model.Photo
}

func (f *memRepo) Create(ctx context.Context, photo *model.Photo) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.photos = append(f.photos, *photo)
	return nil
}

func (f *memRepo) ListAll(ctx context.Context) ([]model.Photo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.Photo, len(f.photos))
	copy(out, f.photos)
	return out, nil
}

func (f *memRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.Photo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Photo
	for _, photo := range f.photos {
		if photo.UserID == ownerID {
			out = append(out, photo)
		}
	}
	return out, nil
}

type memStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (f *memStore) PutObject(ctx context.Context, bucket, object string, reader io.Reader, size int64, opts storage.PutOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	f.objects[bucket+"/"+object] = data
	return nil
}

func (f *memStore) PresignedGetObject(ctx context.Context, bucket, object string, expiry time.Duration) (string, error) {
	return fmt.Sprintf("https://signed.local/%s/%s", bucket, object), nil
}

func newTestRouter() *gin.Engine {
	svc := &service.PhotoService{
		Repo:         &memRepo{},
		Store:        &memStore{objects: map[string][]byte{}},
		Ext:          identity.NewExtractor(config.AppConfig.ElevatedRoles, config.AppConfig.DefaultRole),
		Bucket:       config.AppConfig.BucketNameTest,
		SignTTL:      config.AppConfig.SignedURLTTL,
		SignCacheTTL: config.AppConfig.SignedURLCacheTTL,
		Now:          time.Now,
		NewID:        utils.NewPhotoID,
	}
	return router.InitRouter(handler.NewPhotoHandler(svc))
}

func bearerToken(t *testing.T, subject, email, role string) string {
	t.Helper()
	token, err := utils.GenerateToken(subject, email, role)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	return "Bearer " + token
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, auth string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	return recorder
}

func TestListRequiresAuth(t *testing.T) {
	engine := newTestRouter()
	recorder := doJSON(t, engine, http.MethodGet, "/api/photos", "", nil)
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expect 401, got %d", recorder.Code)
	}
}

func TestUploadThenListOverHTTP(t *testing.T) {
	engine := newTestRouter()
	auth := bearerToken(t, "u1", "u1@test.com", "customer")

	uploadBody := dto.UploadPhotoRequest{
		FileContent: "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("cat-bytes")),
		FileName:    "cat.png",
		FileType:    "image/png",
		Description: "my cat",
	}
	recorder := doJSON(t, engine, http.MethodPost, "/api/photos", auth, uploadBody)
	if recorder.Code != http.StatusOK {
		t.Fatalf("upload expect 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if got := recorder.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("missing CORS origin header, got %q", got)
	}
	if got := recorder.Header().Get("Access-Control-Allow-Methods"); got != "GET,POST,PUT,DELETE,OPTIONS" {
		t.Fatalf("missing CORS methods header, got %q", got)
	}
	var uploadResp dto.UploadPhotoResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &uploadResp); err != nil {
		t.Fatal(err)
	}
	if !uploadResp.Success || uploadResp.PhotoID == "" || uploadResp.URL == "" {
		t.Fatalf("unexpected upload response: %+v", uploadResp)
	}

	recorder = doJSON(t, engine, http.MethodGet, "/api/photos", auth, nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("list expect 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if got := recorder.Header().Get("Access-Control-Allow-Headers"); got != "Content-Type,Authorization" {
		t.Fatalf("unexpected CORS headers value: %q", got)
	}
	var listResp dto.ListPhotosResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &listResp); err != nil {
		t.Fatal(err)
	}
	if !listResp.Success || listResp.TotalCount != 1 {
		t.Fatalf("unexpected list response: %+v", listResp)
	}
	if listResp.Photos[0].PhotoID != uploadResp.PhotoID {
		t.Fatal("listed photo must match the uploaded one")
	}
	if listResp.UserRole != "customer" || listResp.IsAdmin {
		t.Fatalf("unexpected role flags: %+v", listResp)
	}

	// Another customer sees an empty corpus.
	otherAuth := bearerToken(t, "u2", "u2@test.com", "customer")
	recorder = doJSON(t, engine, http.MethodGet, "/api/photos", otherAuth, nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("list expect 200, got %d", recorder.Code)
	}
	listResp = dto.ListPhotosResponse{}
	if err := json.Unmarshal(recorder.Body.Bytes(), &listResp); err != nil {
		t.Fatal(err)
	}
	if listResp.TotalCount != 0 {
		t.Fatalf("expect zero photos for u2, got %d", listResp.TotalCount)
	}
}

func TestPreflightAnswersWithCORSHeaders(t *testing.T) {
	engine := newTestRouter()

	recorder := doJSON(t, engine, http.MethodOptions, "/api/photos", "", nil)
	if recorder.Code != http.StatusNoContent {
		t.Fatalf("preflight expect 204, got %d", recorder.Code)
	}
	if got := recorder.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("preflight missing origin header, got %q", got)
	}
	if got := recorder.Header().Get("Access-Control-Allow-Methods"); got != "GET,POST,PUT,DELETE,OPTIONS" {
		t.Fatalf("preflight missing methods header, got %q", got)
	}
	if got := recorder.Header().Get("Access-Control-Allow-Headers"); got != "Content-Type,X-Amz-Date,Authorization,X-Api-Key,X-Amz-Security-Token" {
		t.Fatalf("preflight missing allowed headers, got %q", got)
	}
}

func TestUploadMalformedPayloadReturnsFailureBody(t *testing.T) {
	engine := newTestRouter()
	auth := bearerToken(t, "u1", "u1@test.com", "customer")

	recorder := doJSON(t, engine, http.MethodPost, "/api/photos", auth, dto.UploadPhotoRequest{
		FileContent: "no-separator",
		FileName:    "cat.png",
		FileType:    "image/png",
	})
	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("expect 500, got %d", recorder.Code)
	}
	var failure struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &failure); err != nil {
		t.Fatal(err)
	}
	if failure.Success || failure.Error == "" {
		t.Fatalf("unexpected failure body: %+v", failure)
	}
}
