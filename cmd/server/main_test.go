package main

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"template-renderer/internal/config"
	"template-renderer/internal/logger"
)

func newTestApp(t *testing.T) *application {
	t.Helper()
	views := t.TempDir()
	layouts := filepath.Join(views, "layouts")
	require.NoError(t, os.MkdirAll(layouts, 0755))
	layout := `{{.company.name}}:{{range .sections}}[{{.id}}]{{end}}`
	require.NoError(t, os.WriteFile(filepath.Join(layouts, "dynamic.tmpl"), []byte(layout), 0644))

	cfg := &config.Config{
		Port:          0,
		Environment:   "test",
		TemplatesPath: views,
		UploadsPath:   t.TempDir(),
		MaxFileSize:   1 << 20,
		LogLevel:      "error",
		LogFormat:     "console",
	}
	app, err := newApplication(cfg, logger.NewNop())
	require.NoError(t, err)
	return app
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func createTestClient(t *testing.T, handler http.Handler) {
	t.Helper()
	rec := doJSON(t, handler, http.MethodPost, "/api/v1/client-templates", map[string]any{
		"clientId": "acme",
		"style":    "modern",
		"sections": []string{"hero", "about"},
		"company":  map[string]any{"name": "Acme Flowers"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestHealthEndpoint(t *testing.T) {
	handler := newTestApp(t).routes()

	rec := doJSON(t, handler, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestCreateAndRenderClientSite(t *testing.T) {
	handler := newTestApp(t).routes()
	createTestClient(t, handler)

	rec := doJSON(t, handler, http.MethodGet, "/api/v1/client-templates/acme", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Acme Flowers")
	assert.Contains(t, rec.Body.String(), "[hero][about]")
}

func TestRenderUnknownClientIs404(t *testing.T) {
	handler := newTestApp(t).routes()

	rec := doJSON(t, handler, http.MethodGet, "/api/v1/client-templates/ghost", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["message"])
}

func TestCreateWithoutRequiredSectionIs400(t *testing.T) {
	handler := newTestApp(t).routes()

	rec := doJSON(t, handler, http.MethodPost, "/api/v1/client-templates", map[string]any{
		"clientId": "acme",
		"style":    "modern",
		"sections": []string{"about"},
		"company":  map[string]any{"name": "Acme"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Hero Section")
}

func TestUpdateConfiguration(t *testing.T) {
	handler := newTestApp(t).routes()
	createTestClient(t, handler)

	rec := doJSON(t, handler, http.MethodPut, "/api/v1/client-templates/acme/configuration", map[string]any{
		"name": "Acme Rebranded",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/client-templates/acme/configuration", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Acme Rebranded")
}

func TestDeleteClientIsIdempotent(t *testing.T) {
	handler := newTestApp(t).routes()
	createTestClient(t, handler)

	rec := doJSON(t, handler, http.MethodDelete, "/api/v1/client-templates/acme", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, http.MethodDelete, "/api/v1/client-templates/acme", nil)
	assert.Equal(t, http.StatusOK, rec.Code, "second delete still answers 200")
}

func TestSectionRenderAndPagesInfo(t *testing.T) {
	handler := newTestApp(t).routes()
	createTestClient(t, handler)

	rec := doJSON(t, handler, http.MethodGet, "/api/v1/client-templates/acme/section/about", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "[about]")

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/client-templates/acme/section/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/client-templates/acme/pages-info", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/v1/client-templates/acme/section/hero")
	assert.Contains(t, rec.Body.String(), "Learn more about us and our history")
}

func TestAvailableSections(t *testing.T) {
	handler := newTestApp(t).routes()

	rec := doJSON(t, handler, http.MethodGet, "/api/v1/client-templates/available-sections", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Hero Section")
	assert.Contains(t, rec.Body.String(), `"categoryLabels"`)
	assert.Contains(t, rec.Body.String(), `"commerce":"Commerce"`)
}

func uploadTestImage(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="logo.png"`)
	header.Set("Content-Type", "image/png")
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestImageUploadAndServe(t *testing.T) {
	handler := newTestApp(t).routes()

	rec := uploadTestImage(t, handler, "/api/v1/storage/images/acme/upload")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var body struct {
		Success bool `json:"success"`
		Image   struct {
			ID       string `json:"id"`
			FileName string `json:"fileName"`
			URL      string `json:"url"`
		} `json:"image"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.True(t, body.Success)
	assert.True(t, strings.HasPrefix(body.Image.URL, "/api/v1/storage/images/acme/"))

	get := doJSON(t, handler, http.MethodGet, body.Image.URL, nil)
	require.Equal(t, http.StatusOK, get.Code)
	assert.Equal(t, "image/png", get.Header().Get("Content-Type"))
	assert.Equal(t, "png-bytes", get.Body.String())
	assert.NotEmpty(t, get.Header().Get("Cache-Control"))
}

func TestImageInfoAndDeleteByID(t *testing.T) {
	handler := newTestApp(t).routes()

	rec := uploadTestImage(t, handler, "/api/v1/storage/images/acme/upload")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var body struct {
		Image struct {
			ID       string `json:"id"`
			FileName string `json:"fileName"`
		} `json:"image"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Image.ID)

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/storage/images/acme/image/"+body.Image.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), body.Image.FileName)

	rec = doJSON(t, handler, http.MethodDelete, "/api/v1/storage/images/acme/"+body.Image.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code, "delete is keyed by the uploaded id")

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/storage/images/acme/image/"+body.Image.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestImageStats(t *testing.T) {
	handler := newTestApp(t).routes()
	uploadTestImage(t, handler, "/api/v1/storage/images/acme/upload")

	rec := doJSON(t, handler, http.MethodGet, "/api/v1/storage/images/acme/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalImages":1`)
}

func TestMultiPageQueryRedirectsToPages(t *testing.T) {
	handler := newTestApp(t).routes()
	createTestClient(t, handler)

	rec := doJSON(t, handler, http.MethodGet, "/api/v1/client-templates/acme?multiPage=true", nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/api/v1/client-templates/acme/pages", rec.Header().Get("Location"))
}

func TestDeleteAllImages(t *testing.T) {
	handler := newTestApp(t).routes()
	uploadTestImage(t, handler, "/api/v1/storage/images/acme/upload")

	rec := doJSON(t, handler, http.MethodDelete, "/api/v1/storage/images/acme", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/storage/images/acme", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":0`)
}

func TestLegacyTemplateRoutes(t *testing.T) {
	app := newTestApp(t)
	handler := app.routes()

	dir := filepath.Join(app.cfg.TemplatesPath, "florist")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.tmpl"), []byte("{{.title}}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "static-data.json"), []byte(`{"title":"Florist"}`), 0644))

	rec := doJSON(t, handler, http.MethodGet, "/api/v1/template/florist/render?mode=static", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Florist", rec.Body.String())

	rec = doJSON(t, handler, http.MethodPut, "/api/v1/template/florist/custom-data", map[string]any{"title": "Override"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/template/florist/render", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Override", rec.Body.String())

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/template/florist/static-data", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"Florist"`)

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/template/ghost/render", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/template/category/nope/florist/render", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
