package integration

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/coloringbook/backend/internal/config"
	"github.com/coloringbook/backend/internal/handlers"
	"github.com/coloringbook/backend/internal/models"
	"github.com/coloringbook/backend/internal/server"
)

// stubColoringPagesService serves canned coloring pages
type stubColoringPagesService struct {
	pages []models.ColoringPage
}

func (s *stubColoringPagesService) GetAll(ctx context.Context, category string) ([]models.ColoringPage, error) {
	if category == "" {
		return s.pages, nil
	}
	filtered := []models.ColoringPage{}
	for _, page := range s.pages {
		if page.Category == category {
			filtered = append(filtered, page)
		}
	}
	return filtered, nil
}

func (s *stubColoringPagesService) Create(ctx context.Context, req *models.CreateColoringPageRequest) (*models.ColoringPage, error) {
	page := models.NewColoringPage(req)
	s.pages = append(s.pages, *page)
	return page, nil
}

func (s *stubColoringPagesService) GetByID(ctx context.Context, id string) (*models.ColoringPage, error) {
	for i := range s.pages {
		if s.pages[i].ID == id {
			return &s.pages[i], nil
		}
	}
	return nil, errors.New("coloring page not found")
}

// stubArtworksService serves canned user artworks
type stubArtworksService struct {
	artworks []models.UserArtwork
}

func (s *stubArtworksService) GetAll(ctx context.Context, userID string) ([]models.UserArtwork, error) {
	return s.artworks, nil
}

func (s *stubArtworksService) Create(ctx context.Context, req *models.CreateUserArtworkRequest) (*models.UserArtwork, error) {
	artwork := models.NewUserArtwork(req)
	s.artworks = append(s.artworks, *artwork)
	return artwork, nil
}

func (s *stubArtworksService) DeleteByID(ctx context.Context, id string) error {
	for i := range s.artworks {
		if s.artworks[i].ID == id {
			s.artworks = append(s.artworks[:i], s.artworks[i+1:]...)
			return nil
		}
	}
	return errors.New("artwork not found")
}

// stubStickersService serves canned stickers
type stubStickersService struct {
	stickers []models.Sticker
}

func (s *stubStickersService) GetAll(ctx context.Context, category string) ([]models.Sticker, error) {
	return s.stickers, nil
}

// stubSeedService flips to initialized on first call
type stubSeedService struct {
	initialized bool
}

func (s *stubSeedService) Initialize(ctx context.Context) (bool, error) {
	if s.initialized {
		return false, nil
	}
	s.initialized = true
	return true, nil
}

// setupTestRouter builds the production router with the full middleware chain
func setupTestRouter() chi.Router {
	cfg := &config.Config{}
	cfg.Server.Port = 8080
	cfg.CORS.AllowedOrigins = []string{"*"}

	logger := zap.NewNop()

	return server.NewRouter(cfg, logger, server.Handlers{
		System:        handlers.NewSystemHandler(&stubSeedService{}, logger),
		ColoringPages: handlers.NewColoringPagesHandler(&stubColoringPagesService{}, logger),
		Artworks:      handlers.NewArtworksHandler(&stubArtworksService{}, logger),
		Stickers:      handlers.NewStickersHandler(&stubStickersService{}, logger),
	})
}

func TestLivenessThroughFullRouter(t *testing.T) {
	router := setupTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Coloring Game API is running", body["message"])
}

func TestRequestIDEcho(t *testing.T) {
	router := setupTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/stickers", nil)
	req.Header.Set("X-Request-ID", "integration-test-id")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "integration-test-id", rec.Header().Get("X-Request-ID"))
}

func TestCORSPreflight(t *testing.T) {
	router := setupTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/coloring-pages", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodDelete)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Content-Type")
}

func TestCORSHeadersOnActualRequest(t *testing.T) {
	router := setupTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/coloring-pages", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestSizeLimit(t *testing.T) {
	router := setupTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/artworks", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.ContentLength = server.MaxRequestSize + 1
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestUnknownRouteReturns404(t *testing.T) {
	router := setupTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/nonexistent", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestColoringPageLifecycle(t *testing.T) {
	router := setupTestRouter()

	// Create a page through the full stack
	body := `{"name":"Cute Cat","category":"animals","difficulty":"easy","svg_content":"<svg/>"}`
	req := httptest.NewRequest(http.MethodPost, "/api/coloring-pages", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var created models.ColoringPage
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	require.NotEmpty(t, created.ID)

	// Fetch it back by id
	req = httptest.NewRequest(http.MethodGet, "/api/coloring-pages/"+created.ID, nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var fetched models.ColoringPage
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&fetched))
	assert.Equal(t, created.ID, fetched.ID)

	// A missing id is a 404
	req = httptest.NewRequest(http.MethodGet, "/api/coloring-pages/nonexistent-id", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestArtworkLifecycle(t *testing.T) {
	router := setupTestRouter()

	// Save an artwork
	body := `{"coloring_page_id":"page-1","artwork_data":"iVBORw0KGgo=","user_id":"user-1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/artworks", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var created models.UserArtwork
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	require.NotEmpty(t, created.ID)

	// Delete it
	req = httptest.NewRequest(http.MethodDelete, "/api/artworks/"+created.ID, nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var deleted map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&deleted))
	assert.Equal(t, "Artwork deleted successfully", deleted["message"])

	// Deleting again is a 404
	req = httptest.NewRequest(http.MethodDelete, "/api/artworks/"+created.ID, nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInitializeDataIsIdempotent(t *testing.T) {
	router := setupTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/initialize-data", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var first map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&first))
	assert.Equal(t, "Default data initialized successfully", first["message"])

	req = httptest.NewRequest(http.MethodPost, "/api/initialize-data", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var second map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&second))
	assert.Equal(t, "Data already initialized", second["message"])
}
