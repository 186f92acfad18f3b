package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/coloringbook/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ArtworksService is the interface that wraps methods for user artworks business logic.
type ArtworksService interface {
	// Method GetAll retrieve a list of user artworks using configured repository.
	//
	// "userID" parameter filters by exact user_id match; an empty value returns all artworks.
	// Results are ordered by completed_at descending.
	//
	// If some error will occur during data retrieve, the error will be returned together with "nil" value.
	GetAll(ctx context.Context, userID string) ([]models.UserArtwork, error)
	// Method Create persists a new user artwork using configured repository.
	//
	// The referenced coloring page is not checked for existence.
	Create(ctx context.Context, req *models.CreateUserArtworkRequest) (*models.UserArtwork, error)
	// Method DeleteByID removes a user artwork by its id using configured repository.
	//
	// A missing id yields an "artwork not found" error.
	DeleteByID(ctx context.Context, id string) error
}

// ArtworksHandler handles user artwork HTTP requests
type ArtworksHandler struct {
	BaseHandler
	service ArtworksService
}

// NewArtworksHandler creates a new artworks handler
func NewArtworksHandler(svc ArtworksService, logger *zap.Logger) *ArtworksHandler {
	return &ArtworksHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     svc,
	}
}

// RegisterRoutes registers all artwork handler routes
// Note: This assumes the router is already scoped to /api
func (h *ArtworksHandler) RegisterRoutes(r chi.Router) {
	r.Route("/artworks", func(r chi.Router) {
		r.Get("/", h.GetAll)
		r.Post("/", h.Create)
		r.Delete("/{id}", h.Delete)
	})
}

// GetAll handles GET /api/artworks
// @Summary List user artworks
// @Description Get user artworks sorted newest first, optionally filtered by user id. Capped at 100 results.
// @Tags artworks
// @Accept json
// @Produce json
// @Param user_id query string false "User ID filter"
// @Success 200 {array} models.UserArtwork "List of artworks"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/artworks [get]
func (h *ArtworksHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")

	artworks, err := h.service.GetAll(r.Context(), userID)
	if err != nil {
		h.Logger.Error("failed to get artworks", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to get artworks")
		return
	}

	h.RespondJSON(w, http.StatusOK, artworks)
}

// Create handles POST /api/artworks
// @Summary Save user artwork
// @Description Save a user's completed artwork. The id and completion timestamp are generated server-side.
// @Tags artworks
// @Accept json
// @Produce json
// @Param artwork body models.CreateUserArtworkRequest true "Artwork creation request"
// @Success 200 {object} models.UserArtwork "Created artwork"
// @Failure 400 {object} map[string]string "Malformed request body"
// @Failure 422 {object} map[string]string "Missing required fields"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/artworks [post]
func (h *ArtworksHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserArtworkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		h.RespondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	artwork, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.Logger.Error("failed to create artwork", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to create artwork")
		return
	}

	h.RespondJSON(w, http.StatusOK, artwork)
}

// Delete handles DELETE /api/artworks/{id}
// @Summary Delete user artwork
// @Description Permanently delete a user artwork by its id
// @Tags artworks
// @Accept json
// @Produce json
// @Param id path string true "Artwork ID"
// @Success 200 {object} map[string]string "Deletion confirmation"
// @Failure 404 {object} map[string]string "Artwork not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/artworks/{id} [delete]
func (h *ArtworksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteByID(r.Context(), id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			h.Logger.Info("artwork not found", zap.String("id", id))
			h.RespondError(w, http.StatusNotFound, "Artwork not found")
			return
		}
		h.Logger.Error("failed to delete artwork", zap.Error(err), zap.String("id", id))
		h.RespondError(w, http.StatusInternalServerError, "failed to delete artwork")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"message": "Artwork deleted successfully"})
}
