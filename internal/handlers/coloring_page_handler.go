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

// ColoringPagesService is the interface that wraps methods for coloring pages business logic.
type ColoringPagesService interface {
	// Method GetAll retrieve a list of coloring pages using configured repository.
	//
	// "category" parameter filters by exact category match; an empty value returns all pages.
	//
	// If some error will occur during data retrieve, the error will be returned together with "nil" value.
	GetAll(ctx context.Context, category string) ([]models.ColoringPage, error)
	// Method Create persists a new coloring page using configured repository.
	//
	// The stored record is returned including the generated id and creation timestamp.
	Create(ctx context.Context, req *models.CreateColoringPageRequest) (*models.ColoringPage, error)
	// Method GetByID retrieve a coloring page by its id using configured repository.
	//
	// A missing id yields a "coloring page not found" error.
	GetByID(ctx context.Context, id string) (*models.ColoringPage, error)
}

// ColoringPagesHandler handles coloring page HTTP requests
type ColoringPagesHandler struct {
	BaseHandler
	service ColoringPagesService
}

// NewColoringPagesHandler creates a new coloring pages handler
func NewColoringPagesHandler(svc ColoringPagesService, logger *zap.Logger) *ColoringPagesHandler {
	return &ColoringPagesHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     svc,
	}
}

// RegisterRoutes registers all coloring page handler routes
// Note: This assumes the router is already scoped to /api
func (h *ColoringPagesHandler) RegisterRoutes(r chi.Router) {
	r.Route("/coloring-pages", func(r chi.Router) {
		r.Get("/", h.GetAll)
		r.Post("/", h.Create)
		r.Get("/{id}", h.GetByID)
	})
}

// GetAll handles GET /api/coloring-pages
// @Summary List coloring pages
// @Description Get coloring pages, optionally filtered by exact category match. Capped at 100 results.
// @Tags coloring-pages
// @Accept json
// @Produce json
// @Param category query string false "Category filter (e.g. animals, vehicles, nature)"
// @Success 200 {array} models.ColoringPage "List of coloring pages"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/coloring-pages [get]
func (h *ColoringPagesHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	pages, err := h.service.GetAll(r.Context(), category)
	if err != nil {
		h.Logger.Error("failed to get coloring pages", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to get coloring pages")
		return
	}

	h.RespondJSON(w, http.StatusOK, pages)
}

// Create handles POST /api/coloring-pages
// @Summary Create coloring page
// @Description Create a new coloring page. The id and creation timestamp are generated server-side.
// @Tags coloring-pages
// @Accept json
// @Produce json
// @Param page body models.CreateColoringPageRequest true "Coloring page creation request"
// @Success 200 {object} models.ColoringPage "Created coloring page"
// @Failure 400 {object} map[string]string "Malformed request body"
// @Failure 422 {object} map[string]string "Missing required fields"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/coloring-pages [post]
func (h *ColoringPagesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateColoringPageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		h.RespondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	page, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.Logger.Error("failed to create coloring page", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to create coloring page")
		return
	}

	h.RespondJSON(w, http.StatusOK, page)
}

// GetByID handles GET /api/coloring-pages/{id}
// @Summary Get coloring page by ID
// @Description Retrieve a single coloring page by its id
// @Tags coloring-pages
// @Accept json
// @Produce json
// @Param id path string true "Coloring page ID"
// @Success 200 {object} models.ColoringPage "Coloring page"
// @Failure 404 {object} map[string]string "Coloring page not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/coloring-pages/{id} [get]
func (h *ColoringPagesHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	page, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			h.Logger.Info("coloring page not found", zap.String("id", id))
			h.RespondError(w, http.StatusNotFound, "Coloring page not found")
			return
		}
		h.Logger.Error("failed to get coloring page", zap.Error(err), zap.String("id", id))
		h.RespondError(w, http.StatusInternalServerError, "failed to get coloring page")
		return
	}

	h.RespondJSON(w, http.StatusOK, page)
}
