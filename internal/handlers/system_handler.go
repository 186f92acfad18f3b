package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SeedService is the interface that wraps the seed/bootstrap routine.
type SeedService interface {
	// Method Initialize populates the store with sample data when it is empty.
	//
	// Returns true when sample data was inserted, false when the store was
	// already initialized and no writes were performed.
	Initialize(ctx context.Context) (bool, error)
}

// SystemHandler handles liveness and data initialization requests
type SystemHandler struct {
	BaseHandler
	seedService SeedService
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(seedService SeedService, logger *zap.Logger) *SystemHandler {
	return &SystemHandler{
		BaseHandler: BaseHandler{Logger: logger},
		seedService: seedService,
	}
}

// RegisterRoutes registers all system handler routes
// Note: This assumes the router is already scoped to /api
func (h *SystemHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Root)
	r.Post("/initialize-data", h.InitializeData)
}

// Root handles GET /api/
// @Summary Liveness check
// @Description Returns a liveness message confirming the API is running
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string "Liveness message"
// @Router /api/ [get]
func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	h.RespondJSON(w, http.StatusOK, map[string]string{"message": "Coloring Game API is running"})
}

// InitializeData handles POST /api/initialize-data
// @Summary Initialize default data
// @Description Populate the store with sample coloring pages and stickers. No-op if any coloring page already exists.
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string "Initialization result"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/initialize-data [post]
func (h *SystemHandler) InitializeData(w http.ResponseWriter, r *http.Request) {
	created, err := h.seedService.Initialize(r.Context())
	if err != nil {
		h.Logger.Error("failed to initialize default data", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to initialize data")
		return
	}

	if !created {
		h.RespondJSON(w, http.StatusOK, map[string]string{"message": "Data already initialized"})
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"message": "Default data initialized successfully"})
}
