package handlers

import (
	"context"
	"net/http"

	"github.com/coloringbook/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// StickersService is the interface that wraps methods for stickers business logic.
type StickersService interface {
	// Method GetAll retrieve a list of stickers using configured repository.
	//
	// "category" parameter filters by exact category match; an empty value returns all stickers.
	//
	// If some error will occur during data retrieve, the error will be returned together with "nil" value.
	GetAll(ctx context.Context, category string) ([]models.Sticker, error)
}

// StickersHandler handles sticker HTTP requests
type StickersHandler struct {
	BaseHandler
	service StickersService
}

// NewStickersHandler creates a new stickers handler
func NewStickersHandler(svc StickersService, logger *zap.Logger) *StickersHandler {
	return &StickersHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     svc,
	}
}

// RegisterRoutes registers all sticker handler routes
// Note: This assumes the router is already scoped to /api
func (h *StickersHandler) RegisterRoutes(r chi.Router) {
	r.Get("/stickers", h.GetAll)
}

// GetAll handles GET /api/stickers
// @Summary List stickers
// @Description Get stickers, optionally filtered by exact category match. Capped at 100 results.
// @Tags stickers
// @Accept json
// @Produce json
// @Param category query string false "Category filter (e.g. shapes, emoji)"
// @Success 200 {array} models.Sticker "List of stickers"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/stickers [get]
func (h *StickersHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	stickers, err := h.service.GetAll(r.Context(), category)
	if err != nil {
		h.Logger.Error("failed to get stickers", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to get stickers")
		return
	}

	h.RespondJSON(w, http.StatusOK, stickers)
}
