package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"brewhouse/internal/middleware"
	"brewhouse/internal/model"
	"brewhouse/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	// BeerPath is the collection path for beer resources
	BeerPath = "/api/v3/beer"
)

// BeerHandler handles HTTP requests for beer operations
type BeerHandler struct {
	service service.BeerService
	logger  *zap.Logger
}

// NewBeerHandler creates a new BeerHandler
func NewBeerHandler(service service.BeerService, logger *zap.Logger) *BeerHandler {
	return &BeerHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers all beer routes behind the auth middleware
func (h *BeerHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route(BeerPath, func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Route("/{beerId}", func(r chi.Router) {
			r.Get("/", h.FindByID)
			r.Put("/", h.Update)
			r.Patch("/", h.Patch)
			r.Delete("/", h.Delete)
		})
	})
}

// List handles GET /api/v3/beer, optionally filtered by ?beerStyle=
func (h *BeerHandler) List(w http.ResponseWriter, r *http.Request) {
	style := r.URL.Query().Get("beerStyle")

	beers, err := h.service.List(r.Context(), style)
	if err != nil {
		h.renderError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, beers)
}

// FindByID handles GET /api/v3/beer/{beerId}
func (h *BeerHandler) FindByID(w http.ResponseWriter, r *http.Request) {
	beer, err := h.service.FindByID(r.Context(), chi.URLParam(r, "beerId"))
	if err != nil {
		h.renderError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, beer)
}

// Create handles POST /api/v3/beer
func (h *BeerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var dto model.BeerDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.logger.Debug("Beer decode failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.service.Create(r.Context(), dto)
	if err != nil {
		h.renderError(w, err)
		return
	}

	h.logger.Info("Beer created", zap.String("beer_id", created.ID))
	w.Header().Set("Location", fmt.Sprintf("%s/%s", BeerPath, created.ID))
	w.WriteHeader(http.StatusCreated)
}

// Update handles PUT /api/v3/beer/{beerId} with full-replace semantics
func (h *BeerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var dto model.BeerDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.logger.Debug("Beer decode failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := h.service.Update(r.Context(), chi.URLParam(r, "beerId"), dto); err != nil {
		h.renderError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Patch handles PATCH /api/v3/beer/{beerId} with partial-update semantics
func (h *BeerHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var dto model.BeerDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.logger.Debug("Beer decode failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := h.service.Patch(r.Context(), chi.URLParam(r, "beerId"), dto); err != nil {
		h.renderError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /api/v3/beer/{beerId}. Existence is probed first so a
// missing record answers 404; the delete itself succeeds unconditionally.
func (h *BeerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "beerId")

	if _, err := h.service.FindByID(r.Context(), id); err != nil {
		h.renderError(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.renderError(w, err)
		return
	}

	h.logger.Info("Beer deleted", zap.String("beer_id", id))
	w.WriteHeader(http.StatusNoContent)
}

// renderError is the sole translator from service failures to status codes
func (h *BeerHandler) renderError(w http.ResponseWriter, err error) {
	var validationErr *service.ValidationError
	switch {
	case errors.Is(err, service.ErrNotFound):
		middleware.RespondWithError(w, http.StatusNotFound, "beer not found")
	case errors.As(err, &validationErr):
		middleware.RespondWithErrorDetails(w, http.StatusBadRequest, "validation failed",
			map[string]interface{}{"violations": validationErr.Violations})
	default:
		h.logger.Error("Beer request failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}
