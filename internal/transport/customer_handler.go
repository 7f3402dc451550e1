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
	// CustomerPath is the collection path for customer resources
	CustomerPath = "/api/v3/customer"
)

// CustomerHandler handles HTTP requests for customer operations
type CustomerHandler struct {
	service service.CustomerService
	logger  *zap.Logger
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(service service.CustomerService, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers all customer routes behind the auth middleware
func (h *CustomerHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route(CustomerPath, func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Route("/{customerId}", func(r chi.Router) {
			r.Get("/", h.FindByID)
			r.Put("/", h.Update)
			r.Patch("/", h.Patch)
			r.Delete("/", h.Delete)
		})
	})
}

// List handles GET /api/v3/customer
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.service.List(r.Context())
	if err != nil {
		h.renderError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, customers)
}

// FindByID handles GET /api/v3/customer/{customerId}
func (h *CustomerHandler) FindByID(w http.ResponseWriter, r *http.Request) {
	customer, err := h.service.FindByID(r.Context(), chi.URLParam(r, "customerId"))
	if err != nil {
		h.renderError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, customer)
}

// Create handles POST /api/v3/customer
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var dto model.CustomerDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.logger.Debug("Customer decode failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.service.Create(r.Context(), dto)
	if err != nil {
		h.renderError(w, err)
		return
	}

	h.logger.Info("Customer created", zap.String("customer_id", created.ID))
	w.Header().Set("Location", fmt.Sprintf("%s/%s", CustomerPath, created.ID))
	w.WriteHeader(http.StatusCreated)
}

// Update handles PUT /api/v3/customer/{customerId} with full-replace semantics
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var dto model.CustomerDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.logger.Debug("Customer decode failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := h.service.Update(r.Context(), chi.URLParam(r, "customerId"), dto); err != nil {
		h.renderError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Patch handles PATCH /api/v3/customer/{customerId} with partial-update semantics
func (h *CustomerHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var dto model.CustomerDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.logger.Debug("Customer decode failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := h.service.Patch(r.Context(), chi.URLParam(r, "customerId"), dto); err != nil {
		h.renderError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /api/v3/customer/{customerId}, probing existence first
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "customerId")

	if _, err := h.service.FindByID(r.Context(), id); err != nil {
		h.renderError(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.renderError(w, err)
		return
	}

	h.logger.Info("Customer deleted", zap.String("customer_id", id))
	w.WriteHeader(http.StatusNoContent)
}

// renderError is the sole translator from service failures to status codes
func (h *CustomerHandler) renderError(w http.ResponseWriter, err error) {
	var validationErr *service.ValidationError
	switch {
	case errors.Is(err, service.ErrNotFound):
		middleware.RespondWithError(w, http.StatusNotFound, "customer not found")
	case errors.As(err, &validationErr):
		middleware.RespondWithErrorDetails(w, http.StatusBadRequest, "validation failed",
			map[string]interface{}{"violations": validationErr.Violations})
	default:
		h.logger.Error("Customer request failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}
