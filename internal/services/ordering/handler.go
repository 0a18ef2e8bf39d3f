package ordering

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"pizzeria-orders/internal/errs"
	"pizzeria-orders/internal/logger"
	"pizzeria-orders/internal/models"
)

// DemoRequester is the fixed demo user installed by the boundary in
// place of real authentication.
func DemoRequester() models.Requester {
	return models.Requester{
		ID:    uuid.MustParse("3fa85f64-5717-4562-b3fc-2c963f66afa6"),
		Email: "test@example.com",
	}
}

// Handler is the thin HTTP adapter over the order lifecycle services.
type Handler struct {
	selector *Selector
	logger   *logger.Logger
	healthy  func(ctx context.Context) bool
}

// NewHandler creates an HTTP handler routing to the given selector.
func NewHandler(selector *Selector, log *logger.Logger, healthy func(ctx context.Context) bool) *Handler {
	return &Handler{
		selector: selector,
		logger:   log,
		healthy:  healthy,
	}
}

// Routes builds the chi router for the order API.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/v1/orders", func(r chi.Router) {
		r.Post("/", h.CreateOrder)
		r.Get("/{id}", h.CheckStatus)
		r.Patch("/{id}", h.UpdateOrder)
		r.Delete("/{id}", h.CancelOrder)
	})
	r.Get("/health", h.HealthCheck)

	return r
}

// CreateOrder handles POST /v1/orders.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	var input models.OrderInput
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&input); err != nil {
		h.writeError(w, requestID, errs.Validation("", "Invalid JSON format"))
		return
	}

	service, err := h.selector.ByServiceType(input.ServiceType)
	if err != nil {
		h.writeError(w, requestID, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	order, err := service.CreateOrder(ctx, input, DemoRequester())
	if err != nil {
		h.writeError(w, requestID, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, order)
}

// CheckStatus handles GET /v1/orders/{id}.
func (h *Handler) CheckStatus(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	orderID, err := parseOrderID(r)
	if err != nil {
		h.writeError(w, requestID, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	service, err := h.selector.ByOrderID(ctx, orderID)
	if err != nil {
		h.writeError(w, requestID, err)
		return
	}

	order, err := service.CheckStatus(ctx, orderID, DemoRequester())
	if err != nil {
		h.writeError(w, requestID, err)
		return
	}

	h.writeJSON(w, http.StatusOK, order)
}

// UpdateOrder handles PATCH /v1/orders/{id}.
func (h *Handler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	orderID, err := parseOrderID(r)
	if err != nil {
		h.writeError(w, requestID, err)
		return
	}

	var update models.OrderUpdate
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&update); err != nil {
		h.writeError(w, requestID, errs.Validation("", "Invalid JSON format"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	service, err := h.selector.ByOrderID(ctx, orderID)
	if err != nil {
		h.writeError(w, requestID, err)
		return
	}

	order, err := service.UpdateOrder(ctx, orderID, update, DemoRequester())
	if err != nil {
		h.writeError(w, requestID, err)
		return
	}

	h.writeJSON(w, http.StatusOK, order)
}

// CancelOrder handles DELETE /v1/orders/{id}?reason=...
func (h *Handler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	orderID, err := parseOrderID(r)
	if err != nil {
		h.writeError(w, requestID, err)
		return
	}

	var reason *string
	if value := r.URL.Query().Get("reason"); value != "" {
		reason = &value
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	service, err := h.selector.ByOrderID(ctx, orderID)
	if err != nil {
		h.writeError(w, requestID, err)
		return
	}

	order, err := service.CancelOrder(ctx, orderID, DemoRequester(), reason)
	if err != nil {
		h.writeError(w, requestID, err)
		return
	}

	h.writeJSON(w, http.StatusOK, order)
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	response := map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "order-service",
	}

	status := http.StatusOK
	if h.healthy != nil && !h.healthy(ctx) {
		status = http.StatusServiceUnavailable
		response["status"] = "unhealthy"
	}

	h.writeJSON(w, status, response)
}

func parseOrderID(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.Validation("id", "invalid order id")
	}
	return id, nil
}

type errorBody struct {
	Code    string `json:"code"`
	Details string `json:"details"`
	Key     string `json:"key,omitempty"`
}

type errorEnvelope struct {
	Error     errorBody `json:"error"`
	RequestID string    `json:"request_id"`
}

// writeError maps the failure taxonomy onto HTTP status codes:
// not_found 404, validation 422, business rule 400, anything else 500.
func (h *Handler) writeError(w http.ResponseWriter, requestID string, err error) {
	body := errorBody{Code: errs.CodeServerError, Details: "An unexpected error occurred"}
	status := http.StatusInternalServerError

	var notFound *errs.NotFoundError
	var validation *errs.ValidationError
	var businessRule *errs.BusinessRuleViolation

	switch {
	case errors.As(err, &notFound):
		status = http.StatusNotFound
		body = errorBody{Code: notFound.Code(), Details: notFound.Error()}
	case errors.As(err, &validation):
		status = http.StatusUnprocessableEntity
		body = errorBody{Code: validation.Code(), Details: validation.Message, Key: validation.Field}
	case errors.As(err, &businessRule):
		status = http.StatusBadRequest
		body = errorBody{Code: businessRule.Code(), Details: businessRule.Details}
	default:
		h.logger.Error("request_failed", "Unexpected error", requestID, err, nil)
	}

	h.writeJSON(w, status, errorEnvelope{Error: body, RequestID: requestID})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("response_encoding_failed", "Failed to encode response", "", err, nil)
	}
}
