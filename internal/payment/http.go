package payment

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/correlation"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/entities"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/wire"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type AuthorizationService interface {
	Authorize(ctx context.Context, req entities.PaymentRequest) (entities.Authorization, error)
	Authorizations(ctx context.Context, orderID string) ([]entities.Authorization, error)
}

type AuthorizationResponse struct {
	OrderID        string    `json:"orderId"`
	IdempotencyKey string    `json:"idempotencyKey"`
	Time           time.Time `json:"time"`
	wire.Payment
}

func authorizationResponse(a entities.Authorization) AuthorizationResponse {
	return AuthorizationResponse{
		OrderID:        a.OrderID,
		IdempotencyKey: a.IdempotencyKey,
		Time:           a.Time,
		Payment:        wire.FromPayment(a.Payment),
	}
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      AuthorizationService
}

func NewHTTPHandler(logger *slog.Logger, svc AuthorizationService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: utils.NewValidator(),
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Post("/payments/authorize", h.Authorize)
	r.Get("/payments/{order_id}/authorizations", h.GetAuthorizations)
}

// Authorize decides a payment request. Declines are answered with 200 and
// authorised=false.
// @Summary      Authorize a payment
// @Tags         payments
// @Param        Idempotency-Key  header    string               false  "Deduplication key"
// @Param        request          body      wire.PaymentRequest  true   "Payment request"
// @Success      200              {object}  AuthorizationResponse
// @Failure      400              {object}  utils.ValidationErrorResponse
// @Failure      500              {object}  utils.ErrorResponse
// @Router       /payments/authorize [post]
func (h *HTTPHandler) Authorize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body wire.PaymentRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(body); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	req := body.Entity(correlation.FromRequest(r), r.Header.Get(wire.IdempotencyKeyHeader))
	auth, err := h.svc.Authorize(ctx, req)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to authorize payment", slog.Any("error", err), slog.String("order_id", body.OrderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, authorizationResponse(auth), http.StatusOK)
}

// GetAuthorizations lists the authorizations recorded for an order.
// @Summary      List authorizations of an order
// @Tags         payments
// @Param        order_id  path      string  true  "Order id"
// @Success      200       {array}   AuthorizationResponse
// @Failure      500       {object}  utils.ErrorResponse
// @Router       /payments/{order_id}/authorizations [get]
func (h *HTTPHandler) GetAuthorizations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	auths, err := h.svc.Authorizations(ctx, orderID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list authorizations", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	res := make([]AuthorizationResponse, 0, len(auths))
	for _, a := range auths {
		res = append(res, authorizationResponse(a))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}
