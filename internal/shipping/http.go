package shipping

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/correlation"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/entities"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/wire"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type ShipmentService interface {
	Ship(ctx context.Context, req entities.ShippingRequest) (entities.ShipmentRecord, error)
	Shipment(ctx context.Context, orderID string) (entities.ShipmentRecord, error)
}

// ShipmentResponse is a shipment together with the order it belongs to.
type ShipmentResponse struct {
	OrderID string `json:"orderId"`
	wire.Shipment
}

func shipmentResponse(r entities.ShipmentRecord) ShipmentResponse {
	return ShipmentResponse{OrderID: r.OrderID, Shipment: wire.FromShipment(r.Shipment)}
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      ShipmentService
}

func NewHTTPHandler(logger *slog.Logger, svc ShipmentService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: utils.NewValidator(),
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Post("/shipping", h.Ship)
	r.Get("/shipping/{order_id}", h.GetShipment)
}

// Ship dispatches an order.
// @Summary      Ship an order
// @Tags         shipping
// @Param        request  body      wire.ShippingRequest  true  "Shipping request"
// @Success      200      {object}  ShipmentResponse
// @Failure      400      {object}  utils.ValidationErrorResponse
// @Failure      500      {object}  utils.ErrorResponse
// @Router       /shipping [post]
func (h *HTTPHandler) Ship(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body wire.ShippingRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(body); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	record, err := h.svc.Ship(ctx, body.Entity(correlation.FromRequest(r)))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to ship order", slog.Any("error", err), slog.String("order_id", body.OrderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, shipmentResponse(record), http.StatusOK)
}

// GetShipment returns the shipment of an order.
// @Summary      Get shipment by order id
// @Tags         shipping
// @Param        order_id  path      string  true  "Order id"
// @Success      200       {object}  ShipmentResponse
// @Failure      404       {object}  utils.ErrorResponse
// @Failure      500       {object}  utils.ErrorResponse
// @Router       /shipping/{order_id} [get]
func (h *HTTPHandler) GetShipment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	record, err := h.svc.Shipment(ctx, orderID)
	if errors.Is(err, entities.ErrShipmentNotFound) {
		utils.WriteError(w, "shipment not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get shipment", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, shipmentResponse(record), http.StatusOK)
}
