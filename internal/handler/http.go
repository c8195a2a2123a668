package handler

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

type OrderSubmitter interface {
	Submit(ctx context.Context, order entities.Order) (entities.Order, error)
}

type OrderReader interface {
	Get(ctx context.Context, orderID string) (entities.Order, error)
	FindByCustomer(ctx context.Context, customerID string) ([]entities.Order, error)
}

type HTTPHandler struct {
	logger    *slog.Logger
	validate  *validator.Validate
	submitter OrderSubmitter
	reader    OrderReader
}

func NewHTTPHandler(logger *slog.Logger, submitter OrderSubmitter, reader OrderReader) *HTTPHandler {
	return &HTTPHandler{
		logger:    logger.With(slog.String("handler", "http")),
		validate:  utils.NewValidator(),
		submitter: submitter,
		reader:    reader,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Post("/orders", h.SubmitOrder)
	r.Get("/orders", h.FindOrders)
	r.Get("/orders/{order_id}", h.GetOrder)
}

// SubmitOrder accepts an order and returns before payment and shipping run.
// @Summary      Submit an order
// @Description  Stores the order in status CREATED. Payment and shipping follow asynchronously.
// @Tags         orders
// @Param        traceparent  header    string           false  "Correlation token"
// @Param        request      body      NewOrderRequest  true   "Order"
// @Success      202          {object}  wire.Order
// @Failure      400          {object}  utils.ValidationErrorResponse
// @Failure      500          {object}  utils.ErrorResponse
// @Router       /orders [post]
func (h *HTTPHandler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body NewOrderRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		submissionsTotal.WithLabelValues("invalid").Inc()
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(body); err != nil {
		submissionsTotal.WithLabelValues("invalid").Inc()
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.submitter.Submit(ctx, body.Entity(correlation.FromRequest(r)))
	if err != nil {
		submissionsTotal.WithLabelValues("failed").Inc()
		h.logger.ErrorContext(ctx, "failed to submit order", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	submissionsTotal.WithLabelValues("accepted").Inc()
	orderValue.Observe(order.Total)
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusAccepted)
}

// GetOrder returns the current record of an order.
// @Summary      Get an order
// @Tags         orders
// @Param        order_id  path      string  true  "Order id"
// @Success      200       {object}  wire.Order
// @Failure      404       {object}  utils.ErrorResponse "Order not found"
// @Failure      500       {object}  utils.ErrorResponse
// @Router       /orders/{order_id} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	order, err := h.reader.Get(ctx, orderID)
	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// FindOrders lists the orders of a customer, newest first.
// @Summary      List orders of a customer
// @Tags         orders
// @Param        customerId  query     string  true  "Customer id"
// @Success      200         {array}   wire.Order
// @Failure      400         {object}  utils.ValidationErrorResponse
// @Failure      500         {object}  utils.ErrorResponse
// @Router       /orders [get]
func (h *HTTPHandler) FindOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	customerID := r.URL.Query().Get("customerId")

	if err := h.validate.Var(customerID, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	orders, err := h.reader.FindByCustomer(ctx, customerID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to find orders", slog.Any("error", err), slog.String("customer_id", customerID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	res := make([]wire.Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderEntityToJSON(o))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}
