package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// paymentItem is one resolved cart row as the storefront client submits it:
// the product snapshot it already holds plus the chosen quantity.
type paymentItem struct {
	Product struct {
		Name  string `json:"name"`
		Image string `json:"image"`
		Price string `json:"price"`
	} `json:"product"`
	Quantity int `json:"quantity"`
}

// PaymentHandler builds checkout sessions with the payment processor.
type PaymentHandler struct {
	uc     usecase.PaymentUsecase
	logger *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateSession turns the submitted cart rows into a hosted checkout
// session and returns the processor's session ID for the redirect.
func (h *PaymentHandler) CreateSession(c echo.Context) error {
	var items []paymentItem
	if err := c.Bind(&items); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid payment input")
	}

	inputs := make([]usecase.PaymentItemInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, usecase.PaymentItemInput{
			Name:     item.Product.Name,
			Image:    item.Product.Image,
			Price:    item.Product.Price,
			Quantity: item.Quantity,
		})
	}

	output, err := h.uc.CreateSession(c.Request().Context(), inputs)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Checkout session created", output)
}
