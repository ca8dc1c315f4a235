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

type submitFeedbackRequest struct {
	OrderID   string `json:"orderId"`
	Feedback  string `json:"feedback"`
	Sentiment string `json:"sentiment"`
}

// FeedbackHandler records post-purchase feedback.
type FeedbackHandler struct {
	uc     usecase.FeedbackUsecase
	logger *slog.Logger
}

// NewFeedbackHandler is the constructor for FeedbackHandler, injected by Fx.
func NewFeedbackHandler(uc usecase.FeedbackUsecase, logger *slog.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		uc:     uc,
		logger: logger,
	}
}

// SubmitFeedback appends one feedback record. Field presence and the
// sentiment enum are checked by the usecase so the error carries the
// offending field set.
func (h *FeedbackHandler) SubmitFeedback(c echo.Context) error {
	var req submitFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid feedback input")
	}

	err := h.uc.SubmitFeedback(c.Request().Context(), usecase.SubmitFeedbackInput{
		OrderID:   req.OrderID,
		Text:      req.Feedback,
		Sentiment: req.Sentiment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, "Feedback submitted successfully!", nil)
}
