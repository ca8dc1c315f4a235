package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// paymentService implements the PaymentUsecase interface: it is the checkout
// session builder, turning resolved cart rows into processor lines.
type paymentService struct {
	gateway service.PaymentService
	logger  *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(gateway service.PaymentService, logger *slog.Logger) usecase.PaymentUsecase {
	return &paymentService{
		gateway: gateway,
		logger:  logger,
	}
}

// CreateSession converts each item's decimal price string to integer minor
// units and submits the lines to the processor. Conversion failures reject
// the whole request before anything reaches the processor; processor
// failures surface as a payment-session error, unretried.
func (srv *paymentService) CreateSession(ctx context.Context, items []usecase.PaymentItemInput) (*usecase.CreateSessionOutput, error) {
	if len(items) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("at least one item is required")
	}

	lines := make([]service.CheckoutLine, 0, len(items))
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1")
		}

		unitAmount, err := entity.Price(item.Price).MinorUnits()
		if err != nil {
			return nil, domainerrors.ErrInvalidPrice.WithDetails(err.Error())
		}

		lines = append(lines, service.CheckoutLine{
			Name:       item.Name,
			Image:      item.Image,
			UnitAmount: unitAmount,
			Quantity:   int64(item.Quantity),
		})
	}

	sessionID, err := srv.gateway.CreateCheckoutSession(ctx, lines)
	if err != nil {
		srv.logger.Error("Failed to create checkout session", "error", err, "lines", len(lines))

		return nil, domainerrors.ErrPaymentSession.WrapMessage(errors.Wrap(err, "create checkout session").Error())
	}

	srv.logger.Info("Checkout session created", "sessionID", sessionID, "lines", len(lines))

	return &usecase.CreateSessionOutput{SessionID: sessionID}, nil
}
