// Package payment contains the Stripe implementation of the checkout-session
// boundary.
package payment

import (
	"context"
	"log/slog"
	"net/url"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// stripeService implements service.PaymentService against the Stripe
// checkout-session API. It performs no retries; failures go straight back to
// the caller.
type stripeService struct {
	api        *client.API
	currency   string
	successURL string
	cancelURL  string
	logger     *slog.Logger
}

// NewStripeService is the constructor for stripeService. The redirect targets
// are derived once from the configured frontend base URL.
func NewStripeService(cfg *config.Config, logger *slog.Logger) (service.PaymentService, error) {
	successURL, err := url.JoinPath(cfg.Frontend.BaseURL, cfg.Frontend.SuccessPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build success redirect URL")
	}
	cancelURL, err := url.JoinPath(cfg.Frontend.BaseURL, cfg.Frontend.CancelPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build cancel redirect URL")
	}

	api := &client.API{}
	api.Init(cfg.Stripe.SecretKey, nil)

	return &stripeService{
		api:        api,
		currency:   cfg.Stripe.Currency,
		successURL: successURL,
		cancelURL:  cancelURL,
		logger:     logger,
	}, nil
}

// CreateCheckoutSession submits one priced line per item and returns the
// opaque session identifier.
func (s *stripeService) CreateCheckoutSession(ctx context.Context, lines []service.CheckoutLine) (string, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(lines))
	for _, line := range lines {
		productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(line.Name),
		}
		if line.Image != "" {
			productData.Images = stripe.StringSlice([]string{line.Image})
		}

		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(s.currency),
				ProductData: productData,
				UnitAmount:  stripe.Int64(line.UnitAmount),
			},
			Quantity: stripe.Int64(line.Quantity),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Params:             stripe.Params{Context: ctx},
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		SuccessURL:         stripe.String(s.successURL),
		CancelURL:          stripe.String(s.cancelURL),
	}

	session, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		return "", errors.Wrap(err, "stripe checkout session create failed")
	}

	s.logger.Debug("Stripe session created", "sessionID", session.ID)

	return session.ID, nil
}
