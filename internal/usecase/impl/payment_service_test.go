package impl

import (
	"context"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentService_CreateSession_ConvertsPricesExactly(t *testing.T) {
	gateway := &fakeGateway{sessionID: "cs_test_123"}
	service := NewPaymentService(gateway, testLogger())

	output, err := service.CreateSession(context.Background(), []usecase.PaymentItemInput{
		{Name: "keyboard", Price: "19.99", Quantity: 2},
		{Name: "mouse", Price: "7", Quantity: 1},
	})

	require.NoError(t, err)
	assert.Equal(t, "cs_test_123", output.SessionID)
	require.Len(t, gateway.lines, 2)
	assert.Equal(t, int64(1999), gateway.lines[0].UnitAmount)
	assert.Equal(t, int64(2), gateway.lines[0].Quantity)
	assert.Equal(t, int64(700), gateway.lines[1].UnitAmount)
}

func TestPaymentService_CreateSession_RejectsMalformedPrice(t *testing.T) {
	gateway := &fakeGateway{sessionID: "cs_test_123"}
	service := NewPaymentService(gateway, testLogger())

	_, err := service.CreateSession(context.Background(), []usecase.PaymentItemInput{
		{Name: "keyboard", Price: "abc", Quantity: 1},
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidPrice)
	assert.Nil(t, gateway.lines)
}

func TestPaymentService_CreateSession_EmptyAndInvalidInput(t *testing.T) {
	service := NewPaymentService(&fakeGateway{}, testLogger())

	_, err := service.CreateSession(context.Background(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = service.CreateSession(context.Background(), []usecase.PaymentItemInput{
		{Name: "keyboard", Price: "10.00", Quantity: 0},
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPaymentService_CreateSession_ProcessorFailure(t *testing.T) {
	gateway := &fakeGateway{err: errors.New("stripe: connection reset")}
	service := NewPaymentService(gateway, testLogger())

	_, err := service.CreateSession(context.Background(), []usecase.PaymentItemInput{
		{Name: "keyboard", Price: "19.99", Quantity: 1},
	})

	assert.ErrorIs(t, err, domainerrors.ErrPaymentSession)
}
