package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// feedbackService implements the FeedbackUsecase interface.
type feedbackService struct {
	feedback repository.FeedbackRepository
	logger   *slog.Logger
}

// NewFeedbackService is the constructor for feedbackService.
func NewFeedbackService(feedback repository.FeedbackRepository, logger *slog.Logger) usecase.FeedbackUsecase {
	return &feedbackService{
		feedback: feedback,
		logger:   logger,
	}
}

// SubmitFeedback validates and appends one feedback entry. Every field is
// required and the sentiment must be one of the enumerated values.
func (srv *feedbackService) SubmitFeedback(ctx context.Context, input usecase.SubmitFeedbackInput) error {
	if input.OrderID == "" || input.Text == "" || input.Sentiment == "" {
		return domainerrors.ErrValidationFailed.WithDetails("orderId, feedback and sentiment are required")
	}

	sentiment := entity.Sentiment(input.Sentiment)
	if !sentiment.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("sentiment must be Positive, Neutral or Negative")
	}

	entry := &entity.Feedback{
		ID:        uuid.New(),
		OrderID:   input.OrderID,
		Text:      input.Text,
		Sentiment: sentiment,
		CreatedAt: time.Now().UTC(),
	}

	if err := srv.feedback.Create(ctx, entry); err != nil {
		return errors.Wrap(err, "failed to record feedback")
	}

	srv.logger.Debug("Feedback recorded", "feedbackID", entry.ID, "orderID", entry.OrderID)

	return nil
}
