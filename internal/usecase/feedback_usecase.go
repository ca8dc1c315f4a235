package usecase

import "context"

// SubmitFeedbackInput defines the data required to record feedback.
type SubmitFeedbackInput struct {
	OrderID   string
	Text      string
	Sentiment string
}

// FeedbackUsecase records post-purchase feedback, append-only.
type FeedbackUsecase interface {
	SubmitFeedback(ctx context.Context, input SubmitFeedbackInput) error
}
