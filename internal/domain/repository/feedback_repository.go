package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// FeedbackRepository defines the append-only feedback log.
type FeedbackRepository interface {
	// Create persists a new feedback entry.
	Create(ctx context.Context, feedback *entity.Feedback) error
}
