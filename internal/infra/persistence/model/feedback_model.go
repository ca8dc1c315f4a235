package model

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// FeedbackModel is the stored shape of one feedback entry.
type FeedbackModel struct {
	ID        string    `bson:"_id"`
	OrderID   string    `bson:"orderId"`
	Feedback  string    `bson:"feedback"`
	Sentiment string    `bson:"sentiment"`
	CreatedAt time.Time `bson:"createdAt"`
}

// FromFeedbackDomain maps a domain feedback entry to its stored document.
func FromFeedbackDomain(feedback *entity.Feedback) *FeedbackModel {
	return &FeedbackModel{
		ID:        feedback.ID.String(),
		OrderID:   feedback.OrderID,
		Feedback:  feedback.Text,
		Sentiment: feedback.Sentiment.String(),
		CreatedAt: feedback.CreatedAt,
	}
}

// ToFeedbackDomain maps a stored document back to the domain entry.
func ToFeedbackDomain(m *FeedbackModel) (*entity.Feedback, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, err
	}

	return &entity.Feedback{
		ID:        id,
		OrderID:   m.OrderID,
		Text:      m.Feedback,
		Sentiment: entity.Sentiment(m.Sentiment),
		CreatedAt: m.CreatedAt,
	}, nil
}
