// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Sentiment classifies post-purchase feedback.
type Sentiment string

const (
	// SentimentPositive indicates positive feedback.
	SentimentPositive Sentiment = "Positive"
	// SentimentNeutral indicates neutral feedback.
	SentimentNeutral Sentiment = "Neutral"
	// SentimentNegative indicates negative feedback.
	SentimentNegative Sentiment = "Negative"
)

// String returns the string representation of the Sentiment.
func (s Sentiment) String() string {
	return string(s)
}

// IsValid checks if the Sentiment is a valid value.
func (s Sentiment) IsValid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return true
	default:
		return false
	}
}

// Feedback is an append-only post-purchase note keyed by order identifier.
// It lives independently of the Profile aggregate.
type Feedback struct {
	ID        uuid.UUID // Unique identifier of the feedback entry.
	OrderID   string    // Opaque order identifier supplied by the storefront.
	Text      string    // Free-form feedback text.
	Sentiment Sentiment // One of Positive, Neutral, Negative.
	CreatedAt time.Time // Timestamp of submission.
}
