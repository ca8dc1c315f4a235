package mongo

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
)

// feedbackRepository implements the repository.FeedbackRepository interface.
type feedbackRepository struct {
	collection *mongo.Collection
}

// NewFeedbackRepository is the constructor for feedbackRepository.
func NewFeedbackRepository(db *mongo.Database) repository.FeedbackRepository {
	return &feedbackRepository{collection: db.Collection(feedbackCollection)}
}

// Create appends one feedback entry. Entries are never updated or deleted.
func (repo *feedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	if _, err := repo.collection.InsertOne(ctx, model.FromFeedbackDomain(feedback)); err != nil {
		return domainerrors.ErrStoreUnavailable.WrapMessage(errors.Wrap(err, "insert feedback").Error())
	}

	return nil
}
