package mongo

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	collection *mongo.Collection
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *mongo.Database) repository.ProfileRepository {
	return &profileRepository{collection: db.Collection(profilesCollection)}
}

func (repo *profileRepository) findOne(ctx context.Context, filter bson.M) (*entity.Profile, error) {
	var doc model.ProfileModel
	if err := repo.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, domainerrors.ErrStoreUnavailable.WrapMessage(errors.Wrap(err, "find profile").Error())
	}

	profile, err := model.ToProfileDomain(&doc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to map profile document")
	}

	return profile, nil
}

// FindByID retrieves a single profile by its unique ID.
func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	return repo.findOne(ctx, bson.M{"_id": id.String()})
}

// FindByEmail retrieves a single profile by its email address.
func (repo *profileRepository) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	return repo.findOne(ctx, bson.M{"email": email})
}

// FindAll retrieves every profile for the admin reporter.
func (repo *profileRepository) FindAll(ctx context.Context) ([]*entity.Profile, error) {
	cursor, err := repo.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, domainerrors.ErrStoreUnavailable.WrapMessage(errors.Wrap(err, "list profiles").Error())
	}
	defer cursor.Close(ctx)

	var docs []model.ProfileModel
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domainerrors.ErrStoreUnavailable.WrapMessage(errors.Wrap(err, "decode profiles").Error())
	}

	profiles := make([]*entity.Profile, 0, len(docs))
	for i := range docs {
		profile, err := model.ToProfileDomain(&docs[i])
		if err != nil {
			return nil, errors.Wrap(err, "failed to map profile document")
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}

// Create persists a new profile document.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	doc := model.FromProfileDomain(profile)
	doc.UpdatedAt = time.Now().UTC()

	if _, err := repo.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateEmail
		}

		return domainerrors.ErrStoreUnavailable.WrapMessage(errors.Wrap(err, "insert profile").Error())
	}

	return nil
}

// Save replaces the whole document, guarded by the version the aggregate was
// loaded with. A mismatch means another writer got there first; the caller
// sees ErrConflict and the loaded aggregate and store stay as they were.
func (repo *profileRepository) Save(ctx context.Context, profile *entity.Profile) error {
	loadedVersion := profile.Version
	profile.Version++
	profile.UpdatedAt = time.Now().UTC()

	doc := model.FromProfileDomain(profile)
	filter := bson.M{"_id": doc.ID, "version": loadedVersion}

	result, err := repo.collection.ReplaceOne(ctx, filter, doc)
	if err != nil {
		profile.Version = loadedVersion

		return domainerrors.ErrStoreUnavailable.WrapMessage(errors.Wrap(err, "replace profile").Error())
	}
	if result.MatchedCount == 0 {
		profile.Version = loadedVersion

		return repository.ErrConflict
	}

	return nil
}
