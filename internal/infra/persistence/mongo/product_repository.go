package mongo

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	collection *mongo.Collection
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *mongo.Database) repository.ProductRepository {
	return &productRepository{collection: db.Collection(productsCollection)}
}

// FindByID retrieves a single product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var doc model.ProductModel
	if err := repo.collection.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProductNotFound
		}

		return nil, domainerrors.ErrStoreUnavailable.WrapMessage(errors.Wrap(err, "find product").Error())
	}

	product, err := model.ToProductDomain(&doc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to map product document")
	}

	return product, nil
}

// FindAll retrieves the whole catalog.
func (repo *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	cursor, err := repo.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, domainerrors.ErrStoreUnavailable.WrapMessage(errors.Wrap(err, "list products").Error())
	}
	defer cursor.Close(ctx)

	var docs []model.ProductModel
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domainerrors.ErrStoreUnavailable.WrapMessage(errors.Wrap(err, "decode products").Error())
	}

	products := make([]*entity.Product, 0, len(docs))
	for i := range docs {
		product, err := model.ToProductDomain(&docs[i])
		if err != nil {
			return nil, errors.Wrap(err, "failed to map product document")
		}
		products = append(products, product)
	}

	return products, nil
}

// Create persists a new product record.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if _, err := repo.collection.InsertOne(ctx, model.FromProductDomain(product)); err != nil {
		return domainerrors.ErrStoreUnavailable.WrapMessage(errors.Wrap(err, "insert product").Error())
	}

	return nil
}
