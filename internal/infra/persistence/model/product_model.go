package model

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductModel is the stored shape of a catalog record. The price stays the
// decimal string it was uploaded with.
type ProductModel struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	Category    string    `bson:"category,omitempty"`
	Image       string    `bson:"image,omitempty"`
	Price       string    `bson:"price"`
	Description string    `bson:"description,omitempty"`
	CreatedAt   time.Time `bson:"createdAt"`
}

// FromProductDomain maps a domain product to its stored document.
func FromProductDomain(product *entity.Product) *ProductModel {
	return &ProductModel{
		ID:          product.ID.String(),
		Name:        product.Name,
		Category:    product.Category,
		Image:       product.Image,
		Price:       product.Price.String(),
		Description: product.Description,
		CreatedAt:   product.CreatedAt,
	}
}

// ToProductDomain maps a stored document back to the domain product.
func ToProductDomain(m *ProductModel) (*entity.Product, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, err
	}

	return &entity.Product{
		ID:          id,
		Name:        m.Name,
		Category:    m.Category,
		Image:       m.Image,
		Price:       entity.Price(m.Price),
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}, nil
}
