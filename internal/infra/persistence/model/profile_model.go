// Package model contains the persistence representations of the domain
// entities and the mapping between the two. Documents carry bson tags; the
// domain stays free of driver concerns.
package model

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// LineItemModel is one embedded line-item row inside a profile document.
type LineItemModel struct {
	ProductID string `bson:"productId"`
	Quantity  int    `bson:"quantity,omitempty"`
}

// ProfileModel is the stored shape of the profile aggregate. The four
// collections are embedded arrays in the one document, so every save replaces
// the aggregate atomically.
type ProfileModel struct {
	ID            string          `bson:"_id"`
	FirstName     string          `bson:"firstName"`
	LastName      string          `bson:"lastName"`
	Email         string          `bson:"email"`
	PasswordHash  string          `bson:"passwordHash"`
	Image         string          `bson:"image,omitempty"`
	Cart          []LineItemModel `bson:"cart"`
	Wishlist      []LineItemModel `bson:"wishlist"`
	SavedForLater []LineItemModel `bson:"savedForLater"`
	Orders        []LineItemModel `bson:"myorders"`
	Version       int64           `bson:"version"`
	CreatedAt     time.Time       `bson:"createdAt"`
	UpdatedAt     time.Time       `bson:"updatedAt"`
}

func toLineItemModels(items []entity.LineItem) []LineItemModel {
	models := make([]LineItemModel, 0, len(items))
	for _, item := range items {
		models = append(models, LineItemModel{
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
		})
	}

	return models
}

func toLineItemDomain(models []LineItemModel) ([]entity.LineItem, error) {
	items := make([]entity.LineItem, 0, len(models))
	for _, m := range models {
		productID, err := uuid.Parse(m.ProductID)
		if err != nil {
			return nil, err
		}
		items = append(items, entity.LineItem{ProductID: productID, Quantity: m.Quantity})
	}

	return items, nil
}

// FromProfileDomain maps a domain aggregate to its stored document.
func FromProfileDomain(profile *entity.Profile) *ProfileModel {
	return &ProfileModel{
		ID:            profile.ID.String(),
		FirstName:     profile.FirstName,
		LastName:      profile.LastName,
		Email:         profile.Email,
		PasswordHash:  profile.PasswordHash,
		Image:         profile.Image,
		Cart:          toLineItemModels(profile.Cart),
		Wishlist:      toLineItemModels(profile.Wishlist),
		SavedForLater: toLineItemModels(profile.SavedForLater),
		Orders:        toLineItemModels(profile.Orders),
		Version:       profile.Version,
		CreatedAt:     profile.CreatedAt,
		UpdatedAt:     profile.UpdatedAt,
	}
}

// ToProfileDomain maps a stored document back to the domain aggregate.
func ToProfileDomain(m *ProfileModel) (*entity.Profile, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, err
	}

	cart, err := toLineItemDomain(m.Cart)
	if err != nil {
		return nil, err
	}
	wishlist, err := toLineItemDomain(m.Wishlist)
	if err != nil {
		return nil, err
	}
	saved, err := toLineItemDomain(m.SavedForLater)
	if err != nil {
		return nil, err
	}
	orders, err := toLineItemDomain(m.Orders)
	if err != nil {
		return nil, err
	}

	return &entity.Profile{
		ID:            id,
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		Email:         m.Email,
		PasswordHash:  m.PasswordHash,
		Image:         m.Image,
		Cart:          cart,
		Wishlist:      wishlist,
		SavedForLater: saved,
		Orders:        orders,
		Version:       m.Version,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}, nil
}
