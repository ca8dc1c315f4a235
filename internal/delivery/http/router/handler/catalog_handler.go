package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type uploadProductRequest struct {
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Image       string `json:"image"`
	Price       string `json:"price" validate:"required"`
	Description string `json:"description"`
}

// CatalogHandler holds dependencies for product catalog handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// UploadProduct handles adding a product to the catalog.
func (h *CatalogHandler) UploadProduct(c echo.Context) error {
	var req uploadProductRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.UploadProduct(c.Request().Context(), usecase.UploadProductInput{
		Name:        req.Name,
		Category:    req.Category,
		Image:       req.Image,
		Price:       req.Price,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, "Upload successfully", product)
}

// ListProducts handles the catalog listing request.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Products retrieved successfully", products)
}
