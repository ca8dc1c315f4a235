package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler exposes the read-only order aggregation endpoints for the
// admin dashboard.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListOrders returns every user's order history joined against the catalog.
func (h *AdminHandler) ListOrders(c echo.Context) error {
	reports, err := h.uc.ListAllOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Orders retrieved successfully", reports)
}

// SumOrders returns the total number of order entries across all users.
func (h *AdminHandler) SumOrders(c echo.Context) error {
	total, err := h.uc.TotalOrderCount(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Order count computed successfully", map[string]int{
		"totalOrders": total,
	})
}
