package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// adminService implements the AdminUsecase interface. It only reads.
type adminService struct {
	profiles repository.ProfileRepository
	products repository.ProductRepository
	logger   *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(
	profiles repository.ProfileRepository,
	products repository.ProductRepository,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		profiles: profiles,
		products: products,
		logger:   logger,
	}
}

// ListAllOrders joins every profile's order history against catalog
// snapshots. Products are fetched once per distinct reference; an order
// entry whose product was deleted keeps its quantity and gets empty snapshot
// fields, so one dangling reference never aborts the report.
func (srv *adminService) ListAllOrders(ctx context.Context) ([]usecase.UserOrdersReport, error) {
	profiles, err := srv.profiles.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	snapshots := make(map[uuid.UUID]*entity.Product)
	lookup := func(productID uuid.UUID) (*entity.Product, error) {
		if product, ok := snapshots[productID]; ok {
			return product, nil
		}

		product, err := srv.products.FindByID(ctx, productID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				srv.logger.Warn("Order references a deleted product", "productID", productID)
				snapshots[productID] = nil

				return nil, nil
			}

			return nil, errors.Wrap(err, "failed to resolve order product")
		}
		snapshots[productID] = product

		return product, nil
	}

	reports := make([]usecase.UserOrdersReport, 0, len(profiles))
	for _, profile := range profiles {
		report := usecase.UserOrdersReport{
			UserID:   profile.ID,
			UserName: profile.FullName(),
			Orders:   make([]usecase.OrderReportLine, 0, len(profile.Orders)),
		}

		for _, order := range profile.Orders {
			line := usecase.OrderReportLine{Quantity: order.Quantity}
			product, err := lookup(order.ProductID)
			if err != nil {
				return nil, err
			}
			if product != nil {
				line.ProductName = product.Name
				line.Price = product.Price.String()
				line.Image = product.Image
			}
			report.Orders = append(report.Orders, line)
		}

		reports = append(reports, report)
	}

	return reports, nil
}

// TotalOrderCount sums the order history length over all profiles. Profiles
// without orders contribute zero.
func (srv *adminService) TotalOrderCount(ctx context.Context) (int, error) {
	profiles, err := srv.profiles.FindAll(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list profiles")
	}

	total := 0
	for _, profile := range profiles {
		total += len(profile.Orders)
	}

	return total, nil
}
