package usecase

import (
	"context"

	"github.com/google/uuid"
)

// OrderReportLine is one order entry joined against its catalog snapshot.
// A dangling product reference leaves the snapshot fields empty rather than
// failing the report.
type OrderReportLine struct {
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	Price       string `json:"price"`
	Image       string `json:"image"`
}

// UserOrdersReport groups one user's order history for the admin dashboard.
type UserOrdersReport struct {
	UserID   uuid.UUID         `json:"userId"`
	UserName string            `json:"userName"`
	Orders   []OrderReportLine `json:"orders"`
}

// AdminUsecase is the read-only aggregation reporter: a fan-out over every
// profile's order history. It never mutates anything.
type AdminUsecase interface {
	ListAllOrders(ctx context.Context) ([]UserOrdersReport, error)
	TotalOrderCount(ctx context.Context) (int, error)
}
