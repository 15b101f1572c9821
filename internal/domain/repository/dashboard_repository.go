package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// DashboardRepository consultas read-only de agregados para el dashboard.
type DashboardRepository interface {
	CountUsers(ctx context.Context) (int, error)
	CountProducts(ctx context.Context) (int, error)
	CountLowStock(ctx context.Context) (int, error)
	SalesTotals(ctx context.Context) (count int, revenue decimal.Decimal, err error)
	CountPendingRepairs(ctx context.Context) (int, error)
}
