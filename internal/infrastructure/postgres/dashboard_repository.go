package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/taller-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas read-only de agregados (usable con pool o tx).
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador de consultas del dashboard.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

func (r *DashboardRepo) count(ctx context.Context, query string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// CountUsers total de cuentas.
func (r *DashboardRepo) CountUsers(ctx context.Context) (int, error) {
	n, err := r.count(ctx, `SELECT COUNT(*) FROM users`)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// CountProducts total de productos en catálogo.
func (r *DashboardRepo) CountProducts(ctx context.Context) (int, error) {
	n, err := r.count(ctx, `SELECT COUNT(*) FROM products`)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// CountLowStock productos en o por debajo del umbral de reposición.
func (r *DashboardRepo) CountLowStock(ctx context.Context) (int, error) {
	n, err := r.count(ctx, `SELECT COUNT(*) FROM products WHERE stock <= min_stock`)
	if err != nil {
		return 0, fmt.Errorf("count low stock: %w", err)
	}
	return n, nil
}

// SalesTotals cantidad de ventas e ingresos acumulados.
func (r *DashboardRepo) SalesTotals(ctx context.Context) (int, decimal.Decimal, error) {
	var count int
	var revenue decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(SUM(total), 0) FROM sales`,
	).Scan(&count, &revenue)
	if err != nil {
		return 0, decimal.Zero, fmt.Errorf("sales totals: %w", err)
	}
	return count, revenue, nil
}

// CountPendingRepairs reparaciones que aún no están completadas.
func (r *DashboardRepo) CountPendingRepairs(ctx context.Context) (int, error) {
	n, err := r.count(ctx, `SELECT COUNT(*) FROM repairs WHERE status <> 'completed'`)
	if err != nil {
		return 0, fmt.Errorf("count pending repairs: %w", err)
	}
	return n, nil
}
