// Package analytics contiene el caso de uso del dashboard administrativo.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// DashboardUseCase arma los conteos generales del sistema (solo admin).
//
// Fuente de datos: DashboardRepository (consultas read-only); no toca las
// tablas directamente.
type DashboardUseCase struct {
	dashRepo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(dashRepo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{dashRepo: dashRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Las cinco consultas se lanzan en paralelo; la primera que falle tumba el
// resumen completo.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type countResult struct {
		n   int
		err error
	}
	type salesResult struct {
		count   int
		revenue decimal.Decimal
		err     error
	}

	usersCh := make(chan countResult, 1)
	productsCh := make(chan countResult, 1)
	lowStockCh := make(chan countResult, 1)
	salesCh := make(chan salesResult, 1)
	repairsCh := make(chan countResult, 1)

	go func() {
		n, err := uc.dashRepo.CountUsers(ctx)
		usersCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.dashRepo.CountProducts(ctx)
		productsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.dashRepo.CountLowStock(ctx)
		lowStockCh <- countResult{n, err}
	}()
	go func() {
		count, revenue, err := uc.dashRepo.SalesTotals(ctx)
		salesCh <- salesResult{count, revenue, err}
	}()
	go func() {
		n, err := uc.dashRepo.CountPendingRepairs(ctx)
		repairsCh <- countResult{n, err}
	}()

	users := <-usersCh
	products := <-productsCh
	lowStock := <-lowStockCh
	sales := <-salesCh
	repairs := <-repairsCh

	if users.err != nil {
		return nil, fmt.Errorf("dashboard: usuarios: %w", users.err)
	}
	if products.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", products.err)
	}
	if lowStock.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", lowStock.err)
	}
	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: ventas: %w", sales.err)
	}
	if repairs.err != nil {
		return nil, fmt.Errorf("dashboard: reparaciones: %w", repairs.err)
	}

	return &dto.DashboardSummaryDTO{
		Users:    users.n,
		Products: products.n,
		LowStock: lowStock.n,
		Sales: dto.DashboardSalesDTO{
			Count:   sales.count,
			Revenue: sales.revenue.Round(2),
		},
		PendingRepairs: repairs.n,
	}, nil
}
