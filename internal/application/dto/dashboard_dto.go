package dto

import "github.com/shopspring/decimal"

// DashboardSalesDTO agregados de ventas para el dashboard.
type DashboardSalesDTO struct {
	Count   int             `json:"count"`
	Revenue decimal.Decimal `json:"revenue"`
}

// DashboardSummaryDTO conteos generales del sistema (solo admin).
type DashboardSummaryDTO struct {
	Users          int               `json:"users"`
	Products       int               `json:"products"`
	LowStock       int               `json:"low_stock"`
	Sales          DashboardSalesDTO `json:"sales"`
	PendingRepairs int               `json:"pending_repairs"`
}
