package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea del carrito enviada por el caller.
type SaleItemRequest struct {
	ProductID string          `json:"product_id" validate:"required,uuid"`
	Quantity  int             `json:"quantity" validate:"required,min=1"`
	Price     decimal.Decimal `json:"price" validate:"required"` // precio unitario cobrado
}

// CreateSaleRequest entrada para registrar una venta.
// Total lo aporta el caller; no se valida contra la suma de items (brecha documentada).
type CreateSaleRequest struct {
	Items         []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
	Total         decimal.Decimal   `json:"total" validate:"required"`
	PaymentMethod string            `json:"payment_method" validate:"required,oneof=cash card transfer"`
	CustomerName  string            `json:"customer_name" validate:"omitempty,max=255"`
	CustomerDoc   string            `json:"customer_doc" validate:"omitempty,max=30"`
}

// CreateSaleResponse confirmación de la venta registrada.
type CreateSaleResponse struct {
	Message string `json:"message"`
	SaleID  string `json:"sale_id"`
}

// SaleItemResponse línea de venta en lecturas.
type SaleItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	ProductName string          `json:"product_name"`
}

// SaleResponse venta con sus items.
type SaleResponse struct {
	ID            string             `json:"id"`
	UserID        string             `json:"user_id"`
	SellerName    string             `json:"seller_name,omitempty"`
	Total         decimal.Decimal    `json:"total"`
	PaymentMethod string             `json:"payment_method"`
	CustomerName  string             `json:"customer_name"`
	CustomerDoc   string             `json:"customer_doc,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	Items         []SaleItemResponse `json:"items"`
}
