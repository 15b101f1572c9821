package repository

import (
	"context"

	"github.com/jhoicas/taller-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale y sus items.
type SaleRepository interface {
	CreateSale(ctx context.Context, sale *entity.Sale) error
	CreateItem(ctx context.Context, item *entity.SaleItem) error

	// List devuelve ventas con sus items, más recientes primero.
	// sellerID no vacío restringe a las ventas de ese vendedor.
	List(ctx context.Context, sellerID string) ([]*entity.Sale, error)

	// GetByID devuelve la venta con items, (nil, nil) si no existe.
	// sellerID no vacío exige además que la venta pertenezca a ese vendedor.
	GetByID(ctx context.Context, id, sellerID string) (*entity.Sale, error)
}
