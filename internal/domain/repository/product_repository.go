package repository

import (
	"context"

	"github.com/jhoicas/taller-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error

	// GetForSale bloquea la fila del producto (FOR UPDATE) y la devuelve.
	// Solo tiene sentido dentro de una transacción del motor de ventas.
	GetForSale(ctx context.Context, id string) (*entity.Product, error)

	// DecrementStock descuenta qty de forma condicional
	// (UPDATE ... SET stock = stock - qty WHERE id = $1 AND stock >= qty)
	// y reporta si afectó la fila. false significa stock insuficiente.
	DecrementStock(ctx context.Context, id string, qty int) (bool, error)
}
