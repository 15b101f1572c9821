package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo del taller.
// Stock nunca queda negativo después de una venta confirmada: el decremento
// es condicional dentro de la transacción de venta.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta, >= 0
	Stock       int
	MinStock    int // umbral de reposición (alerta en dashboard)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LowStock reporta si el producto está en o por debajo del umbral de reposición.
func (p *Product) LowStock() bool {
	return p.Stock <= p.MinStock
}
