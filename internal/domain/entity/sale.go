package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod método de pago de una venta. Enumeración cerrada.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
)

// Valid reporta si el método de pago pertenece a la enumeración.
func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentCash, PaymentCard, PaymentTransfer:
		return true
	}
	return false
}

// Sale cabecera de una venta. Inmutable después de creada; se persiste en la
// misma transacción que sus items y los decrementos de stock.
// Total lo aporta el caller y no se valida contra la suma de items
// (brecha conocida, heredada del contrato de la API).
type Sale struct {
	ID            string
	UserID        string // vendedor que registró la venta
	Total         decimal.Decimal
	PaymentMethod PaymentMethod
	CustomerName  string // snapshot, "Cliente General" si no se indica
	CustomerDoc   string
	CreatedAt     time.Time

	// SellerName solo se puebla en lecturas (JOIN con users).
	SellerName string
	Items      []SaleItem
}

// SaleItem línea de una venta. Se crea una sola vez con su Sale y nunca se
// muta; ProductName es snapshot del nombre al momento de vender.
type SaleItem struct {
	ID          string
	SaleID      string
	ProductID   string
	Quantity    int
	Price       decimal.Decimal // precio unitario cobrado
	ProductName string
}
