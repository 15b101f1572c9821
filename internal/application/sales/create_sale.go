// Package sales implementa el motor de ventas: registro atómico de la
// cabecera, sus items y los decrementos de stock en una sola transacción.
package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/repository"
)

const defaultCustomerName = "Cliente General"

// CreateSaleUseCase registra una venta de forma todo-o-nada.
//
// Dentro de la transacción, por cada línea del carrito:
//  1. GetForSale bloquea la fila del producto (FOR UPDATE). Producto
//     inexistente corta con NotFound.
//  2. Se inserta el item con snapshot del nombre actual del producto.
//  3. DecrementStock descuenta condicionalmente
//     (UPDATE ... WHERE id = $1 AND stock >= qty); 0 filas afectadas
//     corta con InsufficientStock.
//
// Cualquier corte revierte la cabecera, los items previos y los
// decrementos previos: el caller nunca observa una venta parcial. Dos
// ventas concurrentes sobre el mismo producto serializan en el lock de
// fila, así que no pueden pasar ambas la verificación contra stock viejo.
type CreateSaleUseCase struct {
	tx TxRunner
}

// NewCreateSaleUseCase construye el motor de ventas.
func NewCreateSaleUseCase(tx TxRunner) *CreateSaleUseCase {
	return &CreateSaleUseCase{tx: tx}
}

// Execute valida el carrito y corre la transacción. Devuelve el id de la
// venta confirmada; en error no hay resultado parcial.
func (uc *CreateSaleUseCase) Execute(ctx context.Context, sellerID string, in dto.CreateSaleRequest) (*dto.CreateSaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.Validation("ITEMS_REQUIRED", "debe incluir al menos un producto en la venta")
	}
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return nil, domain.Validation("INVALID_QUANTITY", "cantidad inválida para el producto %s", item.ProductID)
		}
		if item.Price.IsNegative() {
			return nil, domain.Validation("INVALID_PRICE", "precio inválido para el producto %s", item.ProductID)
		}
	}
	method := entity.PaymentMethod(in.PaymentMethod)
	if !method.Valid() {
		return nil, domain.Validation("INVALID_PAYMENT_METHOD", "método de pago inválido: %s", in.PaymentMethod)
	}

	customerName := in.CustomerName
	if customerName == "" {
		customerName = defaultCustomerName
	}
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		UserID:        sellerID,
		Total:         in.Total,
		PaymentMethod: method,
		CustomerName:  customerName,
		CustomerDoc:   in.CustomerDoc,
		CreatedAt:     time.Now(),
	}

	err := uc.tx.Run(ctx, func(saleRepo repository.SaleRepository, productRepo repository.ProductRepository) error {
		if err := saleRepo.CreateSale(ctx, sale); err != nil {
			return err
		}
		for _, line := range in.Items {
			product, err := productRepo.GetForSale(ctx, line.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.NotFound("PRODUCT_NOT_FOUND", "producto no encontrado: %s", line.ProductID)
			}
			item := &entity.SaleItem{
				ID:          uuid.New().String(),
				SaleID:      sale.ID,
				ProductID:   line.ProductID,
				Quantity:    line.Quantity,
				Price:       line.Price,
				ProductName: product.Name, // snapshot para el histórico
			}
			if err := saleRepo.CreateItem(ctx, item); err != nil {
				return err
			}
			ok, err := productRepo.DecrementStock(ctx, line.ProductID, line.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return domain.InsufficientStock(line.ProductID)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreateSaleResponse{
		Message: "venta creada exitosamente",
		SaleID:  sale.ID,
	}, nil
}
