package sales

import (
	"context"

	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/repository"
)

// SaleQueryUseCase lecturas de ventas. Los vendedores solo ven las propias;
// el admin ve todas (el scoping se decide con el rol del caller).
type SaleQueryUseCase struct {
	saleRepo repository.SaleRepository
	receipts ReceiptGenerator
}

// NewSaleQueryUseCase construye las lecturas de ventas.
func NewSaleQueryUseCase(saleRepo repository.SaleRepository, receipts ReceiptGenerator) *SaleQueryUseCase {
	return &SaleQueryUseCase{saleRepo: saleRepo, receipts: receipts}
}

// scope devuelve el filtro de vendedor: vacío (sin filtro) para admin.
func scope(callerID string, role entity.Role) string {
	if role == entity.RoleSeller {
		return callerID
	}
	return ""
}

// List devuelve las ventas visibles para el caller, con items.
func (uc *SaleQueryUseCase) List(ctx context.Context, callerID string, role entity.Role) ([]dto.SaleResponse, error) {
	sales, err := uc.saleRepo.List(ctx, scope(callerID, role))
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, *toSaleResponse(s))
	}
	return out, nil
}

// GetByID devuelve una venta visible para el caller o NotFound.
func (uc *SaleQueryUseCase) GetByID(ctx context.Context, id, callerID string, role entity.Role) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(ctx, id, scope(callerID, role))
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.NotFound("SALE_NOT_FOUND", "venta no encontrada")
	}
	return toSaleResponse(sale), nil
}

// Receipt genera el comprobante PDF de una venta visible para el caller.
func (uc *SaleQueryUseCase) Receipt(ctx context.Context, id, callerID string, role entity.Role) ([]byte, error) {
	sale, err := uc.saleRepo.GetByID(ctx, id, scope(callerID, role))
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.NotFound("SALE_NOT_FOUND", "venta no encontrada")
	}
	return uc.receipts.GenerateReceipt(ctx, sale)
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			Quantity:    it.Quantity,
			Price:       it.Price,
			ProductName: it.ProductName,
		})
	}
	return &dto.SaleResponse{
		ID:            s.ID,
		UserID:        s.UserID,
		SellerName:    s.SellerName,
		Total:         s.Total,
		PaymentMethod: string(s.PaymentMethod),
		CustomerName:  s.CustomerName,
		CustomerDoc:   s.CustomerDoc,
		CreatedAt:     s.CreatedAt,
		Items:         items,
	}
}
