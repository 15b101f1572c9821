package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// CreateSale inserta la cabecera de la venta.
func (r *SaleRepo) CreateSale(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, user_id, total, payment_method, customer_name, customer_doc, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.UserID, sale.Total, string(sale.PaymentMethod),
		sale.CustomerName, sale.CustomerDoc, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItem inserta una línea de la venta (con snapshot del nombre del producto).
func (r *SaleRepo) CreateItem(ctx context.Context, item *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (id, sale_id, product_id, quantity, price, product_name)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.SaleID, item.ProductID, item.Quantity, item.Price, item.ProductName,
	)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

const saleSelect = `
	SELECT s.id, s.user_id, s.total, s.payment_method, s.customer_name, s.customer_doc, s.created_at,
	       COALESCE(u.username, '') AS seller_name
	FROM sales s
	LEFT JOIN users u ON s.user_id = u.id`

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	err := row.Scan(&s.ID, &s.UserID, &s.Total, &s.PaymentMethod,
		&s.CustomerName, &s.CustomerDoc, &s.CreatedAt, &s.SellerName)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// List devuelve ventas con sus items, más recientes primero; sellerID no
// vacío restringe a ese vendedor.
func (r *SaleRepo) List(ctx context.Context, sellerID string) ([]*entity.Sale, error) {
	query := saleSelect
	var args []any
	if sellerID != "" {
		query += ` WHERE s.user_id = $1`
		args = append(args, sellerID)
	}
	query += ` ORDER BY s.created_at DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, s := range list {
		if err := r.loadItems(ctx, s); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// GetByID devuelve una venta con items, (nil, nil) si no existe o no
// pertenece al vendedor indicado.
func (r *SaleRepo) GetByID(ctx context.Context, id, sellerID string) (*entity.Sale, error) {
	query := saleSelect + ` WHERE s.id = $1`
	args := []any{id}
	if sellerID != "" {
		query += ` AND s.user_id = $2`
		args = append(args, sellerID)
	}
	s, err := scanSale(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	if err := r.loadItems(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// loadItems carga las líneas de una venta. Se usa el nombre snapshot; si por
// datos viejos estuviera vacío, cae al nombre actual del producto.
func (r *SaleRepo) loadItems(ctx context.Context, sale *entity.Sale) error {
	rows, err := r.q.Query(ctx, `
		SELECT i.id, i.product_id, i.quantity, i.price,
		       COALESCE(NULLIF(i.product_name, ''), p.name, 'Producto') AS product_name
		FROM sale_items i
		LEFT JOIN products p ON i.product_id = p.id
		WHERE i.sale_id = $1`, sale.ID)
	if err != nil {
		return fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.SaleItem
		it.SaleID = sale.ID
		if err := rows.Scan(&it.ID, &it.ProductID, &it.Quantity, &it.Price, &it.ProductName); err != nil {
			return fmt.Errorf("scan sale item: %w", err)
		}
		sale.Items = append(sale.Items, it)
	}
	return rows.Err()
}
