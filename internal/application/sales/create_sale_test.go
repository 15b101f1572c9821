package sales_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/application/sales"
	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// memStore guarda productos, ventas e items como lo haría la BD. memTxRunner
// emula la transacción: toma un snapshot antes de ejecutar fn y lo restaura
// si fn falla, y serializa las transacciones con un mutex igual que lo hace
// el lock de fila FOR UPDATE en PostgreSQL.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu       sync.Mutex
	products map[string]*entity.Product
	sales    map[string]*entity.Sale
	items    []*entity.SaleItem
}

func newMemStore() *memStore {
	return &memStore{
		products: make(map[string]*entity.Product),
		sales:    make(map[string]*entity.Sale),
	}
}

func (s *memStore) addProduct(name string, stock int) string {
	id := uuid.New().String()
	s.products[id] = &entity.Product{
		ID:    id,
		Name:  name,
		Price: decimal.NewFromInt(100),
		Stock: stock,
	}
	return id
}

func (s *memStore) snapshot() *memStore {
	cp := newMemStore()
	for id, p := range s.products {
		pc := *p
		cp.products[id] = &pc
	}
	for id, v := range s.sales {
		vc := *v
		cp.sales[id] = &vc
	}
	cp.items = append(cp.items, s.items...)
	return cp
}

func (s *memStore) restore(snap *memStore) {
	s.products = snap.products
	s.sales = snap.sales
	s.items = snap.items
}

type memSaleRepo struct{ store *memStore }

func (r *memSaleRepo) CreateSale(ctx context.Context, sale *entity.Sale) error {
	cp := *sale
	r.store.sales[sale.ID] = &cp
	return nil
}

func (r *memSaleRepo) CreateItem(ctx context.Context, item *entity.SaleItem) error {
	cp := *item
	r.store.items = append(r.store.items, &cp)
	return nil
}

func (r *memSaleRepo) List(ctx context.Context, sellerID string) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, v := range r.store.sales {
		if sellerID == "" || v.UserID == sellerID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *memSaleRepo) GetByID(ctx context.Context, id, sellerID string) (*entity.Sale, error) {
	v, ok := r.store.sales[id]
	if !ok || (sellerID != "" && v.UserID != sellerID) {
		return nil, nil
	}
	return v, nil
}

type memProductRepo struct{ store *memStore }

func (r *memProductRepo) Create(ctx context.Context, p *entity.Product) error {
	cp := *p
	r.store.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.store.products[id], nil
}

func (r *memProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.store.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *memProductRepo) Update(ctx context.Context, p *entity.Product) error {
	cp := *p
	r.store.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) Delete(ctx context.Context, id string) error {
	delete(r.store.products, id)
	return nil
}

func (r *memProductRepo) GetForSale(ctx context.Context, id string) (*entity.Product, error) {
	return r.store.products[id], nil
}

func (r *memProductRepo) DecrementStock(ctx context.Context, id string, qty int) (bool, error) {
	p, ok := r.store.products[id]
	if !ok || p.Stock < qty {
		return false, nil
	}
	p.Stock -= qty
	return true, nil
}

type memTxRunner struct{ store *memStore }

func (tx *memTxRunner) Run(ctx context.Context, fn func(repository.SaleRepository, repository.ProductRepository) error) error {
	tx.store.mu.Lock()
	defer tx.store.mu.Unlock()

	snap := tx.store.snapshot()
	err := fn(&memSaleRepo{store: tx.store}, &memProductRepo{store: tx.store})
	if err != nil {
		tx.store.restore(snap)
	}
	return err
}

func newSaleFixture() (*memStore, *sales.CreateSaleUseCase) {
	store := newMemStore()
	return store, sales.NewCreateSaleUseCase(&memTxRunner{store: store})
}

func saleRequest(items ...dto.SaleItemRequest) dto.CreateSaleRequest {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return dto.CreateSaleRequest{
		Items:         items,
		Total:         total,
		PaymentMethod: "cash",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación del carrito (antes de tocar la BD)
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateSale_CarritoVacioRechazado(t *testing.T) {
	store, uc := newSaleFixture()

	_, err := uc.Execute(context.Background(), uuid.New().String(), saleRequest())

	require.Error(t, err)
	assert.Equal(t, "ITEMS_REQUIRED", domain.CodeOf(err))
	assert.Empty(t, store.sales, "no debe persistirse ninguna venta")
	assert.Empty(t, store.items, "no debe persistirse ningún item")
}

func TestCreateSale_CantidadInvalidaRechazada(t *testing.T) {
	store, uc := newSaleFixture()
	productID := store.addProduct("Teclado", 10)

	_, err := uc.Execute(context.Background(), uuid.New().String(), saleRequest(
		dto.SaleItemRequest{ProductID: productID, Quantity: 0, Price: decimal.NewFromInt(50)},
	))

	require.Error(t, err)
	assert.Equal(t, "INVALID_QUANTITY", domain.CodeOf(err))
	assert.Equal(t, 10, store.products[productID].Stock, "el stock no debe cambiar")
}

func TestCreateSale_MetodoPagoInvalidoRechazado(t *testing.T) {
	store, uc := newSaleFixture()
	productID := store.addProduct("Mouse", 5)

	req := saleRequest(dto.SaleItemRequest{ProductID: productID, Quantity: 1, Price: decimal.NewFromInt(50)})
	req.PaymentMethod = "bitcoin"

	_, err := uc.Execute(context.Background(), uuid.New().String(), req)

	require.Error(t, err)
	assert.Equal(t, "INVALID_PAYMENT_METHOD", domain.CodeOf(err))
}

// ──────────────────────────────────────────────────────────────────────────────
// Atomicidad: cualquier línea fallida revierte toda la venta
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateSale_ProductoInexistenteRevierteTodo(t *testing.T) {
	store, uc := newSaleFixture()
	okID := store.addProduct("Cargador", 10)

	_, err := uc.Execute(context.Background(), uuid.New().String(), saleRequest(
		dto.SaleItemRequest{ProductID: okID, Quantity: 2, Price: decimal.NewFromInt(30)},
		dto.SaleItemRequest{ProductID: uuid.New().String(), Quantity: 1, Price: decimal.NewFromInt(30)},
	))

	require.Error(t, err)
	assert.Equal(t, "PRODUCT_NOT_FOUND", domain.CodeOf(err))
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	assert.Empty(t, store.sales, "la cabecera debe revertirse")
	assert.Empty(t, store.items, "los items previos deben revertirse")
	assert.Equal(t, 10, store.products[okID].Stock, "el decremento previo debe revertirse")
}

func TestCreateSale_StockInsuficienteRevierteTodo(t *testing.T) {
	store, uc := newSaleFixture()
	okID := store.addProduct("Pantalla", 10)
	lowID := store.addProduct("Batería", 1)

	_, err := uc.Execute(context.Background(), uuid.New().String(), saleRequest(
		dto.SaleItemRequest{ProductID: okID, Quantity: 3, Price: decimal.NewFromInt(200)},
		dto.SaleItemRequest{ProductID: lowID, Quantity: 5, Price: decimal.NewFromInt(80)},
	))

	require.Error(t, err)
	assert.Equal(t, "INSUFFICIENT_STOCK", domain.CodeOf(err))
	assert.Contains(t, err.Error(), lowID, "el error debe identificar el producto sin stock")
	assert.Empty(t, store.sales)
	assert.Empty(t, store.items)
	assert.Equal(t, 10, store.products[okID].Stock)
	assert.Equal(t, 1, store.products[lowID].Stock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Camino feliz
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateSale_VentaValidaPersisteTodo(t *testing.T) {
	store, uc := newSaleFixture()
	sellerID := uuid.New().String()
	aID := store.addProduct("SSD 480GB", 8)
	bID := store.addProduct("RAM 8GB", 4)

	out, err := uc.Execute(context.Background(), sellerID, saleRequest(
		dto.SaleItemRequest{ProductID: aID, Quantity: 2, Price: decimal.NewFromInt(150)},
		dto.SaleItemRequest{ProductID: bID, Quantity: 1, Price: decimal.NewFromInt(90)},
	))

	require.NoError(t, err)
	require.NotNil(t, out)
	assert.NotEmpty(t, out.SaleID)

	sale := store.sales[out.SaleID]
	require.NotNil(t, sale, "la cabecera debe quedar persistida")
	assert.Equal(t, sellerID, sale.UserID)
	assert.Equal(t, "Cliente General", sale.CustomerName, "sin nombre de cliente aplica el valor por defecto")

	require.Len(t, store.items, 2)
	assert.Equal(t, "SSD 480GB", store.items[0].ProductName, "el item guarda snapshot del nombre")
	assert.Equal(t, 6, store.products[aID].Stock)
	assert.Equal(t, 3, store.products[bID].Stock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrencia: con stock N y 2N compradores de una unidad, exactamente N
// ventas confirman y el stock termina en cero, nunca negativo.
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateSale_ConcurrenciaNoSobrevende(t *testing.T) {
	store, uc := newSaleFixture()
	const stock = 20
	productID := store.addProduct("Fuente 600W", stock)

	var wg sync.WaitGroup
	results := make(chan error, stock*2)
	for i := 0; i < stock*2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), uuid.New().String(), saleRequest(
				dto.SaleItemRequest{ProductID: productID, Quantity: 1, Price: decimal.NewFromInt(120)},
			))
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	confirmed, rejected := 0, 0
	for err := range results {
		if err == nil {
			confirmed++
			continue
		}
		rejected++
		assert.Equal(t, "INSUFFICIENT_STOCK", domain.CodeOf(err))
	}

	assert.Equal(t, stock, confirmed, "deben confirmar exactamente tantas ventas como stock había")
	assert.Equal(t, stock, rejected)
	assert.Equal(t, 0, store.products[productID].Stock, "el stock nunca queda negativo")
	assert.Len(t, store.sales, stock)
}
