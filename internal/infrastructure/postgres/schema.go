package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema DDL del taller. Lo aplica cmd/seed; idempotente (IF NOT EXISTS).
//
// Notas:
//   - products.stock lleva CHECK (stock >= 0): último cinturón contra un
//     decremento que se salte la ruta condicional del motor de ventas.
//   - users.section es NULL salvo técnicos (invariante aplicado en dominio).
//   - sale_items nunca se borra solo: cae con su venta (ON DELETE CASCADE).
const Schema = `
CREATE TABLE IF NOT EXISTS users (
	id            UUID PRIMARY KEY,
	username      VARCHAR(50)  NOT NULL UNIQUE,
	email         VARCHAR(100) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL,
	role          VARCHAR(20)  NOT NULL CHECK (role IN ('admin', 'seller', 'technician')),
	section       VARCHAR(20)  CHECK (section IN ('electronics', 'systems', 'mobile')),
	active        BOOLEAN      NOT NULL DEFAULT TRUE,
	created_at    TIMESTAMPTZ  NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ  NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS products (
	id          UUID PRIMARY KEY,
	name        VARCHAR(255)  NOT NULL,
	description TEXT          NOT NULL DEFAULT '',
	price       NUMERIC(12,2) NOT NULL CHECK (price >= 0),
	stock       INTEGER       NOT NULL DEFAULT 0 CHECK (stock >= 0),
	min_stock   INTEGER       NOT NULL DEFAULT 0 CHECK (min_stock >= 0),
	created_at  TIMESTAMPTZ   NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ   NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS clients (
	id         UUID PRIMARY KEY,
	name       VARCHAR(255) NOT NULL,
	phone      VARCHAR(20)  NOT NULL DEFAULT '',
	email      VARCHAR(100) NOT NULL DEFAULT '',
	doc        VARCHAR(30)  NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ  NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ  NOT NULL DEFAULT now()
);

CREATE UNIQUE INDEX IF NOT EXISTS clients_phone_key ON clients (phone) WHERE phone <> '';

CREATE TABLE IF NOT EXISTS sales (
	id             UUID PRIMARY KEY,
	user_id        UUID          NOT NULL REFERENCES users (id),
	total          NUMERIC(12,2) NOT NULL CHECK (total >= 0),
	payment_method VARCHAR(20)   NOT NULL CHECK (payment_method IN ('cash', 'card', 'transfer')),
	customer_name  VARCHAR(255)  NOT NULL DEFAULT 'Cliente General',
	customer_doc   VARCHAR(30)   NOT NULL DEFAULT '',
	created_at     TIMESTAMPTZ   NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS sale_items (
	id           UUID PRIMARY KEY,
	sale_id      UUID          NOT NULL REFERENCES sales (id) ON DELETE CASCADE,
	product_id   UUID          NOT NULL REFERENCES products (id),
	quantity     INTEGER       NOT NULL CHECK (quantity > 0),
	price        NUMERIC(12,2) NOT NULL CHECK (price >= 0),
	product_name VARCHAR(255)  NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS sale_items_sale_idx ON sale_items (sale_id);

CREATE TABLE IF NOT EXISTS repairs (
	id                UUID PRIMARY KEY,
	client_id         UUID         NOT NULL REFERENCES clients (id),
	device            VARCHAR(255) NOT NULL,
	issue_description TEXT         NOT NULL,
	section           VARCHAR(20)  NOT NULL CHECK (section IN ('electronics', 'systems', 'mobile')),
	status            VARCHAR(20)  NOT NULL DEFAULT 'received' CHECK (status IN ('received', 'in_progress', 'completed')),
	assigned_to       UUID         NOT NULL REFERENCES users (id),
	diagnosis         TEXT         NOT NULL DEFAULT '',
	created_at        TIMESTAMPTZ  NOT NULL DEFAULT now(),
	updated_at        TIMESTAMPTZ  NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS repairs_assigned_idx ON repairs (assigned_to);
`

// ApplySchema ejecuta el DDL completo.
func ApplySchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
