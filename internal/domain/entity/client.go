package entity

import "time"

// Client representa un cliente del taller. El teléfono actúa como clave
// natural durante la recepción de reparaciones: se busca por phone y se
// crea o actualiza según exista.
type Client struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	Doc       string // cédula / NIT
	CreatedAt time.Time
	UpdatedAt time.Time
}
