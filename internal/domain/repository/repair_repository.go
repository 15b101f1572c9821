package repository

import (
	"context"

	"github.com/jhoicas/taller-api/internal/domain/entity"
)

// RepairRepository define el puerto de persistencia para RepairTicket.
type RepairRepository interface {
	Create(ctx context.Context, ticket *entity.RepairTicket) error
	GetByID(ctx context.Context, id string) (*entity.RepairTicket, error)

	// List devuelve tickets con nombres de cliente y técnico, más recientes
	// primero. technicianID no vacío restringe a los asignados a ese técnico.
	List(ctx context.Context, technicianID string) ([]*entity.RepairTicket, error)

	UpdateStatus(ctx context.Context, id string, status entity.RepairStatus) error
	UpdateDiagnosis(ctx context.Context, id, diagnosis string, status entity.RepairStatus) error
}
