package repairs

import (
	"context"

	"github.com/jhoicas/taller-api/internal/domain/repository"
)

// TxRunner ejecuta el alta de una reparación dentro de una transacción:
// el upsert del cliente y el insert del ticket comparten el mismo destino.
type TxRunner interface {
	RunRepair(ctx context.Context, fn func(
		clientRepo repository.ClientRepository,
		repairRepo repository.RepairRepository,
	) error) error
}
