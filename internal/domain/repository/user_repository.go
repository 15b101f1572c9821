package repository

import (
	"context"

	"github.com/jhoicas/taller-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los GetBy* devuelven (nil, nil) cuando no hay fila.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	ListTechniciansBySection(ctx context.Context, section entity.Section) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error
}
