package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/repository"
	"github.com/jhoicas/taller-api/pkg/normalize"
)

// ClientUseCase gestión de clientes del taller (vendedores y admin).
type ClientUseCase struct {
	clientRepo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(clientRepo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{clientRepo: clientRepo}
}

// Create registra un cliente nuevo.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" {
		return nil, domain.Validation("CLIENT_NAME_REQUIRED", "el nombre del cliente es requerido")
	}
	now := time.Now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		Doc:       in.Doc,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// List devuelve los clientes; search no vacío filtra por nombre ignorando
// tildes y mayúsculas ("perez" encuentra "Pérez").
func (uc *ClientUseCase) List(ctx context.Context, search string) ([]dto.ClientResponse, error) {
	clients, err := uc.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		if search != "" && !normalize.Contains(c.Name, search) {
			continue
		}
		out = append(out, *toClientResponse(c))
	}
	return out, nil
}

// Update modifica un cliente existente.
func (uc *ClientUseCase) Update(ctx context.Context, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" {
		return nil, domain.Validation("CLIENT_NAME_REQUIRED", "el nombre del cliente es requerido")
	}
	client, err := uc.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.NotFound("CLIENT_NOT_FOUND", "cliente no encontrado")
	}
	client.Name = in.Name
	client.Phone = in.Phone
	client.Email = in.Email
	client.Doc = in.Doc
	client.UpdatedAt = time.Now()
	if err := uc.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete elimina un cliente.
func (uc *ClientUseCase) Delete(ctx context.Context, id string) error {
	client, err := uc.clientRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.NotFound("CLIENT_NOT_FOUND", "cliente no encontrado")
	}
	return uc.clientRepo.Delete(ctx, id)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Doc:       c.Doc,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
