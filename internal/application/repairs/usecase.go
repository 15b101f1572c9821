// Package repairs implementa el flujo de reparaciones: recepción con
// asignación de técnico por sección, diagnóstico y transición de estados.
package repairs

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/repository"
)

// RepairUseCase casos de uso del taller de reparaciones.
type RepairUseCase struct {
	tx         TxRunner
	userRepo   repository.UserRepository
	repairRepo repository.RepairRepository
}

// NewRepairUseCase construye el caso de uso.
func NewRepairUseCase(tx TxRunner, userRepo repository.UserRepository, repairRepo repository.RepairRepository) *RepairUseCase {
	return &RepairUseCase{tx: tx, userRepo: userRepo, repairRepo: repairRepo}
}

// Create recibe un equipo: valida la asignación ANTES de tocar la BD
// (una asignación inválida no deja ni ticket ni upsert de cliente) y luego
// hace upsert del cliente por teléfono + insert del ticket en una sola
// transacción.
func (uc *RepairUseCase) Create(ctx context.Context, in dto.CreateRepairRequest) (*dto.CreateRepairResponse, error) {
	if in.ClientName == "" || in.ClientPhone == "" || in.Device == "" ||
		in.IssueDescription == "" || in.Section == "" || in.AssignedTo == "" {
		return nil, domain.Validation("REPAIR_FIELDS_REQUIRED", "faltan campos requeridos para la reparación")
	}
	section := entity.Section(in.Section)
	if !section.Valid() {
		return nil, domain.Validation("INVALID_SECTION", "sección inválida: %s", in.Section)
	}

	// El técnico debe existir, ser técnico y pertenecer a la sección del ticket.
	tech, err := uc.userRepo.GetByID(ctx, in.AssignedTo)
	if err != nil {
		return nil, err
	}
	if tech == nil || tech.Role != entity.RoleTechnician || tech.Section != section {
		return nil, domain.Validation("TECHNICIAN_SECTION_MISMATCH", "el técnico no pertenece a esta sección")
	}

	now := time.Now()
	ticket := &entity.RepairTicket{
		ID:               uuid.New().String(),
		Device:           in.Device,
		IssueDescription: in.IssueDescription,
		Section:          section,
		Status:           entity.RepairReceived,
		AssignedTo:       in.AssignedTo,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err = uc.tx.RunRepair(ctx, func(clientRepo repository.ClientRepository, repairRepo repository.RepairRepository) error {
		// Upsert del cliente por teléfono: si existe se refresca nombre y doc.
		client, err := clientRepo.GetByPhone(ctx, in.ClientPhone)
		if err != nil {
			return err
		}
		if client != nil {
			client.Name = in.ClientName
			client.Doc = in.ClientDoc
			client.UpdatedAt = now
			if err := clientRepo.Update(ctx, client); err != nil {
				return err
			}
		} else {
			client = &entity.Client{
				ID:        uuid.New().String(),
				Name:      in.ClientName,
				Phone:     in.ClientPhone,
				Doc:       in.ClientDoc,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := clientRepo.Create(ctx, client); err != nil {
				return err
			}
		}
		ticket.ClientID = client.ID
		return repairRepo.Create(ctx, ticket)
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreateRepairResponse{
		Message:  "reparación registrada y asignada exitosamente",
		ID:       ticket.ID,
		ClientID: ticket.ClientID,
	}, nil
}

// List devuelve los tickets visibles para el caller: los técnicos solo ven
// los asignados a ellos; admin y vendedores ven todos.
func (uc *RepairUseCase) List(ctx context.Context, callerID string, role entity.Role) ([]dto.RepairResponse, error) {
	technicianID := ""
	if role == entity.RoleTechnician {
		technicianID = callerID
	}
	tickets, err := uc.repairRepo.List(ctx, technicianID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RepairResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, *toRepairResponse(t))
	}
	return out, nil
}

// UpdateStatus transiciona el estado de un ticket. Solo el admin o el
// técnico asignado pueden hacerlo; la línea de estados no retrocede.
func (uc *RepairUseCase) UpdateStatus(ctx context.Context, id, callerID string, role entity.Role, in dto.UpdateRepairStatusRequest) error {
	status := entity.RepairStatus(in.Status)
	if !status.Valid() {
		return domain.Validation("INVALID_STATUS", "estado de reparación inválido: %s", in.Status)
	}
	ticket, err := uc.repairRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if ticket == nil {
		return domain.NotFound("REPAIR_NOT_FOUND", "reparación no encontrada")
	}
	if err := uc.authorizeMutation(ticket, callerID, role); err != nil {
		return err
	}
	if !ticket.Status.CanTransitionTo(status) {
		return domain.Validation("INVALID_STATUS", "no se puede pasar de %s a %s", ticket.Status, status)
	}
	return uc.repairRepo.UpdateStatus(ctx, id, status)
}

// AddDiagnosis registra el diagnóstico. Solo el técnico asignado puede
// diagnosticar; el ticket pasa a in_progress.
func (uc *RepairUseCase) AddDiagnosis(ctx context.Context, id, callerID string, role entity.Role, in dto.AddDiagnosisRequest) error {
	if strings.TrimSpace(in.Diagnosis) == "" {
		return domain.Validation("DIAGNOSIS_REQUIRED", "el diagnóstico no puede estar vacío")
	}
	ticket, err := uc.repairRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if ticket == nil {
		return domain.NotFound("REPAIR_NOT_FOUND", "reparación no encontrada")
	}
	if role != entity.RoleTechnician || ticket.AssignedTo != callerID {
		return domain.Forbidden("NOT_ASSIGNED", "no tienes permiso para diagnosticar esta reparación")
	}
	if ticket.Status == entity.RepairCompleted {
		return domain.Validation("INVALID_STATUS", "la reparación ya está completada")
	}
	return uc.repairRepo.UpdateDiagnosis(ctx, id, in.Diagnosis, entity.RepairInProgress)
}

// authorizeMutation: admin siempre; técnico solo si el ticket es suyo;
// cualquier otro rol queda fuera.
func (uc *RepairUseCase) authorizeMutation(ticket *entity.RepairTicket, callerID string, role entity.Role) error {
	switch role {
	case entity.RoleAdmin:
		return nil
	case entity.RoleTechnician:
		if ticket.AssignedTo == callerID {
			return nil
		}
		return domain.Forbidden("NOT_ASSIGNED", "no tienes permiso para modificar esta reparación")
	default:
		return domain.Forbidden("FORBIDDEN", "no tienes permisos para esta acción")
	}
}

func toRepairResponse(t *entity.RepairTicket) *dto.RepairResponse {
	return &dto.RepairResponse{
		ID:               t.ID,
		ClientID:         t.ClientID,
		ClientName:       t.ClientName,
		ClientPhone:      t.ClientPhone,
		ClientDoc:        t.ClientDoc,
		Device:           t.Device,
		IssueDescription: t.IssueDescription,
		Section:          string(t.Section),
		Status:           string(t.Status),
		AssignedTo:       t.AssignedTo,
		TechnicianName:   t.TechnicianName,
		Diagnosis:        t.Diagnosis,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}
