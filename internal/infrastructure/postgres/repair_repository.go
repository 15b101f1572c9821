package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/repository"
)

var _ repository.RepairRepository = (*RepairRepo)(nil)

// RepairRepo implementación de RepairRepository sobre PostgreSQL (usable con pool o tx).
type RepairRepo struct {
	q Querier
}

// NewRepairRepository construye el adaptador de persistencia para reparaciones. Pasar pool o tx (Querier).
func NewRepairRepository(q Querier) *RepairRepo {
	return &RepairRepo{q: q}
}

// Create persiste un ticket nuevo.
func (r *RepairRepo) Create(ctx context.Context, ticket *entity.RepairTicket) error {
	query := `
		INSERT INTO repairs (id, client_id, device, issue_description, section, status, assigned_to, diagnosis, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		ticket.ID, ticket.ClientID, ticket.Device, ticket.IssueDescription,
		string(ticket.Section), string(ticket.Status), ticket.AssignedTo, ticket.Diagnosis,
		ticket.CreatedAt, ticket.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert repair: %w", err)
	}
	return nil
}

const repairSelect = `
	SELECT r.id, r.client_id, r.device, r.issue_description, r.section, r.status,
	       r.assigned_to, r.diagnosis, r.created_at, r.updated_at,
	       COALESCE(c.name, '') AS client_name,
	       COALESCE(c.phone, '') AS client_phone,
	       COALESCE(c.doc, '') AS client_doc,
	       COALESCE(t.username, '') AS technician_name
	FROM repairs r
	LEFT JOIN clients c ON r.client_id = c.id
	LEFT JOIN users t ON r.assigned_to = t.id`

func scanRepair(row pgx.Row) (*entity.RepairTicket, error) {
	var t entity.RepairTicket
	err := row.Scan(&t.ID, &t.ClientID, &t.Device, &t.IssueDescription, &t.Section, &t.Status,
		&t.AssignedTo, &t.Diagnosis, &t.CreatedAt, &t.UpdatedAt,
		&t.ClientName, &t.ClientPhone, &t.ClientDoc, &t.TechnicianName)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetByID obtiene un ticket por ID, (nil, nil) si no existe.
func (r *RepairRepo) GetByID(ctx context.Context, id string) (*entity.RepairTicket, error) {
	t, err := scanRepair(r.q.QueryRow(ctx, repairSelect+` WHERE r.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get repair: %w", err)
	}
	return t, nil
}

// List devuelve tickets, más recientes primero; technicianID no vacío
// restringe a los asignados a ese técnico.
func (r *RepairRepo) List(ctx context.Context, technicianID string) ([]*entity.RepairTicket, error) {
	query := repairSelect
	var args []any
	if technicianID != "" {
		query += ` WHERE r.assigned_to = $1`
		args = append(args, technicianID)
	}
	query += ` ORDER BY r.created_at DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list repairs: %w", err)
	}
	defer rows.Close()
	var list []*entity.RepairTicket
	for rows.Next() {
		t, err := scanRepair(rows)
		if err != nil {
			return nil, fmt.Errorf("scan repair: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado del ticket.
func (r *RepairRepo) UpdateStatus(ctx context.Context, id string, status entity.RepairStatus) error {
	_, err := r.q.Exec(ctx,
		`UPDATE repairs SET status = $2, updated_at = now() WHERE id = $1`,
		id, string(status),
	)
	if err != nil {
		return fmt.Errorf("update repair status: %w", err)
	}
	return nil
}

// UpdateDiagnosis registra el diagnóstico y el estado que lo acompaña.
func (r *RepairRepo) UpdateDiagnosis(ctx context.Context, id, diagnosis string, status entity.RepairStatus) error {
	_, err := r.q.Exec(ctx,
		`UPDATE repairs SET diagnosis = $2, status = $3, updated_at = now() WHERE id = $1`,
		id, diagnosis, string(status),
	)
	if err != nil {
		return fmt.Errorf("update repair diagnosis: %w", err)
	}
	return nil
}
