package entity

import "time"

// RepairStatus estado de una reparación. Enumeración cerrada y lineal:
// received → in_progress → completed, sin retrocesos.
type RepairStatus string

const (
	RepairReceived   RepairStatus = "received"
	RepairInProgress RepairStatus = "in_progress"
	RepairCompleted  RepairStatus = "completed"
)

// Valid reporta si el estado pertenece a la enumeración.
func (s RepairStatus) Valid() bool {
	switch s {
	case RepairReceived, RepairInProgress, RepairCompleted:
		return true
	}
	return false
}

// rank posición en la línea de estados, para prohibir retrocesos.
func (s RepairStatus) rank() int {
	switch s {
	case RepairReceived:
		return 0
	case RepairInProgress:
		return 1
	case RepairCompleted:
		return 2
	}
	return -1
}

// CanTransitionTo reporta si el paso s → next respeta la línea de estados
// (se permite repetir el estado actual; nunca retroceder).
func (s RepairStatus) CanTransitionTo(next RepairStatus) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	return next.rank() >= s.rank()
}

// RepairTicket orden de reparación. Referencia (sin poseer) al Client y al
// técnico asignado; el técnico asignado debe pertenecer a la misma sección
// del ticket.
type RepairTicket struct {
	ID               string
	ClientID         string
	Device           string
	IssueDescription string
	Section          Section
	Status           RepairStatus
	AssignedTo       string // id del técnico
	Diagnosis        string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Campos de lectura (JOIN con clients y users).
	ClientName     string
	ClientPhone    string
	ClientDoc      string
	TechnicianName string
}
