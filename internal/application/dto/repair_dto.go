package dto

import "time"

// CreateRepairRequest entrada de recepción de una reparación.
// El cliente se identifica por teléfono (upsert) y el técnico asignado debe
// pertenecer a la misma sección del ticket.
type CreateRepairRequest struct {
	ClientName       string `json:"client_name" validate:"required,max=255"`
	ClientPhone      string `json:"client_phone" validate:"required,max=20"`
	ClientDoc        string `json:"client_doc" validate:"omitempty,max=30"`
	Device           string `json:"device" validate:"required,max=255"`
	IssueDescription string `json:"issue_description" validate:"required,max=1000"`
	Section          string `json:"section" validate:"required,oneof=electronics systems mobile"`
	AssignedTo       string `json:"assigned_to" validate:"required,uuid"`
}

// CreateRepairResponse confirmación de recepción.
type CreateRepairResponse struct {
	Message  string `json:"message"`
	ID       string `json:"id"`
	ClientID string `json:"client_id"`
}

// UpdateRepairStatusRequest cambio de estado.
type UpdateRepairStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=received in_progress completed"`
}

// AddDiagnosisRequest diagnóstico del técnico asignado.
type AddDiagnosisRequest struct {
	Diagnosis string `json:"diagnosis" validate:"required,max=1000"`
}

// RepairResponse ticket de reparación en lecturas.
type RepairResponse struct {
	ID               string    `json:"id"`
	ClientID         string    `json:"client_id"`
	ClientName       string    `json:"client_name,omitempty"`
	ClientPhone      string    `json:"client_phone,omitempty"`
	ClientDoc        string    `json:"client_doc,omitempty"`
	Device           string    `json:"device"`
	IssueDescription string    `json:"issue_description"`
	Section          string    `json:"section"`
	Status           string    `json:"status"`
	AssignedTo       string    `json:"assigned_to"`
	TechnicianName   string    `json:"technician_name,omitempty"`
	Diagnosis        string    `json:"diagnosis,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
