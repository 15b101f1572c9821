package entity

import "time"

// Role rol de un usuario. Enumeración cerrada.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSeller     Role = "seller"
	RoleTechnician Role = "technician"
)

// Valid reporta si el rol pertenece a la enumeración.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSeller, RoleTechnician:
		return true
	}
	return false
}

// Section especialidad de un técnico. Enumeración cerrada.
type Section string

const (
	SectionElectronics Section = "electronics"
	SectionSystems     Section = "systems"
	SectionMobile      Section = "mobile"
)

// Valid reporta si la sección pertenece a la enumeración.
func (s Section) Valid() bool {
	switch s {
	case SectionElectronics, SectionSystems, SectionMobile:
		return true
	}
	return false
}

// User representa una cuenta del sistema.
// Invariante: Section presente si y solo si Role es technician.
type User struct {
	ID           string
	Username     string // único
	Email        string // único
	PasswordHash string // bcrypt, nunca plano después de persistir
	Role         Role
	Section      Section // vacío salvo técnicos
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
