package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en el use case).
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=admin seller technician"`
	Section  string `json:"section" validate:"omitempty,oneof=electronics systems mobile"`
}

// UpdateUserRequest entrada para actualizar un usuario. Password vacío = no cambia.
type UpdateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"omitempty,min=6"`
	Role     string `json:"role" validate:"required,oneof=admin seller technician"`
	Section  string `json:"section" validate:"omitempty,oneof=electronics systems mobile"`
	Active   *bool  `json:"active"`
}

// UserResponse salida de un usuario (sin hash de password).
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Section   string    `json:"section,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TechnicianResponse salida resumida para el selector de asignación.
type TechnicianResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Section string `json:"section"`
}
