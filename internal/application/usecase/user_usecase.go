package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/taller-api/internal/application/auth"
	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase gestión de cuentas (solo admin a través del router).
type UserUseCase struct {
	userRepo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// validateRoleSection aplica el invariante: technician exige una sección
// válida, y los demás roles no llevan sección.
func validateRoleSection(role entity.Role, section entity.Section) error {
	if !role.Valid() {
		return domain.Validation("INVALID_ROLE", "rol inválido: %s", role)
	}
	if role == entity.RoleTechnician {
		if !section.Valid() {
			return domain.Validation("TECHNICIAN_SECTION_REQUIRED", "los técnicos deben tener una sección asignada")
		}
		return nil
	}
	if section != "" {
		return domain.Validation("SECTION_NOT_ALLOWED", "solo los técnicos llevan sección")
	}
	return nil
}

// Create registra un usuario nuevo: valida rol/sección, hashea el password
// y persiste. Username o email duplicado produce conflicto.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" || in.Role == "" {
		return nil, domain.Validation("REQUIRED_FIELDS", "faltan campos obligatorios")
	}
	role := entity.Role(in.Role)
	section := entity.Section(in.Section)
	if err := validateRoleSection(role, section); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		Section:      section,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// List devuelve todos los usuarios sin hashes.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *auth.ToUserResponse(u))
	}
	return out, nil
}

// Update modifica un usuario. Password vacío conserva el hash actual.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Email == "" || in.Role == "" {
		return nil, domain.Validation("REQUIRED_FIELDS", "faltan campos obligatorios")
	}
	role := entity.Role(in.Role)
	section := entity.Section(in.Section)
	if err := validateRoleSection(role, section); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFound("USER_NOT_FOUND", "usuario no encontrado")
	}
	user.Username = in.Username
	user.Email = in.Email
	user.Role = role
	user.Section = section
	if in.Active != nil {
		user.Active = *in.Active
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Delete elimina un usuario (hard delete; desactivar con Active=false es
// la vía recomendada para conservar histórico).
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.NotFound("USER_NOT_FOUND", "usuario no encontrado")
	}
	return uc.userRepo.Delete(ctx, id)
}

// TechniciansBySection lista los técnicos activos de una sección
// (selector de asignación en la recepción de reparaciones).
func (uc *UserUseCase) TechniciansBySection(ctx context.Context, section entity.Section) ([]dto.TechnicianResponse, error) {
	if !section.Valid() {
		return nil, domain.Validation("INVALID_SECTION", "sección inválida: %s", section)
	}
	techs, err := uc.userRepo.ListTechniciansBySection(ctx, section)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TechnicianResponse, 0, len(techs))
	for _, t := range techs {
		out = append(out, dto.TechnicianResponse{ID: t.ID, Name: t.Username, Section: string(t.Section)})
	}
	return out, nil
}
