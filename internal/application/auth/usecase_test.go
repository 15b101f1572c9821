package auth_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/taller-api/internal/application/auth"
	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/taller-api/pkg/jwt"
)

type memUserRepo struct {
	byUsername map[string]*entity.User
}

func (r *memUserRepo) Create(ctx context.Context, u *entity.User) error {
	r.byUsername[u.Username] = u
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	for _, u := range r.byUsername {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.byUsername[username], nil
}

func (r *memUserRepo) List(ctx context.Context) ([]*entity.User, error) { return nil, nil }

func (r *memUserRepo) ListTechniciansBySection(ctx context.Context, section entity.Section) ([]*entity.User, error) {
	return nil, nil
}

func (r *memUserRepo) Update(ctx context.Context, u *entity.User) error { return nil }
func (r *memUserRepo) Delete(ctx context.Context, id string) error      { return nil }

const testSecret = "login-test-secret"

func newAuthFixture(t *testing.T) (*memUserRepo, *auth.AuthUseCase) {
	t.Helper()
	repo := &memUserRepo{byUsername: make(map[string]*entity.User)}
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "taller-api-test",
	})
	return repo, uc
}

func addUser(t *testing.T, repo *memUserRepo, username, password string, role entity.Role, section entity.Section, active bool) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        username + "@taller.local",
		PasswordHash: string(hash),
		Role:         role,
		Section:      section,
		Active:       active,
	}
	repo.byUsername[username] = u
	return u
}

func TestLogin_CredencialesValidasEmiteToken(t *testing.T) {
	repo, uc := newAuthFixture(t)
	u := addUser(t, repo, "tec.sistemas", "secreto1", entity.RoleTechnician, entity.SectionSystems, true)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "tec.sistemas", Password: "secreto1"})

	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, u.ID, out.User.ID)
	assert.Equal(t, "technician", out.User.Role)

	// El token lleva los claims del usuario, incluida la sección.
	userID, role, section, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, userID)
	assert.Equal(t, "technician", role)
	assert.Equal(t, "systems", section)
}

func TestLogin_PasswordIncorrectoRechazado(t *testing.T) {
	repo, uc := newAuthFixture(t)
	addUser(t, repo, "admin", "correcta", entity.RoleAdmin, "", true)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "incorrecta"})

	require.Error(t, err)
	assert.Equal(t, "INVALID_CREDENTIALS", domain.CodeOf(err))
	assert.Equal(t, domain.KindUnauthorized, domain.KindOf(err))
}

func TestLogin_UsuarioInexistenteMismoError(t *testing.T) {
	_, uc := newAuthFixture(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "fantasma", Password: "lo-que-sea"})

	require.Error(t, err)
	assert.Equal(t, "INVALID_CREDENTIALS", domain.CodeOf(err),
		"usuario inexistente y password incorrecto deben responder igual")
}

func TestLogin_CuentaInactivaRechazada(t *testing.T) {
	repo, uc := newAuthFixture(t)
	addUser(t, repo, "exvendedor", "secreto1", entity.RoleSeller, "", false)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "exvendedor", Password: "secreto1"})

	require.Error(t, err)
	assert.Equal(t, "INVALID_CREDENTIALS", domain.CodeOf(err))
}

func TestLogin_CamposVaciosRechazados(t *testing.T) {
	_, uc := newAuthFixture(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "", Password: ""})

	require.Error(t, err)
	assert.Equal(t, "REQUIRED_FIELDS", domain.CodeOf(err))
}
