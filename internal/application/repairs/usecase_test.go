package repairs_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/application/repairs"
	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	users map[string]*entity.User
}

func (r *memUserRepo) Create(ctx context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *memUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) List(ctx context.Context) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *memUserRepo) ListTechniciansBySection(ctx context.Context, section entity.Section) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.Role == entity.RoleTechnician && u.Section == section && u.Active {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *memUserRepo) Update(ctx context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *memUserRepo) Delete(ctx context.Context, id string) error {
	delete(r.users, id)
	return nil
}

type memClientRepo struct {
	clients map[string]*entity.Client // por id
}

func (r *memClientRepo) Create(ctx context.Context, c *entity.Client) error {
	cp := *c
	r.clients[c.ID] = &cp
	return nil
}

func (r *memClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	return r.clients[id], nil
}

func (r *memClientRepo) GetByPhone(ctx context.Context, phone string) (*entity.Client, error) {
	for _, c := range r.clients {
		if c.Phone == phone {
			return c, nil
		}
	}
	return nil, nil
}

func (r *memClientRepo) List(ctx context.Context) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range r.clients {
		out = append(out, c)
	}
	return out, nil
}

func (r *memClientRepo) Update(ctx context.Context, c *entity.Client) error {
	cp := *c
	r.clients[c.ID] = &cp
	return nil
}

func (r *memClientRepo) Delete(ctx context.Context, id string) error {
	delete(r.clients, id)
	return nil
}

type memRepairRepo struct {
	tickets map[string]*entity.RepairTicket
}

func (r *memRepairRepo) Create(ctx context.Context, t *entity.RepairTicket) error {
	cp := *t
	r.tickets[t.ID] = &cp
	return nil
}

func (r *memRepairRepo) GetByID(ctx context.Context, id string) (*entity.RepairTicket, error) {
	return r.tickets[id], nil
}

func (r *memRepairRepo) List(ctx context.Context, technicianID string) ([]*entity.RepairTicket, error) {
	var out []*entity.RepairTicket
	for _, t := range r.tickets {
		if technicianID == "" || t.AssignedTo == technicianID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *memRepairRepo) UpdateStatus(ctx context.Context, id string, status entity.RepairStatus) error {
	r.tickets[id].Status = status
	return nil
}

func (r *memRepairRepo) UpdateDiagnosis(ctx context.Context, id, diagnosis string, status entity.RepairStatus) error {
	r.tickets[id].Diagnosis = diagnosis
	r.tickets[id].Status = status
	return nil
}

type memRepairTx struct {
	clientRepo *memClientRepo
	repairRepo *memRepairRepo
}

func (tx *memRepairTx) RunRepair(ctx context.Context, fn func(repository.ClientRepository, repository.RepairRepository) error) error {
	return fn(tx.clientRepo, tx.repairRepo)
}

type repairFixture struct {
	users   *memUserRepo
	clients *memClientRepo
	tickets *memRepairRepo
	uc      *repairs.RepairUseCase
}

func newRepairFixture() *repairFixture {
	f := &repairFixture{
		users:   &memUserRepo{users: make(map[string]*entity.User)},
		clients: &memClientRepo{clients: make(map[string]*entity.Client)},
		tickets: &memRepairRepo{tickets: make(map[string]*entity.RepairTicket)},
	}
	f.uc = repairs.NewRepairUseCase(
		&memRepairTx{clientRepo: f.clients, repairRepo: f.tickets},
		f.users, f.tickets,
	)
	return f
}

func (f *repairFixture) addTechnician(section entity.Section) string {
	id := uuid.New().String()
	f.users.users[id] = &entity.User{
		ID:       id,
		Username: "tec-" + id[:8],
		Role:     entity.RoleTechnician,
		Section:  section,
		Active:   true,
	}
	return id
}

func validRepairRequest(assignedTo string) dto.CreateRepairRequest {
	return dto.CreateRepairRequest{
		ClientName:       "María Pérez",
		ClientPhone:      "3001234567",
		ClientDoc:        "1020304050",
		Device:           "Portátil Lenovo T14",
		IssueDescription: "no enciende",
		Section:          "systems",
		AssignedTo:       assignedTo,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Recepción
// ──────────────────────────────────────────────────────────────────────────────

func TestRepairCreate_TecnicoDeOtraSeccionNoEscribeNada(t *testing.T) {
	f := newRepairFixture()
	techMobile := f.addTechnician(entity.SectionMobile)

	// El ticket es de systems pero el técnico es de mobile.
	_, err := f.uc.Create(context.Background(), validRepairRequest(techMobile))

	require.Error(t, err)
	assert.Equal(t, "TECHNICIAN_SECTION_MISMATCH", domain.CodeOf(err))
	assert.Empty(t, f.tickets.tickets, "no debe crearse ningún ticket")
	assert.Empty(t, f.clients.clients, "no debe crearse ni actualizarse ningún cliente")
}

func TestRepairCreate_TecnicoInexistenteRechazado(t *testing.T) {
	f := newRepairFixture()

	_, err := f.uc.Create(context.Background(), validRepairRequest(uuid.New().String()))

	require.Error(t, err)
	assert.Equal(t, "TECHNICIAN_SECTION_MISMATCH", domain.CodeOf(err))
	assert.Empty(t, f.clients.clients)
}

func TestRepairCreate_ClienteNuevoYTicketRecibido(t *testing.T) {
	f := newRepairFixture()
	tech := f.addTechnician(entity.SectionSystems)

	out, err := f.uc.Create(context.Background(), validRepairRequest(tech))

	require.NoError(t, err)
	require.NotNil(t, out)

	ticket := f.tickets.tickets[out.ID]
	require.NotNil(t, ticket)
	assert.Equal(t, entity.RepairReceived, ticket.Status)
	assert.Equal(t, tech, ticket.AssignedTo)
	assert.Equal(t, out.ClientID, ticket.ClientID)

	client := f.clients.clients[out.ClientID]
	require.NotNil(t, client, "debe crearse el cliente")
	assert.Equal(t, "3001234567", client.Phone)
}

func TestRepairCreate_ClienteExistenteSeReutilizaPorTelefono(t *testing.T) {
	f := newRepairFixture()
	tech := f.addTechnician(entity.SectionSystems)

	existing := &entity.Client{ID: uuid.New().String(), Name: "Maria P.", Phone: "3001234567"}
	require.NoError(t, f.clients.Create(context.Background(), existing))

	out, err := f.uc.Create(context.Background(), validRepairRequest(tech))

	require.NoError(t, err)
	assert.Equal(t, existing.ID, out.ClientID, "debe reutilizarse el cliente con ese teléfono")
	assert.Len(t, f.clients.clients, 1, "no debe duplicarse el cliente")
	assert.Equal(t, "María Pérez", f.clients.clients[existing.ID].Name, "el nombre se refresca")
}

// ──────────────────────────────────────────────────────────────────────────────
// Estados
// ──────────────────────────────────────────────────────────────────────────────

func (f *repairFixture) addTicket(assignedTo string, status entity.RepairStatus) string {
	id := uuid.New().String()
	f.tickets.tickets[id] = &entity.RepairTicket{
		ID:         id,
		Section:    entity.SectionSystems,
		Status:     status,
		AssignedTo: assignedTo,
	}
	return id
}

func TestRepairUpdateStatus_TecnicoAsignadoAvanza(t *testing.T) {
	f := newRepairFixture()
	tech := f.addTechnician(entity.SectionSystems)
	id := f.addTicket(tech, entity.RepairReceived)

	err := f.uc.UpdateStatus(context.Background(), id, tech, entity.RoleTechnician,
		dto.UpdateRepairStatusRequest{Status: "in_progress"})

	require.NoError(t, err)
	assert.Equal(t, entity.RepairInProgress, f.tickets.tickets[id].Status)
}

func TestRepairUpdateStatus_NoRetrocede(t *testing.T) {
	f := newRepairFixture()
	tech := f.addTechnician(entity.SectionSystems)
	id := f.addTicket(tech, entity.RepairCompleted)

	err := f.uc.UpdateStatus(context.Background(), id, tech, entity.RoleTechnician,
		dto.UpdateRepairStatusRequest{Status: "in_progress"})

	require.Error(t, err)
	assert.Equal(t, "INVALID_STATUS", domain.CodeOf(err))
	assert.Equal(t, entity.RepairCompleted, f.tickets.tickets[id].Status, "el estado no debe cambiar")
}

func TestRepairUpdateStatus_TecnicoNoAsignadoProhibido(t *testing.T) {
	f := newRepairFixture()
	assigned := f.addTechnician(entity.SectionSystems)
	intruder := f.addTechnician(entity.SectionSystems)
	id := f.addTicket(assigned, entity.RepairReceived)

	err := f.uc.UpdateStatus(context.Background(), id, intruder, entity.RoleTechnician,
		dto.UpdateRepairStatusRequest{Status: "in_progress"})

	require.Error(t, err)
	assert.Equal(t, "NOT_ASSIGNED", domain.CodeOf(err))
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
	assert.Equal(t, entity.RepairReceived, f.tickets.tickets[id].Status)
}

func TestRepairUpdateStatus_AdminPuedeSiempre(t *testing.T) {
	f := newRepairFixture()
	tech := f.addTechnician(entity.SectionSystems)
	id := f.addTicket(tech, entity.RepairInProgress)

	err := f.uc.UpdateStatus(context.Background(), id, uuid.New().String(), entity.RoleAdmin,
		dto.UpdateRepairStatusRequest{Status: "completed"})

	require.NoError(t, err)
	assert.Equal(t, entity.RepairCompleted, f.tickets.tickets[id].Status)
}

func TestRepairUpdateStatus_EstadoDesconocidoRechazado(t *testing.T) {
	f := newRepairFixture()
	tech := f.addTechnician(entity.SectionSystems)
	id := f.addTicket(tech, entity.RepairReceived)

	err := f.uc.UpdateStatus(context.Background(), id, tech, entity.RoleTechnician,
		dto.UpdateRepairStatusRequest{Status: "cancelled"})

	require.Error(t, err)
	assert.Equal(t, "INVALID_STATUS", domain.CodeOf(err))
}

// ──────────────────────────────────────────────────────────────────────────────
// Diagnóstico
// ──────────────────────────────────────────────────────────────────────────────

func TestRepairAddDiagnosis_SoloTecnicoAsignado(t *testing.T) {
	f := newRepairFixture()
	assigned := f.addTechnician(entity.SectionSystems)
	intruder := f.addTechnician(entity.SectionSystems)
	id := f.addTicket(assigned, entity.RepairReceived)

	err := f.uc.AddDiagnosis(context.Background(), id, intruder, entity.RoleTechnician,
		dto.AddDiagnosisRequest{Diagnosis: "placa dañada"})

	require.Error(t, err)
	assert.Equal(t, "NOT_ASSIGNED", domain.CodeOf(err))
	assert.Empty(t, f.tickets.tickets[id].Diagnosis)
}

func TestRepairAddDiagnosis_PasaAEnProgreso(t *testing.T) {
	f := newRepairFixture()
	tech := f.addTechnician(entity.SectionSystems)
	id := f.addTicket(tech, entity.RepairReceived)

	err := f.uc.AddDiagnosis(context.Background(), id, tech, entity.RoleTechnician,
		dto.AddDiagnosisRequest{Diagnosis: "requiere cambio de pantalla"})

	require.NoError(t, err)
	assert.Equal(t, "requiere cambio de pantalla", f.tickets.tickets[id].Diagnosis)
	assert.Equal(t, entity.RepairInProgress, f.tickets.tickets[id].Status)
}

func TestRepairAddDiagnosis_CompletadaRechazada(t *testing.T) {
	f := newRepairFixture()
	tech := f.addTechnician(entity.SectionSystems)
	id := f.addTicket(tech, entity.RepairCompleted)

	err := f.uc.AddDiagnosis(context.Background(), id, tech, entity.RoleTechnician,
		dto.AddDiagnosisRequest{Diagnosis: "tarde"})

	require.Error(t, err)
	assert.Equal(t, "INVALID_STATUS", domain.CodeOf(err))
}

func TestRepairAddDiagnosis_VacioRechazado(t *testing.T) {
	f := newRepairFixture()
	tech := f.addTechnician(entity.SectionSystems)
	id := f.addTicket(tech, entity.RepairReceived)

	err := f.uc.AddDiagnosis(context.Background(), id, tech, entity.RoleTechnician,
		dto.AddDiagnosisRequest{Diagnosis: "   "})

	require.Error(t, err)
	assert.Equal(t, "DIAGNOSIS_REQUIRED", domain.CodeOf(err))
}

// ──────────────────────────────────────────────────────────────────────────────
// Alcance de listados
// ──────────────────────────────────────────────────────────────────────────────

func TestRepairList_TecnicoSoloVeLosSuyos(t *testing.T) {
	f := newRepairFixture()
	a := f.addTechnician(entity.SectionSystems)
	b := f.addTechnician(entity.SectionSystems)
	f.addTicket(a, entity.RepairReceived)
	f.addTicket(a, entity.RepairInProgress)
	f.addTicket(b, entity.RepairReceived)

	mine, err := f.uc.List(context.Background(), a, entity.RoleTechnician)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
	for _, r := range mine {
		assert.Equal(t, a, r.AssignedTo)
	}

	all, err := f.uc.List(context.Background(), uuid.New().String(), entity.RoleAdmin)
	require.NoError(t, err)
	assert.Len(t, all, 3, "el admin ve todos los tickets")
}
