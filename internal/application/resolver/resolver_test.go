package resolver_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/control-horario/internal/application/ports"
	"github.com/tu-usuario/control-horario/internal/application/resolver"
	"github.com/tu-usuario/control-horario/internal/application/session"
	"github.com/tu-usuario/control-horario/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeAPI doble del backend de onboarding/perfiles con respuestas programables.
type fakeAPI struct {
	check       *entity.OnboardingCheck
	checkErr    error
	gotOverride string

	list     *entity.ProfileList
	listErr  error
	switched *entity.Profile
}

func (f *fakeAPI) CheckStatus(_ context.Context, tokenOverride string) (*entity.OnboardingCheck, error) {
	f.gotOverride = tokenOverride
	return f.check, f.checkErr
}

func (f *fakeAPI) Profiles(context.Context) (*entity.ProfileList, error) {
	return f.list, f.listErr
}

func (f *fakeAPI) SwitchProfile(_ context.Context, id string) (*entity.Profile, error) {
	if f.switched != nil && f.switched.ID == id {
		return f.switched, nil
	}
	return nil, errors.New("perfil ajeno")
}

// memProfiles almacenamiento de perfil activo en memoria.
type memProfiles struct {
	id      string
	loadErr error
}

func (m *memProfiles) Load() (string, error) { return m.id, m.loadErr }
func (m *memProfiles) Save(id string) error  { m.id = id; return nil }
func (m *memProfiles) Clear() error          { m.id = ""; return nil }

// spyBus canal de difusión que cuenta las notificaciones.
type spyBus struct {
	notified int
	handler  func(ports.Message)
}

func (b *spyBus) NotifyOnboardingComplete() { b.notified++ }
func (b *spyBus) Subscribe(fn func(ports.Message)) (cancel func()) {
	b.handler = fn
	return func() { b.handler = nil }
}

func activeCheck() *entity.OnboardingCheck {
	return &entity.OnboardingCheck{
		Status: entity.StatusActive,
		User: &entity.AuthUser{
			ID: "u-1", Name: "Ana", Email: "ana@acme.es", CompanyName: "Acme",
			Role: entity.RoleWorker,
		},
	}
}

func threeProfiles() *entity.ProfileList {
	return &entity.ProfileList{
		Profiles: []entity.Profile{
			{ID: "p-1", CompanyName: "Acme"},
			{ID: "p-2", CompanyName: "Globex"},
			{ID: "p-3", CompanyName: "Initech"},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolución a ACTIVE y selección de perfil
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_ActivePriorizaElPerfilRecordado(t *testing.T) {
	store := session.New()
	list := threeProfiles()
	list.CurrentID = "p-2" // el servidor sugiere otro
	api := &fakeAPI{check: activeCheck(), list: list}
	profiles := &memProfiles{id: "p-3"} // pero hay selección local recordada
	res := resolver.New(store, api, profiles, &spyBus{}, nil)

	require.NoError(t, res.Resolve(context.Background(), ""))
	state := store.Snapshot()

	require.NotNil(t, state.ActiveProfile)
	assert.Equal(t, "p-3", state.ActiveProfile.ID, "la selección local gana a la sugerencia del servidor")
	assert.Equal(t, "p-3", profiles.id, "la selección se re-persiste")
}

func TestResolve_SinSeleccionLocalUsaLaSugerenciaDelServidor(t *testing.T) {
	store := session.New()
	list := threeProfiles()
	list.CurrentID = "p-2"
	api := &fakeAPI{check: activeCheck(), list: list}
	res := resolver.New(store, api, &memProfiles{}, &spyBus{}, nil)

	require.NoError(t, res.Resolve(context.Background(), ""))

	require.NotNil(t, store.Snapshot().ActiveProfile)
	assert.Equal(t, "p-2", store.Snapshot().ActiveProfile.ID)
}

func TestResolve_SinPistasSeleccionaElPrimero(t *testing.T) {
	store := session.New()
	api := &fakeAPI{check: activeCheck(), list: threeProfiles()}
	res := resolver.New(store, api, &memProfiles{}, &spyBus{}, nil)

	require.NoError(t, res.Resolve(context.Background(), ""))

	require.NotNil(t, store.Snapshot().ActiveProfile)
	assert.Equal(t, "p-1", store.Snapshot().ActiveProfile.ID)
}

func TestResolve_SeleccionRecordadaObsoletaCaeALaSiguientePrioridad(t *testing.T) {
	store := session.New()
	list := threeProfiles()
	list.CurrentID = "p-1"
	api := &fakeAPI{check: activeCheck(), list: list}
	profiles := &memProfiles{id: "p-borrado"} // ya no pertenece al conjunto
	res := resolver.New(store, api, profiles, &spyBus{}, nil)

	require.NoError(t, res.Resolve(context.Background(), ""))

	require.NotNil(t, store.Snapshot().ActiveProfile)
	assert.Equal(t, "p-1", store.Snapshot().ActiveProfile.ID)
}

func TestResolve_FalloDePerfilesNoEsFatal(t *testing.T) {
	store := session.New()
	api := &fakeAPI{check: activeCheck(), listErr: errors.New("backend caído")}
	res := resolver.New(store, api, &memProfiles{}, &spyBus{}, nil)

	require.NoError(t, res.Resolve(context.Background(), ""))
	state := store.Snapshot()

	require.NotNil(t, state.User, "la sesión queda completa aunque no haya perfiles")
	assert.Equal(t, entity.StatusActive, state.Status)
	assert.Empty(t, state.Profiles)
	assert.Nil(t, state.ActiveProfile)
}

func TestResolve_EsIdempotente(t *testing.T) {
	store := session.New()
	api := &fakeAPI{check: activeCheck(), list: threeProfiles()}
	profiles := &memProfiles{}
	res := resolver.New(store, api, profiles, &spyBus{}, nil)

	require.NoError(t, res.Resolve(context.Background(), ""))
	first := store.Snapshot()
	require.NoError(t, res.Resolve(context.Background(), ""))
	second := store.Snapshot()

	assert.Equal(t, first.ActiveProfile.ID, second.ActiveProfile.ID)
	assert.Equal(t, first.Status, second.Status)
}

func TestResolve_PropagaElTokenOverride(t *testing.T) {
	store := session.New()
	api := &fakeAPI{check: activeCheck(), list: threeProfiles()}
	res := resolver.New(store, api, &memProfiles{}, &spyBus{}, nil)

	require.NoError(t, res.Resolve(context.Background(), "tok-recien-emitido"))
	assert.Equal(t, "tok-recien-emitido", api.gotOverride)
}

// ──────────────────────────────────────────────────────────────────────────────
// Estados de onboarding incompleto
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_OnboardingRequiredCargaInvitaciones(t *testing.T) {
	store := session.New()
	api := &fakeAPI{check: &entity.OnboardingCheck{
		Status: entity.StatusOnboardingRequired,
		PendingInvitations: []entity.PendingInvitation{
			{ID: "i-1", CompanyName: "Acme", Role: entity.RoleWorker},
			{ID: "i-2", CompanyName: "Globex", Role: entity.RoleAdmin},
		},
	}}
	res := resolver.New(store, api, &memProfiles{}, &spyBus{}, nil)

	require.NoError(t, res.Resolve(context.Background(), ""))
	state := store.Snapshot()

	assert.Equal(t, entity.StatusOnboardingRequired, state.Status)
	assert.Nil(t, state.User)
	assert.Len(t, state.PendingInvitations, 2)
}

func TestResolve_PendingApprovalCargaSolicitudes(t *testing.T) {
	store := session.New()
	api := &fakeAPI{check: &entity.OnboardingCheck{
		Status:   entity.StatusPendingApproval,
		Requests: []entity.JoinRequest{{ID: "r-1", CompanyName: "Acme", Status: entity.JoinPending}},
	}}
	res := resolver.New(store, api, &memProfiles{}, &spyBus{}, nil)

	require.NoError(t, res.Resolve(context.Background(), ""))
	state := store.Snapshot()

	assert.Equal(t, entity.StatusPendingApproval, state.Status)
	require.Len(t, state.PendingRequests, 1)
	assert.Equal(t, "r-1", state.PendingRequests[0].ID)
}

func TestResolve_ActiveSinUsuarioEsError(t *testing.T) {
	store := session.New()
	api := &fakeAPI{check: &entity.OnboardingCheck{Status: entity.StatusActive}}
	res := resolver.New(store, api, &memProfiles{}, &spyBus{}, nil)

	err := res.Resolve(context.Background(), "")

	require.Error(t, err)
	assert.NotEmpty(t, store.Snapshot().Error)
	assert.Nil(t, store.Snapshot().User)
}

func TestResolve_FalloDelBackendRegistraElError(t *testing.T) {
	store := session.New()
	api := &fakeAPI{checkErr: errors.New("503 desde el backend")}
	res := resolver.New(store, api, &memProfiles{}, &spyBus{}, nil)

	err := res.Resolve(context.Background(), "")

	require.Error(t, err)
	assert.Contains(t, store.Snapshot().Error, "503")
}

// ──────────────────────────────────────────────────────────────────────────────
// Difusión entre instancias
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_DifundeSoloAlLlegarAActive(t *testing.T) {
	store := session.New()
	api := &fakeAPI{check: activeCheck(), list: threeProfiles()}
	bus := &spyBus{}
	res := resolver.New(store, api, &memProfiles{}, bus, nil)

	require.NoError(t, res.Resolve(context.Background(), ""))
	assert.Equal(t, 1, bus.notified, "la llegada a ACTIVE se difunde")

	require.NoError(t, res.Resolve(context.Background(), ""))
	assert.Equal(t, 1, bus.notified, "un pase que ya estaba en ACTIVE no re-difunde")
}

func TestListen_IgnoraMensajesEstandoActive(t *testing.T) {
	store := session.New()
	api := &fakeAPI{check: activeCheck(), list: threeProfiles()}
	bus := &spyBus{}
	res := resolver.New(store, api, &memProfiles{}, bus, nil)

	cancel := res.Listen(context.Background())
	defer cancel()
	require.NoError(t, res.Resolve(context.Background(), ""))

	api.checkErr = errors.New("no debería consultarse")
	api.check = nil
	bus.handler(ports.Message{ID: "m-1", Type: ports.MessageOnboardingComplete})

	assert.Equal(t, entity.StatusActive, store.Snapshot().Status)
	assert.Empty(t, store.Snapshot().Error, "estando en ACTIVE el mensaje no dispara ningún pase")
}

func TestListen_UnMensajeResuelveSinReDifundir(t *testing.T) {
	store := session.New()
	api := &fakeAPI{check: &entity.OnboardingCheck{Status: entity.StatusOnboardingRequired}}
	bus := &spyBus{}
	res := resolver.New(store, api, &memProfiles{}, bus, nil)

	cancel := res.Listen(context.Background())
	defer cancel()
	require.NoError(t, res.Resolve(context.Background(), ""))
	require.Equal(t, entity.StatusOnboardingRequired, store.Snapshot().Status)

	// Otra instancia completó el onboarding; el backend ya responde ACTIVE.
	api.check = activeCheck()
	api.list = threeProfiles()
	bus.handler(ports.Message{ID: "m-1", Type: ports.MessageOnboardingComplete})

	assert.Equal(t, entity.StatusActive, store.Snapshot().Status)
	assert.Zero(t, bus.notified, "el pase disparado por un mensaje no vuelve a difundir")
}

// ──────────────────────────────────────────────────────────────────────────────
// Cambio de perfil e inicialización
// ──────────────────────────────────────────────────────────────────────────────

func TestSwitchProfile_PersisteYActualizaLaSesion(t *testing.T) {
	store := session.New()
	list := threeProfiles()
	api := &fakeAPI{check: activeCheck(), list: list, switched: &list.Profiles[1]}
	profiles := &memProfiles{}
	res := resolver.New(store, api, profiles, &spyBus{}, nil)
	require.NoError(t, res.Resolve(context.Background(), ""))

	got, err := res.SwitchProfile(context.Background(), "p-2")

	require.NoError(t, err)
	assert.Equal(t, "p-2", got.ID)
	assert.Equal(t, "p-2", profiles.id)
	assert.Equal(t, "p-2", store.Snapshot().ActiveProfile.ID)
}

func TestInitialize_SinSesionTerminaLaFaseDeCarga(t *testing.T) {
	store := session.New()
	api := &fakeAPI{checkErr: errors.New("401 sin sesión")}
	res := resolver.New(store, api, &memProfiles{}, &spyBus{}, nil)

	res.Initialize(context.Background())

	assert.False(t, store.Snapshot().IsInitializing, "la ausencia de sesión no deja la app cargando")
	assert.Nil(t, store.Snapshot().User)
}

func TestInitialize_ConUsuarioYaResueltoNoConsulta(t *testing.T) {
	store := session.New()
	api := &fakeAPI{check: activeCheck(), list: threeProfiles()}
	res := resolver.New(store, api, &memProfiles{}, &spyBus{}, nil)
	require.NoError(t, res.Resolve(context.Background(), ""))

	api.checkErr = errors.New("no debería consultarse")
	api.check = nil
	res.Initialize(context.Background())

	assert.Equal(t, entity.StatusActive, store.Snapshot().Status)
	assert.False(t, store.Snapshot().IsInitializing)
}
