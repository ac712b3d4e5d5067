package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/control-horario/internal/application/session"
	"github.com/tu-usuario/control-horario/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func testUser() entity.AuthUser {
	return entity.AuthUser{
		ID:          "u-1",
		Name:        "Ana",
		Email:       "ana@acme.es",
		CompanyName: "Acme",
		Role:        entity.RoleWorker,
	}
}

func testProfiles() []entity.Profile {
	return []entity.Profile{
		{ID: "p-1", Name: "Ana", CompanyID: "c-1", CompanyName: "Acme", Role: entity.RoleWorker},
		{ID: "p-2", Name: "Ana", CompanyID: "c-2", CompanyName: "Globex", Role: entity.RoleAdmin},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Estado inicial y reset
// ──────────────────────────────────────────────────────────────────────────────

func TestNew_ArrancaEnInicializacion(t *testing.T) {
	s := session.New()
	state := s.Snapshot()

	assert.True(t, state.IsInitializing, "la app arranca en fase de inicialización")
	assert.Nil(t, state.User)
	assert.Equal(t, entity.StatusUnresolved, state.Status)
}

func TestReset_VaciaSinVolverAInicializar(t *testing.T) {
	s := session.New()
	s.SetUser(testUser())
	s.SetProfiles(testProfiles(), &testProfiles()[0])

	s.Reset()
	state := s.Snapshot()

	assert.Nil(t, state.User)
	assert.Empty(t, state.Profiles)
	assert.Nil(t, state.ActiveProfile)
	assert.False(t, state.IsInitializing, "tras un logout no se vuelve a la fase de carga")
}

// ──────────────────────────────────────────────────────────────────────────────
// Invariante User ⇔ ACTIVE
// ──────────────────────────────────────────────────────────────────────────────

func TestSetUser_ImplicaActiveYLimpiaPendientes(t *testing.T) {
	s := session.New()
	s.SetError("algo falló")
	s.SetOnboardingStatus(entity.StatusOnboardingRequired,
		[]entity.PendingInvitation{{ID: "i-1", CompanyName: "Acme"}}, nil)

	s.SetUser(testUser())
	state := s.Snapshot()

	require.NotNil(t, state.User)
	assert.Equal(t, entity.StatusActive, state.Status)
	assert.Empty(t, state.Error, "asignar usuario limpia el último error")
	assert.Empty(t, state.PendingInvitations)
	assert.Empty(t, state.PendingRequests)
}

func TestSetOnboardingStatus_DesasignaUsuarioYPerfiles(t *testing.T) {
	s := session.New()
	s.SetUser(testUser())
	s.SetProfiles(testProfiles(), &testProfiles()[1])

	s.SetOnboardingStatus(entity.StatusPendingApproval, nil,
		[]entity.JoinRequest{{ID: "r-1", CompanyName: "Acme", Status: entity.JoinPending}})
	state := s.Snapshot()

	assert.Nil(t, state.User, "un estado no-ACTIVE no puede convivir con usuario asignado")
	assert.Equal(t, entity.StatusPendingApproval, state.Status)
	assert.Empty(t, state.Profiles)
	assert.Nil(t, state.ActiveProfile)
	require.Len(t, state.PendingRequests, 1)
	assert.Equal(t, "r-1", state.PendingRequests[0].ID)
}

func TestSetOnboardingStatus_IgnoraActive(t *testing.T) {
	s := session.New()
	s.SetOnboardingStatus(entity.StatusOnboardingRequired, nil, nil)

	// ACTIVE solo se alcanza vía SetUser; la transición se descarta entera.
	s.SetOnboardingStatus(entity.StatusActive, nil, nil)
	state := s.Snapshot()

	assert.Equal(t, entity.StatusOnboardingRequired, state.Status)
	assert.Nil(t, state.User)
}

func TestSetStatus_IgnoraActive(t *testing.T) {
	s := session.New()
	s.SetStatus(entity.OnboardingStatus("SUSPENDED"))
	require.Equal(t, entity.OnboardingStatus("SUSPENDED"), s.Snapshot().Status)

	s.SetStatus(entity.StatusActive)
	assert.Equal(t, entity.OnboardingStatus("SUSPENDED"), s.Snapshot().Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Invariante ActiveProfile ∈ Profiles
// ──────────────────────────────────────────────────────────────────────────────

func TestSetProfiles_DescartaActivoAjeno(t *testing.T) {
	s := session.New()
	ajeno := entity.Profile{ID: "p-99", CompanyName: "Otra"}

	s.SetProfiles(testProfiles(), &ajeno)
	state := s.Snapshot()

	assert.Len(t, state.Profiles, 2)
	assert.Nil(t, state.ActiveProfile, "un activo fuera del conjunto se descarta")
}

func TestSetActiveProfile_SoloDentroDelConjunto(t *testing.T) {
	s := session.New()
	profiles := testProfiles()
	s.SetProfiles(profiles, &profiles[0])

	s.SetActiveProfile(profiles[1])
	require.NotNil(t, s.Snapshot().ActiveProfile)
	assert.Equal(t, "p-2", s.Snapshot().ActiveProfile.ID)

	s.SetActiveProfile(entity.Profile{ID: "p-99"})
	assert.Equal(t, "p-2", s.Snapshot().ActiveProfile.ID, "un perfil ajeno no muta la selección")
}

// ──────────────────────────────────────────────────────────────────────────────
// Suscripción e instantáneas
// ──────────────────────────────────────────────────────────────────────────────

func TestSubscribe_RecibeCadaTransicionYCancela(t *testing.T) {
	s := session.New()
	var got []entity.SessionState
	cancel := s.Subscribe(func(st entity.SessionState) { got = append(got, st) })

	s.SetError("uno")
	s.SetUser(testUser())
	require.Len(t, got, 2)
	assert.Equal(t, "uno", got[0].Error)
	assert.NotNil(t, got[1].User)

	cancel()
	s.SetError("dos")
	assert.Len(t, got, 2, "tras cancelar no llegan más instantáneas")
}

func TestSnapshot_EsCopiaAislada(t *testing.T) {
	s := session.New()
	profiles := testProfiles()
	s.SetUser(testUser())
	s.SetProfiles(profiles, &profiles[0])

	snap := s.Snapshot()
	snap.User.Name = "mutado"
	snap.Profiles[0].ID = "mutado"

	state := s.Snapshot()
	assert.Equal(t, "Ana", state.User.Name, "mutar la instantánea no afecta al contenedor")
	assert.Equal(t, "p-1", state.Profiles[0].ID)
}
