package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/control-horario/internal/application/auth"
	"github.com/tu-usuario/control-horario/internal/application/resolver"
	"github.com/tu-usuario/control-horario/internal/application/session"
	"github.com/tu-usuario/control-horario/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeIdentity doble completo del proveedor de identidad.
type fakeIdentity struct {
	session      *entity.ProviderSession
	signInErr    error
	signUpSess   *entity.ProviderSession
	signUpErr    error
	signOutCalls int
	recovered    string
	newPassword  string
}

func (f *fakeIdentity) CurrentSession(context.Context) (*entity.ProviderSession, error) {
	return f.session, nil
}
func (f *fakeIdentity) Refresh(context.Context) (*entity.ProviderSession, error) {
	return f.session, nil
}
func (f *fakeIdentity) SignOut(context.Context) error {
	f.signOutCalls++
	f.session = nil
	return nil
}
func (f *fakeIdentity) SignIn(_ context.Context, email, password string) (*entity.ProviderSession, error) {
	if f.signInErr != nil {
		return nil, f.signInErr
	}
	f.session = &entity.ProviderSession{AccessToken: "tok-" + email}
	return f.session, nil
}
func (f *fakeIdentity) SignUp(context.Context, string, string) (*entity.ProviderSession, error) {
	if f.signUpErr != nil {
		return nil, f.signUpErr
	}
	f.session = f.signUpSess
	return f.signUpSess, nil
}
func (f *fakeIdentity) RequestRecovery(_ context.Context, email string) error {
	f.recovered = email
	return nil
}
func (f *fakeIdentity) UpdatePassword(_ context.Context, p string) error {
	f.newPassword = p
	return nil
}

// fakeOnboarding backend de onboarding con respuesta programable.
type fakeOnboarding struct {
	check       *entity.OnboardingCheck
	checkErr    error
	gotOverride string
	list        *entity.ProfileList
}

func (f *fakeOnboarding) CheckStatus(_ context.Context, tokenOverride string) (*entity.OnboardingCheck, error) {
	f.gotOverride = tokenOverride
	return f.check, f.checkErr
}
func (f *fakeOnboarding) Profiles(context.Context) (*entity.ProfileList, error) {
	return f.list, nil
}
func (f *fakeOnboarding) SwitchProfile(context.Context, string) (*entity.Profile, error) {
	return nil, errors.New("no usado en estos tests")
}

// memProfiles almacenamiento de perfil activo en memoria.
type memProfiles struct{ id string }

func (m *memProfiles) Load() (string, error) { return m.id, nil }
func (m *memProfiles) Save(id string) error  { m.id = id; return nil }
func (m *memProfiles) Clear() error          { m.id = ""; return nil }

func buildUseCase(id *fakeIdentity, api *fakeOnboarding) (*auth.UseCase, *session.Store, *memProfiles) {
	store := session.New()
	profiles := &memProfiles{}
	res := resolver.New(store, api, profiles, nil, nil)
	return auth.NewUseCase(id, store, res, profiles, nil), store, profiles
}

func activeCheck() *entity.OnboardingCheck {
	return &entity.OnboardingCheck{
		Status: entity.StatusActive,
		User:   &entity.AuthUser{ID: "u-1", Name: "Ana", Email: "ana@acme.es", Role: entity.RoleWorker},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_ResuelveConElTokenRecienEmitido(t *testing.T) {
	id := &fakeIdentity{}
	api := &fakeOnboarding{
		check: activeCheck(),
		list:  &entity.ProfileList{Profiles: []entity.Profile{{ID: "p-1", CompanyName: "Acme"}}},
	}
	uc, store, profiles := buildUseCase(id, api)

	err := uc.Login(context.Background(), "ana@acme.es", "secreta")

	require.NoError(t, err)
	assert.Equal(t, "tok-ana@acme.es", api.gotOverride,
		"la resolución usa el token recién emitido, no la sesión almacenada")
	state := store.Snapshot()
	require.NotNil(t, state.User)
	assert.Equal(t, entity.StatusActive, state.Status)
	assert.Equal(t, "p-1", profiles.id)
}

func TestLogin_CredencialesInvalidasRegistraElError(t *testing.T) {
	id := &fakeIdentity{signInErr: errors.New("credenciales inválidas")}
	uc, store, _ := buildUseCase(id, &fakeOnboarding{})

	err := uc.Login(context.Background(), "ana@acme.es", "mala")

	require.Error(t, err)
	assert.Contains(t, store.Snapshot().Error, "credenciales inválidas")
	assert.Nil(t, store.Snapshot().User)
}

func TestLogin_LimpiaElErrorAnterior(t *testing.T) {
	id := &fakeIdentity{}
	api := &fakeOnboarding{check: activeCheck(), list: &entity.ProfileList{}}
	uc, store, _ := buildUseCase(id, api)
	store.SetError("fallo del intento anterior")

	require.NoError(t, uc.Login(context.Background(), "ana@acme.es", "secreta"))

	assert.Empty(t, store.Snapshot().Error)
}

// ──────────────────────────────────────────────────────────────────────────────
// SignUp
// ──────────────────────────────────────────────────────────────────────────────

func TestSignUp_PendienteDeConfirmacion(t *testing.T) {
	id := &fakeIdentity{signUpSess: nil} // el proveedor no emite sesión
	api := &fakeOnboarding{checkErr: errors.New("no debería resolverse")}
	uc, store, _ := buildUseCase(id, api)

	pending, err := uc.SignUp(context.Background(), "ana@acme.es", "secreta")

	require.NoError(t, err)
	assert.True(t, pending)
	assert.Nil(t, store.Snapshot().User)
}

func TestSignUp_ConSesionInmediataResuelve(t *testing.T) {
	id := &fakeIdentity{signUpSess: &entity.ProviderSession{AccessToken: "tok-nuevo"}}
	api := &fakeOnboarding{check: &entity.OnboardingCheck{Status: entity.StatusOnboardingRequired}}
	uc, store, _ := buildUseCase(id, api)

	pending, err := uc.SignUp(context.Background(), "ana@acme.es", "secreta")

	require.NoError(t, err)
	assert.False(t, pending)
	assert.Equal(t, "tok-nuevo", api.gotOverride)
	assert.Equal(t, entity.StatusOnboardingRequired, store.Snapshot().Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Logout
// ──────────────────────────────────────────────────────────────────────────────

func TestLogout_DesmontaTodaLaSesionLocal(t *testing.T) {
	id := &fakeIdentity{}
	api := &fakeOnboarding{
		check: activeCheck(),
		list:  &entity.ProfileList{Profiles: []entity.Profile{{ID: "p-1"}}},
	}
	uc, store, profiles := buildUseCase(id, api)
	require.NoError(t, uc.Login(context.Background(), "ana@acme.es", "secreta"))
	require.Equal(t, "p-1", profiles.id)

	uc.Logout(context.Background())

	assert.Equal(t, 1, id.signOutCalls)
	assert.Empty(t, profiles.id, "la selección de perfil se descarta con la sesión")
	state := store.Snapshot()
	assert.Nil(t, state.User)
	assert.Equal(t, entity.StatusUnresolved, state.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Recuperación de contraseña
// ──────────────────────────────────────────────────────────────────────────────

func TestRecuperacionDeContrasena(t *testing.T) {
	id := &fakeIdentity{}
	uc, _, _ := buildUseCase(id, &fakeOnboarding{})

	require.NoError(t, uc.RequestPasswordRecovery(context.Background(), "ana@acme.es"))
	assert.Equal(t, "ana@acme.es", id.recovered)

	require.NoError(t, uc.UpdatePassword(context.Background(), "nueva-secreta"))
	assert.Equal(t, "nueva-secreta", id.newPassword)
}
