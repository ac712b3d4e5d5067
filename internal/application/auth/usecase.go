// Package auth orquesta el flujo de autenticación completo: proveedor de
// identidad, resolución de onboarding/perfiles y contenedor de sesión.
package auth

import (
	"context"
	"fmt"

	"github.com/tu-usuario/control-horario/internal/application/ports"
	"github.com/tu-usuario/control-horario/internal/application/resolver"
	"github.com/tu-usuario/control-horario/internal/application/session"
	"github.com/tu-usuario/control-horario/internal/domain/entity"
	"github.com/tu-usuario/control-horario/pkg/logger"
)

// IdentityPort operaciones del proveedor de identidad que necesita este caso
// de uso, más allá del puerto mínimo que consume la pasarela.
type IdentityPort interface {
	ports.IdentityClient
	SignIn(ctx context.Context, email, password string) (*entity.ProviderSession, error)
	SignUp(ctx context.Context, email, password string) (*entity.ProviderSession, error)
	RequestRecovery(ctx context.Context, email string) error
	UpdatePassword(ctx context.Context, newPassword string) error
}

// UseCase casos de uso de autenticación: login, registro, logout,
// recuperación de contraseña.
type UseCase struct {
	identity IdentityPort
	store    *session.Store
	resolver *resolver.Resolver
	profiles ports.ProfileStore
	log      *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(identity IdentityPort, store *session.Store, res *resolver.Resolver, profiles ports.ProfileStore, log *logger.Logger) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{identity: identity, store: store, resolver: res, profiles: profiles, log: log}
}

// Login inicia sesión y resuelve el estado de onboarding. La resolución usa
// el token recién emitido como override: justo después del login la sesión
// puede no estar aún persistida.
func (uc *UseCase) Login(ctx context.Context, email, password string) error {
	uc.store.SetError("")

	sess, err := uc.identity.SignIn(ctx, email, password)
	if err != nil {
		uc.store.SetError(err.Error())
		return fmt.Errorf("auth: login: %w", err)
	}

	return uc.resolver.Resolve(ctx, sess.AccessToken)
}

// SignUp registra una identidad. Devuelve true si queda pendiente de
// confirmación por email (el proveedor no emitió sesión todavía); con sesión
// inmediata, resuelve el onboarding igual que Login.
func (uc *UseCase) SignUp(ctx context.Context, email, password string) (pendingConfirmation bool, err error) {
	uc.store.SetError("")

	sess, err := uc.identity.SignUp(ctx, email, password)
	if err != nil {
		uc.store.SetError(err.Error())
		return false, fmt.Errorf("auth: registro: %w", err)
	}
	if sess == nil {
		return true, nil
	}
	return false, uc.resolver.Resolve(ctx, sess.AccessToken)
}

// Logout desmonta la sesión entera: revoca en el proveedor, descarta la
// selección de perfil local y vacía el contenedor. También es el teardown que
// la pasarela invoca ante un 401 persistente, para que la aplicación no siga
// operando con una sesión inválida.
func (uc *UseCase) Logout(ctx context.Context) {
	if err := uc.identity.SignOut(ctx); err != nil {
		uc.log.Debug().Err(err).Msg("sign out en el proveedor")
	}
	if uc.profiles != nil {
		if err := uc.profiles.Clear(); err != nil {
			uc.log.Warn().Err(err).Msg("limpiar perfil activo")
		}
	}
	uc.store.Reset()
}

// RequestPasswordRecovery solicita el email de recuperación.
func (uc *UseCase) RequestPasswordRecovery(ctx context.Context, email string) error {
	if err := uc.identity.RequestRecovery(ctx, email); err != nil {
		return fmt.Errorf("auth: solicitar recuperación: %w", err)
	}
	return nil
}

// UpdatePassword cambia la contraseña de la identidad autenticada.
func (uc *UseCase) UpdatePassword(ctx context.Context, newPassword string) error {
	if err := uc.identity.UpdatePassword(ctx, newPassword); err != nil {
		return fmt.Errorf("auth: actualizar contraseña: %w", err)
	}
	return nil
}
