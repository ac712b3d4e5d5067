// Package ports define los puertos de salida de la capa de aplicación.
// Siguiendo el principio de inversión de dependencias, la aplicación solo
// conoce estos contratos; los adaptadores concretos viven en infrastructure.
package ports

import (
	"context"

	"github.com/tu-usuario/control-horario/internal/domain/entity"
)

// IdentityClient puerto hacia el proveedor de identidad externo.
type IdentityClient interface {
	// CurrentSession devuelve la sesión vigente o (nil, nil) si no hay ninguna.
	CurrentSession(ctx context.Context) (*entity.ProviderSession, error)
	// Refresh renueva la sesión con el refresh token almacenado.
	Refresh(ctx context.Context) (*entity.ProviderSession, error)
	// SignOut revoca la sesión en el proveedor y la descarta localmente.
	SignOut(ctx context.Context) error
}

// ProfileStore almacenamiento local duradero del perfil activo.
// Se lee en cada petición autenticada y en cada pase de resolución; una clave
// ausente se devuelve como cadena vacía, nunca como error.
type ProfileStore interface {
	Load() (string, error)
	Save(profileID string) error
	Clear() error
}

// Tipos de mensaje del canal de difusión.
const MessageOnboardingComplete = "ONBOARDING_COMPLETE"

// Message mensaje tipado difundido entre instancias del cliente.
type Message struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// Broadcaster canal de difusión entre instancias (el equivalente del
// BroadcastChannel entre pestañas del mismo origen). Cuando la plataforma no
// ofrece el primitivo, la implementación degrada a no-op, nunca a fallo.
type Broadcaster interface {
	NotifyOnboardingComplete()
	// Subscribe registra un receptor y devuelve la función para cancelarlo.
	Subscribe(fn func(Message)) (cancel func())
}

// OnboardingAPI operaciones del backend que necesita la resolución de sesión.
type OnboardingAPI interface {
	// CheckStatus consulta el estado de onboarding de la identidad actual.
	// tokenOverride permite usar un token explícito durante la ventana
	// posterior al login/signup, antes de que la sesión esté persistida.
	CheckStatus(ctx context.Context, tokenOverride string) (*entity.OnboardingCheck, error)
	// Profiles devuelve los perfiles de la identidad y el sugerido como actual.
	Profiles(ctx context.Context) (*entity.ProfileList, error)
	// SwitchProfile valida en el servidor que el perfil pertenece a la
	// identidad y devuelve el perfil ya activado.
	SwitchProfile(ctx context.Context, profileID string) (*entity.Profile, error)
}
