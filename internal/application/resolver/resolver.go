// Package resolver implementa la resolución de onboarding y perfiles: la
// máquina de estados que lleva una identidad autenticada desde UNRESOLVED
// hasta ACTIVE, ONBOARDING_REQUIRED o PENDING_APPROVAL en cada pase.
package resolver

import (
	"context"
	"fmt"

	"github.com/tu-usuario/control-horario/internal/application/ports"
	"github.com/tu-usuario/control-horario/internal/application/session"
	"github.com/tu-usuario/control-horario/internal/domain"
	"github.com/tu-usuario/control-horario/internal/domain/entity"
	"github.com/tu-usuario/control-horario/pkg/logger"
)

// Resolver ejecuta pases de resolución idempotentes sobre el contenedor de
// sesión. Es reentrante: cada login, refresh o mensaje de difusión puede
// disparar un nuevo pase y dos pases concurrentes convergen a la misma
// selección de perfil.
type Resolver struct {
	store    *session.Store
	api      ports.OnboardingAPI
	profiles ports.ProfileStore
	bus      ports.Broadcaster
	log      *logger.Logger
}

// New construye el resolver.
func New(store *session.Store, api ports.OnboardingAPI, profiles ports.ProfileStore, bus ports.Broadcaster, log *logger.Logger) *Resolver {
	if log == nil {
		log = logger.Nop()
	}
	return &Resolver{store: store, api: api, profiles: profiles, bus: bus, log: log}
}

// Resolve ejecuta un pase de resolución. tokenOverride permite resolver con
// un token explícito durante la ventana posterior al login/signup. Si el pase
// llega a ACTIVE desde un estado que no lo era, difunde la finalización del
// onboarding a las demás instancias.
func (r *Resolver) Resolve(ctx context.Context, tokenOverride string) error {
	return r.resolve(ctx, tokenOverride, true)
}

// resolve es el pase real; notify controla la difusión para que un pase
// disparado por un mensaje recibido no lo re-difunda (evita bucles de eco).
func (r *Resolver) resolve(ctx context.Context, tokenOverride string, notify bool) error {
	prev := r.store.Snapshot().Status

	check, err := r.api.CheckStatus(ctx, tokenOverride)
	if err != nil {
		r.store.SetError(err.Error())
		return fmt.Errorf("resolver: comprobar estado de onboarding: %w", err)
	}

	switch check.Status {
	case entity.StatusActive:
		if check.User == nil {
			err := fmt.Errorf("resolver: respuesta ACTIVE sin usuario")
			r.store.SetError(domain.GenericMessage)
			return err
		}
		r.store.SetUser(*check.User)
		r.loadProfiles(ctx)
		if notify && prev != entity.StatusActive && r.bus != nil {
			r.bus.NotifyOnboardingComplete()
		}

	case entity.StatusOnboardingRequired:
		r.store.SetOnboardingStatus(check.Status, check.PendingInvitations, nil)

	case entity.StatusPendingApproval:
		r.store.SetOnboardingStatus(check.Status, nil, check.Requests)

	default:
		// Estado desconocido: se traslada tal cual, sin tocar nada más.
		r.store.SetStatus(check.Status)
	}

	return nil
}

// loadProfiles carga el conjunto de perfiles y selecciona el activo con la
// prioridad: id recordado en almacenamiento duradero > id sugerido por el
// servidor > primero del conjunto. El fallo aquí no es fatal: la sesión queda
// completa con User asignado y sin soporte de cambio de perfil.
func (r *Resolver) loadProfiles(ctx context.Context) {
	list, err := r.api.Profiles(ctx)
	if err != nil {
		r.log.Warn().Err(err).Msg("cargar perfiles tras ACTIVE; se continúa sin perfiles")
		return
	}
	if list == nil || len(list.Profiles) == 0 {
		r.store.SetProfiles(nil, nil)
		return
	}

	storedID, err := r.profiles.Load()
	if err != nil {
		r.log.Warn().Err(err).Msg("leer perfil activo del almacenamiento local")
	}

	active := list.Find(storedID)
	if active == nil {
		active = list.Find(list.CurrentID)
	}
	if active == nil {
		active = &list.Profiles[0]
	}

	if err := r.profiles.Save(active.ID); err != nil {
		r.log.Warn().Err(err).Str("profile_id", active.ID).Msg("persistir perfil activo")
	}
	r.store.SetProfiles(list.Profiles, active)
}

// SwitchProfile cambia el perfil activo. Es el único camino, además de la
// resolución inicial, que muta ActiveProfile: valida en el servidor que el
// perfil pertenece a la identidad, persiste el id y actualiza la sesión.
func (r *Resolver) SwitchProfile(ctx context.Context, profileID string) (*entity.Profile, error) {
	profile, err := r.api.SwitchProfile(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("resolver: cambiar de perfil: %w", err)
	}
	if err := r.profiles.Save(profile.ID); err != nil {
		r.log.Warn().Err(err).Str("profile_id", profile.ID).Msg("persistir perfil activo")
	}
	r.store.SetActiveProfile(*profile)
	return profile, nil
}

// Initialize resuelve la sesión al arrancar. Si ya hay usuario no hace nada;
// si no hay sesión válida simplemente se termina la fase de inicialización
// sin error: la ausencia de sesión no es un fallo.
func (r *Resolver) Initialize(ctx context.Context) {
	if r.store.Snapshot().User != nil {
		r.store.SetInitializing(false)
		return
	}
	defer r.store.SetInitializing(false)
	if err := r.resolve(ctx, "", true); err != nil {
		r.log.Debug().Err(err).Msg("sin sesión previa al inicializar")
	}
}

// Listen conecta el resolver al canal de difusión: un mensaje de onboarding
// completado dispara un pase solo si esta instancia aún no está en ACTIVE, y
// ese pase no vuelve a difundir. Devuelve la función de cancelación.
func (r *Resolver) Listen(ctx context.Context) (cancel func()) {
	if r.bus == nil {
		return func() {}
	}
	return r.bus.Subscribe(func(msg ports.Message) {
		if msg.Type != ports.MessageOnboardingComplete {
			return
		}
		if r.store.Snapshot().Status == entity.StatusActive {
			return
		}
		if err := r.resolve(ctx, "", false); err != nil {
			r.log.Warn().Err(err).Msg("resolver tras mensaje de difusión")
		}
	})
}
