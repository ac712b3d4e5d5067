// Package session contiene el contenedor de estado de sesión de la
// aplicación. No es un singleton: cada consumidor construye su instancia y
// las pruebas trabajan con contenedores aislados.
package session

import (
	"slices"
	"sync"

	"github.com/tu-usuario/control-horario/internal/domain/entity"
)

// Store contenedor de estado con operaciones de transición atómicas.
// Cada transición reemplaza solo los campos que le pertenecen; los lectores
// siempre observan una instantánea consistente. Invariantes que mantienen
// todas las transiciones:
//
//   - User != nil ⇔ Status == ACTIVE
//   - ActiveProfile, si no es nil, pertenece a Profiles
type Store struct {
	mu    sync.RWMutex
	state entity.SessionState

	subMu  sync.Mutex
	subs   map[int]func(entity.SessionState)
	nextID int
}

// New crea un contenedor vacío con IsInitializing = true: la aplicación
// arranca en fase de inicialización hasta que termina el primer intento de
// resolución.
func New() *Store {
	return &Store{
		state: entity.SessionState{IsInitializing: true},
		subs:  make(map[int]func(entity.SessionState)),
	}
}

// Snapshot devuelve una copia consistente del estado actual.
func (s *Store) Snapshot() entity.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneState(s.state)
}

// Subscribe registra un observador que recibe cada nuevo estado. Devuelve la
// función de cancelación; un componente que deja de escuchar simplemente
// cancela y no recibe más instantáneas.
func (s *Store) Subscribe(fn func(entity.SessionState)) (cancel func()) {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()
	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// Reset vuelve al estado vacío. IsInitializing queda en false: tras un logout
// explícito no se vuelve a entrar en la fase de carga inicial.
func (s *Store) Reset() {
	s.transition(func(st *entity.SessionState) {
		*st = entity.SessionState{IsInitializing: false}
	})
}

// SetUser establece la identidad activa. Implica Status = ACTIVE y limpia el
// último error y los registros de onboarding pendientes.
func (s *Store) SetUser(user entity.AuthUser) {
	s.transition(func(st *entity.SessionState) {
		u := user
		st.User = &u
		st.Status = entity.StatusActive
		st.Error = ""
		st.PendingInvitations = nil
		st.PendingRequests = nil
	})
}

// SetInitializing marca o desmarca la fase de inicialización.
func (s *Store) SetInitializing(v bool) {
	s.transition(func(st *entity.SessionState) {
		st.IsInitializing = v
	})
}

// SetError registra el último error de autenticación ("" lo limpia).
func (s *Store) SetError(msg string) {
	s.transition(func(st *entity.SessionState) {
		st.Error = msg
	})
}

// SetOnboardingStatus fija un estado de onboarding incompleto junto con sus
// registros pendientes; reemplaza ambas listas (nil las vacía) y desasigna
// User para conservar el invariante User ⇔ ACTIVE. El estado ACTIVE solo se
// alcanza vía SetUser, así que aquí se ignora.
func (s *Store) SetOnboardingStatus(status entity.OnboardingStatus, invitations []entity.PendingInvitation, requests []entity.JoinRequest) {
	if status == entity.StatusActive {
		return
	}
	s.transition(func(st *entity.SessionState) {
		st.Status = status
		st.User = nil
		st.Profiles = nil
		st.ActiveProfile = nil
		st.PendingInvitations = slices.Clone(invitations)
		st.PendingRequests = slices.Clone(requests)
	})
}

// SetStatus fija solo el estado, sin tocar listas pendientes. Es la
// transición para resultados de estado desconocidos. ACTIVE se ignora por la
// misma razón que en SetOnboardingStatus.
func (s *Store) SetStatus(status entity.OnboardingStatus) {
	if status == entity.StatusActive {
		return
	}
	s.transition(func(st *entity.SessionState) {
		st.Status = status
		st.User = nil
	})
}

// SetProfiles reemplaza el conjunto de perfiles y el activo. Si active no
// pertenece al conjunto se descarta la selección, preservando el invariante.
func (s *Store) SetProfiles(profiles []entity.Profile, active *entity.Profile) {
	s.transition(func(st *entity.SessionState) {
		st.Profiles = slices.Clone(profiles)
		st.ActiveProfile = memberOf(st.Profiles, active)
	})
}

// SetActiveProfile cambia el perfil activo; debe pertenecer al conjunto ya
// cargado o la transición se descarta.
func (s *Store) SetActiveProfile(profile entity.Profile) {
	s.transition(func(st *entity.SessionState) {
		if p := memberOf(st.Profiles, &profile); p != nil {
			st.ActiveProfile = p
		}
	})
}

// transition aplica la mutación bajo el lock y notifica a los suscriptores
// con la instantánea resultante, ya fuera del lock.
func (s *Store) transition(fn func(*entity.SessionState)) {
	s.mu.Lock()
	fn(&s.state)
	snap := cloneState(s.state)
	s.mu.Unlock()

	s.subMu.Lock()
	subs := make([]func(entity.SessionState), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subMu.Unlock()
	for _, fn := range subs {
		fn(snap)
	}
}

func cloneState(st entity.SessionState) entity.SessionState {
	out := st
	out.PendingInvitations = slices.Clone(st.PendingInvitations)
	out.PendingRequests = slices.Clone(st.PendingRequests)
	out.Profiles = slices.Clone(st.Profiles)
	if st.User != nil {
		u := *st.User
		out.User = &u
	}
	if st.ActiveProfile != nil {
		p := *st.ActiveProfile
		out.ActiveProfile = &p
	}
	return out
}

// memberOf devuelve el elemento del conjunto con el id de candidate, o nil.
func memberOf(profiles []entity.Profile, candidate *entity.Profile) *entity.Profile {
	if candidate == nil {
		return nil
	}
	for i := range profiles {
		if profiles[i].ID == candidate.ID {
			return &profiles[i]
		}
	}
	return nil
}
