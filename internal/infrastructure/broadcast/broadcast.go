// Package broadcast implementa el puerto Broadcaster: el canal tipado que
// avisa a las demás instancias del cliente cuando una completa el onboarding.
package broadcast

import (
	"sync"

	"github.com/google/uuid"

	"github.com/tu-usuario/control-horario/internal/application/ports"
)

var (
	_ ports.Broadcaster = (*MemoryBus)(nil)
	_ ports.Broadcaster = (*Noop)(nil)
)

// MemoryBus difusión en proceso: reparte cada mensaje a todos los receptores
// suscritos de forma síncrona. El receptor decide si el mensaje le aplica; el
// bus no filtra.
type MemoryBus struct {
	mu     sync.Mutex
	subs   map[int]func(ports.Message)
	nextID int
}

// NewMemoryBus construye el bus.
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{subs: make(map[int]func(ports.Message))}
}

// NotifyOnboardingComplete difunde el único tipo de mensaje del canal.
func (b *MemoryBus) NotifyOnboardingComplete() {
	b.publish(ports.Message{ID: uuid.NewString(), Type: ports.MessageOnboardingComplete})
}

// Subscribe registra un receptor y devuelve su función de cancelación.
func (b *MemoryBus) Subscribe(fn func(ports.Message)) (cancel func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	b.mu.Unlock()
	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

func (b *MemoryBus) publish(msg ports.Message) {
	b.mu.Lock()
	subs := make([]func(ports.Message), 0, len(b.subs))
	for _, fn := range b.subs {
		subs = append(subs, fn)
	}
	b.mu.Unlock()
	for _, fn := range subs {
		fn(msg)
	}
}

// Noop implementación para plataformas sin primitivo de difusión: publicar no
// hace nada y nadie recibe. La ausencia del canal degrada a no-op, no a fallo.
type Noop struct{}

// NewNoop construye la implementación nula.
func NewNoop() *Noop { return &Noop{} }

// NotifyOnboardingComplete no hace nada.
func (Noop) NotifyOnboardingComplete() {}

// Subscribe no registra nada; la cancelación también es un no-op.
func (Noop) Subscribe(func(ports.Message)) (cancel func()) {
	return func() {}
}
