package broadcast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/control-horario/internal/application/ports"
	"github.com/tu-usuario/control-horario/internal/infrastructure/broadcast"
)

func TestMemoryBus_RepartesATodosLosReceptores(t *testing.T) {
	bus := broadcast.NewMemoryBus()
	var a, b []ports.Message
	cancelA := bus.Subscribe(func(m ports.Message) { a = append(a, m) })
	defer cancelA()
	cancelB := bus.Subscribe(func(m ports.Message) { b = append(b, m) })
	defer cancelB()

	bus.NotifyOnboardingComplete()

	require.Len(t, a, 1)
	require.Len(t, b, 1)
	assert.Equal(t, ports.MessageOnboardingComplete, a[0].Type)
	assert.Equal(t, a[0].ID, b[0].ID, "todos reciben el mismo mensaje")
	assert.NotEmpty(t, a[0].ID)
}

func TestMemoryBus_MensajesDistintosLlevanIDsDistintos(t *testing.T) {
	bus := broadcast.NewMemoryBus()
	var got []ports.Message
	cancel := bus.Subscribe(func(m ports.Message) { got = append(got, m) })
	defer cancel()

	bus.NotifyOnboardingComplete()
	bus.NotifyOnboardingComplete()

	require.Len(t, got, 2)
	assert.NotEqual(t, got[0].ID, got[1].ID)
}

func TestMemoryBus_CancelarDejaDeRecibir(t *testing.T) {
	bus := broadcast.NewMemoryBus()
	var got int
	cancel := bus.Subscribe(func(ports.Message) { got++ })

	bus.NotifyOnboardingComplete()
	cancel()
	bus.NotifyOnboardingComplete()

	assert.Equal(t, 1, got)
}

func TestNoop_NuncaEntregaNada(t *testing.T) {
	bus := broadcast.NewNoop()
	var got int
	cancel := bus.Subscribe(func(ports.Message) { got++ })

	bus.NotifyOnboardingComplete()
	cancel()

	assert.Zero(t, got, "sin primitivo de difusión se degrada a no-op, no a fallo")
}
