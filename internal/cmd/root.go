// Package cmd define los comandos del CLI de Control Horario.
package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tu-usuario/control-horario/internal/application/auth"
	"github.com/tu-usuario/control-horario/internal/application/resolver"
	"github.com/tu-usuario/control-horario/internal/application/session"
	"github.com/tu-usuario/control-horario/internal/infrastructure/broadcast"
	"github.com/tu-usuario/control-horario/internal/infrastructure/gateway"
	"github.com/tu-usuario/control-horario/internal/infrastructure/identity"
	"github.com/tu-usuario/control-horario/internal/infrastructure/storage"
	"github.com/tu-usuario/control-horario/internal/interfaces/rest"
	"github.com/tu-usuario/control-horario/pkg/config"
	"github.com/tu-usuario/control-horario/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "horario",
	Short: "Cliente de Control Horario: fichajes, ausencias y perfiles",
	Long: `Cliente de línea de comandos de Control Horario.

Gestiona la sesión contra el proveedor de identidad, el perfil de empresa
activo, los fichajes y ausencias, y la exportación de informes mensuales.

Configuración por variables de entorno (o archivo .env):
  IDENTITY_URL   URL del proveedor de identidad (obligatorio)
  IDENTITY_KEY   clave publicable del proyecto
  API_URL        URL del backend (por defecto http://localhost:3000)
  STORAGE_DIR    directorio de estado local`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// ExecuteContext ejecuta el comando raíz con el contexto dado.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// app grafo de dependencias del CLI, construido una vez por invocación.
type app struct {
	cfg      *config.Config
	log      *logger.Logger
	store    *session.Store
	profiles *storage.ProfileFile
	identity *identity.Client
	gateway  *gateway.Gateway
	api      *rest.Client
	resolver *resolver.Resolver
	auth     *auth.UseCase
}

// newApp carga configuración y cablea todas las piezas. El teardown de la
// pasarela se fija al final porque necesita el caso de uso de auth, que a su
// vez depende del resolver construido sobre la propia pasarela.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	dir, err := cfg.Storage.ResolveDir()
	if err != nil {
		return nil, err
	}
	sessionFile := storage.NewSessionFile(dir)
	profileFile := storage.NewProfileFile(dir)

	id := identity.NewClient(identity.Config{
		BaseURL: cfg.Identity.BaseURL,
		APIKey:  cfg.Identity.APIKey,
		Store:   sessionFile,
		Logger:  log,
	})

	gw := gateway.New(gateway.Config{
		BaseURL:  cfg.API.BaseURL,
		Identity: id,
		Profiles: profileFile,
		Logger:   log,
	})
	api := rest.NewClient(gw)

	store := session.New()
	res := resolver.New(store, api, profileFile, broadcast.NewNoop(), log)
	uc := auth.NewUseCase(id, store, res, profileFile, log)
	gw.SetTeardown(func(ctx context.Context) { uc.Logout(ctx) })

	return &app{
		cfg:      cfg,
		log:      log,
		store:    store,
		profiles: profileFile,
		identity: id,
		gateway:  gw,
		api:      api,
		resolver: res,
		auth:     uc,
	}, nil
}

// signalTimeout acota una espera interactiva larga sin perder la cancelación
// por señal del contexto raíz.
func signalTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, d)
}

// requireActive inicializa la sesión desde el almacenamiento y exige estado
// ACTIVE para los comandos que hablan con el backend.
func (a *app) requireActive(ctx context.Context) error {
	a.resolver.Initialize(ctx)
	state := a.store.Snapshot()
	if state.User == nil {
		if state.Error != "" {
			return fmt.Errorf("sesión no disponible: %s", state.Error)
		}
		return fmt.Errorf("no hay sesión activa; ejecuta 'horario login'")
	}
	return nil
}
