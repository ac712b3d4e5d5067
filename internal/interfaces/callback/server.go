// Package callback levanta un servidor HTTP de loopback que recibe las
// redirecciones del proveedor de identidad (confirmación de registro,
// recuperación de contraseña, invitaciones) y entrega sus parámetros a quien
// inició el flujo.
package callback

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/control-horario/internal/infrastructure/identity"
	"github.com/tu-usuario/control-horario/pkg/logger"
)

// Path ruta registrada como redirect URL en el proveedor.
const Path = "/auth/callback"

// Server servidor de loopback de un solo uso: atiende una redirección y se
// apaga.
type Server struct {
	app    *fiber.App
	addr   string
	log    *logger.Logger
	result chan identity.CallbackParams
}

// New construye el servidor sobre host:port (loopback).
func New(host string, port int, log *logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}
	s := &Server{
		addr:   fmt.Sprintf("%s:%d", host, port),
		log:    log,
		result: make(chan identity.CallbackParams, 1),
	}
	s.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
	})
	s.app.Get(Path, s.handleCallback)
	return s
}

// RedirectURL la URL que debe registrarse en el proveedor como destino.
func (s *Server) RedirectURL() string {
	return "http://" + s.addr + Path
}

// Start arranca el listener en segundo plano.
func (s *Server) Start() error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.app.Listen(s.addr); err != nil {
			errCh <- err
		}
	}()
	// Listen no señaliza el arranque; un fallo de bind aparece casi
	// inmediatamente.
	select {
	case err := <-errCh:
		return fmt.Errorf("callback: escuchar en %s: %w", s.addr, err)
	case <-time.After(150 * time.Millisecond):
		s.log.Debug().Str("addr", s.addr).Msg("servidor de callback escuchando")
		return nil
	}
}

// Wait bloquea hasta recibir una redirección o hasta que el contexto expire.
func (s *Server) Wait(ctx context.Context) (identity.CallbackParams, error) {
	select {
	case params := <-s.result:
		return params, nil
	case <-ctx.Done():
		return identity.CallbackParams{}, fmt.Errorf("callback: esperando redirección: %w", ctx.Err())
	}
}

// Shutdown apaga el listener.
func (s *Server) Shutdown() error {
	return s.app.ShutdownWithTimeout(3 * time.Second)
}

// handleCallback procesa la redirección. Los tokens del flujo implícito llegan
// en el fragmento de la URL, que el navegador no envía al servidor: la primera
// respuesta es una página mínima que los reenvía como query y la segunda
// visita ya trae todo donde el servidor lo puede leer.
func (s *Server) handleCallback(c *fiber.Ctx) error {
	raw := "http://" + s.addr + Path
	if qs := string(c.Request().URI().QueryString()); qs != "" {
		raw += "?" + qs
	}
	params, err := identity.ParseCallback(raw)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Redirección inválida.")
	}

	if params.IsEmpty() {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString(fragmentForwardPage)
	}

	select {
	case s.result <- params:
	default:
		// Ya se entregó un resultado; las visitas posteriores se ignoran.
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(donePage)
}

// fragmentForwardPage convierte "#access_token=..." en "?access_token=..."
// recargando la misma ruta.
const fragmentForwardPage = `<!doctype html>
<html lang="es"><head><meta charset="utf-8"><title>Control Horario</title></head>
<body><p>Procesando…</p>
<script>
var h = window.location.hash;
if (h && h.length > 1) {
  window.location.replace(window.location.pathname + "?" + h.substring(1));
} else {
  document.body.textContent = "No se recibieron credenciales. Puedes cerrar esta ventana.";
}
</script>
</body></html>`

const donePage = `<!doctype html>
<html lang="es"><head><meta charset="utf-8"><title>Control Horario</title></head>
<body><p>Listo. Puedes cerrar esta ventana y volver a la aplicación.</p></body></html>`
