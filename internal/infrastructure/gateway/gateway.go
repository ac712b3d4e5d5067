// Package gateway implementa la pasarela de peticiones autenticadas contra el
// backend: adjunta el bearer token y la cabecera de perfil activo, detecta el
// 401 y ejecuta como máximo un ciclo refresh+retry antes de forzar el cierre
// de sesión.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/control-horario/internal/application/ports"
	"github.com/tu-usuario/control-horario/pkg/logger"
)

// Cabeceras propias del backend.
const (
	HeaderActiveProfile = "X-Active-Profile"
	HeaderRequestID     = "X-Request-ID"
)

// Request descriptor de una petición saliente. TokenOverride salta la
// resolución de sesión y desactiva el refresh: se usa en la ventana posterior
// al login/signup, cuando la sesión aún no está almacenada.
type Request struct {
	Method        string
	Path          string
	Query         url.Values
	Body          any
	Header        http.Header
	TokenOverride string
}

// OutcomeKind clase de resultado de una petición.
type OutcomeKind int

const (
	// OutcomeOK respuesta entregable al llamador (2xx o error de dominio).
	OutcomeOK OutcomeKind = iota
	// OutcomeUnauthorized 401 terminal: con override, tras fallar el
	// refresh, o tras agotar el único retry.
	OutcomeUnauthorized
	// OutcomeTransport fallo de red, sin respuesta.
	OutcomeTransport
)

// Outcome resultado explícito de una petición. Hace auditable la cota de
// "como máximo un retry": Retried y TornDown son observables, no estados
// implícitos de una cadena de excepciones.
type Outcome struct {
	Kind     OutcomeKind
	Response *http.Response
	Err      error
	Retried  bool
	TornDown bool
}

// Config dependencias de la pasarela.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Identity   ports.IdentityClient
	Profiles   ports.ProfileStore
	// Teardown cierra la sesión local completa; se invoca cuando un 401
	// sobrevive al ciclo de refresh. Puede ser nil.
	Teardown func(ctx context.Context)
	Logger   *logger.Logger
}

// Gateway pasarela de peticiones autenticadas.
type Gateway struct {
	baseURL  string
	http     *http.Client
	identity ports.IdentityClient
	profiles ports.ProfileStore
	teardown func(ctx context.Context)
	log      *logger.Logger
}

// New construye la pasarela.
func New(cfg Config) *Gateway {
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Gateway{
		baseURL:  cfg.BaseURL,
		http:     hc,
		identity: cfg.Identity,
		profiles: cfg.Profiles,
		teardown: cfg.Teardown,
		log:      log,
	}
}

// SetTeardown fija el cierre de sesión a posteriori: la pasarela se construye
// antes que el caso de uso de auth que sabe desmontar la sesión completa.
func (g *Gateway) SetTeardown(fn func(ctx context.Context)) {
	g.teardown = fn
}

// Do ejecuta la petición y devuelve la respuesta (posiblemente la del retry).
// Los 401 terminales también se devuelven como respuesta: el llamador es quien
// interpreta los cuerpos no-2xx como errores de dominio.
func (g *Gateway) Do(ctx context.Context, r Request) (*http.Response, error) {
	out := g.Execute(ctx, r)
	if out.Kind == OutcomeTransport {
		return nil, out.Err
	}
	return out.Response, nil
}

// Execute ejecuta la petición con la política completa y devuelve el
// resultado explícito.
//
// Secuencia estrictamente ordenada, sin refresh especulativo: la petición
// original termina antes de intentar el refresh, y el refresh termina antes
// del retry.
func (g *Gateway) Execute(ctx context.Context, r Request) Outcome {
	body, err := marshalBody(r.Body)
	if err != nil {
		return Outcome{Kind: OutcomeTransport, Err: err}
	}

	token := r.TokenOverride
	if token == "" {
		token = g.resolveToken(ctx)
	}

	resp, err := g.send(ctx, r, body, token)
	if err != nil {
		return Outcome{Kind: OutcomeTransport, Err: err}
	}

	if resp.StatusCode != http.StatusUnauthorized {
		return Outcome{Kind: OutcomeOK, Response: resp}
	}
	if r.TokenOverride != "" {
		// Con token explícito no hay sesión que renovar: el 401 se
		// devuelve tal cual.
		return Outcome{Kind: OutcomeUnauthorized, Response: resp}
	}

	// Exactamente un ciclo refresh+retry.
	if _, err := g.identity.Refresh(ctx); err != nil {
		g.log.Warn().Err(err).Msg("refresh tras 401 falló; se fuerza el cierre de sesión")
		g.doTeardown(ctx)
		return Outcome{Kind: OutcomeUnauthorized, Response: resp, TornDown: true}
	}

	retryResp, err := g.send(ctx, r, body, g.resolveToken(ctx))
	if err != nil {
		closeBody(resp)
		return Outcome{Kind: OutcomeTransport, Err: err, Retried: true}
	}
	closeBody(resp)

	if retryResp.StatusCode == http.StatusUnauthorized {
		g.log.Warn().Str("path", r.Path).Msg("401 persistente tras refresh; se fuerza el cierre de sesión")
		g.doTeardown(ctx)
		return Outcome{Kind: OutcomeUnauthorized, Response: retryResp, Retried: true, TornDown: true}
	}
	return Outcome{Kind: OutcomeOK, Response: retryResp, Retried: true}
}

// resolveToken obtiene el access token vigente; sin sesión la petición sale
// sin Authorization y el backend responderá 401.
func (g *Gateway) resolveToken(ctx context.Context) string {
	sess, err := g.identity.CurrentSession(ctx)
	if err != nil {
		g.log.Debug().Err(err).Msg("resolver token de sesión")
		return ""
	}
	if sess == nil {
		return ""
	}
	return sess.AccessToken
}

// send construye y lanza una petición con las credenciales actuales.
func (g *Gateway) send(ctx context.Context, r Request, body []byte, token string) (*http.Response, error) {
	endpoint := g.baseURL + r.Path
	if len(r.Query) > 0 {
		endpoint += "?" + r.Query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("gateway: crear HTTP request: %w", err)
	}

	for k, vs := range r.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if profileID := g.activeProfileID(); profileID != "" {
		req.Header.Set(HeaderActiveProfile, profileID)
	}
	req.Header.Set(HeaderRequestID, uuid.NewString())

	resp, err := g.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("gateway: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("gateway: llamada HTTP fallida: %w", err)
	}
	return resp, nil
}

// activeProfileID lee el perfil activo del almacenamiento duradero en cada
// petición: la selección puede cambiar entre llamadas desde otra instancia.
func (g *Gateway) activeProfileID() string {
	if g.profiles == nil {
		return ""
	}
	id, err := g.profiles.Load()
	if err != nil {
		g.log.Debug().Err(err).Msg("leer perfil activo")
		return ""
	}
	return id
}

func (g *Gateway) doTeardown(ctx context.Context) {
	if g.teardown != nil {
		g.teardown(ctx)
	}
}

// marshalBody serializa el cuerpo una sola vez; cada intento lo relee desde
// el mismo buffer.
func marshalBody(body any) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	if raw, ok := body.([]byte); ok {
		return raw, nil
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("gateway: serializar cuerpo: %w", err)
	}
	return raw, nil
}

func closeBody(resp *http.Response) {
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
}
