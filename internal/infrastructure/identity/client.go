// Package identity implementa el adaptador hacia el proveedor de identidad
// externo (API REST estilo GoTrue): emisión y renovación de sesiones, alta,
// recuperación de contraseña y suscripción a cambios de estado de auth.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/tu-usuario/control-horario/internal/application/ports"
	"github.com/tu-usuario/control-horario/internal/domain"
	"github.com/tu-usuario/control-horario/internal/domain/entity"
	"github.com/tu-usuario/control-horario/internal/infrastructure/storage"
	pkgjwt "github.com/tu-usuario/control-horario/pkg/jwt"
	"github.com/tu-usuario/control-horario/pkg/logger"
)

// Verificación en tiempo de compilación del puerto.
var _ ports.IdentityClient = (*Client)(nil)

// Eventos de cambio de estado de autenticación.
const (
	EventSignedIn       = "SIGNED_IN"
	EventSignedOut      = "SIGNED_OUT"
	EventTokenRefreshed = "TOKEN_REFRESHED"
)

// refreshMargin renueva la sesión si el access token expira dentro de este
// margen, para no llegar al backend con un token caducado.
const refreshMargin = 30 * time.Second

// Config opciones del cliente de identidad.
type Config struct {
	BaseURL    string
	APIKey     string // clave publicable; va en el header apikey de cada llamada
	HTTPClient *http.Client
	Store      *storage.SessionFile // nil = sesión solo en memoria
	Logger     *logger.Logger
}

// Client adaptador REST del proveedor de identidad. La sesión vigente se
// mantiene en memoria y, si hay Store, también en disco para sobrevivir entre
// ejecuciones.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	store   *storage.SessionFile
	log     *logger.Logger

	mu      sync.Mutex
	session *entity.ProviderSession

	lmu       sync.Mutex
	listeners map[int]func(event string, s *entity.ProviderSession)
	nextID    int
}

// NewClient construye el adaptador.
func NewClient(cfg Config) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 15 * time.Second}
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL:   cfg.BaseURL,
		apiKey:    cfg.APIKey,
		http:      hc,
		store:     cfg.Store,
		log:       log,
		listeners: make(map[int]func(string, *entity.ProviderSession)),
	}
}

// ── Protocolo del proveedor ───────────────────────────────────────────────────

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	User         *struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

type providerError struct {
	Code        string `json:"error"`
	Description string `json:"error_description"`
	Msg         string `json:"msg"`
	Message     string `json:"message"`
}

// message devuelve el texto más específico disponible, con fallback genérico:
// nunca se expone un error de transporte crudo.
func (e providerError) message() string {
	switch {
	case e.Description != "":
		return e.Description
	case e.Msg != "":
		return e.Msg
	case e.Message != "":
		return e.Message
	case e.Code != "":
		return e.Code
	}
	return domain.GenericMessage
}

// ── Operaciones ───────────────────────────────────────────────────────────────

// SignIn inicia sesión con email y contraseña (grant password).
func (c *Client) SignIn(ctx context.Context, email, password string) (*entity.ProviderSession, error) {
	sess, err := c.tokenGrant(ctx, "password", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}
	c.adopt(sess)
	c.emit(EventSignedIn, sess)
	return sess, nil
}

// SignUp registra una identidad nueva. Según la configuración del proveedor
// la respuesta puede traer sesión (confirmación desactivada) o no (pendiente
// de confirmar email); en ese caso devuelve (nil, nil).
func (c *Client) SignUp(ctx context.Context, email, password string) (*entity.ProviderSession, error) {
	var out tokenResponse
	if err := c.call(ctx, http.MethodPost, "/signup", nil, map[string]string{
		"email":    email,
		"password": password,
	}, "", &out); err != nil {
		return nil, err
	}
	if out.AccessToken == "" {
		return nil, nil
	}
	sess := toSession(out)
	c.adopt(sess)
	c.emit(EventSignedIn, sess)
	return sess, nil
}

// Refresh renueva la sesión con el refresh token vigente. Si falla, la sesión
// local queda como estaba: el desmontaje lo decide el llamador (el gateway).
func (c *Client) Refresh(ctx context.Context) (*entity.ProviderSession, error) {
	c.mu.Lock()
	current := c.session
	if current == nil && c.store != nil {
		current = c.loadLocked()
	}
	if current == nil || current.RefreshToken == "" {
		c.mu.Unlock()
		return nil, domain.ErrNotAuthenticated
	}
	refreshToken := current.RefreshToken
	c.mu.Unlock()

	sess, err := c.tokenGrant(ctx, "refresh_token", map[string]string{
		"refresh_token": refreshToken,
	})
	if err != nil {
		return nil, err
	}
	c.adopt(sess)
	c.emit(EventTokenRefreshed, sess)
	return sess, nil
}

// SignOut revoca la sesión en el proveedor y la descarta localmente. El fallo
// de red no impide el cierre local: al salir, salimos.
func (c *Client) SignOut(ctx context.Context) error {
	c.mu.Lock()
	sess := c.session
	if sess == nil && c.store != nil {
		sess = c.loadLocked()
	}
	c.mu.Unlock()

	if sess != nil && sess.AccessToken != "" {
		if err := c.call(ctx, http.MethodPost, "/logout", nil, nil, sess.AccessToken, nil); err != nil {
			c.log.Debug().Err(err).Msg("logout remoto falló; se descarta la sesión local igualmente")
		}
	}

	c.mu.Lock()
	c.session = nil
	if c.store != nil {
		if err := c.store.Clear(); err != nil {
			c.log.Warn().Err(err).Msg("borrar sesión persistida")
		}
	}
	c.mu.Unlock()

	c.emit(EventSignedOut, nil)
	return nil
}

// RequestRecovery solicita el email de recuperación de contraseña.
func (c *Client) RequestRecovery(ctx context.Context, email string) error {
	return c.call(ctx, http.MethodPost, "/recover", nil, map[string]string{"email": email}, "", nil)
}

// UpdatePassword cambia la contraseña de la identidad autenticada.
func (c *Client) UpdatePassword(ctx context.Context, newPassword string) error {
	sess, err := c.CurrentSession(ctx)
	if err != nil {
		return err
	}
	if sess == nil {
		return domain.ErrNotAuthenticated
	}
	return c.call(ctx, http.MethodPut, "/user", nil, map[string]string{"password": newPassword}, sess.AccessToken, nil)
}

// ExchangeCode canjea el código de una redirección PKCE por una sesión.
func (c *Client) ExchangeCode(ctx context.Context, code, verifier string) (*entity.ProviderSession, error) {
	sess, err := c.tokenGrant(ctx, "pkce", map[string]string{
		"auth_code":     code,
		"code_verifier": verifier,
	})
	if err != nil {
		return nil, err
	}
	c.adopt(sess)
	c.emit(EventSignedIn, sess)
	return sess, nil
}

// CurrentSession devuelve la sesión vigente, renovándola si el token expira
// dentro del margen. (nil, nil) significa que no hay sesión.
func (c *Client) CurrentSession(ctx context.Context) (*entity.ProviderSession, error) {
	c.mu.Lock()
	sess := c.session
	if sess == nil && c.store != nil {
		sess = c.loadLocked()
		c.session = sess
	}
	c.mu.Unlock()

	if sess == nil {
		return nil, nil
	}
	if pkgjwt.ExpiresWithin(sess.AccessToken, refreshMargin) {
		refreshed, err := c.Refresh(ctx)
		if err != nil {
			return nil, fmt.Errorf("identity: renovar sesión caducada: %w", err)
		}
		return refreshed, nil
	}
	return sess, nil
}

// OnAuthStateChange registra un observador de eventos de autenticación
// (SIGNED_IN, SIGNED_OUT, TOKEN_REFRESHED). Devuelve la cancelación.
func (c *Client) OnAuthStateChange(fn func(event string, s *entity.ProviderSession)) (cancel func()) {
	c.lmu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	c.lmu.Unlock()
	return func() {
		c.lmu.Lock()
		delete(c.listeners, id)
		c.lmu.Unlock()
	}
}

// ── Internos ──────────────────────────────────────────────────────────────────

// tokenGrant llama a POST /token?grant_type=<grant> y materializa la sesión.
func (c *Client) tokenGrant(ctx context.Context, grant string, body map[string]string) (*entity.ProviderSession, error) {
	var out tokenResponse
	q := url.Values{"grant_type": {grant}}
	if err := c.call(ctx, http.MethodPost, "/token", q, body, "", &out); err != nil {
		return nil, err
	}
	if out.AccessToken == "" {
		return nil, fmt.Errorf("identity: %w: respuesta sin access token", domain.ErrProviderUnavailable)
	}
	return toSession(out), nil
}

// call ejecuta una llamada JSON al proveedor. out == nil descarta el cuerpo.
func (c *Client) call(ctx context.Context, method, path string, query url.Values, body any, bearer string, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("identity: serializar request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("identity: crear HTTP request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("identity: timeout o cancelación: %w", ctx.Err())
		}
		return fmt.Errorf("identity: %w: %v", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return fmt.Errorf("identity: leer respuesta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var perr providerError
		_ = json.Unmarshal(rawBody, &perr)
		if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized {
			return fmt.Errorf("%w: %s", domain.ErrInvalidCredentials, perr.message())
		}
		return fmt.Errorf("identity: %s", perr.message())
	}

	if out != nil && len(rawBody) > 0 {
		if err := json.Unmarshal(rawBody, out); err != nil {
			return fmt.Errorf("identity: deserializar respuesta: %w", err)
		}
	}
	return nil
}

// adopt fija la sesión en memoria y la persiste si hay Store.
func (c *Client) adopt(sess *entity.ProviderSession) {
	c.mu.Lock()
	c.session = sess
	if c.store != nil {
		rec := &storage.SessionRecord{
			AccessToken:  sess.AccessToken,
			RefreshToken: sess.RefreshToken,
			ExpiresAt:    sess.ExpiresAt,
			UserID:       sess.UserID,
			Email:        sess.Email,
		}
		if err := c.store.Save(rec); err != nil {
			c.log.Warn().Err(err).Msg("persistir sesión")
		}
	}
	c.mu.Unlock()
}

// loadLocked recupera la sesión persistida; se llama con c.mu tomado.
func (c *Client) loadLocked() *entity.ProviderSession {
	rec, err := c.store.Load()
	if err != nil || rec == nil {
		return nil
	}
	return &entity.ProviderSession{
		AccessToken:  rec.AccessToken,
		RefreshToken: rec.RefreshToken,
		ExpiresAt:    rec.ExpiresAt,
		UserID:       rec.UserID,
		Email:        rec.Email,
	}
}

func (c *Client) emit(event string, sess *entity.ProviderSession) {
	c.lmu.Lock()
	fns := make([]func(string, *entity.ProviderSession), 0, len(c.listeners))
	for _, fn := range c.listeners {
		fns = append(fns, fn)
	}
	c.lmu.Unlock()
	for _, fn := range fns {
		fn(event, sess)
	}
}

func toSession(out tokenResponse) *entity.ProviderSession {
	sess := &entity.ProviderSession{
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
		TokenType:    out.TokenType,
		ExpiresIn:    out.ExpiresIn,
		ExpiresAt:    time.Now().Add(time.Duration(out.ExpiresIn) * time.Second),
	}
	if out.User != nil {
		sess.UserID = out.User.ID
		sess.Email = out.User.Email
	}
	if sess.UserID == "" {
		sess.UserID = pkgjwt.Subject(out.AccessToken)
	}
	return sess
}
