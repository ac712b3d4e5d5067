package identity

import (
	"context"
	"fmt"
	"net/url"

	"github.com/tu-usuario/control-horario/internal/domain"
	"github.com/tu-usuario/control-horario/internal/domain/entity"
)

// Tipos de callback que envía el proveedor en el parámetro type.
const (
	CallbackSignup   = "signup"
	CallbackRecovery = "recovery"
	CallbackInvite   = "invite"
)

// CallbackParams parámetros de una redirección del proveedor de identidad
// (confirmación de email, enlace de recuperación). Pueden llegar en la query
// (flujo PKCE: code) o en el fragmento (flujo implícito: tokens).
type CallbackParams struct {
	Code         string
	Type         string
	AccessToken  string
	RefreshToken string
}

// HasSession indica si la redirección trae tokens directamente.
func (p CallbackParams) HasSession() bool { return p.AccessToken != "" }

// IsEmpty indica que la URL no contenía ningún parámetro de auth.
func (p CallbackParams) IsEmpty() bool {
	return p.Code == "" && p.AccessToken == "" && p.RefreshToken == ""
}

// ParseCallback extrae los parámetros de auth de una URL de redirección,
// mirando tanto la query como el fragmento.
func ParseCallback(rawURL string) (CallbackParams, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return CallbackParams{}, fmt.Errorf("identity: URL de callback inválida: %w", err)
	}

	params := u.Query()
	if u.Fragment != "" {
		if frag, err := url.ParseQuery(u.Fragment); err == nil {
			for k, vs := range frag {
				for _, v := range vs {
					params.Add(k, v)
				}
			}
		}
	}

	return CallbackParams{
		Code:         params.Get("code"),
		Type:         params.Get("type"),
		AccessToken:  params.Get("access_token"),
		RefreshToken: params.Get("refresh_token"),
	}, nil
}

// AdoptCallback convierte los parámetros de una redirección en sesión local:
// con tokens los adopta directamente; con código PKCE lo canjea usando el
// verifier guardado por quien inició el flujo.
func (c *Client) AdoptCallback(ctx context.Context, params CallbackParams, verifier string) (*entity.ProviderSession, error) {
	switch {
	case params.HasSession():
		sess := &entity.ProviderSession{
			AccessToken:  params.AccessToken,
			RefreshToken: params.RefreshToken,
		}
		c.adopt(sess)
		c.emit(EventSignedIn, sess)
		return sess, nil
	case params.Code != "":
		return c.ExchangeCode(ctx, params.Code, verifier)
	}
	return nil, fmt.Errorf("identity: %w: callback sin código ni tokens", domain.ErrInvalidInput)
}
