package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/tu-usuario/control-horario/internal/application/dto"
	"github.com/tu-usuario/control-horario/internal/application/ports"
	"github.com/tu-usuario/control-horario/internal/domain/entity"
	"github.com/tu-usuario/control-horario/internal/infrastructure/gateway"
)

// Verificación en tiempo de compilación del puerto de resolución.
var _ ports.OnboardingAPI = (*Client)(nil)

// CheckStatus consulta el estado de onboarding de la identidad actual.
func (c *Client) CheckStatus(ctx context.Context, tokenOverride string) (*entity.OnboardingCheck, error) {
	var out entity.OnboardingCheck
	err := c.do(ctx, gateway.Request{
		Method:        http.MethodPost,
		Path:          "/onboarding/check",
		TokenOverride: tokenOverride,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Profiles lista los perfiles de la identidad y el sugerido como actual.
func (c *Client) Profiles(ctx context.Context) (*entity.ProfileList, error) {
	var out entity.ProfileList
	if err := c.do(ctx, gateway.Request{Method: http.MethodGet, Path: "/profiles"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SwitchProfile activa otro perfil; el servidor valida la pertenencia.
func (c *Client) SwitchProfile(ctx context.Context, profileID string) (*entity.Profile, error) {
	var out entity.Profile
	err := c.do(ctx, gateway.Request{
		Method: http.MethodPost,
		Path:   "/profiles/" + url.PathEscape(profileID) + "/activate",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCompany crea una empresa y asigna al usuario actual como OWNER.
func (c *Client) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest) (*entity.OnboardingCheck, error) {
	var out entity.OnboardingCheck
	err := c.do(ctx, gateway.Request{
		Method: http.MethodPost,
		Path:   "/onboarding/create-company",
		Body:   req,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// AcceptInvitation acepta una invitación por su token.
func (c *Client) AcceptInvitation(ctx context.Context, token, userName string) (*entity.OnboardingCheck, error) {
	var out entity.OnboardingCheck
	err := c.do(ctx, gateway.Request{
		Method: http.MethodPost,
		Path:   "/onboarding/accept-invitation/" + url.PathEscape(token),
		Body:   dto.AcceptInvitationRequest{UserName: userName},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RequestJoin solicita unirse a una empresa existente.
func (c *Client) RequestJoin(ctx context.Context, req dto.RequestJoinRequest) (*entity.JoinRequest, error) {
	var out entity.JoinRequest
	err := c.do(ctx, gateway.Request{
		Method: http.MethodPost,
		Path:   "/onboarding/request-join",
		Body:   req,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// MyRequests lista las solicitudes de unión pendientes del usuario.
func (c *Client) MyRequests(ctx context.Context) ([]entity.JoinRequest, error) {
	var out []entity.JoinRequest
	if err := c.do(ctx, gateway.Request{Method: http.MethodGet, Path: "/onboarding/my-requests"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CancelJoinRequest cancela una solicitud de unión pendiente.
func (c *Client) CancelJoinRequest(ctx context.Context, requestID string) error {
	return c.do(ctx, gateway.Request{
		Method: http.MethodDelete,
		Path:   "/onboarding/my-requests/" + url.PathEscape(requestID),
	}, nil)
}

// SearchCompanies busca empresas por nombre (información pública limitada).
func (c *Client) SearchCompanies(ctx context.Context, query string) ([]dto.CompanySearchResult, error) {
	var out []dto.CompanySearchResult
	err := c.do(ctx, gateway.Request{
		Method: http.MethodGet,
		Path:   "/companies/search",
		Query:  url.Values{"q": {query}},
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CompanyByCode devuelve una empresa por su código de invitación.
func (c *Client) CompanyByCode(ctx context.Context, code string) (*dto.CompanySearchResult, error) {
	var out dto.CompanySearchResult
	err := c.do(ctx, gateway.Request{
		Method: http.MethodGet,
		Path:   "/companies/by-code/" + url.PathEscape(code),
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
