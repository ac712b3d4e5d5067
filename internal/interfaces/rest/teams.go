package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/tu-usuario/control-horario/internal/application/dto"
	"github.com/tu-usuario/control-horario/internal/infrastructure/gateway"
)

// Teams lista los equipos de la empresa activa.
func (c *Client) Teams(ctx context.Context) ([]dto.Team, error) {
	var out []dto.Team
	if err := c.do(ctx, gateway.Request{Method: http.MethodGet, Path: "/teams"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Team devuelve un equipo con sus miembros.
func (c *Client) Team(ctx context.Context, id string) (*dto.TeamDetail, error) {
	var out dto.TeamDetail
	if err := c.do(ctx, gateway.Request{Method: http.MethodGet, Path: "/teams/" + url.PathEscape(id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTeam da de alta un equipo.
func (c *Client) CreateTeam(ctx context.Context, req dto.CreateTeamRequest) (*dto.Team, error) {
	var out dto.Team
	if err := c.do(ctx, gateway.Request{Method: http.MethodPost, Path: "/teams", Body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTeam edita un equipo.
func (c *Client) UpdateTeam(ctx context.Context, id string, req dto.UpdateTeamRequest) (*dto.Team, error) {
	var out dto.Team
	err := c.do(ctx, gateway.Request{
		Method: http.MethodPatch,
		Path:   "/teams/" + url.PathEscape(id),
		Body:   req,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMyTeam edita el equipo del que el llamador es responsable.
func (c *Client) UpdateMyTeam(ctx context.Context, req dto.UpdateTeamRequest) (*dto.Team, error) {
	var out dto.Team
	if err := c.do(ctx, gateway.Request{Method: http.MethodPatch, Path: "/teams/my-team", Body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTeam elimina un equipo.
func (c *Client) DeleteTeam(ctx context.Context, id string) error {
	return c.do(ctx, gateway.Request{
		Method: http.MethodDelete,
		Path:   "/teams/" + url.PathEscape(id),
	}, nil)
}

// AddTeamMember añade un usuario a un equipo.
func (c *Client) AddTeamMember(ctx context.Context, teamID, userID string) error {
	return c.do(ctx, gateway.Request{
		Method: http.MethodPost,
		Path:   "/teams/" + url.PathEscape(teamID) + "/members/" + url.PathEscape(userID),
	}, nil)
}

// RemoveTeamMember quita un usuario de un equipo.
func (c *Client) RemoveTeamMember(ctx context.Context, teamID, userID string) error {
	return c.do(ctx, gateway.Request{
		Method: http.MethodDelete,
		Path:   "/teams/" + url.PathEscape(teamID) + "/members/" + url.PathEscape(userID),
	}, nil)
}

// AddMyTeamMember añade un usuario al equipo del llamador (TEAM_LEADER).
func (c *Client) AddMyTeamMember(ctx context.Context, userID string) error {
	return c.do(ctx, gateway.Request{
		Method: http.MethodPost,
		Path:   "/teams/my-team/members/" + url.PathEscape(userID),
	}, nil)
}

// RemoveMyTeamMember quita un usuario del equipo del llamador.
func (c *Client) RemoveMyTeamMember(ctx context.Context, userID string) error {
	return c.do(ctx, gateway.Request{
		Method: http.MethodDelete,
		Path:   "/teams/my-team/members/" + url.PathEscape(userID),
	}, nil)
}
