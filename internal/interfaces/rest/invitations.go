package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/tu-usuario/control-horario/internal/application/dto"
	"github.com/tu-usuario/control-horario/internal/infrastructure/gateway"
)

// Invitations lista las invitaciones emitidas por la empresa activa.
func (c *Client) Invitations(ctx context.Context) ([]dto.Invitation, error) {
	var out []dto.Invitation
	if err := c.do(ctx, gateway.Request{Method: http.MethodGet, Path: "/invitations"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateInvitation emite una invitación nueva.
func (c *Client) CreateInvitation(ctx context.Context, req dto.CreateInvitationRequest) (*dto.Invitation, error) {
	var out dto.Invitation
	if err := c.do(ctx, gateway.Request{Method: http.MethodPost, Path: "/invitations", Body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteInvitation revoca una invitación pendiente.
func (c *Client) DeleteInvitation(ctx context.Context, id string) error {
	return c.do(ctx, gateway.Request{
		Method: http.MethodDelete,
		Path:   "/invitations/" + url.PathEscape(id),
	}, nil)
}

// JoinRequests lista las solicitudes de unión recibidas (vista admin).
func (c *Client) JoinRequests(ctx context.Context) ([]dto.AdminJoinRequest, error) {
	var out []dto.AdminJoinRequest
	if err := c.do(ctx, gateway.Request{Method: http.MethodGet, Path: "/join-requests"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ApproveJoinRequest aprueba una solicitud asignando rol y relación.
func (c *Client) ApproveJoinRequest(ctx context.Context, id string, req dto.ApproveJoinRequestRequest) error {
	return c.do(ctx, gateway.Request{
		Method: http.MethodPost,
		Path:   "/join-requests/" + url.PathEscape(id) + "/approve",
		Body:   req,
	}, nil)
}

// RejectJoinRequest rechaza una solicitud.
func (c *Client) RejectJoinRequest(ctx context.Context, id string, req dto.RejectJoinRequestRequest) error {
	return c.do(ctx, gateway.Request{
		Method: http.MethodPost,
		Path:   "/join-requests/" + url.PathEscape(id) + "/reject",
		Body:   req,
	}, nil)
}
