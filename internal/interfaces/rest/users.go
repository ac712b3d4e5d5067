package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/tu-usuario/control-horario/internal/application/dto"
	"github.com/tu-usuario/control-horario/internal/infrastructure/gateway"
)

// Users lista los usuarios de la empresa activa.
func (c *Client) Users(ctx context.Context) ([]dto.User, error) {
	var out []dto.User
	if err := c.do(ctx, gateway.Request{Method: http.MethodGet, Path: "/users"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateUser modifica un usuario.
func (c *Client) UpdateUser(ctx context.Context, id string, req dto.UpdateUserRequest) (*dto.User, error) {
	var out dto.User
	err := c.do(ctx, gateway.Request{
		Method: http.MethodPatch,
		Path:   "/users/" + url.PathEscape(id),
		Body:   req,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser elimina un usuario.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, gateway.Request{
		Method: http.MethodDelete,
		Path:   "/users/" + url.PathEscape(id),
	}, nil)
}
