package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/tu-usuario/control-horario/internal/application/dto"
	"github.com/tu-usuario/control-horario/internal/infrastructure/gateway"
)

// Projects lista los proyectos de la empresa activa.
func (c *Client) Projects(ctx context.Context) ([]dto.Project, error) {
	var out []dto.Project
	if err := c.do(ctx, gateway.Request{Method: http.MethodGet, Path: "/projects"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Project devuelve un proyecto por id.
func (c *Client) Project(ctx context.Context, id string) (*dto.Project, error) {
	var out dto.Project
	if err := c.do(ctx, gateway.Request{Method: http.MethodGet, Path: "/projects/" + url.PathEscape(id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProject da de alta un proyecto.
func (c *Client) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*dto.Project, error) {
	var out dto.Project
	if err := c.do(ctx, gateway.Request{Method: http.MethodPost, Path: "/projects", Body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProject edita un proyecto.
func (c *Client) UpdateProject(ctx context.Context, id string, req dto.UpdateProjectRequest) (*dto.Project, error) {
	var out dto.Project
	err := c.do(ctx, gateway.Request{
		Method: http.MethodPatch,
		Path:   "/projects/" + url.PathEscape(id),
		Body:   req,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProject elimina un proyecto.
func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.do(ctx, gateway.Request{
		Method: http.MethodDelete,
		Path:   "/projects/" + url.PathEscape(id),
	}, nil)
}

// ProjectCategories devuelve las categorías de proyecto.
func (c *Client) ProjectCategories(ctx context.Context) ([]dto.ProjectCategory, error) {
	var out []dto.ProjectCategory
	if err := c.do(ctx, gateway.Request{Method: http.MethodGet, Path: "/project-categories"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}
