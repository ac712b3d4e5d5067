package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/tu-usuario/control-horario/internal/application/dto"
	"github.com/tu-usuario/control-horario/internal/infrastructure/gateway"
)

// TimeEntryTypes devuelve el catálogo de tipos de fichaje.
func (c *Client) TimeEntryTypes(ctx context.Context) ([]dto.TimeEntryType, error) {
	var out []dto.TimeEntryType
	if err := c.do(ctx, gateway.Request{Method: http.MethodGet, Path: "/time-entries/types"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TimeEntries lista fichajes en un rango.
func (c *Client) TimeEntries(ctx context.Context, f dto.TimeEntryFilters) ([]dto.TimeEntry, error) {
	q := url.Values{}
	if f.From != "" {
		q.Set("from", f.From)
	}
	if f.To != "" {
		q.Set("to", f.To)
	}
	if f.UserID != "" {
		q.Set("userId", f.UserID)
	}
	var out []dto.TimeEntry
	if err := c.do(ctx, gateway.Request{Method: http.MethodGet, Path: "/time-entries", Query: q}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTimeEntry da de alta un fichaje manual.
func (c *Client) CreateTimeEntry(ctx context.Context, req dto.CreateTimeEntryRequest) (*dto.TimeEntry, error) {
	var out dto.TimeEntry
	if err := c.do(ctx, gateway.Request{Method: http.MethodPost, Path: "/time-entries", Body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTimeEntry edita un fichaje.
func (c *Client) UpdateTimeEntry(ctx context.Context, id string, req dto.UpdateTimeEntryRequest) (*dto.TimeEntry, error) {
	var out dto.TimeEntry
	err := c.do(ctx, gateway.Request{
		Method: http.MethodPatch,
		Path:   "/time-entries/" + url.PathEscape(id),
		Body:   req,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTimeEntry elimina un fichaje.
func (c *Client) DeleteTimeEntry(ctx context.Context, id string) error {
	return c.do(ctx, gateway.Request{
		Method: http.MethodDelete,
		Path:   "/time-entries/" + url.PathEscape(id),
	}, nil)
}

// ActiveTimer devuelve el fichaje en curso, o nil si no hay ninguno.
func (c *Client) ActiveTimer(ctx context.Context) (*dto.ActiveTimer, error) {
	var out *dto.ActiveTimer
	if err := c.do(ctx, gateway.Request{Method: http.MethodGet, Path: "/time-entries/active"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// StartTimer inicia un fichaje en curso.
func (c *Client) StartTimer(ctx context.Context, req dto.StartTimerRequest) (*dto.ActiveTimer, error) {
	var out dto.ActiveTimer
	if err := c.do(ctx, gateway.Request{Method: http.MethodPost, Path: "/time-entries/start", Body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// StopTimer cierra el fichaje en curso y devuelve el fichaje resultante.
func (c *Client) StopTimer(ctx context.Context) (*dto.TimeEntry, error) {
	var out dto.TimeEntry
	if err := c.do(ctx, gateway.Request{Method: http.MethodPost, Path: "/time-entries/stop"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
