package rest

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tu-usuario/control-horario/internal/application/dto"
	"github.com/tu-usuario/control-horario/internal/infrastructure/gateway"
)

// AbsenceTypes devuelve el catálogo de tipos de ausencia con sus etiquetas.
func (c *Client) AbsenceTypes(ctx context.Context) ([]dto.AbsenceTypeOption, error) {
	var out []dto.AbsenceTypeOption
	if err := c.do(ctx, gateway.Request{Method: http.MethodGet, Path: "/absences/types"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Absences lista ausencias con filtros opcionales.
func (c *Client) Absences(ctx context.Context, f dto.AbsenceFilters) ([]dto.AbsenceResponse, error) {
	q := url.Values{}
	if f.UserID != "" {
		q.Set("userId", f.UserID)
	}
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	if f.Year != 0 {
		q.Set("year", strconv.Itoa(f.Year))
	}
	var out []dto.AbsenceResponse
	if err := c.do(ctx, gateway.Request{Method: http.MethodGet, Path: "/absences", Query: q}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateAbsence da de alta una ausencia propia.
func (c *Client) CreateAbsence(ctx context.Context, req dto.CreateAbsenceRequest) (*dto.AbsenceResponse, error) {
	var out dto.AbsenceResponse
	if err := c.do(ctx, gateway.Request{Method: http.MethodPost, Path: "/absences", Body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReviewAbsence aprueba o rechaza una ausencia.
func (c *Client) ReviewAbsence(ctx context.Context, id string, req dto.ReviewAbsenceRequest) (*dto.AbsenceResponse, error) {
	var out dto.AbsenceResponse
	err := c.do(ctx, gateway.Request{
		Method: http.MethodPatch,
		Path:   "/absences/" + url.PathEscape(id) + "/review",
		Body:   req,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelAbsence cancela una ausencia propia pendiente.
func (c *Client) CancelAbsence(ctx context.Context, id string) error {
	return c.do(ctx, gateway.Request{
		Method: http.MethodPatch,
		Path:   "/absences/" + url.PathEscape(id) + "/cancel",
	}, nil)
}

// AbsenceStats devuelve los contadores por estado.
func (c *Client) AbsenceStats(ctx context.Context, year int) (*dto.AbsenceStats, error) {
	q := url.Values{}
	if year != 0 {
		q.Set("year", strconv.Itoa(year))
	}
	var out dto.AbsenceStats
	if err := c.do(ctx, gateway.Request{Method: http.MethodGet, Path: "/absences/stats", Query: q}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
