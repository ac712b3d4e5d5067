package rest

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tu-usuario/control-horario/internal/application/dto"
	"github.com/tu-usuario/control-horario/internal/infrastructure/gateway"
)

// Holidays lista los festivos públicos de un año, opcionalmente filtrados por
// región.
func (c *Client) Holidays(ctx context.Context, year int, regionCode string) ([]dto.HolidayResponse, error) {
	q := url.Values{"year": {strconv.Itoa(year)}}
	if regionCode != "" {
		q.Set("region", regionCode)
	}
	var out []dto.HolidayResponse
	if err := c.do(ctx, gateway.Request{Method: http.MethodGet, Path: "/holidays", Query: q}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Regions lista las regiones con calendario de festivos propio.
func (c *Client) Regions(ctx context.Context) ([]dto.Region, error) {
	var out []dto.Region
	if err := c.do(ctx, gateway.Request{Method: http.MethodGet, Path: "/holidays/regions"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SyncHolidays sincroniza los festivos públicos del backend con la fuente
// externa para los años dados.
func (c *Client) SyncHolidays(ctx context.Context, years []int) (*dto.SyncHolidaysResponse, error) {
	var out dto.SyncHolidaysResponse
	body := map[string][]int{"years": years}
	if err := c.do(ctx, gateway.Request{Method: http.MethodPost, Path: "/holidays/sync", Body: body}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CompanyHolidays lista los festivos propios de la empresa.
func (c *Client) CompanyHolidays(ctx context.Context) ([]dto.CompanyHolidayResponse, error) {
	var out []dto.CompanyHolidayResponse
	if err := c.do(ctx, gateway.Request{Method: http.MethodGet, Path: "/holidays/company"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCompanyHoliday da de alta un festivo de empresa.
func (c *Client) CreateCompanyHoliday(ctx context.Context, req dto.CreateCompanyHolidayRequest) (*dto.CompanyHolidayResponse, error) {
	var out dto.CompanyHolidayResponse
	if err := c.do(ctx, gateway.Request{Method: http.MethodPost, Path: "/holidays/company", Body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCompanyHoliday elimina un festivo de empresa.
func (c *Client) DeleteCompanyHoliday(ctx context.Context, id string) error {
	return c.do(ctx, gateway.Request{
		Method: http.MethodDelete,
		Path:   "/holidays/company/" + url.PathEscape(id),
	}, nil)
}
