package rest

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tu-usuario/control-horario/internal/application/dto"
	"github.com/tu-usuario/control-horario/internal/infrastructure/gateway"
)

// MonthlyCosts devuelve el resumen de coste laboral de un mes para la empresa
// activa (solo roles con acceso a analíticas).
func (c *Client) MonthlyCosts(ctx context.Context, year, month int) (*dto.MonthlyCostResponse, error) {
	var out dto.MonthlyCostResponse
	err := c.do(ctx, gateway.Request{
		Method: http.MethodGet,
		Path:   "/costs/monthly",
		Query: url.Values{
			"year":  {strconv.Itoa(year)},
			"month": {strconv.Itoa(month)},
		},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CloseMonth cierra contablemente un mes: tras el cierre el backend rechaza
// modificaciones de fichajes de ese período.
func (c *Client) CloseMonth(ctx context.Context, year, month int) error {
	body := map[string]int{"year": year, "month": month}
	return c.do(ctx, gateway.Request{Method: http.MethodPost, Path: "/costs/close-month", Body: body}, nil)
}
