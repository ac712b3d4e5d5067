package rest

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tu-usuario/control-horario/internal/application/dto"
	"github.com/tu-usuario/control-horario/internal/infrastructure/gateway"
)

// MyCalendarMonth devuelve el calendario mensual del usuario actual.
func (c *Client) MyCalendarMonth(ctx context.Context, year, month int) (*dto.CalendarMonthResponse, error) {
	var out dto.CalendarMonthResponse
	err := c.do(ctx, gateway.Request{
		Method: http.MethodGet,
		Path:   "/calendar/me",
		Query:  monthQuery(year, month),
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CalendarMonth devuelve el calendario mensual de otro usuario (requiere
// permisos de administración o liderazgo de equipo).
func (c *Client) CalendarMonth(ctx context.Context, userID string, year, month int) (*dto.CalendarMonthResponse, error) {
	var out dto.CalendarMonthResponse
	err := c.do(ctx, gateway.Request{
		Method: http.MethodGet,
		Path:   "/calendar/" + url.PathEscape(userID),
		Query:  monthQuery(year, month),
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func monthQuery(year, month int) url.Values {
	return url.Values{
		"year":  {strconv.Itoa(year)},
		"month": {strconv.Itoa(month)},
	}
}
