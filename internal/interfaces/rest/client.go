// Package rest contiene los wrappers tipados de los recursos del backend.
// Cada wrapper delega en la pasarela autenticada y decodifica la respuesta;
// toda la extracción de errores pasa por un único punto para que la
// convención {message} no se duplique por endpoint.
package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tu-usuario/control-horario/internal/application/dto"
	"github.com/tu-usuario/control-horario/internal/domain"
	"github.com/tu-usuario/control-horario/internal/infrastructure/gateway"
)

// maxBodySize cota de lectura de cuerpos de respuesta.
const maxBodySize = 4 << 20

// Client acceso tipado al backend a través de la pasarela.
type Client struct {
	gw *gateway.Gateway
}

// NewClient construye el cliente.
func NewClient(gw *gateway.Gateway) *Client {
	return &Client{gw: gw}
}

// APIError error de dominio devuelto por el backend en una respuesta no-2xx.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

// Unwrap asocia los estados HTTP a los centinelas de dominio para que los
// llamadores decidan con errors.Is sin mirar códigos.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return domain.ErrSessionExpired
	case http.StatusForbidden:
		return domain.ErrUnauthorized
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusBadRequest:
		return domain.ErrInvalidInput
	}
	return nil
}

// do ejecuta la petición y decodifica el cuerpo en out (nil lo descarta).
func (c *Client) do(ctx context.Context, r gateway.Request, out any) error {
	resp, err := c.gw.Do(ctx, r)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("rest: leer respuesta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: extractMessage(raw)}
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("rest: deserializar respuesta: %w", err)
		}
	}
	return nil
}

// extractMessage aplica la cadena de extracción de la convención de error del
// backend: message del JSON, si no el texto crudo, si no el mensaje genérico.
// Un cuerpo malformado nunca se propaga como error secundario.
func extractMessage(raw []byte) string {
	var body dto.ErrorResponse
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		return body.Message
	}
	if text := strings.TrimSpace(string(raw)); text != "" {
		return text
	}
	return domain.GenericMessage
}
