package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotAuthenticated    = errors.New("no estás autenticado")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrSessionExpired      = errors.New("la sesión ha expirado")
	ErrProfileNotFound     = errors.New("perfil no encontrado")
	ErrNoActiveProfile     = errors.New("no hay perfil activo seleccionado")
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrInvalidCredentials  = errors.New("credenciales inválidas")
	ErrProviderUnavailable = errors.New("proveedor de identidad no disponible")
)

// GenericMessage mensaje por defecto cuando el backend no envía detalle.
// Nunca se exponen errores de transporte crudos a la UI.
const GenericMessage = "Error inesperado"
