package dto

// ErrorResponse cuerpo de error que devuelve el backend en respuestas no-2xx.
// Por convención solo message está garantizado; code aparece en algunos
// endpoints.
type ErrorResponse struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// Brief referencia mínima a un recurso anidado (usuario, proyecto, empresa).
type Brief struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UserBrief referencia mínima a un usuario con email.
type UserBrief struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// ProjectBrief referencia mínima a un proyecto.
type ProjectBrief struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
}
