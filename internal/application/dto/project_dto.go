package dto

// Project un proyecto de la empresa activa.
type Project struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Code      string `json:"code"`
	TeamID    string `json:"teamId,omitempty"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt"`
}

// CreateProjectRequest alta de proyecto.
type CreateProjectRequest struct {
	Name   string `json:"name"`
	Code   string `json:"code"`
	TeamID string `json:"teamId,omitempty"`
}

// UpdateProjectRequest edición de proyecto.
type UpdateProjectRequest struct {
	Name     string `json:"name,omitempty"`
	Code     string `json:"code,omitempty"`
	TeamID   string `json:"teamId,omitempty"`
	IsActive *bool  `json:"isActive,omitempty"`
}

// ProjectCategory categoría de proyecto.
type ProjectCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
