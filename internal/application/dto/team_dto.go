package dto

// TeamLeader responsable de un equipo.
type TeamLeader struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Team un equipo de la empresa activa.
type Team struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Description  string      `json:"description,omitempty"`
	Leader       *TeamLeader `json:"leader,omitempty"`
	MembersCount int         `json:"membersCount"`
	CreatedAt    string      `json:"createdAt"`
}

// TeamMember miembro de un equipo.
type TeamMember struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// TeamDetail equipo con su lista de miembros.
type TeamDetail struct {
	Team
	Members []TeamMember `json:"members"`
}

// CreateTeamRequest alta de equipo.
type CreateTeamRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	LeaderID    string `json:"leaderId,omitempty"`
}

// UpdateTeamRequest edición de equipo.
type UpdateTeamRequest struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	LeaderID    string `json:"leaderId,omitempty"`
}
