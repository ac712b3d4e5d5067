package dto

// CreateCompanyRequest alta de empresa durante el onboarding; el usuario
// actual queda como OWNER.
type CreateCompanyRequest struct {
	CompanyName string `json:"companyName"`
	CIF         string `json:"cif,omitempty"`
	UserName    string `json:"userName"`
}

// AcceptInvitationRequest aceptación de una invitación por su token.
type AcceptInvitationRequest struct {
	UserName string `json:"userName"`
}

// RequestJoinRequest solicitud de unión a una empresa existente.
type RequestJoinRequest struct {
	CompanyID string `json:"companyId"`
	Name      string `json:"name"`
}

// CompanySearchResult resultado público de la búsqueda de empresas.
type CompanySearchResult struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	InviteCode string `json:"inviteCode,omitempty"`
}
