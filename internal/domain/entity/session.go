package entity

import "time"

// OnboardingStatus estado grueso del camino de una identidad hasta ser
// miembro activo de una empresa.
type OnboardingStatus string

const (
	StatusUnresolved         OnboardingStatus = ""
	StatusActive             OnboardingStatus = "ACTIVE"
	StatusOnboardingRequired OnboardingStatus = "ONBOARDING_REQUIRED"
	StatusPendingApproval    OnboardingStatus = "PENDING_APPROVAL"
)

// AuthUser identidad autenticada una vez completado el onboarding.
type AuthUser struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	CompanyName string       `json:"companyName"`
	Role        UserRole     `json:"role"`
	Relation    RelationType `json:"relation"`
	CreatedAt   string       `json:"createdAt"`
}

// PendingInvitation invitación pendiente de aceptar durante el onboarding.
type PendingInvitation struct {
	ID          string   `json:"id"`
	CompanyID   string   `json:"companyId"`
	CompanyName string   `json:"companyName"`
	Email       string   `json:"email"`
	Role        UserRole `json:"role"`
	Token       string   `json:"token"`
	ExpiresAt   string   `json:"expiresAt"`
}

// JoinRequestStatus estado de una solicitud de unión a empresa.
type JoinRequestStatus string

const (
	JoinPending  JoinRequestStatus = "PENDING"
	JoinApproved JoinRequestStatus = "APPROVED"
	JoinRejected JoinRequestStatus = "REJECTED"
)

// JoinRequest solicitud del usuario para unirse a una empresa existente.
type JoinRequest struct {
	ID          string            `json:"id"`
	CompanyID   string            `json:"companyId"`
	CompanyName string            `json:"companyName"`
	Email       string            `json:"email"`
	Name        string            `json:"name"`
	Status      JoinRequestStatus `json:"status"`
	CreatedAt   string            `json:"createdAt"`
	ReviewedAt  string            `json:"reviewedAt,omitempty"`
}

// OnboardingCheck resultado del endpoint de comprobación de estado.
type OnboardingCheck struct {
	Status             OnboardingStatus    `json:"status"`
	User               *AuthUser           `json:"user,omitempty"`
	PendingInvitations []PendingInvitation `json:"pendingInvitations,omitempty"`
	Requests           []JoinRequest       `json:"requests,omitempty"`
}

// SessionState instantánea del estado de sesión de la aplicación.
// Invariantes: User != nil ⇔ Status == StatusActive; ActiveProfile, si no es
// nil, pertenece a Profiles.
type SessionState struct {
	User               *AuthUser
	IsInitializing     bool
	Error              string
	Status             OnboardingStatus
	PendingInvitations []PendingInvitation
	PendingRequests    []JoinRequest
	Profiles           []Profile
	ActiveProfile      *Profile
}

// ProviderSession sesión emitida por el proveedor de identidad externo.
type ProviderSession struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresIn    int       `json:"expires_in"`
	ExpiresAt    time.Time `json:"-"`
	UserID       string    `json:"-"`
	Email        string    `json:"-"`
}
