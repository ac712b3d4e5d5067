package dto

import "github.com/tu-usuario/control-horario/internal/domain/entity"

// Invitation invitación emitida por un administrador de la empresa.
type Invitation struct {
	ID        string              `json:"id"`
	Email     string              `json:"email"`
	Role      entity.UserRole     `json:"role"`
	Relation  entity.RelationType `json:"relation"`
	Token     string              `json:"token"`
	ExpiresAt string              `json:"expiresAt"`
	CreatedAt string              `json:"createdAt"`
}

// CreateInvitationRequest alta de invitación.
type CreateInvitationRequest struct {
	Email    string              `json:"email"`
	Role     entity.UserRole     `json:"role"`
	Relation entity.RelationType `json:"relation,omitempty"`
}

// AdminJoinRequest solicitud de unión vista por un administrador.
type AdminJoinRequest struct {
	ID         string                   `json:"id"`
	Email      string                   `json:"email"`
	Name       string                   `json:"name"`
	Status     entity.JoinRequestStatus `json:"status"`
	CreatedAt  string                   `json:"createdAt"`
	ReviewedAt string                   `json:"reviewedAt,omitempty"`
}

// ApproveJoinRequestRequest aprobación con rol y relación asignados.
type ApproveJoinRequestRequest struct {
	Role     entity.UserRole     `json:"role"`
	Relation entity.RelationType `json:"relation,omitempty"`
}

// RejectJoinRequestRequest rechazo con motivo opcional.
type RejectJoinRequestRequest struct {
	Reason string `json:"reason,omitempty"`
}
