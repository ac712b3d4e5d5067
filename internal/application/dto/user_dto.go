package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/control-horario/internal/domain/entity"
)

// User un usuario de la empresa activa, con sus datos de coste.
type User struct {
	ID         string              `json:"id"`
	AuthID     string              `json:"authId"`
	Name       string              `json:"name"`
	Email      string              `json:"email"`
	Phone      string              `json:"phone,omitempty"`
	AvatarURL  string              `json:"avatarUrl,omitempty"`
	Salary     *decimal.Decimal    `json:"salary,omitempty"`
	HourlyCost decimal.Decimal     `json:"hourlyCost"`
	IsActive   bool                `json:"isActive"`
	Relation   entity.RelationType `json:"relation"`
	Role       entity.UserRole     `json:"role"`
	NIF        string              `json:"nif,omitempty"`
	NAF        string              `json:"naf,omitempty"`
	Team       *Brief              `json:"team,omitempty"`
	CreatedAt  string              `json:"createdAt"`
	UpdatedAt  string              `json:"updatedAt,omitempty"`
}

// UpdateUserRequest edición de un usuario.
type UpdateUserRequest struct {
	Name       string               `json:"name"`
	Email      string               `json:"email,omitempty"`
	Phone      string               `json:"phone,omitempty"`
	Salary     *decimal.Decimal     `json:"salary,omitempty"`
	HourlyCost *decimal.Decimal     `json:"hourlyCost,omitempty"`
	IsActive   *bool                `json:"isActive,omitempty"`
	Role       entity.UserRole      `json:"role,omitempty"`
	Relation   entity.RelationType  `json:"relation,omitempty"`
	TeamID     *string              `json:"teamId,omitempty"`
}
