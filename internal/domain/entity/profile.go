package entity

// UserRole rol de un perfil dentro de su empresa.
type UserRole string

const (
	RoleOwner      UserRole = "OWNER"
	RoleAdmin      UserRole = "ADMIN"
	RoleTeamLeader UserRole = "TEAM_LEADER"
	RoleWorker     UserRole = "WORKER"
	RoleAuditor    UserRole = "AUDITOR"
)

// RelationType tipo de vinculación del perfil con la empresa.
type RelationType string

const (
	RelationEmployee   RelationType = "EMPLOYEE"
	RelationContractor RelationType = "CONTRACTOR"
	RelationGuest      RelationType = "GUEST"
)

// Profile una membresía de empresa de una identidad autenticada.
// Una misma identidad puede tener varios perfiles (multi-tenant); exactamente
// uno está activo a la vez. Los perfiles se crean en el servidor (al aceptar
// una invitación o crear una empresa) y nunca se construyen localmente salvo
// a partir de respuestas del backend.
type Profile struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Role        UserRole     `json:"role"`
	Relation    RelationType `json:"relation"`
	CompanyID   string       `json:"companyId"`
	CompanyName string       `json:"companyName"`
	CompanyLogo string       `json:"companyLogo,omitempty"`
}

// ProfileList respuesta del backend al listar perfiles: el conjunto completo
// más el id del perfil que el servidor considera actual (puede estar vacío).
type ProfileList struct {
	Profiles  []Profile `json:"profiles"`
	CurrentID string    `json:"currentProfileId,omitempty"`
}

// Find devuelve el perfil con el id dado, o nil si no pertenece al conjunto.
func (l ProfileList) Find(id string) *Profile {
	if id == "" {
		return nil
	}
	for i := range l.Profiles {
		if l.Profiles[i].ID == id {
			return &l.Profiles[i]
		}
	}
	return nil
}
