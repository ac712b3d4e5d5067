// Package permissions concentra las reglas de autorización de la UI por rol.
// Son predicados puros: el backend vuelve a validar cada operación; aquí solo
// se decide qué acciones se ofrecen al usuario.
package permissions

import "github.com/tu-usuario/control-horario/internal/domain/entity"

// ProjectScope datos mínimos de un proyecto para decidir permisos.
type ProjectScope struct {
	TeamID string // vacío si el proyecto no pertenece a ningún equipo
}

// UserScope datos mínimos de un usuario objetivo para decidir permisos.
type UserScope struct {
	Role   entity.UserRole
	TeamID string
}

// CanEditProject OWNER/ADMIN editan cualquier proyecto; TEAM_LEADER solo los
// de su propio equipo.
func CanEditProject(role entity.UserRole, userTeamID string, project ProjectScope) bool {
	if role == entity.RoleOwner || role == entity.RoleAdmin {
		return true
	}
	if role == entity.RoleTeamLeader {
		return project.TeamID != "" && project.TeamID == userTeamID
	}
	return false
}

// CanDeleteProject mismas reglas que la edición.
func CanDeleteProject(role entity.UserRole, userTeamID string, project ProjectScope) bool {
	return CanEditProject(role, userTeamID, project)
}

// CanEditUser OWNER edita a cualquiera; ADMIN a todos menos al OWNER;
// TEAM_LEADER solo a miembros de su equipo que no sean OWNER ni ADMIN.
func CanEditUser(role entity.UserRole, userTeamID string, target UserScope) bool {
	switch role {
	case entity.RoleOwner:
		return true
	case entity.RoleAdmin:
		return target.Role != entity.RoleOwner
	case entity.RoleTeamLeader:
		return target.TeamID != "" && target.TeamID == userTeamID &&
			target.Role != entity.RoleOwner && target.Role != entity.RoleAdmin
	}
	return false
}

// CanDeleteUser nadie borra al OWNER; TEAM_LEADER no borra usuarios (solo los
// quita de su equipo).
func CanDeleteUser(role entity.UserRole, target UserScope) bool {
	if target.Role == entity.RoleOwner {
		return false
	}
	return role == entity.RoleOwner || role == entity.RoleAdmin
}

// CanManageTeams crear y borrar equipos queda reservado a OWNER/ADMIN.
func CanManageTeams(role entity.UserRole) bool {
	return role == entity.RoleOwner || role == entity.RoleAdmin
}

// CanEditTeam OWNER/ADMIN editan cualquier equipo; TEAM_LEADER solo el suyo.
func CanEditTeam(role entity.UserRole, userTeamID, teamID string) bool {
	if role == entity.RoleOwner || role == entity.RoleAdmin {
		return true
	}
	return role == entity.RoleTeamLeader && teamID != "" && teamID == userTeamID
}

// CanAccessAnalytics OWNER, ADMIN y TEAM_LEADER acceden a analíticas.
func CanAccessAnalytics(role entity.UserRole) bool {
	return role == entity.RoleOwner || role == entity.RoleAdmin || role == entity.RoleTeamLeader
}

// CanAccessAdmin acceso al panel de administración.
func CanAccessAdmin(role entity.UserRole) bool {
	return CanAccessAnalytics(role)
}

// CanSendInvitations solo OWNER/ADMIN invitan.
func CanSendInvitations(role entity.UserRole) bool {
	return role == entity.RoleOwner || role == entity.RoleAdmin
}

// IsFullAdmin OWNER o ADMIN.
func IsFullAdmin(role entity.UserRole) bool {
	return role == entity.RoleOwner || role == entity.RoleAdmin
}
