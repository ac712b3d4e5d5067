package permissions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/control-horario/internal/domain/entity"
	"github.com/tu-usuario/control-horario/internal/domain/permissions"
)

func TestCanEditProject(t *testing.T) {
	conEquipo := permissions.ProjectScope{TeamID: "t-1"}
	sinEquipo := permissions.ProjectScope{}

	cases := []struct {
		name    string
		role    entity.UserRole
		teamID  string
		project permissions.ProjectScope
		want    bool
	}{
		{"owner edita cualquiera", entity.RoleOwner, "", conEquipo, true},
		{"admin edita cualquiera", entity.RoleAdmin, "", sinEquipo, true},
		{"team leader edita los de su equipo", entity.RoleTeamLeader, "t-1", conEquipo, true},
		{"team leader no edita los de otro equipo", entity.RoleTeamLeader, "t-2", conEquipo, false},
		{"team leader no edita proyectos sin equipo", entity.RoleTeamLeader, "t-1", sinEquipo, false},
		{"worker no edita", entity.RoleWorker, "t-1", conEquipo, false},
		{"auditor no edita", entity.RoleAuditor, "t-1", conEquipo, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, permissions.CanEditProject(tc.role, tc.teamID, tc.project))
			assert.Equal(t, tc.want, permissions.CanDeleteProject(tc.role, tc.teamID, tc.project),
				"borrar sigue las mismas reglas que editar")
		})
	}
}

func TestCanEditUser(t *testing.T) {
	cases := []struct {
		name   string
		role   entity.UserRole
		teamID string
		target permissions.UserScope
		want   bool
	}{
		{"owner edita a cualquiera", entity.RoleOwner, "", permissions.UserScope{Role: entity.RoleAdmin}, true},
		{"admin no edita al owner", entity.RoleAdmin, "", permissions.UserScope{Role: entity.RoleOwner}, false},
		{"admin edita a un worker", entity.RoleAdmin, "", permissions.UserScope{Role: entity.RoleWorker}, true},
		{"team leader edita a su worker", entity.RoleTeamLeader, "t-1", permissions.UserScope{Role: entity.RoleWorker, TeamID: "t-1"}, true},
		{"team leader no edita fuera de su equipo", entity.RoleTeamLeader, "t-1", permissions.UserScope{Role: entity.RoleWorker, TeamID: "t-2"}, false},
		{"team leader no edita a un admin de su equipo", entity.RoleTeamLeader, "t-1", permissions.UserScope{Role: entity.RoleAdmin, TeamID: "t-1"}, false},
		{"worker no edita a nadie", entity.RoleWorker, "t-1", permissions.UserScope{Role: entity.RoleWorker, TeamID: "t-1"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, permissions.CanEditUser(tc.role, tc.teamID, tc.target))
		})
	}
}

func TestCanDeleteUser_NadieBorraAlOwner(t *testing.T) {
	owner := permissions.UserScope{Role: entity.RoleOwner}
	worker := permissions.UserScope{Role: entity.RoleWorker}

	assert.False(t, permissions.CanDeleteUser(entity.RoleOwner, owner))
	assert.False(t, permissions.CanDeleteUser(entity.RoleAdmin, owner))
	assert.True(t, permissions.CanDeleteUser(entity.RoleOwner, worker))
	assert.True(t, permissions.CanDeleteUser(entity.RoleAdmin, worker))
	assert.False(t, permissions.CanDeleteUser(entity.RoleTeamLeader, worker),
		"el team leader quita del equipo, no borra usuarios")
}

func TestCanEditTeam(t *testing.T) {
	assert.True(t, permissions.CanEditTeam(entity.RoleAdmin, "", "t-9"))
	assert.True(t, permissions.CanEditTeam(entity.RoleTeamLeader, "t-1", "t-1"))
	assert.False(t, permissions.CanEditTeam(entity.RoleTeamLeader, "t-1", "t-2"))
	assert.False(t, permissions.CanEditTeam(entity.RoleTeamLeader, "", ""))
	assert.False(t, permissions.CanEditTeam(entity.RoleWorker, "t-1", "t-1"))
}

func TestAccesosPorRol(t *testing.T) {
	assert.True(t, permissions.CanAccessAnalytics(entity.RoleTeamLeader))
	assert.False(t, permissions.CanAccessAnalytics(entity.RoleWorker))
	assert.False(t, permissions.CanAccessAnalytics(entity.RoleAuditor))

	assert.True(t, permissions.CanManageTeams(entity.RoleOwner))
	assert.False(t, permissions.CanManageTeams(entity.RoleTeamLeader))

	assert.True(t, permissions.CanSendInvitations(entity.RoleAdmin))
	assert.False(t, permissions.CanSendInvitations(entity.RoleTeamLeader))

	assert.True(t, permissions.IsFullAdmin(entity.RoleOwner))
	assert.False(t, permissions.IsFullAdmin(entity.RoleAuditor))
}
