package entity

// Roles de los miembros del equipo.
const (
	TeamRoleAdmin        = "admin"
	TeamRolePhotographer = "photographer"
	TeamRoleAssistant    = "assistant"
)

// Photographer miembro del equipo del estudio, asignable a clientes.
type Photographer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
	Color string `json:"color,omitempty"` // color del calendario
}

// ValidTeamRole indica si el rol es uno de los conocidos.
func ValidTeamRole(role string) bool {
	switch role {
	case TeamRoleAdmin, TeamRolePhotographer, TeamRoleAssistant:
		return true
	}
	return false
}
