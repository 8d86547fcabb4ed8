// Package usuarios implements accounts: credential checks, the profile the
// client session is enriched from, and the dashboard counters.
package usuarios

// Usuario is an account row joined with the persona it belongs to.
type Usuario struct {
	ID           int64
	PersonaID    int64
	Username     string
	PasswordHash string
	Activo       bool
	Nombres      string
	Apellidos    string
	Email        string
	Roles        []string
}

// Perfil is the extended profile returned after login.
type Perfil struct {
	PersonaID int64    `json:"personaId"`
	Nombres   string   `json:"nombres"`
	Apellidos string   `json:"apellidos"`
	Email     string   `json:"email"`
	Username  string   `json:"username"`
	Roles     []string `json:"roles"`
}

// LoginResult is the payload of a successful credential check. ExpiresAt is
// epoch milliseconds so the client can schedule its auto logout from it.
type LoginResult struct {
	Token       string   `json:"token"`
	ExpiresAt   int64    `json:"expiresAt"`
	TokenType   string   `json:"tokenType"`
	Username    string   `json:"username"`
	Authorities []string `json:"authorities"`
}

// DashboardStats are the counters shown on the landing view.
type DashboardStats struct {
	AlumnosActivos    int `json:"alumnosActivos"`
	DocentesActivos   int `json:"docentesActivos"`
	CursosActivos     int `json:"cursosActivos"`
	ComisionesActivas int `json:"comisionesActivas"`
}
