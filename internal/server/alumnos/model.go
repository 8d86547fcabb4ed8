// Package alumnos implements the student registry: listing by enrollment
// state, the full record with its phone numbers, and the withdrawal flow.
package alumnos

// Enrollment states. EstadoTodos is only a list-filter wildcard and is
// never stored on a record.
const (
	EstadoInscripto    = "INSCRIPTO"
	EstadoPreinscripto = "PREINSCRIPTO"
	EstadoBaja         = "BAJA"
	EstadoTodos        = "TODOS"
)

// ValidEstado reports whether estado may be stored on a record.
func ValidEstado(estado string) bool {
	switch estado {
	case EstadoInscripto, EstadoPreinscripto, EstadoBaja:
		return true
	}
	return false
}

type Telefono struct {
	ID        int64  `json:"id"`
	Numero    string `json:"numero" validate:"required"`
	Tipo      string `json:"tipo"`
	Nota      string `json:"nota"`
	Principal bool   `json:"principal"`
}

type Alumno struct {
	ID               int64      `json:"id"`
	Apellidos        string     `json:"apellidos"`
	Nombres          string     `json:"nombres"`
	DNI              string     `json:"dni"`
	FechaNacimiento  string     `json:"fechaNacimiento"`
	Email            string     `json:"email"`
	EmailAlternativo string     `json:"emailAlternativo"`
	Direccion        string     `json:"direccion"`
	Escuela          string     `json:"escuela"`
	GradoCurso       string     `json:"gradoCurso"`
	Estado           string     `json:"estado"`
	ComisionID       *int64     `json:"comisionId"`
	Comision         string     `json:"comision"`
	Curso            string     `json:"curso"`
	Telefonos        []Telefono `json:"telefonos"`
}

// Input is the create/update payload.
type Input struct {
	Apellidos        string     `json:"apellidos" validate:"required"`
	Nombres          string     `json:"nombres" validate:"required"`
	DNI              string     `json:"dni"`
	FechaNacimiento  string     `json:"fechaNacimiento" validate:"omitempty,datetime=2006-01-02"`
	Email            string     `json:"email" validate:"omitempty,email"`
	EmailAlternativo string     `json:"emailAlternativo" validate:"omitempty,email"`
	Direccion        string     `json:"direccion"`
	Escuela          string     `json:"escuela"`
	GradoCurso       string     `json:"gradoCurso"`
	Estado           string     `json:"estado" validate:"required"`
	ComisionID       *int64     `json:"comisionId"`
	Telefonos        []Telefono `json:"telefonos" validate:"dive"`
}
