// Package docentes implements the teacher registry. A teacher row carries
// its linked account's username and roles plus the count of sections it is
// assigned to this year.
package docentes

type Docente struct {
	ID              int64    `json:"id"`
	Nombres         string   `json:"nombres"`
	Apellidos       string   `json:"apellidos"`
	DNI             string   `json:"dni"`
	FechaNacimiento string   `json:"fechaNacimiento"`
	Telefono        string   `json:"telefono"`
	Direccion       string   `json:"direccion"`
	Email           string   `json:"email"`
	Usuario         string   `json:"usuario"`
	Roles           []string `json:"roles"`
	Activo          bool     `json:"activo"`
	Comisiones      int      `json:"comisiones"`
}

// Input is the create/update payload.
type Input struct {
	Nombres         string `json:"nombres" validate:"required"`
	Apellidos       string `json:"apellidos" validate:"required"`
	DNI             string `json:"dni"`
	FechaNacimiento string `json:"fechaNacimiento" validate:"omitempty,datetime=2006-01-02"`
	Telefono        string `json:"telefono"`
	Direccion       string `json:"direccion"`
	Email           string `json:"email" validate:"omitempty,email"`
	Usuario         string `json:"usuario"`
}
