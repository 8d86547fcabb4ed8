package api

import (
	"context"
	"fmt"
	"net/url"
)

// EstadoTodos is the list-filter wildcard: it is never stored on a record.
const EstadoTodos = "TODOS"

type AlumnoTelefono struct {
	ID        int64  `json:"id"`
	Numero    string `json:"numero"`
	Tipo      string `json:"tipo"`
	Nota      string `json:"nota"`
	Principal bool   `json:"principal"`
}

type Alumno struct {
	ID               int64            `json:"id"`
	Apellidos        string           `json:"apellidos"`
	Nombres          string           `json:"nombres"`
	DNI              string           `json:"dni"`
	FechaNacimiento  string           `json:"fechaNacimiento"`
	Email            string           `json:"email"`
	EmailAlternativo string           `json:"emailAlternativo"`
	Direccion        string           `json:"direccion"`
	Escuela          string           `json:"escuela"`
	GradoCurso       string           `json:"gradoCurso"`
	Estado           string           `json:"estado"`
	ComisionID       *int64           `json:"comisionId"`
	Comision         string           `json:"comision"`
	Curso            string           `json:"curso"`
	Telefonos        []AlumnoTelefono `json:"telefonos"`
}

// AlumnoRequest is the payload for create/update.
type AlumnoRequest struct {
	Apellidos        string           `json:"apellidos"`
	Nombres          string           `json:"nombres"`
	DNI              string           `json:"dni"`
	FechaNacimiento  string           `json:"fechaNacimiento"`
	Email            string           `json:"email"`
	EmailAlternativo string           `json:"emailAlternativo"`
	Direccion        string           `json:"direccion"`
	Escuela          string           `json:"escuela"`
	GradoCurso       string           `json:"gradoCurso"`
	Estado           string           `json:"estado"`
	ComisionID       *int64           `json:"comisionId"`
	Telefonos        []AlumnoTelefono `json:"telefonos"`
}

// ListarAlumnos lists students, optionally filtered by estado. An empty
// estado or EstadoTodos returns every record.
func (c *Client) ListarAlumnos(ctx context.Context, estado string) ([]Alumno, error) {
	query := url.Values{}
	if estado != "" && estado != EstadoTodos {
		query.Set("estado", estado)
	}
	var out []Alumno
	err := c.get(ctx, "/alumnos", query, &out)
	return out, err
}

func (c *Client) ObtenerAlumno(ctx context.Context, id int64) (*Alumno, error) {
	var out Alumno
	if err := c.get(ctx, fmt.Sprintf("/alumnos/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CrearAlumno(ctx context.Context, req AlumnoRequest) (*Alumno, error) {
	var out Alumno
	if err := c.post(ctx, "/alumnos", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ModificarAlumno(ctx context.Context, id int64, req AlumnoRequest) (*Alumno, error) {
	var out Alumno
	if err := c.put(ctx, fmt.Sprintf("/alumnos/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BajaAlumno marks a student as withdrawn.
func (c *Client) BajaAlumno(ctx context.Context, id int64) error {
	return c.put(ctx, fmt.Sprintf("/alumnos/%d/baja", id), nil, nil)
}
