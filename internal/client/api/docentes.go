package api

import (
	"context"
	"fmt"
)

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

type DocenteRequest struct {
	Nombres         string `json:"nombres"`
	Apellidos       string `json:"apellidos"`
	DNI             string `json:"dni"`
	FechaNacimiento string `json:"fechaNacimiento"`
	Telefono        string `json:"telefono"`
	Direccion       string `json:"direccion"`
	Email           string `json:"email"`
	Usuario         string `json:"usuario"`
}

func (c *Client) ListarDocentes(ctx context.Context) ([]Docente, error) {
	var out []Docente
	err := c.get(ctx, "/docentes", nil, &out)
	return out, err
}

func (c *Client) ObtenerDocente(ctx context.Context, id int64) (*Docente, error) {
	var out Docente
	if err := c.get(ctx, fmt.Sprintf("/docentes/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CrearDocente(ctx context.Context, req DocenteRequest) (*Docente, error) {
	var out Docente
	if err := c.post(ctx, "/docentes", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ModificarDocente(ctx context.Context, id int64, req DocenteRequest) (*Docente, error) {
	var out Docente
	if err := c.put(ctx, fmt.Sprintf("/docentes/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ActivarDocente(ctx context.Context, id int64) error {
	return c.patch(ctx, fmt.Sprintf("/docentes/%d/activar", id))
}

func (c *Client) DesactivarDocente(ctx context.Context, id int64) error {
	return c.patch(ctx, fmt.Sprintf("/docentes/%d/desactivar", id))
}
