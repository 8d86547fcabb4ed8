package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// ComisionClase is one weekly class slot of a course section. Dia is the
// weekday (1 = Monday … 7 = Sunday); hours are "HH:MM".
type ComisionClase struct {
	ID                    int64  `json:"id"`
	Dia                   int    `json:"dia"`
	HoraDesde             string `json:"hora_desde"`
	HoraHasta             string `json:"hora_hasta"`
	Docente               *int64 `json:"docente"`
	DocenteSuplente       *int64 `json:"docente_suplente"`
	DocenteNombre         string `json:"docente_nombre"`
	DocenteSuplenteNombre string `json:"docente_suplente_nombre"`
}

type Comision struct {
	ComID         int64           `json:"comId"`
	Anio          int             `json:"anio"`
	Nombre        string          `json:"nombre"`
	Cupo          int             `json:"cupo"`
	Activa        bool            `json:"activa"`
	Inscriptos    int             `json:"inscriptos"`
	PreInscriptos int             `json:"preInscriptos"`
	CursoID       int64           `json:"curso_id"`
	CursoNombre   string          `json:"cursoNombre"`
	Clases        []ComisionClase `json:"clases"`
}

// ComisionActiva is the short listing used by selection widgets.
type ComisionActiva struct {
	ComID       int64  `json:"comId"`
	Nombre      string `json:"nombre"`
	CursoNombre string `json:"cursoNombre"`
}

type ComisionRequest struct {
	Anio    int             `json:"anio"`
	Nombre  string          `json:"nombre"`
	Cupo    int             `json:"cupo"`
	CursoID int64           `json:"curso_id"`
	Clases  []ComisionClase `json:"clases"`
}

func (c *Client) ListarComisionesActivas(ctx context.Context) ([]ComisionActiva, error) {
	var out []ComisionActiva
	err := c.get(ctx, "/comisiones/activas", nil, &out)
	return out, err
}

// ObtenerAnios returns the years that have sections, newest first.
func (c *Client) ObtenerAnios(ctx context.Context) ([]int, error) {
	var out []int
	err := c.get(ctx, "/comisiones/anios", nil, &out)
	return out, err
}

func (c *Client) BuscarComisionesPorAnio(ctx context.Context, anio int) ([]Comision, error) {
	var out []Comision
	err := c.get(ctx, fmt.Sprintf("/comisiones/anio/%d", anio), nil, &out)
	return out, err
}

func (c *Client) ObtenerComision(ctx context.Context, id int64) (*Comision, error) {
	var out Comision
	if err := c.get(ctx, fmt.Sprintf("/comisiones/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CrearComision(ctx context.Context, req ComisionRequest) (*Comision, error) {
	var out Comision
	if err := c.post(ctx, "/comisiones", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ModificarComision(ctx context.Context, id int64, req ComisionRequest) (*Comision, error) {
	var out Comision
	if err := c.put(ctx, fmt.Sprintf("/comisiones/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ActivarComision(ctx context.Context, id int64) error {
	return c.patch(ctx, fmt.Sprintf("/comisiones/%d/activar", id))
}

func (c *Client) DesactivarComision(ctx context.Context, id int64) error {
	return c.patch(ctx, fmt.Sprintf("/comisiones/%d/desactivar", id))
}

// DuplicarComisiones copies one year's sections (with their weekly class
// schedule) into another year.
func (c *Client) DuplicarComisiones(ctx context.Context, anioDesde, anioHasta int) error {
	query := url.Values{}
	query.Set("anioDesde", strconv.Itoa(anioDesde))
	query.Set("anioHasta", strconv.Itoa(anioHasta))
	return c.post(ctx, "/comisiones/duplicar", query, nil, nil)
}
