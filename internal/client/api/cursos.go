package api

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

type Curso struct {
	CurID             int64    `json:"curId"`
	CurCodigo         string   `json:"curCodigo"`
	CurNombre         string   `json:"curNombre"`
	CurDescripcion    string   `json:"curDescripcion"`
	ComisionesActivas []string `json:"comisionesActivas"`
}

type CursoRequest struct {
	CurCodigo      string `json:"curCodigo"`
	CurNombre      string `json:"curNombre"`
	CurDescripcion string `json:"curDescripcion"`
}

// BuscarCursos lists courses whose code or name matches filtro; an empty
// filtro lists everything.
func (c *Client) BuscarCursos(ctx context.Context, filtro string) ([]Curso, error) {
	query := url.Values{}
	if f := strings.TrimSpace(filtro); f != "" {
		query.Set("filtro", f)
	}
	var out []Curso
	err := c.get(ctx, "/cursos", query, &out)
	return out, err
}

func (c *Client) ObtenerCurso(ctx context.Context, id int64) (*Curso, error) {
	var out Curso
	if err := c.get(ctx, fmt.Sprintf("/cursos/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CrearCurso(ctx context.Context, req CursoRequest) (*Curso, error) {
	var out Curso
	if err := c.post(ctx, "/cursos", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ModificarCurso(ctx context.Context, id int64, req CursoRequest) (*Curso, error) {
	var out Curso
	if err := c.put(ctx, fmt.Sprintf("/cursos/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) EliminarCurso(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/cursos/%d", id))
}
