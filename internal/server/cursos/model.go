// Package cursos implements the course catalog. A course can only be
// deleted while no section references it.
package cursos

type Curso struct {
	CurID             int64    `json:"curId"`
	CurCodigo         string   `json:"curCodigo"`
	CurNombre         string   `json:"curNombre"`
	CurDescripcion    string   `json:"curDescripcion"`
	ComisionesActivas []string `json:"comisionesActivas"`
}

// Input is the create/update payload.
type Input struct {
	CurCodigo      string `json:"curCodigo" validate:"required"`
	CurNombre      string `json:"curNombre" validate:"required"`
	CurDescripcion string `json:"curDescripcion"`
}
