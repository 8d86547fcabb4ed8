// Package comisiones implements course sections and their weekly class
// schedule, including the year-to-year duplication used when opening
// enrollment for a new school year.
package comisiones

// Clase is one weekly class slot of a section. Dia is the weekday
// (1 = Monday, 7 = Sunday); hours are "HH:MM".
type Clase struct {
	ID                    int64  `json:"id"`
	Dia                   int    `json:"dia" validate:"required,min=1,max=7"`
	HoraDesde             string `json:"hora_desde" validate:"required,datetime=15:04"`
	HoraHasta             string `json:"hora_hasta" validate:"required,datetime=15:04"`
	Docente               *int64 `json:"docente"`
	DocenteSuplente       *int64 `json:"docente_suplente"`
	DocenteNombre         string `json:"docente_nombre"`
	DocenteSuplenteNombre string `json:"docente_suplente_nombre"`
}

type Comision struct {
	ComID         int64   `json:"comId"`
	Anio          int     `json:"anio"`
	Nombre        string  `json:"nombre"`
	Cupo          int     `json:"cupo"`
	Activa        bool    `json:"activa"`
	Inscriptos    int     `json:"inscriptos"`
	PreInscriptos int     `json:"preInscriptos"`
	CursoID       int64   `json:"curso_id"`
	CursoNombre   string  `json:"cursoNombre"`
	Clases        []Clase `json:"clases"`
}

// Activa is the short listing used by selection widgets.
type Activa struct {
	ComID       int64  `json:"comId"`
	Nombre      string `json:"nombre"`
	CursoNombre string `json:"cursoNombre"`
}

// Input is the create/update payload.
type Input struct {
	Anio    int     `json:"anio" validate:"required,min=2000,max=2100"`
	Nombre  string  `json:"nombre" validate:"required"`
	Cupo    int     `json:"cupo" validate:"min=0"`
	CursoID int64   `json:"curso_id" validate:"required"`
	Clases  []Clase `json:"clases" validate:"dive"`
}
