// Package db wires the repositories to a PostgreSQL connection and runs
// the schema migrations on startup.
package db

import (
	"context"
	"database/sql"

	"github.com/dserranox/blschool-intranet/internal/server/alumnos"
	"github.com/dserranox/blschool-intranet/internal/server/comisiones"
	"github.com/dserranox/blschool-intranet/internal/server/cursos"
	"github.com/dserranox/blschool-intranet/internal/server/docentes"
	"github.com/dserranox/blschool-intranet/internal/server/usuarios"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Close() error
	Usuarios() usuarios.Repository
	Alumnos() alumnos.Repository
	Docentes() docentes.Repository
	Cursos() cursos.Repository
	Comisiones() comisiones.Repository
}
