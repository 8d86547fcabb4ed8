package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dserranox/blschool-intranet/internal/server/alumnos"
	"github.com/dserranox/blschool-intranet/internal/server/comisiones"
	"github.com/dserranox/blschool-intranet/internal/server/cursos"
	"github.com/dserranox/blschool-intranet/internal/server/db/migrations"
	"github.com/dserranox/blschool-intranet/internal/server/docentes"
	"github.com/dserranox/blschool-intranet/internal/server/usuarios"
)

type PostgresRepositoryManager struct {
	db         *sql.DB
	usuarios   usuarios.Repository
	alumnos    alumnos.Repository
	docentes   docentes.Repository
	cursos     cursos.Repository
	comisiones comisiones.Repository
}

func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}

func (m *PostgresRepositoryManager) Usuarios() usuarios.Repository {
	return m.usuarios
}

func (m *PostgresRepositoryManager) Alumnos() alumnos.Repository {
	return m.alumnos
}

func (m *PostgresRepositoryManager) Docentes() docentes.Repository {
	return m.docentes
}

func (m *PostgresRepositoryManager) Cursos() cursos.Repository {
	return m.cursos
}

func (m *PostgresRepositoryManager) Comisiones() comisiones.Repository {
	return m.comisiones
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func NewPostgresRepositoryManager(dsn string) (RepositoryManager, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &PostgresRepositoryManager{
		db:         db,
		usuarios:   usuarios.NewPostgresRepository(db),
		alumnos:    alumnos.NewPostgresRepository(db),
		docentes:   docentes.NewPostgresRepository(db),
		cursos:     cursos.NewPostgresRepository(db),
		comisiones: comisiones.NewPostgresRepository(db),
	}

	err = m.RunMigrations(context.Background())
	if err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
