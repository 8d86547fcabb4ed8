package usuarios

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/dserranox/blschool-intranet/internal/common"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestGetByUsername_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "persona_id", "username", "password_hash", "activo", "nombres", "apellidos", "email"}).
		AddRow(1, 7, "mgarcia", "$2a$hash", true, "Carla", "Garcia", "carla@example.com")
	mock.ExpectQuery(`(?s)SELECT\s+u\.id.*FROM\s+usuarios\s+u.*WHERE\s+u\.username\s*=\s*\$1`).
		WithArgs("mgarcia").
		WillReturnRows(rows)

	roleRows := sqlmock.NewRows([]string{"rol"}).AddRow("ADMIN").AddRow("DOCENTE")
	mock.ExpectQuery(`(?s)SELECT\s+rol\s+FROM\s+usuario_roles`).
		WithArgs(int64(1)).
		WillReturnRows(roleRows)

	got, err := repo.GetByUsername(context.Background(), "mgarcia")
	require.NoError(t, err)
	require.Equal(t, int64(7), got.PersonaID)
	require.Equal(t, "Carla", got.Nombres)
	require.Equal(t, []string{"ADMIN", "DOCENTE"}, got.Roles)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByUsername_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT\s+u\.id.*FROM\s+usuarios\s+u`).
		WithArgs("nobody").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUsername(context.Background(), "nobody")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestGetByUsername_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT\s+u\.id.*FROM\s+usuarios\s+u`).
		WithArgs("mgarcia").
		WillReturnError(errors.New("db down"))

	_, err := repo.GetByUsername(context.Background(), "mgarcia")
	require.Error(t, err)
	require.NotErrorIs(t, err, common.ErrorNotFound)
}

func TestCountEstadisticas(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"alumnos", "docentes", "cursos", "comisiones"}).
		AddRow(120, 14, 9, 22)
	mock.ExpectQuery(`(?s)SELECT\s+\(SELECT\s+count`).WillReturnRows(rows)

	stats, err := repo.CountEstadisticas(context.Background())
	require.NoError(t, err)
	require.Equal(t, 120, stats.AlumnosActivos)
	require.Equal(t, 14, stats.DocentesActivos)
	require.Equal(t, 9, stats.CursosActivos)
	require.Equal(t, 22, stats.ComisionesActivas)
}
