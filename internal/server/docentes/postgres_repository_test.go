package docentes

import (
	"context"
	"database/sql"
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

func docenteColumns() []string {
	return []string{"id", "nombres", "apellidos", "dni", "fecha_nacimiento",
		"telefono", "direccion", "email", "username", "activo", "comisiones"}
}

func TestList(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(docenteColumns()).
		AddRow(1, "Carla", "Garcia", "28111222", "1985-06-01",
			"11-4444-5555", "", "carla@example.com", "mgarcia", true, 3).
		AddRow(2, "Pedro", "Lopez", "", "", "", "", "", "", false, 0)
	mock.ExpectQuery(`(?s)SELECT\s+d\.id.*FROM\s+docentes\s+d.*ORDER\s+BY\s+d\.apellidos`).
		WillReturnRows(rows)

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "mgarcia", got[0].Usuario)
	require.Equal(t, 3, got[0].Comisiones)
	require.False(t, got[1].Activo)
}

func TestGet_LoadsRoles(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(docenteColumns()).
		AddRow(1, "Carla", "Garcia", "", "", "", "", "", "mgarcia", true, 0)
	mock.ExpectQuery(`(?s)SELECT\s+d\.id.*WHERE\s+d\.id\s*=\s*\$1`).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	roleRows := sqlmock.NewRows([]string{"rol"}).AddRow("DOCENTE")
	mock.ExpectQuery(`(?s)SELECT\s+ur\.rol`).
		WithArgs(int64(1)).
		WillReturnRows(roleRows)

	got, err := repo.Get(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, []string{"DOCENTE"}, got.Roles)
}

func TestGet_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT\s+d\.id`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), 99)
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSetActivo(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)UPDATE\s+docentes\s+SET\s+activo\s*=\s*\$1`).
		WithArgs(false, int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetActivo(context.Background(), 2, false))

	mock.ExpectExec(`(?s)UPDATE\s+docentes\s+SET\s+activo`).
		WithArgs(true, int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.ErrorIs(t, repo.SetActivo(context.Background(), 99, true), common.ErrorNotFound)
}
