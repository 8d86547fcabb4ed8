package alumnos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dserranox/blschool-intranet/internal/common"
	"github.com/dserranox/blschool-intranet/internal/dbx"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectAlumno = `
	SELECT a.id, a.apellidos, a.nombres, a.dni,
	       coalesce(to_char(a.fecha_nacimiento, 'YYYY-MM-DD'), ''),
	       a.email, a.email_alternativo, a.direccion, a.escuela, a.grado_curso,
	       a.estado, a.comision_id, coalesce(co.nombre, ''), coalesce(cu.nombre, '')
	FROM alumnos a
	LEFT JOIN comisiones co ON co.id = a.comision_id
	LEFT JOIN cursos cu ON cu.id = co.curso_id`

func scanAlumno(row interface{ Scan(...any) error }, a *Alumno) error {
	return row.Scan(
		&a.ID, &a.Apellidos, &a.Nombres, &a.DNI, &a.FechaNacimiento,
		&a.Email, &a.EmailAlternativo, &a.Direccion, &a.Escuela, &a.GradoCurso,
		&a.Estado, &a.ComisionID, &a.Comision, &a.Curso)
}

// List returns students ordered by surname. An empty estado, or the TODOS
// wildcard, lists every record. Phone numbers are only loaded by Get.
func (r *PostgresRepository) List(ctx context.Context, estado string) ([]Alumno, error) {
	query := selectAlumno
	var args []any
	if estado != "" && estado != EstadoTodos {
		query += " WHERE a.estado = $1"
		args = append(args, estado)
	}
	query += " ORDER BY a.apellidos, a.nombres"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	out := []Alumno{}
	for rows.Next() {
		var a Alumno
		if err := scanAlumno(rows, &a); err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, rows.Err()
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*Alumno, error) {
	a := &Alumno{}
	err := scanAlumno(r.db.QueryRowContext(ctx, selectAlumno+" WHERE a.id = $1", id), a)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	telefonos, err := r.getTelefonos(ctx, id)
	if err != nil {
		return nil, err
	}
	a.Telefonos = telefonos

	return a, nil
}

func (r *PostgresRepository) getTelefonos(ctx context.Context, alumnoID int64) ([]Telefono, error) {
	query :=
		`SELECT id, numero, tipo, nota, principal
		 FROM alumno_telefonos
		 WHERE alumno_id = $1
		 ORDER BY principal DESC, id
		 `

	rows, err := r.db.QueryContext(ctx, query, alumnoID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	out := []Telefono{}
	for rows.Next() {
		var tel Telefono
		if err := rows.Scan(&tel.ID, &tel.Numero, &tel.Tipo, &tel.Nota, &tel.Principal); err != nil {
			return nil, err
		}
		out = append(out, tel)
	}

	return out, rows.Err()
}

// Create inserts the record and its phone numbers in one transaction.
func (r *PostgresRepository) Create(ctx context.Context, in *Input) (int64, error) {
	var id int64

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		query :=
			`INSERT INTO alumnos
			     (apellidos, nombres, dni, fecha_nacimiento, email, email_alternativo,
			      direccion, escuela, grado_curso, estado, comision_id)
			 VALUES ($1, $2, $3, nullif($4, '')::date, $5, $6, $7, $8, $9, $10, $11)
			 RETURNING id
			 `

		err := tx.QueryRowContext(ctx, query,
			in.Apellidos, in.Nombres, in.DNI, in.FechaNacimiento, in.Email, in.EmailAlternativo,
			in.Direccion, in.Escuela, in.GradoCurso, in.Estado, in.ComisionID).Scan(&id)
		if err != nil {
			return fmt.Errorf("error performing sql request: %v", err)
		}

		return insertTelefonos(ctx, tx, id, in.Telefonos)
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// Update rewrites the record and replaces its phone numbers in one
// transaction.
func (r *PostgresRepository) Update(ctx context.Context, id int64, in *Input) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		query :=
			`UPDATE alumnos SET
			     apellidos = $1, nombres = $2, dni = $3, fecha_nacimiento = nullif($4, '')::date,
			     email = $5, email_alternativo = $6, direccion = $7, escuela = $8,
			     grado_curso = $9, estado = $10, comision_id = $11
			 WHERE id = $12
			 `

		res, err := tx.ExecContext(ctx, query,
			in.Apellidos, in.Nombres, in.DNI, in.FechaNacimiento, in.Email, in.EmailAlternativo,
			in.Direccion, in.Escuela, in.GradoCurso, in.Estado, in.ComisionID, id)
		if err != nil {
			return fmt.Errorf("error performing sql request: %v", err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return common.ErrorNotFound
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM alumno_telefonos WHERE alumno_id = $1`, id); err != nil {
			return fmt.Errorf("error performing sql request: %v", err)
		}

		return insertTelefonos(ctx, tx, id, in.Telefonos)
	})
}

func insertTelefonos(ctx context.Context, tx dbx.DBTX, alumnoID int64, telefonos []Telefono) error {
	query :=
		`INSERT INTO alumno_telefonos (alumno_id, numero, tipo, nota, principal)
		 VALUES ($1, $2, $3, $4, $5)
		 `

	for _, tel := range telefonos {
		if _, err := tx.ExecContext(ctx, query, alumnoID, tel.Numero, tel.Tipo, tel.Nota, tel.Principal); err != nil {
			return fmt.Errorf("error performing sql request: %v", err)
		}
	}
	return nil
}

// Baja marks the student as withdrawn and detaches it from its section.
func (r *PostgresRepository) Baja(ctx context.Context, id int64) error {
	query := `UPDATE alumnos SET estado = $1, comision_id = NULL WHERE id = $2`

	res, err := r.db.ExecContext(ctx, query, EstadoBaja, id)
	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}

	return nil
}
