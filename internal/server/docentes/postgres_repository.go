package docentes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dserranox/blschool-intranet/internal/common"
	"github.com/dserranox/blschool-intranet/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectDocente = `
	SELECT d.id, d.nombres, d.apellidos, d.dni,
	       coalesce(to_char(d.fecha_nacimiento, 'YYYY-MM-DD'), ''),
	       d.telefono, d.direccion, d.email, coalesce(u.username, ''), d.activo,
	       (SELECT count(DISTINCT cc.comision_id)
	        FROM comision_clases cc
	        JOIN comisiones c ON c.id = cc.comision_id
	        WHERE c.activa AND (cc.docente_id = d.id OR cc.docente_suplente_id = d.id))
	FROM docentes d
	LEFT JOIN usuarios u ON u.id = d.usuario_id`

func scanDocente(row interface{ Scan(...any) error }, d *Docente) error {
	return row.Scan(
		&d.ID, &d.Nombres, &d.Apellidos, &d.DNI, &d.FechaNacimiento,
		&d.Telefono, &d.Direccion, &d.Email, &d.Usuario, &d.Activo, &d.Comisiones)
}

func (r *PostgresRepository) List(ctx context.Context) ([]Docente, error) {
	rows, err := r.db.QueryContext(ctx, selectDocente+" ORDER BY d.apellidos, d.nombres")
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	out := []Docente{}
	for rows.Next() {
		var d Docente
		if err := scanDocente(rows, &d); err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	return out, rows.Err()
}

// Get also loads the roles of the linked account, when there is one.
func (r *PostgresRepository) Get(ctx context.Context, id int64) (*Docente, error) {
	d := &Docente{}
	err := scanDocente(r.db.QueryRowContext(ctx, selectDocente+" WHERE d.id = $1", id), d)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	query :=
		`SELECT ur.rol
		 FROM usuario_roles ur
		 JOIN docentes d ON d.usuario_id = ur.usuario_id
		 WHERE d.id = $1
		 ORDER BY ur.rol
		 `

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	d.Roles = []string{}
	for rows.Next() {
		var rol string
		if err := rows.Scan(&rol); err != nil {
			return nil, err
		}
		d.Roles = append(d.Roles, rol)
	}

	return d, rows.Err()
}

func (r *PostgresRepository) Create(ctx context.Context, in *Input) (int64, error) {
	query :=
		`INSERT INTO docentes
		     (nombres, apellidos, dni, fecha_nacimiento, telefono, direccion, email, activo)
		 VALUES ($1, $2, $3, nullif($4, '')::date, $5, $6, $7, true)
		 RETURNING id
		 `

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		in.Nombres, in.Apellidos, in.DNI, in.FechaNacimiento, in.Telefono, in.Direccion, in.Email).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error performing sql request: %v", err)
	}

	return id, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, in *Input) error {
	query :=
		`UPDATE docentes SET
		     nombres = $1, apellidos = $2, dni = $3, fecha_nacimiento = nullif($4, '')::date,
		     telefono = $5, direccion = $6, email = $7
		 WHERE id = $8
		 `

	res, err := r.db.ExecContext(ctx, query,
		in.Nombres, in.Apellidos, in.DNI, in.FechaNacimiento, in.Telefono, in.Direccion, in.Email, id)
	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) SetActivo(ctx context.Context, id int64, activo bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE docentes SET activo = $1 WHERE id = $2`, activo, id)
	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}

	return nil
}
