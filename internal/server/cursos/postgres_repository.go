package cursos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dserranox/blschool-intranet/internal/common"
	"github.com/dserranox/blschool-intranet/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Active section names come back comma separated so they can be scanned
// through database/sql without array support.
const selectCurso = `
	SELECT c.id, c.codigo, c.nombre, c.descripcion,
	       coalesce((SELECT string_agg(co.nombre, ',' ORDER BY co.nombre)
	                 FROM comisiones co
	                 WHERE co.curso_id = c.id AND co.activa), '')
	FROM cursos c`

func scanCurso(row interface{ Scan(...any) error }, c *Curso) error {
	var activas string
	if err := row.Scan(&c.CurID, &c.CurCodigo, &c.CurNombre, &c.CurDescripcion, &activas); err != nil {
		return err
	}
	c.ComisionesActivas = []string{}
	if activas != "" {
		c.ComisionesActivas = strings.Split(activas, ",")
	}
	return nil
}

// Search lists courses whose code or name matches filtro; an empty filtro
// lists everything.
func (r *PostgresRepository) Search(ctx context.Context, filtro string) ([]Curso, error) {
	query := selectCurso
	var args []any
	if filtro != "" {
		query += ` WHERE c.codigo ILIKE '%' || $1 || '%' OR c.nombre ILIKE '%' || $1 || '%'`
		args = append(args, filtro)
	}
	query += " ORDER BY c.nombre"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	out := []Curso{}
	for rows.Next() {
		var c Curso
		if err := scanCurso(rows, &c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return out, rows.Err()
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*Curso, error) {
	c := &Curso{}
	err := scanCurso(r.db.QueryRowContext(ctx, selectCurso+" WHERE c.id = $1", id), c)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	return c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, in *Input) (int64, error) {
	query :=
		`INSERT INTO cursos (codigo, nombre, descripcion)
		 VALUES ($1, $2, $3)
		 RETURNING id
		 `

	var id int64
	err := r.db.QueryRowContext(ctx, query, in.CurCodigo, in.CurNombre, in.CurDescripcion).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error performing sql request: %v", err)
	}

	return id, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, in *Input) error {
	query :=
		`UPDATE cursos SET codigo = $1, nombre = $2, descripcion = $3
		 WHERE id = $4
		 `

	res, err := r.db.ExecContext(ctx, query, in.CurCodigo, in.CurNombre, in.CurDescripcion, id)
	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}

	return nil
}

// Delete refuses to remove a course that still has sections.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	var sections int
	err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM comisiones WHERE curso_id = $1`, id).Scan(&sections)
	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}
	if sections > 0 {
		return fmt.Errorf("%w: el curso tiene comisiones", common.ErrorValidation)
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM cursos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}

	return nil
}
