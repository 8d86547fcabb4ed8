package comisiones

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

const selectComision = `
	SELECT c.id, c.anio, c.nombre, c.cupo, c.activa,
	       (SELECT count(*) FROM alumnos a WHERE a.comision_id = c.id AND a.estado = 'INSCRIPTO'),
	       (SELECT count(*) FROM alumnos a WHERE a.comision_id = c.id AND a.estado = 'PREINSCRIPTO'),
	       c.curso_id, cu.nombre
	FROM comisiones c
	JOIN cursos cu ON cu.id = c.curso_id`

func scanComision(row interface{ Scan(...any) error }, c *Comision) error {
	return row.Scan(
		&c.ComID, &c.Anio, &c.Nombre, &c.Cupo, &c.Activa,
		&c.Inscriptos, &c.PreInscriptos, &c.CursoID, &c.CursoNombre)
}

func (r *PostgresRepository) ListActivas(ctx context.Context) ([]Activa, error) {
	query :=
		`SELECT c.id, c.nombre, cu.nombre
		 FROM comisiones c
		 JOIN cursos cu ON cu.id = c.curso_id
		 WHERE c.activa
		 ORDER BY cu.nombre, c.nombre
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	out := []Activa{}
	for rows.Next() {
		var a Activa
		if err := rows.Scan(&a.ComID, &a.Nombre, &a.CursoNombre); err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, rows.Err()
}

// Anios returns the years that have sections, newest first.
func (r *PostgresRepository) Anios(ctx context.Context) ([]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT anio FROM comisiones ORDER BY anio DESC`)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	out := []int{}
	for rows.Next() {
		var anio int
		if err := rows.Scan(&anio); err != nil {
			return nil, err
		}
		out = append(out, anio)
	}

	return out, rows.Err()
}

func (r *PostgresRepository) ListByAnio(ctx context.Context, anio int) ([]Comision, error) {
	rows, err := r.db.QueryContext(ctx,
		selectComision+" WHERE c.anio = $1 ORDER BY cu.nombre, c.nombre", anio)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	out := []Comision{}
	for rows.Next() {
		var c Comision
		if err := scanComision(rows, &c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		clases, err := r.getClases(ctx, out[i].ComID)
		if err != nil {
			return nil, err
		}
		out[i].Clases = clases
	}

	return out, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*Comision, error) {
	c := &Comision{}
	err := scanComision(r.db.QueryRowContext(ctx, selectComision+" WHERE c.id = $1", id), c)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	clases, err := r.getClases(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Clases = clases

	return c, nil
}

func (r *PostgresRepository) getClases(ctx context.Context, comisionID int64) ([]Clase, error) {
	query :=
		`SELECT cc.id, cc.dia,
		        to_char(cc.hora_desde, 'HH24:MI'), to_char(cc.hora_hasta, 'HH24:MI'),
		        cc.docente_id, cc.docente_suplente_id,
		        coalesce(d.apellidos || ', ' || d.nombres, ''),
		        coalesce(ds.apellidos || ', ' || ds.nombres, '')
		 FROM comision_clases cc
		 LEFT JOIN docentes d ON d.id = cc.docente_id
		 LEFT JOIN docentes ds ON ds.id = cc.docente_suplente_id
		 WHERE cc.comision_id = $1
		 ORDER BY cc.dia, cc.hora_desde
		 `

	rows, err := r.db.QueryContext(ctx, query, comisionID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	out := []Clase{}
	for rows.Next() {
		var cl Clase
		err := rows.Scan(&cl.ID, &cl.Dia, &cl.HoraDesde, &cl.HoraHasta,
			&cl.Docente, &cl.DocenteSuplente, &cl.DocenteNombre, &cl.DocenteSuplenteNombre)
		if err != nil {
			return nil, err
		}
		out = append(out, cl)
	}

	return out, rows.Err()
}

// Create inserts the section and its weekly slots in one transaction. New
// sections start active.
func (r *PostgresRepository) Create(ctx context.Context, in *Input) (int64, error) {
	var id int64

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		query :=
			`INSERT INTO comisiones (anio, nombre, cupo, activa, curso_id)
			 VALUES ($1, $2, $3, true, $4)
			 RETURNING id
			 `

		err := tx.QueryRowContext(ctx, query, in.Anio, in.Nombre, in.Cupo, in.CursoID).Scan(&id)
		if err != nil {
			return fmt.Errorf("error performing sql request: %v", err)
		}

		return insertClases(ctx, tx, id, in.Clases)
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// Update rewrites the section and replaces its weekly slots in one
// transaction.
func (r *PostgresRepository) Update(ctx context.Context, id int64, in *Input) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		query :=
			`UPDATE comisiones SET anio = $1, nombre = $2, cupo = $3, curso_id = $4
			 WHERE id = $5
			 `

		res, err := tx.ExecContext(ctx, query, in.Anio, in.Nombre, in.Cupo, in.CursoID, id)
		if err != nil {
			return fmt.Errorf("error performing sql request: %v", err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return common.ErrorNotFound
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM comision_clases WHERE comision_id = $1`, id); err != nil {
			return fmt.Errorf("error performing sql request: %v", err)
		}

		return insertClases(ctx, tx, id, in.Clases)
	})
}

func insertClases(ctx context.Context, tx dbx.DBTX, comisionID int64, clases []Clase) error {
	query :=
		`INSERT INTO comision_clases
		     (comision_id, dia, hora_desde, hora_hasta, docente_id, docente_suplente_id)
		 VALUES ($1, $2, $3::time, $4::time, $5, $6)
		 `

	for _, cl := range clases {
		_, err := tx.ExecContext(ctx, query,
			comisionID, cl.Dia, cl.HoraDesde, cl.HoraHasta, cl.Docente, cl.DocenteSuplente)
		if err != nil {
			return fmt.Errorf("error performing sql request: %v", err)
		}
	}
	return nil
}

func (r *PostgresRepository) SetActiva(ctx context.Context, id int64, activa bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE comisiones SET activa = $1 WHERE id = $2`, activa, id)
	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}

	return nil
}

// Duplicar copies the sections of anioDesde, with their weekly slots, into
// anioHasta. Sections whose name already exists in the target year are
// skipped. Copies start active. Returns the number of sections copied.
func (r *PostgresRepository) Duplicar(ctx context.Context, anioDesde, anioHasta int) (int, error) {
	copied := 0

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		query :=
			`INSERT INTO comisiones (anio, nombre, cupo, activa, curso_id)
			 SELECT $2, c.nombre, c.cupo, true, c.curso_id
			 FROM comisiones c
			 WHERE c.anio = $1
			   AND NOT EXISTS (SELECT 1 FROM comisiones e WHERE e.anio = $2 AND e.nombre = c.nombre)
			 RETURNING id, nombre
			 `

		rows, err := tx.QueryContext(ctx, query, anioDesde, anioHasta)
		if err != nil {
			return fmt.Errorf("error performing sql request: %v", err)
		}

		type nuevo struct {
			id     int64
			nombre string
		}
		nuevos := []nuevo{}
		for rows.Next() {
			var n nuevo
			if err := rows.Scan(&n.id, &n.nombre); err != nil {
				rows.Close()
				return err
			}
			nuevos = append(nuevos, n)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return err
		}
		rows.Close()

		clasesQuery :=
			`INSERT INTO comision_clases
			     (comision_id, dia, hora_desde, hora_hasta, docente_id, docente_suplente_id)
			 SELECT $1, cc.dia, cc.hora_desde, cc.hora_hasta, cc.docente_id, cc.docente_suplente_id
			 FROM comision_clases cc
			 JOIN comisiones src ON src.id = cc.comision_id
			 WHERE src.anio = $2 AND src.nombre = $3
			 `

		for _, n := range nuevos {
			if _, err := tx.ExecContext(ctx, clasesQuery, n.id, anioDesde, n.nombre); err != nil {
				return fmt.Errorf("error performing sql request: %v", err)
			}
		}

		copied = len(nuevos)
		return nil
	})
	if err != nil {
		return 0, err
	}

	return copied, nil
}
