package usuarios

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

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*Usuario, error) {
	query :=
		`SELECT u.id, u.persona_id, u.username, u.password_hash, u.activo,
		        p.nombres, p.apellidos, p.email
		 FROM usuarios u
		 JOIN personas p ON p.id = u.persona_id
		 WHERE u.username = $1
		 `

	user := &Usuario{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID, &user.PersonaID, &user.Username, &user.PasswordHash, &user.Activo,
		&user.Nombres, &user.Apellidos, &user.Email)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	roles, err := r.getRoles(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	user.Roles = roles

	return user, nil
}

func (r *PostgresRepository) getRoles(ctx context.Context, usuarioID int64) ([]string, error) {
	query :=
		`SELECT rol FROM usuario_roles
		 WHERE usuario_id = $1
		 ORDER BY rol
		 `

	rows, err := r.db.QueryContext(ctx, query, usuarioID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	roles := []string{}
	for rows.Next() {
		var rol string
		if err := rows.Scan(&rol); err != nil {
			return nil, err
		}
		roles = append(roles, rol)
	}

	return roles, rows.Err()
}

func (r *PostgresRepository) CountEstadisticas(ctx context.Context) (*DashboardStats, error) {
	query :=
		`SELECT
		    (SELECT count(*) FROM alumnos WHERE estado = 'INSCRIPTO'),
		    (SELECT count(*) FROM docentes WHERE activo),
		    (SELECT count(*) FROM cursos c WHERE EXISTS
		        (SELECT 1 FROM comisiones WHERE curso_id = c.id AND activa)),
		    (SELECT count(*) FROM comisiones WHERE activa)
		 `

	stats := &DashboardStats{}
	err := r.db.QueryRowContext(ctx, query).Scan(
		&stats.AlumnosActivos, &stats.DocentesActivos, &stats.CursosActivos, &stats.ComisionesActivas)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return stats, nil
}
