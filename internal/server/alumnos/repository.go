package alumnos

import (
	"context"
)

type Repository interface {
	List(ctx context.Context, estado string) ([]Alumno, error)
	Get(ctx context.Context, id int64) (*Alumno, error)
	Create(ctx context.Context, in *Input) (int64, error)
	Update(ctx context.Context, id int64, in *Input) error
	Baja(ctx context.Context, id int64) error
}
