package docentes

import (
	"context"
)

type Repository interface {
	List(ctx context.Context) ([]Docente, error)
	Get(ctx context.Context, id int64) (*Docente, error)
	Create(ctx context.Context, in *Input) (int64, error)
	Update(ctx context.Context, id int64, in *Input) error
	SetActivo(ctx context.Context, id int64, activo bool) error
}
