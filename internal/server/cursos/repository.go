package cursos

import (
	"context"
)

type Repository interface {
	Search(ctx context.Context, filtro string) ([]Curso, error)
	Get(ctx context.Context, id int64) (*Curso, error)
	Create(ctx context.Context, in *Input) (int64, error)
	Update(ctx context.Context, id int64, in *Input) error
	Delete(ctx context.Context, id int64) error
}
