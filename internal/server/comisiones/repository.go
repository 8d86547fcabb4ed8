package comisiones

import (
	"context"
)

type Repository interface {
	ListActivas(ctx context.Context) ([]Activa, error)
	Anios(ctx context.Context) ([]int, error)
	ListByAnio(ctx context.Context, anio int) ([]Comision, error)
	Get(ctx context.Context, id int64) (*Comision, error)
	Create(ctx context.Context, in *Input) (int64, error)
	Update(ctx context.Context, id int64, in *Input) error
	SetActiva(ctx context.Context, id int64, activa bool) error
	Duplicar(ctx context.Context, anioDesde, anioHasta int) (int, error)
}
