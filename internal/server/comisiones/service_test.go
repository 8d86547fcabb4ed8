package comisiones

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dserranox/blschool-intranet/internal/common"
)

type fakeRepo struct {
	duplicarDesde int
	duplicarHasta int
}

func (f *fakeRepo) ListActivas(ctx context.Context) ([]Activa, error)           { return nil, nil }
func (f *fakeRepo) Anios(ctx context.Context) ([]int, error)                    { return nil, nil }
func (f *fakeRepo) ListByAnio(ctx context.Context, anio int) ([]Comision, error) { return nil, nil }
func (f *fakeRepo) Get(ctx context.Context, id int64) (*Comision, error)        { return &Comision{}, nil }
func (f *fakeRepo) Create(ctx context.Context, in *Input) (int64, error)        { return 1, nil }
func (f *fakeRepo) Update(ctx context.Context, id int64, in *Input) error       { return nil }
func (f *fakeRepo) SetActiva(ctx context.Context, id int64, activa bool) error  { return nil }
func (f *fakeRepo) Duplicar(ctx context.Context, anioDesde, anioHasta int) (int, error) {
	f.duplicarDesde, f.duplicarHasta = anioDesde, anioHasta
	return 4, nil
}

func TestDuplicar_RejectsSameYear(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.Duplicar(context.Background(), 2026, 2026)
	require.ErrorIs(t, err, common.ErrorValidation)
}

func TestDuplicar_RejectsNonPositiveYears(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.Duplicar(context.Background(), 0, 2026)
	require.ErrorIs(t, err, common.ErrorValidation)
}

func TestDuplicar_Delegates(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	copied, err := svc.Duplicar(context.Background(), 2025, 2026)
	require.NoError(t, err)
	require.Equal(t, 4, copied)
	require.Equal(t, 2025, repo.duplicarDesde)
	require.Equal(t, 2026, repo.duplicarHasta)
}
