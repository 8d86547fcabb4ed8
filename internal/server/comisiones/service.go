package comisiones

import (
	"context"
	"fmt"

	"github.com/dserranox/blschool-intranet/internal/common"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListarActivas(ctx context.Context) ([]Activa, error) {
	return s.repo.ListActivas(ctx)
}

func (s *Service) Anios(ctx context.Context) ([]int, error) {
	return s.repo.Anios(ctx)
}

func (s *Service) BuscarPorAnio(ctx context.Context, anio int) ([]Comision, error) {
	return s.repo.ListByAnio(ctx, anio)
}

func (s *Service) Obtener(ctx context.Context, id int64) (*Comision, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Crear(ctx context.Context, in *Input) (*Comision, error) {
	id, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Modificar(ctx context.Context, id int64, in *Input) (*Comision, error) {
	if err := s.repo.Update(ctx, id, in); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Activar(ctx context.Context, id int64) error {
	return s.repo.SetActiva(ctx, id, true)
}

func (s *Service) Desactivar(ctx context.Context, id int64) error {
	return s.repo.SetActiva(ctx, id, false)
}

// Duplicar copies one year's sections into another year.
func (s *Service) Duplicar(ctx context.Context, anioDesde, anioHasta int) (int, error) {
	if anioDesde == anioHasta {
		return 0, fmt.Errorf("%w: anioDesde y anioHasta son iguales", common.ErrorValidation)
	}
	if anioDesde <= 0 || anioHasta <= 0 {
		return 0, fmt.Errorf("%w: anio invalido", common.ErrorValidation)
	}
	return s.repo.Duplicar(ctx, anioDesde, anioHasta)
}
