package alumnos

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

func (s *Service) Listar(ctx context.Context, estado string) ([]Alumno, error) {
	if estado != "" && estado != EstadoTodos && !ValidEstado(estado) {
		return nil, fmt.Errorf("%w: estado %q", common.ErrorValidation, estado)
	}
	return s.repo.List(ctx, estado)
}

func (s *Service) Obtener(ctx context.Context, id int64) (*Alumno, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Crear(ctx context.Context, in *Input) (*Alumno, error) {
	if !ValidEstado(in.Estado) {
		return nil, fmt.Errorf("%w: estado %q", common.ErrorValidation, in.Estado)
	}

	id, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Modificar(ctx context.Context, id int64, in *Input) (*Alumno, error) {
	if !ValidEstado(in.Estado) {
		return nil, fmt.Errorf("%w: estado %q", common.ErrorValidation, in.Estado)
	}

	if err := s.repo.Update(ctx, id, in); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Baja(ctx context.Context, id int64) error {
	return s.repo.Baja(ctx, id)
}
