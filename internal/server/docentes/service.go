package docentes

import (
	"context"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Listar(ctx context.Context) ([]Docente, error) {
	return s.repo.List(ctx)
}

func (s *Service) Obtener(ctx context.Context, id int64) (*Docente, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Crear(ctx context.Context, in *Input) (*Docente, error) {
	id, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Modificar(ctx context.Context, id int64, in *Input) (*Docente, error) {
	if err := s.repo.Update(ctx, id, in); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Activar(ctx context.Context, id int64) error {
	return s.repo.SetActivo(ctx, id, true)
}

func (s *Service) Desactivar(ctx context.Context, id int64) error {
	return s.repo.SetActivo(ctx, id, false)
}
