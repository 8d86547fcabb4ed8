package cursos

import (
	"context"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Buscar(ctx context.Context, filtro string) ([]Curso, error) {
	return s.repo.Search(ctx, strings.TrimSpace(filtro))
}

func (s *Service) Obtener(ctx context.Context, id int64) (*Curso, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Crear(ctx context.Context, in *Input) (*Curso, error) {
	id, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Modificar(ctx context.Context, id int64, in *Input) (*Curso, error) {
	if err := s.repo.Update(ctx, id, in); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Eliminar(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
