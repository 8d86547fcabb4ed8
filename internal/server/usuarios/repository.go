package usuarios

import (
	"context"
)

type Repository interface {
	GetByUsername(ctx context.Context, username string) (*Usuario, error)
	CountEstadisticas(ctx context.Context) (*DashboardStats, error)
}
