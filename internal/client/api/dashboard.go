package api

import "context"

type DashboardStats struct {
	AlumnosActivos    int `json:"alumnosActivos"`
	DocentesActivos   int `json:"docentesActivos"`
	CursosActivos     int `json:"cursosActivos"`
	ComisionesActivas int `json:"comisionesActivas"`
}

func (c *Client) ObtenerEstadisticas(ctx context.Context) (*DashboardStats, error) {
	var out DashboardStats
	if err := c.get(ctx, "/perfil/dashboard", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
