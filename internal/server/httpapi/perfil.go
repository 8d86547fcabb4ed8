package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type perfilApi struct {
	svc UsuarioService
}

func registerPerfilAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc UsuarioService) {
	api := perfilApi{svc: svc}

	pg := g.Group("/perfil", jwt)
	pg.GET("", api.perfil)
	pg.GET("/dashboard", api.dashboard)
}

// perfil returns the profile of the authenticated account.
func (api *perfilApi) perfil(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}

	p, err := api.svc.Perfil(ctx.Request().Context(), claims.Username)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, p)
}

func (api *perfilApi) dashboard(ctx echo.Context) error {
	stats, err := api.svc.Estadisticas(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, stats)
}
