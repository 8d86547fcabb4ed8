package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dserranox/blschool-intranet/internal/server/docentes"
)

type docenteApi struct {
	svc DocenteService
}

// Teacher management is admin only.
func registerDocenteAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc DocenteService) {
	api := docenteApi{svc: svc}

	dg := g.Group("/docentes", jwt, adminMiddleware())
	dg.GET("", api.list)
	dg.POST("", api.create)
	dg.GET("/:id", api.retrieve)
	dg.PUT("/:id", api.update)
	dg.PATCH("/:id/activar", api.activar)
	dg.PATCH("/:id/desactivar", api.desactivar)
}

func (api *docenteApi) list(ctx echo.Context) error {
	out, err := api.svc.Listar(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, out)
}

func (api *docenteApi) retrieve(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	out, err := api.svc.Obtener(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, out)
}

func (api *docenteApi) create(ctx echo.Context) error {
	var data docentes.Input
	if err := ctx.Bind(&data); err != nil {
		return err
	}
	if err := ctx.Validate(&data); err != nil {
		return err
	}

	out, err := api.svc.Crear(ctx.Request().Context(), &data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, out)
}

func (api *docenteApi) update(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	var data docentes.Input
	if err := ctx.Bind(&data); err != nil {
		return err
	}
	if err := ctx.Validate(&data); err != nil {
		return err
	}

	out, err := api.svc.Modificar(ctx.Request().Context(), id, &data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, out)
}

func (api *docenteApi) activar(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	if err := api.svc.Activar(ctx.Request().Context(), id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *docenteApi) desactivar(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	if err := api.svc.Desactivar(ctx.Request().Context(), id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
