package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dserranox/blschool-intranet/internal/server/cursos"
)

type cursoApi struct {
	svc CursoService
}

func registerCursoAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc CursoService) {
	api := cursoApi{svc: svc}

	cg := g.Group("/cursos", jwt)
	cg.GET("", api.search)
	cg.POST("", api.create)
	cg.GET("/:id", api.retrieve)
	cg.PUT("/:id", api.update)
	cg.DELETE("/:id", api.destroy)
}

func (api *cursoApi) search(ctx echo.Context) error {
	out, err := api.svc.Buscar(ctx.Request().Context(), ctx.QueryParam("filtro"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, out)
}

func (api *cursoApi) retrieve(ctx echo.Context) error {
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

func (api *cursoApi) create(ctx echo.Context) error {
	var data cursos.Input
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

func (api *cursoApi) update(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	var data cursos.Input
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

func (api *cursoApi) destroy(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	if err := api.svc.Eliminar(ctx.Request().Context(), id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
