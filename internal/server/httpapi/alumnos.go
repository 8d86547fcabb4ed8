package httpapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dserranox/blschool-intranet/internal/server/alumnos"
)

type alumnoApi struct {
	svc AlumnoService
}

func registerAlumnoAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc AlumnoService) {
	api := alumnoApi{svc: svc}

	ag := g.Group("/alumnos", jwt)
	ag.GET("", api.list)
	ag.POST("", api.create)
	ag.GET("/:id", api.retrieve)
	ag.PUT("/:id", api.update)
	ag.PUT("/:id/baja", api.baja)
}

// pathID parses the :id path parameter.
func pathID(ctx echo.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func (api *alumnoApi) list(ctx echo.Context) error {
	out, err := api.svc.Listar(ctx.Request().Context(), ctx.QueryParam("estado"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, out)
}

func (api *alumnoApi) retrieve(ctx echo.Context) error {
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

func (api *alumnoApi) create(ctx echo.Context) error {
	var data alumnos.Input
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

func (api *alumnoApi) update(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	var data alumnos.Input
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

func (api *alumnoApi) baja(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	if err := api.svc.Baja(ctx.Request().Context(), id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
