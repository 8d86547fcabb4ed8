package httpapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dserranox/blschool-intranet/internal/server/comisiones"
)

type comisionApi struct {
	svc ComisionService
}

func registerComisionAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc ComisionService) {
	api := comisionApi{svc: svc}

	cg := g.Group("/comisiones", jwt)
	cg.GET("/activas", api.activas)
	cg.GET("/anios", api.anios)
	cg.GET("/anio/:anio", api.byAnio)
	cg.POST("", api.create)
	cg.POST("/duplicar", api.duplicar)
	cg.GET("/:id", api.retrieve)
	cg.PUT("/:id", api.update)
	cg.PATCH("/:id/activar", api.activar)
	cg.PATCH("/:id/desactivar", api.desactivar)
}

func (api *comisionApi) activas(ctx echo.Context) error {
	out, err := api.svc.ListarActivas(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, out)
}

func (api *comisionApi) anios(ctx echo.Context) error {
	out, err := api.svc.Anios(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, out)
}

func (api *comisionApi) byAnio(ctx echo.Context) error {
	anio, err := strconv.Atoi(ctx.Param("anio"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid anio")
	}

	out, err := api.svc.BuscarPorAnio(ctx.Request().Context(), anio)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, out)
}

func (api *comisionApi) retrieve(ctx echo.Context) error {
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

func (api *comisionApi) create(ctx echo.Context) error {
	var data comisiones.Input
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

func (api *comisionApi) update(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	var data comisiones.Input
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

func (api *comisionApi) activar(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	if err := api.svc.Activar(ctx.Request().Context(), id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *comisionApi) desactivar(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	if err := api.svc.Desactivar(ctx.Request().Context(), id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// duplicar copies one year's sections into another. The years come as query
// parameters to match the client call.
func (api *comisionApi) duplicar(ctx echo.Context) error {
	anioDesde, err := strconv.Atoi(ctx.QueryParam("anioDesde"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid anioDesde")
	}
	anioHasta, err := strconv.Atoi(ctx.QueryParam("anioHasta"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid anioHasta")
	}

	copied, err := api.svc.Duplicar(ctx.Request().Context(), anioDesde, anioHasta)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"copiadas": copied})
}
