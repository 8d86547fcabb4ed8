package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type authApi struct {
	svc UsuarioService
}

func registerAuthAPI(g *echo.Group, svc UsuarioService) {
	api := authApi{svc: svc}

	g.POST("/auth/login", api.login)
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (api *authApi) login(ctx echo.Context) error {
	var data loginRequest
	if err := ctx.Bind(&data); err != nil {
		return err
	}
	if err := ctx.Validate(&data); err != nil {
		return err
	}

	res, err := api.svc.Login(ctx.Request().Context(), data.Username, data.Password)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, res)
}
