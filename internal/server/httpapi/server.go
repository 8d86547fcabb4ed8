// Package httpapi exposes the intranet over JSON HTTP. Routes, payload
// shapes and error mapping match what the terminal client consumes.
package httpapi

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/dserranox/blschool-intranet/internal/logging"
	"github.com/dserranox/blschool-intranet/internal/server/alumnos"
	"github.com/dserranox/blschool-intranet/internal/server/comisiones"
	"github.com/dserranox/blschool-intranet/internal/server/cursos"
	"github.com/dserranox/blschool-intranet/internal/server/docentes"
	"github.com/dserranox/blschool-intranet/internal/server/usuarios"
)

// Service interfaces consumed by the handlers. The concrete services of the
// domain packages satisfy them; tests provide stubs.
type (
	UsuarioService interface {
		Login(ctx context.Context, username, password string) (*usuarios.LoginResult, error)
		Perfil(ctx context.Context, username string) (*usuarios.Perfil, error)
		Estadisticas(ctx context.Context) (*usuarios.DashboardStats, error)
	}

	AlumnoService interface {
		Listar(ctx context.Context, estado string) ([]alumnos.Alumno, error)
		Obtener(ctx context.Context, id int64) (*alumnos.Alumno, error)
		Crear(ctx context.Context, in *alumnos.Input) (*alumnos.Alumno, error)
		Modificar(ctx context.Context, id int64, in *alumnos.Input) (*alumnos.Alumno, error)
		Baja(ctx context.Context, id int64) error
	}

	DocenteService interface {
		Listar(ctx context.Context) ([]docentes.Docente, error)
		Obtener(ctx context.Context, id int64) (*docentes.Docente, error)
		Crear(ctx context.Context, in *docentes.Input) (*docentes.Docente, error)
		Modificar(ctx context.Context, id int64, in *docentes.Input) (*docentes.Docente, error)
		Activar(ctx context.Context, id int64) error
		Desactivar(ctx context.Context, id int64) error
	}

	CursoService interface {
		Buscar(ctx context.Context, filtro string) ([]cursos.Curso, error)
		Obtener(ctx context.Context, id int64) (*cursos.Curso, error)
		Crear(ctx context.Context, in *cursos.Input) (*cursos.Curso, error)
		Modificar(ctx context.Context, id int64, in *cursos.Input) (*cursos.Curso, error)
		Eliminar(ctx context.Context, id int64) error
	}

	ComisionService interface {
		ListarActivas(ctx context.Context) ([]comisiones.Activa, error)
		Anios(ctx context.Context) ([]int, error)
		BuscarPorAnio(ctx context.Context, anio int) ([]comisiones.Comision, error)
		Obtener(ctx context.Context, id int64) (*comisiones.Comision, error)
		Crear(ctx context.Context, in *comisiones.Input) (*comisiones.Comision, error)
		Modificar(ctx context.Context, id int64, in *comisiones.Input) (*comisiones.Comision, error)
		Activar(ctx context.Context, id int64) error
		Desactivar(ctx context.Context, id int64) error
		Duplicar(ctx context.Context, anioDesde, anioHasta int) (int, error)
	}
)

type Options struct {
	Addr       string
	SecretKey  string
	Logger     logging.Logger
	Usuarios   UsuarioService
	Alumnos    AlumnoService
	Docentes   DocenteService
	Cursos     CursoService
	Comisiones ComisionService
}

type Server struct {
	opts *Options
	app  *echo.Echo
}

type payloadValidator struct {
	validate *validator.Validate
}

func (v *payloadValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func NewServer(opts *Options) *Server {
	s := &Server{
		opts: opts,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *Server) setup() {
	s.app.HideBanner = true
	s.app.Pre(middleware.RemoveTrailingSlash())
	s.app.Use(requestLogger(s.opts.Logger))
	s.app.Use(middleware.Recover())
	s.app.Validator = &payloadValidator{validate: validator.New()}
	s.app.HTTPErrorHandler = newHTTPErrorHandler(s.opts.Logger)

	api := s.app.Group("/api")
	jwt := bearerAuth([]byte(s.opts.SecretKey))

	registerAuthAPI(api, s.opts.Usuarios)
	registerPerfilAPI(api, jwt, s.opts.Usuarios)
	registerAlumnoAPI(api, jwt, s.opts.Alumnos)
	registerDocenteAPI(api, jwt, s.opts.Docentes)
	registerCursoAPI(api, jwt, s.opts.Cursos)
	registerComisionAPI(api, jwt, s.opts.Comisiones)
}

func (s *Server) Start() error {
	return s.app.Start(s.opts.Addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

// ServeHTTP makes the server usable with httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.app.ServeHTTP(w, r)
}
