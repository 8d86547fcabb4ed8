package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dserranox/blschool-intranet/internal/common"
)

func TestCrearYModificarAlumno(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req AlumnoRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/alumnos":
			require.Equal(t, "Gomez", req.Apellidos)
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(Alumno{ID: 5, Apellidos: req.Apellidos, Estado: req.Estado})
		case r.Method == http.MethodPut && r.URL.Path == "/alumnos/5":
			_ = json.NewEncoder(w).Encode(Alumno{ID: 5, Apellidos: req.Apellidos, Estado: req.Estado})
		default:
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, srv.URL, staticToken("tok"))

	al, err := c.CrearAlumno(context.Background(), AlumnoRequest{Apellidos: "Gomez", Nombres: "Ana", Estado: "PREINSCRIPTO"})
	require.NoError(t, err)
	require.Equal(t, int64(5), al.ID)

	al, err = c.ModificarAlumno(context.Background(), 5, AlumnoRequest{Apellidos: "Gomez", Nombres: "Ana", Estado: "INSCRIPTO"})
	require.NoError(t, err)
	require.Equal(t, "INSCRIPTO", al.Estado)
}

func TestDocenteAltaModificacionYEstado(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)

		switch r.Method {
		case http.MethodPost, http.MethodPut:
			var req DocenteRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, "Suarez", req.Apellidos)
			_ = json.NewEncoder(w).Encode(Docente{ID: 2, Apellidos: req.Apellidos, Usuario: req.Usuario})
		case http.MethodPatch:
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Fatalf("unexpected method %s", r.Method)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, srv.URL, staticToken("tok"))
	ctx := context.Background()

	d, err := c.CrearDocente(ctx, DocenteRequest{Apellidos: "Suarez", Nombres: "Jorge", Usuario: "jsuarez"})
	require.NoError(t, err)
	require.Equal(t, "jsuarez", d.Usuario)

	_, err = c.ModificarDocente(ctx, 2, DocenteRequest{Apellidos: "Suarez", Nombres: "Jorge L"})
	require.NoError(t, err)

	require.NoError(t, c.DesactivarDocente(ctx, 2))
	require.NoError(t, c.ActivarDocente(ctx, 2))

	require.Equal(t, []string{
		"POST /docentes",
		"PUT /docentes/2",
		"PATCH /docentes/2/desactivar",
		"PATCH /docentes/2/activar",
	}, paths)
}

func TestCursoCicloCompleto(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/cursos":
			var req CursoRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(Curso{CurID: 9, CurCodigo: req.CurCodigo, CurNombre: req.CurNombre})
		case r.Method == http.MethodGet && r.URL.Path == "/cursos/9":
			_ = json.NewEncoder(w).Encode(Curso{CurID: 9, CurCodigo: "GTR1", ComisionesActivas: []string{"GTR1-A"}})
		case r.Method == http.MethodPut && r.URL.Path == "/cursos/9":
			var req CursoRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			_ = json.NewEncoder(w).Encode(Curso{CurID: 9, CurNombre: req.CurNombre})
		case r.Method == http.MethodDelete && r.URL.Path == "/cursos/9":
			// still has sections, the server refuses
			w.WriteHeader(http.StatusBadRequest)
		default:
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, srv.URL, staticToken("tok"))
	ctx := context.Background()

	cur, err := c.CrearCurso(ctx, CursoRequest{CurCodigo: "GTR1", CurNombre: "Guitarra 1"})
	require.NoError(t, err)
	require.Equal(t, int64(9), cur.CurID)

	cur, err = c.ObtenerCurso(ctx, 9)
	require.NoError(t, err)
	require.Equal(t, []string{"GTR1-A"}, cur.ComisionesActivas)

	_, err = c.ModificarCurso(ctx, 9, CursoRequest{CurCodigo: "GTR1", CurNombre: "Guitarra I"})
	require.NoError(t, err)

	err = c.EliminarCurso(ctx, 9)
	require.Error(t, err)
}

func TestEliminarCurso_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL, srv.URL, staticToken("tok"))
	require.ErrorIs(t, c.EliminarCurso(context.Background(), 99), common.ErrorNotFound)
}

func TestComisionEscrituraYConsulta(t *testing.T) {
	clases := []ComisionClase{{Dia: 2, HoraDesde: "18:00", HoraHasta: "19:30"}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/comisiones/anios":
			_ = json.NewEncoder(w).Encode([]int{2026, 2025})
		case r.Method == http.MethodPost && r.URL.Path == "/comisiones":
			var req ComisionRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Len(t, req.Clases, 1)
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(Comision{ComID: 3, Anio: req.Anio, Nombre: req.Nombre, Clases: req.Clases})
		case r.Method == http.MethodGet && r.URL.Path == "/comisiones/3":
			_ = json.NewEncoder(w).Encode(Comision{ComID: 3, Nombre: "GTR1-A", Clases: clases})
		case r.Method == http.MethodPut && r.URL.Path == "/comisiones/3":
			var req ComisionRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			_ = json.NewEncoder(w).Encode(Comision{ComID: 3, Cupo: req.Cupo})
		case r.Method == http.MethodPatch && r.URL.Path == "/comisiones/3/activar":
			w.WriteHeader(http.StatusNoContent)
		case r.Method == http.MethodPatch && r.URL.Path == "/comisiones/3/desactivar":
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, srv.URL, staticToken("tok"))
	ctx := context.Background()

	anios, err := c.ObtenerAnios(ctx)
	require.NoError(t, err)
	require.Equal(t, []int{2026, 2025}, anios)

	com, err := c.CrearComision(ctx, ComisionRequest{Anio: 2026, Nombre: "GTR1-A", CursoID: 9, Clases: clases})
	require.NoError(t, err)
	require.Equal(t, int64(3), com.ComID)

	com, err = c.ObtenerComision(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, "18:00", com.Clases[0].HoraDesde)

	_, err = c.ModificarComision(ctx, 3, ComisionRequest{Anio: 2026, Nombre: "GTR1-A", Cupo: 12})
	require.NoError(t, err)

	require.NoError(t, c.DesactivarComision(ctx, 3))
	require.NoError(t, c.ActivarComision(ctx, 3))
}
