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

func TestListarAlumnos_EstadoFilter(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/alumnos", r.URL.Path)
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode([]Alumno{{ID: 1, Apellidos: "Pérez", Estado: "INSCRIPTO"}})
	}))
	defer srv.Close()

	c := New(srv.URL, srv.URL, staticToken("tok"))

	out, err := c.ListarAlumnos(context.Background(), "INSCRIPTO")
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, "estado=INSCRIPTO", gotQuery)

	// TODOS is a wildcard, not a server-side filter
	_, err = c.ListarAlumnos(context.Background(), EstadoTodos)
	require.NoError(t, err)
	require.Equal(t, "", gotQuery)
}

func TestObtenerAlumno_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL, srv.URL, staticToken("tok"))
	_, err := c.ObtenerAlumno(context.Background(), 99)
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDuplicarComisiones_QueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/comisiones/duplicar", r.URL.Path)
		require.Equal(t, "2025", r.URL.Query().Get("anioDesde"))
		require.Equal(t, "2026", r.URL.Query().Get("anioHasta"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL, srv.URL, staticToken("tok"))
	require.NoError(t, c.DuplicarComisiones(context.Background(), 2025, 2026))
}

func TestUnauthenticatedRequestOmitsHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Empty(t, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode([]Curso{})
	}))
	defer srv.Close()

	c := New(srv.URL, srv.URL, staticToken(""))
	_, err := c.BuscarCursos(context.Background(), "")
	require.NoError(t, err)
}
