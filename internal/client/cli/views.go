package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dserranox/blschool-intranet/internal/client/session"
)

// requireView navigates to route and reports whether the guard let us in.
func (a *App) requireView(route string) bool {
	return a.Navigate(route) == route
}

func parseID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("missing id")
	}
	return strconv.ParseInt(args[0], 10, 64)
}

// Dashboard shows the landing-page counters.
func (a *App) Dashboard(ctx context.Context) error {
	if !a.requireView(session.RouteDashboard) {
		return nil
	}
	stats, err := a.api.ObtenerEstadisticas(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	fmt.Fprintf(a.out, "Alumnos activos:    %d\n", stats.AlumnosActivos)
	fmt.Fprintf(a.out, "Docentes activos:   %d\n", stats.DocentesActivos)
	fmt.Fprintf(a.out, "Cursos activos:     %d\n", stats.CursosActivos)
	fmt.Fprintf(a.out, "Comisiones activas: %d\n", stats.ComisionesActivas)
	return nil
}

// Alumnos lists students. An optional first argument filters by estado
// (INSCRIPTO, PREINSCRIPTO, BAJA or TODOS); the default mirrors the web
// UI's initial filter.
func (a *App) Alumnos(ctx context.Context, args []string) error {
	if !a.requireView(viewAlumnos) {
		return nil
	}
	estado := "INSCRIPTO"
	if len(args) > 0 {
		estado = strings.ToUpper(args[0])
	}
	alumnos, err := a.api.ListarAlumnos(ctx, estado)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	for _, al := range alumnos {
		fmt.Fprintf(a.out, "%5d  %-25s %-12s %s\n", al.ID, al.Apellidos+", "+al.Nombres, al.Estado, al.Curso)
	}
	fmt.Fprintf(a.out, "%d alumnos\n", len(alumnos))
	return nil
}

func (a *App) Alumno(ctx context.Context, args []string) error {
	if !a.requireView(viewAlumnos) {
		return nil
	}
	id, err := parseID(args)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: alumno <id>")
		return err
	}
	al, err := a.api.ObtenerAlumno(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	fmt.Fprintf(a.out, "%s, %s (DNI %s)\n", al.Apellidos, al.Nombres, al.DNI)
	fmt.Fprintf(a.out, "Estado: %s  Email: %s\n", al.Estado, al.Email)
	if al.Comision != "" {
		fmt.Fprintf(a.out, "Comision: %s (%s)\n", al.Comision, al.Curso)
	}
	for _, tel := range al.Telefonos {
		principal := ""
		if tel.Principal {
			principal = " (principal)"
		}
		fmt.Fprintf(a.out, "Tel %s: %s%s\n", tel.Tipo, tel.Numero, principal)
	}
	return nil
}

// BajaAlumno withdraws a student.
func (a *App) BajaAlumno(ctx context.Context, args []string) error {
	if !a.requireView(viewAlumnos) {
		return nil
	}
	id, err := parseID(args)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: baja <id>")
		return err
	}
	if err := a.api.BajaAlumno(ctx, id); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	fmt.Fprintf(a.out, "Alumno %d dado de baja\n", id)
	return nil
}

func (a *App) Docentes(ctx context.Context) error {
	if !a.requireView(viewDocentes) {
		return nil
	}
	docentes, err := a.api.ListarDocentes(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	for _, d := range docentes {
		estado := "activo"
		if !d.Activo {
			estado = "inactivo"
		}
		fmt.Fprintf(a.out, "%5d  %-25s %-9s %d comisiones\n", d.ID, d.Apellidos+", "+d.Nombres, estado, d.Comisiones)
	}
	fmt.Fprintf(a.out, "%d docentes\n", len(docentes))
	return nil
}

func (a *App) Docente(ctx context.Context, args []string) error {
	if !a.requireView(viewDocentes) {
		return nil
	}
	id, err := parseID(args)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: docente <id>")
		return err
	}
	d, err := a.api.ObtenerDocente(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	fmt.Fprintf(a.out, "%s, %s (DNI %s)\n", d.Apellidos, d.Nombres, d.DNI)
	fmt.Fprintf(a.out, "Email: %s  Tel: %s\n", d.Email, d.Telefono)
	fmt.Fprintf(a.out, "Usuario: %s  Roles: %s\n", d.Usuario, strings.Join(d.Roles, ", "))
	return nil
}

func (a *App) Cursos(ctx context.Context, args []string) error {
	if !a.requireView(viewCursos) {
		return nil
	}
	cursos, err := a.api.BuscarCursos(ctx, strings.Join(args, " "))
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	for _, c := range cursos {
		fmt.Fprintf(a.out, "%5d  %-10s %-30s %d comisiones activas\n", c.CurID, c.CurCodigo, c.CurNombre, len(c.ComisionesActivas))
	}
	fmt.Fprintf(a.out, "%d cursos\n", len(cursos))
	return nil
}

// Comisiones lists one year's sections with their weekly schedule.
func (a *App) Comisiones(ctx context.Context, args []string) error {
	if !a.requireView(viewComisiones) {
		return nil
	}
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: comisiones <anio>")
		return fmt.Errorf("missing anio")
	}
	anio, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(a.out, "Usage: comisiones <anio>")
		return err
	}
	comisiones, err := a.api.BuscarComisionesPorAnio(ctx, anio)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	for _, c := range comisiones {
		estado := "activa"
		if !c.Activa {
			estado = "inactiva"
		}
		fmt.Fprintf(a.out, "%5d  %-20s %-30s %-8s %d/%d inscriptos\n", c.ComID, c.Nombre, c.CursoNombre, estado, c.Inscriptos, c.Cupo)
		for _, cl := range c.Clases {
			fmt.Fprintf(a.out, "       dia %d %s-%s %s\n", cl.Dia, cl.HoraDesde, cl.HoraHasta, cl.DocenteNombre)
		}
	}
	return nil
}

func (a *App) Activas(ctx context.Context) error {
	if !a.requireView(viewComisiones) {
		return nil
	}
	activas, err := a.api.ListarComisionesActivas(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	for _, c := range activas {
		fmt.Fprintf(a.out, "%5d  %-20s %s\n", c.ComID, c.Nombre, c.CursoNombre)
	}
	return nil
}

// Anios lists the school years that have sections loaded.
func (a *App) Anios(ctx context.Context) error {
	if !a.requireView(viewComisiones) {
		return nil
	}
	anios, err := a.api.ObtenerAnios(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	for _, anio := range anios {
		fmt.Fprintf(a.out, "%d\n", anio)
	}
	return nil
}

// Duplicar copies one year's sections into another, skipping names the
// target year already has.
func (a *App) Duplicar(ctx context.Context, args []string) error {
	if !a.requireView(viewComisiones) {
		return nil
	}
	if len(args) < 2 {
		fmt.Fprintln(a.out, "Usage: duplicar <anioDesde> <anioHasta>")
		return fmt.Errorf("missing anio")
	}
	desde, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(a.out, "Usage: duplicar <anioDesde> <anioHasta>")
		return err
	}
	hasta, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintln(a.out, "Usage: duplicar <anioDesde> <anioHasta>")
		return err
	}
	if err := a.api.DuplicarComisiones(ctx, desde, hasta); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	fmt.Fprintf(a.out, "Comisiones de %d duplicadas a %d\n", desde, hasta)
	return nil
}

func (a *App) ActivarComision(ctx context.Context, args []string) error {
	if !a.requireView(viewComisiones) {
		return nil
	}
	id, err := parseID(args)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: activar <id>")
		return err
	}
	if err := a.api.ActivarComision(ctx, id); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	fmt.Fprintf(a.out, "Comision %d activada\n", id)
	return nil
}

func (a *App) DesactivarComision(ctx context.Context, args []string) error {
	if !a.requireView(viewComisiones) {
		return nil
	}
	id, err := parseID(args)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: desactivar <id>")
		return err
	}
	if err := a.api.DesactivarComision(ctx, id); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	fmt.Fprintf(a.out, "Comision %d desactivada\n", id)
	return nil
}
