package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Alumnos(ctx context.Context, args []string) error
	Alumno(ctx context.Context, args []string) error
	BajaAlumno(ctx context.Context, args []string) error
	Docentes(ctx context.Context) error
	Docente(ctx context.Context, args []string) error
	Cursos(ctx context.Context, args []string) error
	Comisiones(ctx context.Context, args []string) error
	Activas(ctx context.Context) error
	Anios(ctx context.Context) error
	Duplicar(ctx context.Context, args []string) error
	ActivarComision(ctx context.Context, args []string) error
	DesactivarComision(ctx context.Context, args []string) error
}

// runREPL starts a simple read-eval-print loop for the intranet CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers should
// report their own errors. This keeps the REPL loop resilient and focused
// on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("intranet> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, dashboard, alumnos [estado], alumno <id>, baja <id>, docentes, docente <id>, cursos [filtro], comisiones <anio>, activas, anios, duplicar <desde> <hasta>, activar <id>, desactivar <id>, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "alumnos":
			_ = a.Alumnos(ctx, args)

		case "alumno":
			_ = a.Alumno(ctx, args)

		case "baja":
			_ = a.BajaAlumno(ctx, args)

		case "docentes":
			_ = a.Docentes(ctx)

		case "docente":
			_ = a.Docente(ctx, args)

		case "cursos":
			_ = a.Cursos(ctx, args)

		case "comisiones":
			_ = a.Comisiones(ctx, args)

		case "activas":
			_ = a.Activas(ctx)

		case "anios":
			_ = a.Anios(ctx)

		case "duplicar":
			_ = a.Duplicar(ctx, args)

		case "activar":
			_ = a.ActivarComision(ctx, args)

		case "desactivar":
			_ = a.DesactivarComision(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
