package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) record(name string) error { f.calls = append(f.calls, name); return nil }

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) Whoami(ctx context.Context) error    { return f.record("whoami") }
func (f *fakeExec) Dashboard(ctx context.Context) error { return f.record("dashboard") }
func (f *fakeExec) Alumnos(ctx context.Context, args []string) error {
	return f.record("alumnos")
}
func (f *fakeExec) Alumno(ctx context.Context, args []string) error {
	return f.record("alumno")
}
func (f *fakeExec) BajaAlumno(ctx context.Context, args []string) error {
	return f.record("baja")
}
func (f *fakeExec) Docentes(ctx context.Context) error { return f.record("docentes") }
func (f *fakeExec) Docente(ctx context.Context, args []string) error {
	return f.record("docente")
}
func (f *fakeExec) Cursos(ctx context.Context, args []string) error {
	return f.record("cursos")
}
func (f *fakeExec) Comisiones(ctx context.Context, args []string) error {
	return f.record("comisiones")
}
func (f *fakeExec) Activas(ctx context.Context) error { return f.record("activas") }
func (f *fakeExec) Anios(ctx context.Context) error   { return f.record("anios") }
func (f *fakeExec) Duplicar(ctx context.Context, args []string) error {
	return f.record("duplicar")
}
func (f *fakeExec) ActivarComision(ctx context.Context, args []string) error {
	return f.record("activar")
}
func (f *fakeExec) DesactivarComision(ctx context.Context, args []string) error {
	return f.record("desactivar")
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"dashboard",
		"alumnos INSCRIPTO",
		"alumno 42",
		"cursos guitarra",
		"comisiones 2026",
		"anios",
		"duplicar 2025 2026",
		"activar 3",
		"desactivar 3",
		"foobar",
		"logout",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	want := []string{"login", "dashboard", "alumnos", "alumno", "cursos", "comisiones", "anios", "duplicar", "activar", "desactivar", "logout"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, want)
	}
	for i, c := range exec.calls {
		if c != want[i] {
			t.Fatalf("call %d: got %q, want %q (all: %v)", i, c, want[i], exec.calls)
		}
	}
}

func TestRunREPL_ExitsOnQuitAndEOF(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	exec := &fakeExec{loggedIn: true}

	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("quit\nwhoami\n")))
	if len(exec.calls) != 0 {
		t.Fatalf("no commands should run after quit: %v", exec.calls)
	}

	// EOF terminates the loop as well
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("")))
}
