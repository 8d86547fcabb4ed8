package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

// Run starts the interactive loop. It returns when the user exits or stdin
// closes.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Intranet Escolar CLI (type 'help' for commands)")
	if a.isLoggedIn() {
		fmt.Fprintf(a.out, "Resumed session for %s\n", a.state.Current().Username)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}
