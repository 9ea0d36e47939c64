package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

// execute roda a CLI e devolve o código de saída. Erros de flag, de configuração e dos
// comandos sempre chegam ao operador por errOut.
func execute(ctx context.Context, args []string, errOut io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetErr(errOut)

	if err := root.ExecuteContext(ctx); err != nil {
		color.New(color.FgRed).Fprintf(errOut, "erro: %v\n", err)
		return 1
	}
	return 0
}
