package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"

	"github.com/example/koagen/internal/cli"
	"github.com/example/koagen/internal/scaffold"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.RootCmd().ExecuteContext(ctx); err != nil {
		red := color.New(color.FgRed)
		if scaffold.IsInputError(err) {
			fmt.Fprintf(os.Stderr, "%s %v\n", red.Sprint("invalid table statement:"), err)
		} else {
			fmt.Fprintf(os.Stderr, "%s %v\n", red.Sprint("error:"), err)
		}
		os.Exit(1)
	}
}
