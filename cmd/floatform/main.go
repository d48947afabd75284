package main

import (
	"context"
	"os"

	"github.com/goliatone/go-floatform/internal/cli"
)

func main() {
	os.Exit(cli.Execute(context.Background()))
}
