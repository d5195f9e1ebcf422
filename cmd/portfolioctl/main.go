package main

import (
	"fmt"
	"os"

	"github.com/folio-dev/portfolio-api/internal/commands"
	"github.com/folio-dev/portfolio-api/internal/config"
)

func main() {
	cfg := config.Load()

	if err := commands.Execute(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
