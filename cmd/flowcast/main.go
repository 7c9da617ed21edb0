package main

import (
	"fmt"
	"os"

	"flowcast/cmd/flowcast/commands"
	"flowcast/internal/clierr"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(clierr.ExitCodeOf(err))
	}
}
