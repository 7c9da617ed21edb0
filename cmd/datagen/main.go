package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"flowcast/cmd/datagen/engine"
)

func main() {
	scenario := flag.String("scenario", "steady", "Scenario to generate: steady, chaos, drift, nosignal")
	out := flag.String("out", "backlog.csv", "Output CSV path")
	count := flag.Int("count", 200, "Number of work items to generate")
	seed := flag.Int64("seed", 1, "Random seed")
	flag.Parse()

	cfg := engine.GeneratorConfig{
		Scenario: *scenario,
		Count:    *count,
		Seed:     *seed,
		Now:      time.Now(),
	}

	fmt.Printf("Generating scenario %q (count: %d) to %s...\n", cfg.Scenario, cfg.Count, *out)

	rows := engine.Generate(cfg)
	if err := engine.Save(*out, rows); err != nil {
		fmt.Printf("Failed to save dataset: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Done.")
}
