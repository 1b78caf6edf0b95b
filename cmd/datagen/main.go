// Command datagen writes a synthetic data resource in the same shape the
// dashboard reads, for seeding a fresh deployment.
package main

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"time"

	"pulseboard/internal/config"
	"pulseboard/internal/services/generator"
)

func main() {
	config.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	out := config.GetEnv("DATAGEN_OUT", cfg.DataFile)
	force := config.GetBoolEnv("DATAGEN_FORCE", false)

	if _, err := os.Stat(out); err == nil && !force {
		log.Printf("Data file %s already exists, set DATAGEN_FORCE=true to overwrite", out)
		return
	}

	g := generator.New(nil)
	if seed := config.GetIntEnv("DATAGEN_SEED", 0); seed != 0 {
		g = generator.NewSeeded(uint64(seed))
	}

	data, err := json.MarshalIndent(g.Generate(time.Now()), "", "  ")
	if err != nil {
		log.Fatal("Failed to encode snapshot:", err)
	}

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		log.Fatal("Failed to create output directory:", err)
	}
	if err := os.WriteFile(out, append(data, '\n'), 0o644); err != nil {
		log.Fatal("Failed to write data file:", err)
	}

	log.Printf("✅ Wrote synthetic dashboard data to %s", out)
}
