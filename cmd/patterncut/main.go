// Command patterncut generates garment cutting plans from body measurements
// and serves them over HTTP.
//
// Build:
//
//	go build -o patterncut ./cmd/patterncut
//
// Examples:
//
//	patterncut generate --category robe --measure poitrine=92 --measure longueur=100 --fabric coton
//	patterncut generate --measurements mesures.csv --pdf plan.pdf --dxf plan.dxf
//	patterncut serve --port 10000
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
