package main

import (
	"fmt"
	"os"

	"github.com/arbiterhq/arbiter/internal/cli"
	"github.com/joho/godotenv"
)

func main() {
	// API keys may live in a local .env during development
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
