// Package main provides the entry point for the hirecaliber recruiting console.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"github.com/jonathan/hire-caliber/internal/apiclient"
	"github.com/jonathan/hire-caliber/internal/config"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError prints err and, for a rejected credential, how to supply one.
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	if apiclient.IsUnauthorized(err) {
		fmt.Fprintf(w, "The backend rejected the request as unauthenticated. Add an Authorization header under \"headers\" in the --config file, or check that %s points at the right backend.\n", config.EnvAPIURL)
	}
}
