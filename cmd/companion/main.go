package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/carecompanion/companion-cli/internal/cli"
)

func main() {
	// A .env in the working directory can carry COMPANION_API_URL and
	// COMPANION_TOKEN; absence is fine.
	_ = godotenv.Load()

	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
