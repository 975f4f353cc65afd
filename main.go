package main

import (
	"context"
	"fmt"
	"os"

	"jobservice/api/internal/cli"
)

// @title Job API
// @version 1.0
// @description CRUD over an in-memory collection of jobs.
// @host localhost:3000
// @BasePath /
func main() {
	rootCmd := cli.BuildCLI()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
