package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/stockai/stockai-go/internal/cli"
)

func main() {
	// .env is optional; real environment variables win when both are set
	_ = godotenv.Load()

	rootCmd := cli.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
