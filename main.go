package main

import (
	"os"

	"github.com/clems4ever/j48-json/cmd"
	"github.com/joho/godotenv"
)

func main() {
	// J48JSON_* settings may live in a local .env file.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
