package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/clems4ever/j48-json/j48"
)

func main() {
	// Paths are relative to the repository root
	pattern := "j48/testdata/*.txt"

	inputs, err := filepath.Glob(pattern)
	if err != nil {
		log.Fatalf("Invalid pattern %s: %v", pattern, err)
	}
	if len(inputs) == 0 {
		log.Fatalf("No input matches %s. Please run this command from the repository root.", pattern)
	}

	for _, inputFile := range inputs {
		f, err := os.Open(inputFile)
		if err != nil {
			log.Fatalf("Failed to open input file: %v", err)
		}
		root, err := j48.Parse(f)
		f.Close()
		if err != nil {
			log.Fatalf("Failed to parse %s: %v", inputFile, err)
		}

		var buf bytes.Buffer
		if err := j48.NewEncoder(&buf).Encode(root); err != nil {
			log.Fatalf("Failed to encode %s: %v", inputFile, err)
		}

		outputFile := strings.TrimSuffix(inputFile, ".txt") + "_golden.json"
		fmt.Printf("Writing %s...\n", outputFile)
		if err := os.WriteFile(outputFile, buf.Bytes(), 0644); err != nil {
			log.Fatalf("Failed to write output file: %v", err)
		}
	}

	fmt.Println("Done. Golden files updated.")
}
