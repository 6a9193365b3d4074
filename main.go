package main

import (
	"log"
	"os"

	"github.com/jakebark/jsoncheck/internal/core"
	"github.com/jakebark/jsoncheck/internal/inputs"
)

func main() {
	log.SetFlags(0) // remove timestamp from prints

	userInput := inputs.ParseFlags()

	processor := core.NewProcessor(userInput, os.Stderr)

	if _, err := processor.Scan(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
