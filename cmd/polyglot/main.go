package main

import (
	"log"
	"os"

	"polyglot/cmd/polyglot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Printf("❌ %v", err)
		os.Exit(1)
	}
}
