package main

import (
	"context"
	"log"
	"os"

	"github.com/KirkDiggler/bip39dice/internal/handlers/cli"
)

var version = "0.1"

func main() {
	log.SetFlags(0)

	root := cli.NewRootCommand(&cli.Config{Version: version})
	if err := root.ExecuteContext(context.Background()); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}
