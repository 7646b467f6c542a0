package main

import (
	"flag"
	"log"

	"github.com/Adityakk9031/FirAgent/cmd"
)

// Set with -ldflags "-X main.apiVersion=..."
var apiVersion = "dev"

func main() {
	shouldRunMigrations := flag.Bool("migrations", false, "Run migrations")
	shouldRunServer := flag.Bool("server", false, "Run server")
	flag.Parse()

	compiled := cmd.CompiledConfig{Version: apiVersion}

	if *shouldRunMigrations {
		if err := cmd.RunMigrations(); err != nil {
			log.Fatal(err)
		}
	}
	if *shouldRunServer {
		if err := cmd.RunServer(compiled); err != nil {
			log.Fatal(err)
		}
	}
}
