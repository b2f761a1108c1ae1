package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/peterkuimelis/fmx/internal/game"
	fmxmcp "github.com/peterkuimelis/fmx/internal/mcp"
)

func main() {
	catalogFile := flag.String("catalog", "", "path to a card catalog YAML file (empty for the builtin roster)")
	decksFile := flag.String("decks", "", "path to a decks YAML file for numbered deck selection")
	verbose := flag.Bool("verbose", false, "log search diagnostics")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cat := game.DefaultCatalog()
	if *catalogFile != "" {
		loaded, err := game.LoadCatalogFile(*catalogFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cat = loaded
	}

	svc := fmxmcp.NewService(cat, *decksFile)

	s := server.NewMCPServer("fmx", "1.0.0")
	svc.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
