package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/peterkuimelis/fmx/internal/ai"
	"github.com/peterkuimelis/fmx/internal/console"
	"github.com/peterkuimelis/fmx/internal/game"
	"github.com/peterkuimelis/fmx/internal/log"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "play":
		runPlay(os.Args[2:])
	case "sim":
		runSim(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  fmx play [options]   Duel the built-in opponent at the terminal")
	fmt.Println("  fmx sim [options]    Watch two search opponents duel each other")
	fmt.Println()
	fmt.Println("Run 'fmx play -h' or 'fmx sim -h' for the options of each command.")
}

func runPlay(args []string) {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	difficulty := fs.String("difficulty", "normal", "opponent strength: easy, normal, hard, or expert")
	profile := fs.String("profile", "default", "opponent style: default, aggressive, or cautious")
	seed := fs.Int64("seed", 0, "deal seed (0 for a random deal)")
	deckSize := fs.Int("deck-size", 0, "cards dealt per deck (10-40, 0 for the default)")
	catalogFile := fs.String("catalog", "", "path to a card catalog YAML file (empty for the builtin roster)")
	decksFile := fs.String("decks", "", "path to a decks YAML file")
	deckNum := fs.Int("deck", 0, "your deck number from the decks file")
	oppDeckNum := fs.Int("opponent-deck", 0, "opponent deck number from the decks file")
	name := fs.String("name", "You", "your display name")
	verbose := fs.Bool("verbose", false, "log search diagnostics")
	fs.Parse(args)

	setupLogging(*verbose)

	depth, ok := ai.DepthByName(*difficulty)
	if !ok {
		fatal(fmt.Errorf("unknown difficulty %q", *difficulty))
	}
	weights, ok := ai.WeightsByName(*profile)
	if !ok {
		fatal(fmt.Errorf("unknown profile %q", *profile))
	}

	cat, err := loadCatalog(*catalogFile)
	if err != nil {
		fatal(err)
	}

	cfg := game.DuelConfig{
		Catalog:  cat,
		Logger:   log.NewTextLogger(os.Stdout),
		Seed:     *seed,
		DeckSize: *deckSize,
		Names:    [2]string{*name, "CPU"},
	}
	if *deckNum != 0 || *oppDeckNum != 0 {
		if *deckNum == 0 || *oppDeckNum == 0 {
			fatal(fmt.Errorf("-deck and -opponent-deck must be given together"))
		}
		if *decksFile == "" {
			fatal(fmt.Errorf("-deck requires a decks file, pass -decks as well"))
		}
		yourDeck, yours, err := game.DeckByNumber(*decksFile, cat, *deckNum)
		if err != nil {
			fatal(err)
		}
		oppDeck, theirs, err := game.DeckByNumber(*decksFile, cat, *oppDeckNum)
		if err != nil {
			fatal(err)
		}
		cfg.Decks = [2][]*game.Card{yours, theirs}
		fmt.Printf("Decks: %s vs %s\n", yourDeck, oppDeck)
	}

	human := console.New(game.SeatHuman, os.Stdin, os.Stdout)
	machine := ai.NewController(ai.NewEngine(depth, weights))

	fmt.Printf("Dueling a %s opponent. Good luck!\n", ai.DifficultyName(depth))

	duel := game.NewDuel(cfg, human, machine)
	if _, err := duel.Run(context.Background()); err != nil {
		fatal(err)
	}

	fmt.Println()
	fmt.Println("══════════════════════════════════════")
	fmt.Println("              DUEL OVER")
	fmt.Println("══════════════════════════════════════")
	fmt.Println(duel.State.Result)
}

func runSim(args []string) {
	fs := flag.NewFlagSet("sim", flag.ExitOnError)
	difficulty1 := fs.String("difficulty", "normal", "first opponent strength: easy, normal, hard, or expert")
	difficulty2 := fs.String("opponent-difficulty", "normal", "second opponent strength")
	profile1 := fs.String("profile", "default", "first opponent style: default, aggressive, or cautious")
	profile2 := fs.String("opponent-profile", "default", "second opponent style")
	seed := fs.Int64("seed", 0, "deal seed (0 for a random deal)")
	deckSize := fs.Int("deck-size", 0, "cards dealt per deck (10-40, 0 for the default)")
	catalogFile := fs.String("catalog", "", "path to a card catalog YAML file (empty for the builtin roster)")
	turns := fs.Int("turns", 0, "turn limit before the duel is called a tie (0 for the default)")
	games := fs.Int("games", 1, "number of duels to play")
	verbose := fs.Bool("verbose", false, "log search diagnostics")
	fs.Parse(args)

	setupLogging(*verbose)
	if *games < 1 {
		*games = 1
	}

	depth1, ok := ai.DepthByName(*difficulty1)
	if !ok {
		fatal(fmt.Errorf("unknown difficulty %q", *difficulty1))
	}
	depth2, ok := ai.DepthByName(*difficulty2)
	if !ok {
		fatal(fmt.Errorf("unknown difficulty %q", *difficulty2))
	}
	weights1, ok := ai.WeightsByName(*profile1)
	if !ok {
		fatal(fmt.Errorf("unknown profile %q", *profile1))
	}
	weights2, ok := ai.WeightsByName(*profile2)
	if !ok {
		fatal(fmt.Errorf("unknown profile %q", *profile2))
	}

	cat, err := loadCatalog(*catalogFile)
	if err != nil {
		fatal(err)
	}

	p1 := ai.NewController(ai.NewEngine(depth1, weights1))
	p2 := ai.NewController(ai.NewEngine(depth2, weights2))

	fmt.Printf("CPU1 (%s, %s) vs CPU2 (%s, %s)\n",
		ai.DifficultyName(depth1), *profile1, ai.DifficultyName(depth2), *profile2)

	var wins [2]int
	ties := 0
	for i := 0; i < *games; i++ {
		cfg := game.DuelConfig{
			Catalog:  cat,
			Seed:     *seed,
			DeckSize: *deckSize,
			MaxTurns: *turns,
			Names:    [2]string{"CPU1", "CPU2"},
		}
		if *seed != 0 {
			cfg.Seed = *seed + int64(i)
		}
		// Narrate a single exhibition; stay quiet over a series.
		if *games == 1 {
			cfg.Logger = log.NewTextLogger(os.Stdout)
		}

		duel := game.NewDuel(cfg, p1, p2)
		winner, err := duel.Run(context.Background())
		if err != nil {
			fatal(err)
		}
		if winner >= 0 {
			wins[winner]++
		} else {
			ties++
		}
		if *games > 1 {
			fmt.Printf("Game %d: %s\n", i+1, duel.State.Result)
		} else {
			fmt.Println()
			fmt.Printf("Result: %s\n", duel.State.Result)
		}
	}

	if *games > 1 {
		fmt.Println()
		fmt.Printf("Series: CPU1 %d, CPU2 %d, ties %d\n", wins[0], wins[1], ties)
	}
	fmt.Printf("CPU1 searched %d nodes over %d moves\n", totalNodes(p1.Moves), len(p1.Moves))
	fmt.Printf("CPU2 searched %d nodes over %d moves\n", totalNodes(p2.Moves), len(p2.Moves))
}

func loadCatalog(path string) (*game.Catalog, error) {
	if path == "" {
		return game.DefaultCatalog(), nil
	}
	return game.LoadCatalogFile(path)
}

func totalNodes(moves []ai.SearchStats) int {
	total := 0
	for _, st := range moves {
		total += st.Nodes
	}
	return total
}

func setupLogging(verbose bool) {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
