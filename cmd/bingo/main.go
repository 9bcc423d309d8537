// Command bingo generates a music bingo game from a playlist and prints the
// precomputed winner schedule. It is a demo front end for the engine; card
// rendering for print is out of scope.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"text/tabwriter"

	"go.uber.org/zap"

	"musicbingo/internal/app"
	"musicbingo/internal/config"
	"musicbingo/internal/domain"
	"musicbingo/internal/playlist"
)

// sampleSongs stands in for a playlist export when none is supplied.
var sampleSongs = []string{
	"Bohemian Rhapsody", "Stairway to Heaven", "Hotel California",
	"Imagine", "Smells Like Teen Spirit", "Billie Jean",
	"Sweet Child O' Mine", "Hey Jude", "Like a Rolling Stone",
	"Purple Haze", "What's Going On", "Respect",
	"Good Vibrations", "Johnny B. Goode", "I Want to Hold Your Hand",
	"God Only Knows", "A Day in the Life", "Layla",
	"Born to Run", "London Calling", "One", "Bittersweet Symphony",
	"Wonderwall", "Champagne Supernova", "Creep",
}

func main() {
	var (
		csvPath    = flag.String("csv", "", "Exportify CSV file to import; empty uses a built-in sample playlist")
		cards      = flag.Int("cards", 10, "number of bingo cards (1..100)")
		size       = flag.Int("size", 5, "card size NxN (3..7)")
		free       = flag.Bool("free", true, "free center space on odd-sized cards")
		seed       = flag.Int64("seed", 0, "random seed; 0 uses the current time")
		preset     = flag.String("rules", "", "rule preset id (built-ins: classic, diagonals)")
		confPath   = flag.String("config", "", "engine config JSON path")
		first      = flag.Int("first", 0, "target round for 1st place; 0 disables")
		second     = flag.Int("second", 0, "target round for 2nd place; 0 disables")
		third      = flag.Int("third", 0, "target round for 3rd place; 0 disables")
		verbose    = flag.Bool("v", false, "debug logging")
		milestones = flag.Bool("milestones", false, "print the per-card milestone sheet")
	)
	flag.Parse()

	log := newLogger(*verbose)
	defer log.Sync()

	if *confPath != "" {
		if err := config.LoadEngineConfig(*confPath); err != nil {
			log.Fatal("config load failed", zap.Error(err))
		}
	}

	titles := sampleSongs
	if *csvPath != "" {
		f, err := os.Open(*csvPath)
		if err != nil {
			log.Fatal("csv open failed", zap.Error(err))
		}
		titles, err = playlist.ParseExportifyCSV(f)
		f.Close()
		if err != nil {
			log.Fatal("csv import failed", zap.Error(err))
		}
	}
	pool := domain.NewPool(titles)
	log.Info("pool loaded", zap.Int("songs", pool.Len()))

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewSource(*seed))
	}

	rules := config.GetRules(*preset)
	cfg := app.Config{
		CardCount: *cards,
		CardSize:  *size,
		FreeSpace: *free,
		Rules:     rules,
		Targets:   targetRounds(rules, *first, *second, *third),
	}

	svc := app.NewService(rng, log)
	sched, err := svc.Run(pool, cfg)
	if err != nil {
		log.Fatal("scheduling failed", zap.Error(err))
	}

	printSchedule(sched, *milestones, rules)
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	log, err := cfg.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	return log
}

// targetRounds maps the three classic place flags onto the configured rules.
func targetRounds(rules []domain.WinRule, first, second, third int) []app.TargetRound {
	rounds := []int{first, second, third}
	var targets []app.TargetRound
	for i, r := range rounds {
		if r <= 0 || i >= len(rules) {
			continue
		}
		targets = append(targets, app.TargetRound{Place: rules[i].Place, Round: r})
	}
	return targets
}

func printSchedule(sched *app.Schedule, showMilestones bool, rules []domain.WinRule) {
	fmt.Printf("Schedule %s: %d cards, %d rounds\n\n", sched.ID, len(sched.Cards), len(sched.Calls))

	fmt.Println("Winners:")
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Place\tCard\tRound\tWin Type\tSong Called")
	for _, rec := range sched.Table {
		fmt.Fprintf(w, "%s\tCard #%d\t%d\t%s\t%s\n", rec.Place, rec.CardIndex+1, rec.Round, rec.WinType, rec.Item)
	}
	w.Flush()

	if !showMilestones {
		return
	}

	fmt.Println("\nOperator reference sheet:")
	w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprint(w, "Card")
	for _, r := range rules {
		fmt.Fprintf(w, "\t%s", r.Place)
	}
	fmt.Fprintln(w)
	for _, m := range sched.Milestones {
		fmt.Fprintf(w, "Card #%d", m.CardIndex+1)
		for _, round := range m.Rounds {
			if round == 0 {
				fmt.Fprint(w, "\t-")
			} else {
				fmt.Fprintf(w, "\tRound %d", round)
			}
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}
