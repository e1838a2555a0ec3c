package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/tennissim/internal/estimator"
	"github.com/lox/tennissim/internal/playercfg"
	"github.com/lox/tennissim/internal/randutil"
	"github.com/lox/tennissim/internal/sim"
)

type CLI struct {
	Players      []string `arg:"" help:"Two player names from the stats file" required:"true"`
	Stats        string   `short:"s" default:"players.hcl" help:"HCL file with player statistics"`
	Trials       int      `short:"n" default:"10000" help:"Number of simulated matches"`
	BestOf       int      `default:"3" help:"Match length (3 or 5)"`
	FinalSet     string   `default:"normal" enum:"normal,super,none" help:"Deciding-set tiebreak policy"`
	NoAdjustment bool     `help:"Disable opponent adjustment"`
	Seed         *int64   `help:"Random seed for reproducible results"`
	Workers      int      `default:"1" help:"Worker goroutines (1 keeps runs deterministic)"`
	Sample       int      `help:"Print this many example simulated matches first"`
	Verbose      bool     `short:"v" help:"Verbose logging"`
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	playerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	probStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	intervalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	scoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	logger := log.New(os.Stderr)
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if len(cli.Players) != 2 {
		fmt.Fprintf(os.Stderr, "Expected exactly 2 player names, got %d\n", len(cli.Players))
		ctx.Exit(1)
	}

	statsFile, err := playercfg.Load(cli.Stats)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", cli.Stats, err)
		ctx.Exit(1)
	}

	var players [2]sim.PlayerStats
	for i, name := range cli.Players {
		stats, ok := statsFile.Lookup(name)
		if !ok {
			fmt.Fprintf(os.Stderr, "Player %q not found in %s\n", name, cli.Stats)
			ctx.Exit(1)
		}
		players[i] = stats
	}

	simCfg := sim.DefaultConfig()
	simCfg.UseAdjustment = !cli.NoAdjustment

	if cli.Sample > 0 {
		printSampleMatches(cli, players, simCfg)
	}

	startTime := time.Now()
	result, err := estimator.Estimate(players[0], players[1], estimator.Config{
		Trials:           cli.Trials,
		BestOf:           cli.BestOf,
		FinalSetTiebreak: sim.TiebreakPolicy(cli.FinalSet),
		Sim:              simCfg,
		Seed:             cli.Seed,
		Workers:          cli.Workers,
		Logger:           logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}

	displayResult(cli, result, time.Since(startTime))
}

// printSampleMatches shows a few individual simulated matches so the
// aggregate numbers can be eyeballed against plausible scorelines.
func printSampleMatches(cli CLI, players [2]sim.PlayerStats, simCfg sim.Config) {
	rng := randutil.NewRandom()
	if cli.Seed != nil {
		rng = randutil.New(*cli.Seed)
	}
	s := sim.New(rng, simCfg)

	fmt.Println(headerStyle.Render("Sample matches"))
	for i := 0; i < cli.Sample; i++ {
		match := s.Match(players[0], players[1], cli.BestOf, sim.TiebreakPolicy(cli.FinalSet))
		winner := cli.Players[0]
		if match.Winner == sim.P2 {
			winner = cli.Players[1]
		}
		fmt.Printf("  %s  %s\n", scoreStyle.Render(match.Score), playerStyle.Render(winner))
	}
	fmt.Println()
}

func displayResult(cli CLI, result estimator.Result, duration time.Duration) {
	fmt.Println(headerStyle.Render(fmt.Sprintf("Win probability (%d trials, best of %d)", result.Trials, cli.BestOf)))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  %s\t%s\n",
		playerStyle.Render(cli.Players[0]),
		probStyle.Render(fmt.Sprintf("%.4f", result.P1WinProb)))
	fmt.Fprintf(w, "  %s\t%s\n",
		playerStyle.Render(cli.Players[1]),
		probStyle.Render(fmt.Sprintf("%.4f", result.P2WinProb)))
	fmt.Fprintf(w, "  %s\t%s\n",
		"95% CI",
		intervalStyle.Render(fmt.Sprintf("[%.4f, %.4f]", result.Lower, result.Upper)))
	w.Flush()

	fmt.Printf("\nSimulated %d matches in %v\n", result.Trials, duration.Round(time.Millisecond))
}
