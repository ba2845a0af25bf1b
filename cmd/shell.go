package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pable/go-league-stats/internal/aggregator"
	"github.com/pable/go-league-stats/internal/loader"
	"github.com/pable/go-league-stats/internal/report"
	"github.com/pable/go-league-stats/internal/storage"
)

var (
	cPrompt   = color.New(color.FgCyan, color.Bold)
	cMuted    = color.New(color.Faint)
	cError    = color.New(color.FgRed, color.Bold)
	cWarn     = color.New(color.FgYellow)
	cHeader   = color.New(color.FgCyan, color.Bold)
	cCmd      = color.New(color.FgYellow, color.Bold)
	cGreeting = color.New(color.Bold)
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive REPL session",
	Long:  "Open a persistent session against the snapshot database. Type 'help' for available commands.",
	Args:  cobra.NoArgs,
	RunE:  runShell,
}

func runShell(cmd *cobra.Command, _ []string) error {
	db, err := openStorage()
	if err != nil {
		return err
	}
	defer db.Close()
	ctx := cmd.Context()

	cGreeting.Println("leaguestats shell")
	cMuted.Println("type 'help' or 'exit'")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		cPrompt.Print("leaguestats")
		cMuted.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tokens := strings.Fields(line)
		name, args := tokens[0], tokens[1:]

		switch name {
		case "exit", "quit":
			return nil
		case "help":
			shellHelp()
		case "standings", "distribution", "summary":
			shellStats(ctx, db, name)
		case "list":
			if len(args) == 0 {
				cError.Fprintln(os.Stderr, "usage: list <leagues|teams|players|coaches|matches>")
				continue
			}
			if err := printCollection(ctx, db, args[0]); err != nil {
				cError.Fprintf(os.Stderr, "error: %v\n", err)
			}
		case "sql":
			if len(args) == 0 {
				cError.Fprintln(os.Stderr, "usage: sql <query>")
				continue
			}
			if err := runRawQuery(db, strings.Join(args, " ")); err != nil {
				cError.Fprintf(os.Stderr, "error: %v\n", err)
			}
		default:
			cWarn.Fprintf(os.Stderr, "unknown command %q — type 'help'\n", name)
		}
	}
	return scanner.Err()
}

func shellHelp() {
	fmt.Println()
	type entry struct{ cmd, desc string }
	rows := []entry{
		{"standings", "top-8 table from finished matches"},
		{"distribution", "players per league"},
		{"summary", "counters, standings and distribution"},
		{"list <collection>", "leagues, teams, players, coaches or matches"},
		{"sql <query>", "raw query against the snapshot"},
		{"help", "show this message"},
		{"exit / quit", "close the session"},
	}
	for _, r := range rows {
		fmt.Print("  ")
		cCmd.Printf("%-22s", r.cmd)
		fmt.Println(r.desc)
	}
	fmt.Println()
}

// shellStats reloads the snapshot on every call so a concurrent fetch is picked up.
func shellStats(ctx context.Context, db *storage.DB, view string) {
	snap, err := loader.Load(ctx, db, nil)
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	if len(snap.Leagues) == 0 && len(snap.Matches) == 0 {
		cMuted.Println("No snapshot stored yet. Run 'leaguestats fetch' first.")
		return
	}
	switch view {
	case "standings":
		cHeader.Println("--- Standings ---")
		report.PrintStandings(os.Stdout, aggregator.ComputeStandings(snap.Matches, snap.Teams), 0)
	case "distribution":
		cHeader.Println("--- Players per League ---")
		report.PrintDistribution(os.Stdout, aggregator.ComputeDistribution(snap.Leagues, snap.Players))
	default:
		printSummary(snap)
	}
}
