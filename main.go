// Package main is the entry point for the leaguestats CLI tool, which fetches
// league data and computes standings and player distribution views.
package main

import "github.com/pable/go-league-stats/cmd"

func main() {
	cmd.Execute()
}
