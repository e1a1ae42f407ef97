// blastgrid is a TUI puzzle platform for playing bomb-chain games in the terminal.
//
// Usage:
//
//	blastgrid list              - List available game modes
//	blastgrid play <game>       - Play a game mode
//	blastgrid menu              - Start menu to pick modes interactively
//	blastgrid serve             - Start SSH server for remote play
//	blastgrid matchd            - Start websocket match server for online play
//	blastgrid scores <game>     - Show high scores for a game mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.blastgrid/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/tuigames/blastgrid/internal/games/blast"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blastgrid",
	Short: "Blast Grid - Chain-reaction puzzle in your terminal",
	Long: `Blast Grid is a terminal puzzle game. Detonate bombs to clear chains
of cells before the board fills up, in your own terminal or over SSH.

Available commands:
  list     - Show all available game modes
  play     - Play a specific mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  matchd   - Start websocket match server for online versus play
  scores   - View high scores

Examples:
  blastgrid list
  blastgrid play blast
  blastgrid play blast_hard
  blastgrid menu
  blastgrid serve --ssh :2222
  blastgrid matchd --addr :9000
  blastgrid scores blast`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blastgrid/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(matchdCmd)
	rootCmd.AddCommand(scoresCmd)
}
