package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tuigames/blastgrid/internal/config"
	"github.com/tuigames/blastgrid/internal/server"
)

var (
	flagMatchAddr    string
	flagMatchDBPath  string
	flagPairInterval int
	flagMatchConfig  string
)

var matchdCmd = &cobra.Command{
	Use:   "matchd",
	Short: "Start the websocket match server",
	Long: `Start the match server for online versus play.

Clients connect to ws://host:port/ws, join the matchmaking queue, and
get paired with an opponent. Each participant plays on their own board;
the server confirms removals and feeds fresh rows.

Match results are recorded in the database.

Examples:
  blastgrid matchd                       # Listen on :9000
  blastgrid matchd --addr :9100          # Listen on port 9100
  blastgrid matchd --db ./scores.db      # Use specific database`,
	Run: runMatchd,
}

func init() {
	matchdCmd.Flags().StringVar(&flagMatchAddr, "addr", ":9000", "Match server address (host:port)")
	matchdCmd.Flags().StringVar(&flagMatchDBPath, "db", "~/.blastgrid/scores.db", "Path to results database")
	matchdCmd.Flags().IntVar(&flagPairInterval, "pair-interval", 5, "Matchmaking sweep interval in seconds")
	matchdCmd.Flags().StringVar(&flagMatchConfig, "config", "", "Path to custom game config YAML")
}

func runMatchd(_ *cobra.Command, _ []string) {
	gameCfg, err := config.LoadBlast(flagMatchConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	srv, err := server.New(server.Config{
		Address:      flagMatchAddr,
		DBPath:       flagMatchDBPath,
		BoardWidth:   gameCfg.Board.Width,
		BoardHeight:  gameCfg.Board.Height,
		PairInterval: time.Duration(flagPairInterval) * time.Second,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting blastgrid match server on %s\n", flagMatchAddr)
	fmt.Println("Press Ctrl+C to stop")

	if err := srv.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
