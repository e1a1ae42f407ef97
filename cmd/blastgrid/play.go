package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tuigames/blastgrid/internal/config"
	"github.com/tuigames/blastgrid/internal/core"
	"github.com/tuigames/blastgrid/internal/games/blast"
	"github.com/tuigames/blastgrid/internal/platform/tui"
	"github.com/tuigames/blastgrid/internal/registry"
	"github.com/tuigames/blastgrid/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game mode",
	Long: `Start playing the specified game mode.

Controls:
  Arrows/WASD  - Move cursor
  Space/Enter  - Detonate
  Mouse click  - Move cursor and detonate
  P/Esc        - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Examples:
  blastgrid play blast
  blastgrid play blast_hard
  blastgrid play blast --config ./my-blast.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

// applyGameConfig loads the YAML game config and applies it before any
// game is instantiated.
func applyGameConfig() error {
	cfg, err := config.LoadBlast(flagConfig)
	if err != nil {
		return err
	}
	blast.Configure(blast.Options{
		Width:      cfg.Board.Width,
		Height:     cfg.Board.Height,
		BombLimit:  cfg.Normal.BombLimit,
		LevelLimit: cfg.Hard.LevelLimit,
		LevelQuota: cfg.Hard.LevelQuota,
	})
	return nil
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'blastgrid list' to see available modes.")
		os.Exit(1)
	}

	if err := applyGameConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
