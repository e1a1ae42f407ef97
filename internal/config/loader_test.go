package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadBlastEmbeddedDefaults(t *testing.T) {
	cfg, err := LoadBlast("")
	if err != nil {
		t.Fatalf("LoadBlast() failed: %v", err)
	}

	if cfg.Board.Width != 8 || cfg.Board.Height != 9 {
		t.Errorf("Expected 8x9 board, got %dx%d", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Normal.BombLimit != 999 {
		t.Errorf("Expected bomb limit 999, got %d", cfg.Normal.BombLimit)
	}
	if cfg.Hard.LevelQuota != 100 {
		t.Errorf("Expected level quota 100, got %d", cfg.Hard.LevelQuota)
	}
}

func TestLoadBlastCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "blast.yaml")

	custom := `
board:
  width: 6
  height: 7
normal:
  bomb_limit: 50
`
	if err := os.WriteFile(path, []byte(custom), 0o644); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	cfg, err := LoadBlast(path)
	if err != nil {
		t.Fatalf("LoadBlast() failed: %v", err)
	}

	if cfg.Board.Width != 6 || cfg.Board.Height != 7 {
		t.Errorf("Expected 6x7 board, got %dx%d", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Normal.BombLimit != 50 {
		t.Errorf("Expected bomb limit 50, got %d", cfg.Normal.BombLimit)
	}

	// Omitted sections fall back to defaults
	if cfg.Hard.LevelLimit != 999 {
		t.Errorf("Expected default level limit 999, got %d", cfg.Hard.LevelLimit)
	}
}

func TestLoadBlastRejectsUnplayableWidth(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "blast.yaml")

	// Rows carry two bombs in distinct columns; width 1 can never hold one.
	custom := `
board:
  width: 1
  height: 7
`
	if err := os.WriteFile(path, []byte(custom), 0o644); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	cfg, err := LoadBlast(path)
	if err != nil {
		t.Fatalf("LoadBlast() failed: %v", err)
	}

	if cfg.Board.Width != 8 {
		t.Errorf("Expected width 1 to fall back to 8, got %d", cfg.Board.Width)
	}
	if cfg.Board.Height != 7 {
		t.Errorf("Expected height 7 to be kept, got %d", cfg.Board.Height)
	}
}

func TestLoadBlastMissingCustomPathFails(t *testing.T) {
	if _, err := LoadBlast("/nonexistent/blast.yaml"); err == nil {
		t.Error("Expected error for missing custom config path")
	}
}
