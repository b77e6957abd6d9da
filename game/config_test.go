package game

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestConfigLoad(t *testing.T) {
	config := NewGameConfig()
	err := config.Load([]byte(`
size: 8
seed: 99
history_length: 3
fleet:
  - name: Frigate
    length: 3
  - name: Corvette
    length: 2
`))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if config.Size != 8 || config.Seed != 99 || config.HistoryLength != 3 {
		t.Errorf("unexpected config %+v", config)
	}
	if config.MaxPlacementAttempts != DefaultMaxPlacementAttempts {
		t.Errorf("absent key should keep the default, got %d", config.MaxPlacementAttempts)
	}
	if config.Fleet.Len() != 2 {
		t.Errorf("expected 2 ships, got %d", config.Fleet.Len())
	}
}

func TestConfigLoadZeroSeed(t *testing.T) {
	config := NewGameConfig()
	if err := config.Load([]byte("seed: 0\n")); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if config.Seed != 0 {
		t.Errorf("explicit zero seed should be kept, got %d", config.Seed)
	}
}

func TestConfigLoadErrors(t *testing.T) {
	config := NewGameConfig()

	if err := config.Load([]byte("colour: blue\n")); err == nil {
		t.Error("unknown keys should be rejected")
	}

	err := config.Load([]byte("fleet:\n  - name: Raft\n    length: 1\n"))
	if !errors.Is(err, ErrInvalidFleet) {
		t.Errorf("expected ErrInvalidFleet, got %v", err)
	}
}

func TestConfigLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "battleship.yaml")
	if err := os.WriteFile(path, []byte("size: 12\n"), 0644); err != nil {
		t.Fatal(err)
	}

	config := NewGameConfig()
	if err := config.LoadFile(path); err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if config.Size != 12 {
		t.Errorf("expected size 12, got %d", config.Size)
	}

	if err := config.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
