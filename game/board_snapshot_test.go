package game

import (
	"errors"
	"strings"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	board := newTestBoard(t)
	board.Fire("A1")
	board.Fire("F1")

	serialized := board.snapshot(42).Serialize()

	loaded, err := LoadSnapshot(serialized)
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if loaded.Seed != 42 {
		t.Errorf("expected seed 42, got %d", loaded.Seed)
	}
	if len(loaded.Fleet) != 6 {
		t.Errorf("expected 6 fleet entries, got %d", len(loaded.Fleet))
	}

	restored, err := loaded.CreateBoard(false)
	if err != nil {
		t.Fatalf("CreateBoard failed: %v", err)
	}
	if restored.serialize() != board.serialize() {
		t.Errorf("restored board differs:\n%s\nwant:\n%s", restored.serialize(), board.serialize())
	}
	if rows := rowsOf(restored.serialize()); rows[0] != "pP...!" {
		t.Errorf("expected hit and miss in first row, got %q", rows[0])
	}

	fresh, err := loaded.CreateBoard(true)
	if err != nil {
		t.Fatalf("CreateBoard failed: %v", err)
	}
	if fresh.serialize() != testLayout {
		t.Errorf("fresh board should drop shots:\n%s", fresh.serialize())
	}
}

func TestSnapshotCustomFleet(t *testing.T) {
	in := `seed: 3
fleet:
- name: Submarine
  length: 2
- name: Sloop
  length: 3
board: |-
  SS....
  ......
  ......
  ...L..
  ...L..
  ...L..
`
	snapshot, err := LoadSnapshot(in)
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}

	board, err := snapshot.CreateBoard(true)
	if err != nil {
		t.Fatalf("CreateBoard failed: %v", err)
	}
	if got := len(board.ShipCells(1)); got != 3 {
		t.Errorf("Sloop should cover 3 cells, got %d", got)
	}
}

func TestSnapshotInvalid(t *testing.T) {
	tests := map[string]string{
		"too small":    "PP...\n.....\n.....\n.....\n.....",
		"ragged row":   strings.Replace(testLayout, "S.....", "S....", 1),
		"unknown ship": strings.Replace(testLayout, "S.....", "S....Q", 1),
		"bent ship":    strings.Replace(strings.Replace(testLayout, "PP....", "P.....", 1), "S.....", "SP....", 1),
		"wrapped ship": ".....P\nP.CCC.\n......\nDDD.SS\nBBBB..\nAAAAA.",
		"short ship":   strings.Replace(testLayout, "AAAAA.", "AAAA..", 1),
	}

	for name, layout := range tests {
		t.Run(name, func(t *testing.T) {
			snapshot := &BoardSnapshot{SerializedBoard: layout}
			if _, err := snapshot.CreateBoard(true); err == nil {
				t.Error("expected an error")
			}
		})
	}

	snapshot := &BoardSnapshot{SerializedBoard: strings.Replace(testLayout, "S.....", "S....Q", 1)}
	if _, err := snapshot.CreateBoard(true); !errors.Is(err, ErrInvalidSnapshot) {
		t.Errorf("expected ErrInvalidSnapshot, got %v", err)
	}
}
