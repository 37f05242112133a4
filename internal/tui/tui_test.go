package tui

import (
	"strings"
	"testing"

	"github.com/aaf1007/rubiks-cube-solver/internal/cube"
	"github.com/aaf1007/rubiks-cube-solver/internal/move"
)

func TestModelStepsThroughSolution(t *testing.T) {
	solution := []move.Move{{Face: move.U, Turn: move.CW}, {Face: move.R, Turn: move.CW}}
	m := newModel(cube.New(), solution)

	if m.index != 0 {
		t.Fatalf("expected index 0 before any step")
	}
	m.step()
	if m.index != 1 {
		t.Fatalf("expected index 1 after one step, got %d", m.index)
	}
	m.step()
	m.step() // past the end must be a no-op
	if m.index != 2 {
		t.Fatalf("expected index to stay at 2, got %d", m.index)
	}
}

func TestRenderNetIncludesAllStickers(t *testing.T) {
	out := renderNet(cube.New())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("expected 9 lines, got %d", len(lines))
	}
	for _, col := range []string{"W", "Y", "G", "B", "R", "O"} {
		if !strings.Contains(out, col) {
			t.Fatalf("expected sticker color %q to appear in rendered net", col)
		}
	}
}

func TestViewShowsMoveProgress(t *testing.T) {
	solution := []move.Move{{Face: move.U, Turn: move.CW}}
	m := newModel(cube.New(), solution)
	view := m.View()
	if !strings.Contains(view, "Move 0/1") {
		t.Fatalf("expected move progress in view, got: %s", view)
	}
}
