package notation

import (
	"reflect"
	"testing"

	"github.com/aaf1007/rubiks-cube-solver/internal/move"
)

func TestFormatSpecExpandsHalfAndCCW(t *testing.T) {
	ms := []move.Move{
		{Face: move.U, Turn: move.CW},
		{Face: move.R, Turn: move.Half},
		{Face: move.F, Turn: move.CCW},
	}
	got := FormatSpec(ms)
	want := "U R R F F F"
	if got != want {
		t.Errorf("FormatSpec(%v) = %q, want %q", ms, got, want)
	}
}

func TestFormatSpecEmpty(t *testing.T) {
	if got := FormatSpec(nil); got != "" {
		t.Errorf("FormatSpec(nil) = %q, want empty", got)
	}
}

func TestParseSpecRoundTrip(t *testing.T) {
	ms := []move.Move{
		{Face: move.U, Turn: move.CW},
		{Face: move.R, Turn: move.Half},
		{Face: move.F, Turn: move.CCW},
		{Face: move.D, Turn: move.CW},
	}
	spec := FormatSpec(ms)
	parsed, err := ParseSpec(spec)
	if err != nil {
		t.Fatalf("ParseSpec(%q) returned an error: %v", spec, err)
	}
	if !reflect.DeepEqual(parsed, ms) {
		t.Errorf("ParseSpec(FormatSpec(%v)) = %v", ms, parsed)
	}
}

func TestParseSpecRejectsFourInARow(t *testing.T) {
	if _, err := ParseSpec("U U U U"); err == nil {
		t.Error("expected an error for four repetitions of the same face")
	}
}

func TestSequenceRoundTrip(t *testing.T) {
	ms, err := ParseSequence("R U2 F' D L2 B")
	if err != nil {
		t.Fatalf("ParseSequence returned an error: %v", err)
	}
	if got := FormatSequence(ms); got != "R U2 F' D L2 B" {
		t.Errorf("FormatSequence(ParseSequence(...)) = %q", got)
	}
}
