package ble

import (
	"testing"

	"github.com/aaf1007/rubiks-cube-solver/internal/cube"
	"github.com/aaf1007/rubiks-cube-solver/internal/move"
	"github.com/aaf1007/rubiks-cube-solver/internal/protocol"
)

func newTestDevice() *Device {
	return &Device{cube: cube.New()}
}

func TestHandleMessageAppliesRotation(t *testing.T) {
	d := newTestDevice()

	var got []move.Move
	d.OnMove(func(m move.Move) { got = append(got, m) })

	// colorIdx 5 ("orange", which turns U) clockwise: faceCode = 5*2 = 10.
	payload := []byte{10, 0x00}
	d.handleMessage(&protocol.Message{Type: protocol.MsgTypeRotation, Payload: payload})

	if len(got) != 1 {
		t.Fatalf("expected 1 move callback, got %d", len(got))
	}
	if got[0].Face != move.U || got[0].Turn != move.CW {
		t.Fatalf("expected U move, got %v", got[0])
	}
	if len(d.Moves()) != 1 {
		t.Fatalf("expected 1 recorded move, got %d", len(d.Moves()))
	}
	if d.cube.IsSolved() {
		t.Fatalf("a single quarter turn must not be solved")
	}
}

func TestHandleMessageIgnoresNonRotation(t *testing.T) {
	d := newTestDevice()
	d.handleMessage(&protocol.Message{Type: protocol.MsgTypeBattery, Payload: []byte{42}})
	if len(d.Moves()) != 0 {
		t.Fatalf("expected no moves from a non-rotation message")
	}
}

func TestHandleMessageFourQuartersSolves(t *testing.T) {
	d := newTestDevice()
	payload := []byte{10, 0x00, 10, 0x00, 10, 0x00, 10, 0x00}
	d.handleMessage(&protocol.Message{Type: protocol.MsgTypeRotation, Payload: payload})
	if !d.cube.IsSolved() {
		t.Fatalf("four quarter turns of the same face must return to solved")
	}
}
