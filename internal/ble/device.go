package ble

import (
	"context"
	"sync"
	"time"

	"github.com/aaf1007/rubiks-cube-solver/internal/cube"
	"github.com/aaf1007/rubiks-cube-solver/internal/move"
	"github.com/aaf1007/rubiks-cube-solver/internal/protocol"
	"github.com/google/uuid"
)

// colorToFace maps GoCube protocol color names to the faces they turn,
// under the fixed color scheme this repository's cube model uses (see
// internal/cube's solvedColor: orange is the U face, red is D, white is
// F, yellow is B, green is L, blue is R).
var colorToFace = map[string]move.Face{
	"white":  move.F,
	"yellow": move.B,
	"green":  move.L,
	"blue":   move.R,
	"red":    move.D,
	"orange": move.U,
}

// Device is a live GoCube connection that reconstructs an
// internal/cube.Cube from the moves the physical cube reports, starting
// from solved.
type Device struct {
	client   *Client
	sessID   string
	mu       sync.Mutex
	cube     *cube.Cube
	moves    []move.Move
	onMove   func(move.Move)
	onSolved func()
}

// Connect scans for the first GoCube-protocol device and connects to it.
func Connect(ctx context.Context, timeout time.Duration) (*Device, error) {
	client, err := NewClient()
	if err != nil {
		return nil, err
	}

	results, err := client.Scan(ctx, timeout)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrDeviceNotFound
	}

	if err := client.ConnectToResult(ctx, results[0]); err != nil {
		return nil, err
	}

	d := &Device{
		client: client,
		sessID: uuid.New().String(),
		cube:   cube.New(),
	}
	client.SetMessageCallback(d.handleMessage)
	return d, nil
}

// SessionID identifies this live connection before it is known whether
// the solve it produces will be logged.
func (d *Device) SessionID() string { return d.sessID }

// DeviceName returns the connected device's advertised name.
func (d *Device) DeviceName() string { return d.client.DeviceName() }

// DeviceUUID returns the connected device's address.
func (d *Device) DeviceUUID() string { return d.client.DeviceUUID() }

// Battery returns the last known battery percentage, or -1 if unknown.
func (d *Device) Battery() int { return d.client.Battery() }

// Close disconnects from the device.
func (d *Device) Close() error { return d.client.Disconnect() }

// Cube returns a snapshot of the reconstructed cube state.
func (d *Device) Cube() *cube.Cube {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cube.Clone()
}

// Moves returns the moves applied since connecting.
func (d *Device) Moves() []move.Move {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]move.Move, len(d.moves))
	copy(out, d.moves)
	return out
}

// OnMove sets a callback fired for each move decoded from the device.
func (d *Device) OnMove(cb func(move.Move)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onMove = cb
}

// OnSolved sets a callback fired the moment the reconstructed cube
// becomes solved.
func (d *Device) OnSolved(cb func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onSolved = cb
}

func (d *Device) handleMessage(msg *protocol.Message) {
	if msg.Type != protocol.MsgTypeRotation {
		return
	}

	rotations, err := protocol.DecodeRotation(msg.Payload)
	if err != nil {
		return
	}

	for _, rot := range rotations {
		face, ok := colorToFace[rot.Color]
		if !ok {
			continue
		}

		turn := move.CW
		if !rot.Clockwise {
			turn = move.CCW
		}
		m := move.Move{Face: face, Turn: turn}

		d.mu.Lock()
		d.cube.Apply(move.Index(m))
		d.moves = append(d.moves, m)
		solved := d.cube.IsSolved()
		moveCb := d.onMove
		solvedCb := d.onSolved
		d.mu.Unlock()

		if moveCb != nil {
			moveCb(m)
		}
		if solved && solvedCb != nil {
			solvedCb()
		}
	}
}
