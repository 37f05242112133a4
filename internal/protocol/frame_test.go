package protocol

import "testing"

func TestBuildCommandParsesBack(t *testing.T) {
	frame := BuildCommand(CmdRequestBattery)
	msg, err := Parse(frame)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if msg.Type != CmdRequestBattery {
		t.Fatalf("expected type 0x%02X, got 0x%02X", CmdRequestBattery, msg.Type)
	}
	if len(msg.Payload) != 0 {
		t.Fatalf("expected empty payload, got %v", msg.Payload)
	}
}

func TestParseRejectsBadPrefix(t *testing.T) {
	frame := BuildCommand(CmdRequestBattery)
	frame[0] = 0x00
	if _, err := Parse(frame); err != ErrInvalidPrefix {
		t.Fatalf("expected ErrInvalidPrefix, got %v", err)
	}
}

func TestParseRejectsBadChecksum(t *testing.T) {
	frame := BuildCommand(CmdRequestBattery)
	frame[len(frame)-3]++
	if _, err := Parse(frame); err == nil {
		t.Fatalf("expected checksum error")
	}
}

func TestParseRejectsShortMessage(t *testing.T) {
	if _, err := Parse([]byte{0x2A, 0x01}); err != ErrMessageTooShort {
		t.Fatalf("expected ErrMessageTooShort, got %v", err)
	}
}

func TestDecodeRotationMultipleEvents(t *testing.T) {
	events, err := DecodeRotation([]byte{10, 0, 1, 0})
	if err != nil {
		t.Fatalf("DecodeRotation: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if !events[0].Clockwise || events[0].Color != "orange" {
		t.Fatalf("unexpected first event: %+v", events[0])
	}
	if events[1].Clockwise || events[1].Color != "blue" {
		t.Fatalf("unexpected second event: %+v", events[1])
	}
}

func TestMessageTypeName(t *testing.T) {
	if MessageTypeName(MsgTypeRotation) != "rotation" {
		t.Fatalf("expected rotation")
	}
	if MessageTypeName(0xFF) == "" {
		t.Fatalf("expected a fallback name for an unknown type")
	}
}
