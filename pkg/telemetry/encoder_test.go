// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package telemetry

import (
	"bytes"
	"testing"
)

func TestEncodeTelemetry_KindMismatch(t *testing.T) {
	msg := &BootMessage{Header: sampleHeader(), Mode: ModeProduction}
	if _, err := EncodeTelemetry(KindDataSnapshot, ProtocolV1, msg); err == nil {
		t.Fatalf("expected error when message kind does not match requested kind")
	}
}

func TestEncodeTelemetry_FrameShape(t *testing.T) {
	msg := &BootMessage{Header: sampleHeader(), Mode: ModeProduction, Value128: 1}
	frame, err := EncodeTelemetry(KindBootMessage, ProtocolV2, msg)
	if err != nil {
		t.Fatalf("EncodeTelemetry: %v", err)
	}
	if !bytes.HasPrefix(frame, TelemetryHeader[:]) {
		t.Errorf("frame does not start with TelemetryHeader")
	}
	if frame[4] != byte(ProtocolV2) {
		t.Errorf("version byte: got %d, want %d", frame[4], ProtocolV2)
	}
	if frame[5] != byte(KindBootMessage) {
		t.Errorf("kind byte: got %d, want %d", frame[5], KindBootMessage)
	}
	crcStart := len(frame) - 4
	footerStart := crcStart - 4
	if !bytes.Equal(frame[footerStart:crcStart], TelemetryFooter[:]) {
		t.Errorf("footer not found where expected")
	}
	declared := uint32(frame[crcStart]) | uint32(frame[crcStart+1])<<8 |
		uint32(frame[crcStart+2])<<16 | uint32(frame[crcStart+3])<<24
	if declared != CalculateCRC32(frame[:crcStart]) {
		t.Errorf("trailing CRC does not match CalculateCRC32 over header..footer")
	}
}

func TestEncodeControl_FrameShape(t *testing.T) {
	frame := EncodeControl(ControlPEEP, 60)
	if !bytes.HasPrefix(frame, ControlHeader[:]) {
		t.Errorf("frame does not start with ControlHeader")
	}
	if frame[4] != byte(ControlPEEP) {
		t.Errorf("setting byte: got %d, want %d", frame[4], ControlPEEP)
	}
	value := uint16(frame[5]) | uint16(frame[6])<<8
	if value != 60 {
		t.Errorf("value: got %d, want 60", value)
	}
	crcStart := len(frame) - 4
	footerStart := crcStart - 4
	if !bytes.Equal(frame[footerStart:crcStart], ControlFooter[:]) {
		t.Errorf("footer not found where expected")
	}
	declared := uint32(frame[crcStart]) | uint32(frame[crcStart+1])<<8 |
		uint32(frame[crcStart+2])<<16 | uint32(frame[crcStart+3])<<24
	if declared != CalculateCRC32(frame[:crcStart]) {
		t.Errorf("trailing CRC does not match CalculateCRC32 over header..footer")
	}
}

func TestControlMessage_String(t *testing.T) {
	m := ControlMessage{Setting: ControlPEEP, Value: 60}
	if got, want := m.String(), "PEEP = 60"; got != want {
		t.Errorf("String(): got %q, want %q", got, want)
	}
}
