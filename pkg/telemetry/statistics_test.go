// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package telemetry

import (
	"io"
	"testing"
)

func TestStatistics_Update_CountsByClass(t *testing.T) {
	s := NewStatistics()
	s.Update(Envelope{Frame: &Frame{}})
	s.Update(Envelope{Err: &CRCError{}})
	s.Update(Envelope{Err: &UnknownKindError{}})
	s.Update(Envelope{Err: io.ErrClosedPipe})

	if s.TotalFrames != 4 {
		t.Errorf("TotalFrames: got %d, want 4", s.TotalFrames)
	}
	if s.ValidFrames != 1 {
		t.Errorf("ValidFrames: got %d, want 1", s.ValidFrames)
	}
	if s.CRCErrors != 1 {
		t.Errorf("CRCErrors: got %d, want 1", s.CRCErrors)
	}
	if s.ProtocolErrors != 1 {
		t.Errorf("ProtocolErrors: got %d, want 1", s.ProtocolErrors)
	}
	if s.TransportErrors != 1 {
		t.Errorf("TransportErrors: got %d, want 1", s.TransportErrors)
	}
}

func TestStatistics_Reset(t *testing.T) {
	s := NewStatistics()
	s.Update(Envelope{Frame: &Frame{}})
	s.Reset()
	if s.TotalFrames != 0 {
		t.Errorf("TotalFrames after Reset: got %d, want 0", s.TotalFrames)
	}
}

func TestComputeDuration(t *testing.T) {
	messages := []Message{
		&DataSnapshot{}, &DataSnapshot{}, &StoppedMessage{}, &BootMessage{},
	}
	got := ComputeDuration(messages)
	want := uint32(10 + 10 + 100)
	if got != want {
		t.Errorf("ComputeDuration: got %d, want %d", got, want)
	}
}
