// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package telemetry

import "testing"

func TestCheckAlarmCodeCounts_WithinCap(t *testing.T) {
	msg := &MachineStateSnapshot{
		CurrentAlarmCodes:  make([]uint8, MaxAlarmCodes),
		PreviousAlarmCodes: make([]uint8, MaxAlarmCodes),
	}
	if got := CheckAlarmCodeCounts(msg); len(got) != 0 {
		t.Errorf("expected no anomalies at exactly the cap, got %v", got)
	}
}

func TestCheckAlarmCodeCounts_ExceedsCap(t *testing.T) {
	msg := &MachineStateSnapshot{
		CurrentAlarmCodes:  make([]uint8, MaxAlarmCodes+1),
		PreviousAlarmCodes: make([]uint8, MaxAlarmCodes+5),
	}
	got := CheckAlarmCodeCounts(msg)
	if len(got) != 2 {
		t.Fatalf("expected 2 anomalies, got %d: %v", len(got), got)
	}
}

func TestCheckAlarmCodeCounts_StoppedMessageExtended(t *testing.T) {
	msg := &StoppedMessage{Extended: &StoppedExtended{CurrentAlarmCodes: make([]uint8, MaxAlarmCodes+1)}}
	got := CheckAlarmCodeCounts(msg)
	if len(got) != 1 {
		t.Fatalf("expected 1 anomaly, got %d: %v", len(got), got)
	}
}

func TestCheckAlarmCodeCounts_StoppedMessageNoExtended(t *testing.T) {
	msg := &StoppedMessage{}
	if got := CheckAlarmCodeCounts(msg); len(got) != 0 {
		t.Errorf("v1 StoppedMessage has no alarm codes to check, got %v", got)
	}
}

func TestCheckAlarmCodeCounts_OtherKindsIgnored(t *testing.T) {
	msg := &BootMessage{}
	if got := CheckAlarmCodeCounts(msg); len(got) != 0 {
		t.Errorf("BootMessage carries no alarm codes, got %v", got)
	}
}
