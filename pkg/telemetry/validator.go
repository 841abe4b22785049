// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package telemetry

import "fmt"

// CheckAlarmCodeCounts applies the plausibility cap spec.md §4.2 asks
// for: once a frame's CRC has already failed, a declared alarm-code
// array length is no longer authoritative, so implausibly large counts
// get flagged rather than silently accepted. When CRC passes, callers
// should not call this — the declared length is trusted as-is.
//
// Mirrors fusain.ValidatePacket's pattern of returning a list of
// human-readable anomaly descriptions rather than failing decode
// outright.
func CheckAlarmCodeCounts(msg Message) []string {
	var anomalies []string
	check := func(field string, codes []uint8) {
		if len(codes) > MaxAlarmCodes {
			anomalies = append(anomalies, fmt.Sprintf("%s: %d entries exceeds plausibility cap of %d", field, len(codes), MaxAlarmCodes))
		}
	}

	switch m := msg.(type) {
	case *StoppedMessage:
		if m.Extended != nil {
			check("current_alarm_codes", m.Extended.CurrentAlarmCodes)
		}
	case *MachineStateSnapshot:
		check("current_alarm_codes", m.CurrentAlarmCodes)
		check("previous_alarm_codes", m.PreviousAlarmCodes)
	}
	return anomalies
}
