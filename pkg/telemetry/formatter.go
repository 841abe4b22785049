// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package telemetry

import "fmt"

// Alarm code registry, taken verbatim from original_source/src/alarm.rs.
const (
	AlarmPlateauPressureNotReached1 uint8 = 12 // RMC_SW_1
	AlarmPatientUnplugged1          uint8 = 11 // RMC_SW_2
	AlarmPeepPressureNotReached1    uint8 = 14 // RMC_SW_3
	AlarmBatteryLow                 uint8 = 21 // RMC_SW_11
	AlarmBatteryVeryLow             uint8 = 13 // RMC_SW_12
	AlarmPlateauPressureNotReached2 uint8 = 22 // RMC_SW_14
	AlarmPeepPressureNotReached2    uint8 = 23 // RMC_SW_15
	AlarmPowerCableUnplugged        uint8 = 31 // RMC_SW_16
	AlarmPressureTooHigh            uint8 = 17 // RMC_SW_18
	AlarmPatientUnplugged2          uint8 = 24 // RMC_SW_19
)

// DescribeAlarmCode returns the human description for a raw alarm code,
// matching AlarmCode::description in original_source/src/alarm.rs.
func DescribeAlarmCode(code uint8) string {
	switch code {
	case AlarmPlateauPressureNotReached1, AlarmPlateauPressureNotReached2:
		return "Plateau pressure is not reached"
	case AlarmPatientUnplugged1, AlarmPatientUnplugged2:
		return "Patient is unplugged"
	case AlarmPeepPressureNotReached1, AlarmPeepPressureNotReached2:
		return "PEEP pressure is not reached"
	case AlarmBatteryLow:
		return "Battery low"
	case AlarmBatteryVeryLow:
		return "Battery very low"
	case AlarmPowerCableUnplugged:
		return "Power cable unplugged"
	case AlarmPressureTooHigh:
		return "Pressure too high"
	default:
		return fmt.Sprintf("Unknown alert %d", code)
	}
}

// FormatFrame formats a decoded Frame into a single human-readable line,
// mirroring fusain.FormatPacket's "[header] TYPE details" shape.
func FormatFrame(f *Frame) string {
	return fmt.Sprintf("[%s] v%d %s %s",
		f.Timestamp.Format("15:04:05.000"), f.Version, FormatKind(f.Kind), FormatMessage(f.Message))
}

// FormatKind returns the human-readable name for a message kind.
func FormatKind(k Kind) string {
	switch k {
	case KindBootMessage:
		return "BOOT"
	case KindStoppedMessage:
		return "STOPPED"
	case KindDataSnapshot:
		return "DATA_SNAPSHOT"
	case KindMachineStateSnapshot:
		return "MACHINE_STATE"
	case KindAlarmTrap:
		return "ALARM_TRAP"
	case KindControlAck:
		return "CONTROL_ACK"
	case KindEolTestSnapshot:
		return "EOL_TEST"
	case KindFatalError:
		return "FATAL_ERROR"
	default:
		return "UNKNOWN"
	}
}

// FormatMessage renders a decoded message's fields.
func FormatMessage(m Message) string {
	switch v := m.(type) {
	case *BootMessage:
		return fmt.Sprintf("device=%s fw=%s mode=%s", v.DeviceID, v.Version, v.Mode)
	case *StoppedMessage:
		return fmt.Sprintf("device=%s fw=%s", v.DeviceID, v.Version)
	case *DataSnapshot:
		return fmt.Sprintf("centile=%d pressure=%d phase=%s", v.Centile, v.Pressure, v.Phase)
	case *MachineStateSnapshot:
		return fmt.Sprintf("cycle=%d peak_cmd=%d prev_peak=%d", v.Cycle, v.PeakCommand, v.PreviousPeakPressure)
	case *AlarmTrap:
		return fmt.Sprintf("code=%d (%s) priority=%s triggered=%t", v.AlarmCode, DescribeAlarmCode(v.AlarmCode), v.AlarmPriority, v.Triggered)
	case *ControlAck:
		return fmt.Sprintf("%s = %d", v.Setting, v.Value)
	case *EolTestSnapshot:
		return fmt.Sprintf("step=%s %q", v.CurrentStep, v.Message)
	case *FatalError:
		return fmt.Sprintf("kind=%s", v.ErrorKind)
	default:
		return "?"
	}
}
