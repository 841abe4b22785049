// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package telemetry

// Message is implemented by every decoded telemetry message kind.
type Message interface {
	Kind() Kind
}

// Header carries the fields every telemetry message shares.
type Header struct {
	Version  string
	DeviceID string
	Systick  uint32
}

// BootMessage announces firmware start. Identical layout in v1 and v2.
type BootMessage struct {
	Header
	Mode     Mode
	Value128 uint8
}

func (*BootMessage) Kind() Kind { return KindBootMessage }

// StoppedMessage announces the ventilator has stopped. v1 carries only
// the common Header; Extended is populated for v2 frames.
type StoppedMessage struct {
	Header
	Extended *StoppedExtended
}

func (*StoppedMessage) Kind() Kind { return KindStoppedMessage }

// StoppedExtended is the v2-only superset of settings and thresholds
// attached to a StoppedMessage, matching original_source/src/parsers/v2.rs.
type StoppedExtended struct {
	PeakCommand, PlateauCommand, PeepCommand, CpmCommand uint8
	ExpiratoryTerm                                       uint8
	TriggerEnabled                                       bool
	TriggerOffset                                        uint8
	AlarmSnoozed                                         bool
	CPULoad                                              uint8
	VentilationMode                                      VentilationMode
	InspiratoryTriggerFlow, ExpiratoryTriggerFlow        uint8
	TiMin, TiMax                                         uint16
	LowInspiratoryMinuteVolumeAlarmThreshold              uint8
	HighInspiratoryMinuteVolumeAlarmThreshold             uint8
	LowExpiratoryMinuteVolumeAlarmThreshold               uint8
	HighExpiratoryMinuteVolumeAlarmThreshold              uint8
	LowRespiratoryRateAlarmThreshold                      uint8
	HighRespiratoryRateAlarmThreshold                     uint8
	TargetTidalVolume                                    uint16
	LowTidalVolumeAlarmThreshold, HighTidalVolumeAlarmThreshold uint16
	PlateauDuration                                      uint16
	LeakAlarmThreshold                                   uint16
	TargetInspiratoryFlow                                uint8
	InspiratoryDurationCommand                           uint16
	BatteryLevel                                         uint16
	CurrentAlarmCodes                                    []uint8
	Locale                                               Locale
	PatientHeight                                        uint8
	PatientGender                                        PatientGender
	PeakPressureAlarmThreshold                           uint16
}

// DataSnapshot is the high-frequency (every 10ms) waveform sample.
type DataSnapshot struct {
	Header
	Centile              uint16
	Pressure             uint16
	Phase                Phase
	SubPhase             SubPhase // SubPhaseNone under protocol v2
	BlowerValvePosition  uint8
	PatientValvePosition uint8
	BlowerRPM            uint8
	BatteryLevel         uint8
	// InspiratoryFlow/ExpiratoryFlow are v2-only; nil under v1.
	InspiratoryFlow *int16
	ExpiratoryFlow  *int16
}

func (*DataSnapshot) Kind() Kind { return KindDataSnapshot }

// MachineStateSnapshot is emitted once per respiratory cycle with the
// previous cycle's measured values and the current alarm set.
type MachineStateSnapshot struct {
	Header
	Cycle                                                uint32
	PeakCommand, PlateauCommand, PeepCommand, CpmCommand uint8
	PreviousPeakPressure                                 uint16
	PreviousPlateauPressure                              uint16
	PreviousPeepPressure                                 uint16
	CurrentAlarmCodes                                    []uint8
	PreviousAlarmCodes                                    []uint8
	PreviousVolume                                        *uint16
	ExpiratoryTerm                                        uint8
	TriggerEnabled                                        bool
	TriggerOffset                                        uint8
	Extended                                             *MachineStateExtended
}

func (*MachineStateSnapshot) Kind() Kind { return KindMachineStateSnapshot }

// MachineStateExtended is the v2-only superset of ventilation-mode
// metadata and patient descriptors attached to a MachineStateSnapshot.
type MachineStateExtended struct {
	PreviousCpm                                   uint8
	AlarmSnoozed                                  bool
	CPULoad                                       uint8
	VentilationMode                               VentilationMode
	InspiratoryTriggerFlow, ExpiratoryTriggerFlow uint8
	TiMin, TiMax                                  uint16
	LowInspiratoryMinuteVolumeAlarmThreshold       uint8
	HighInspiratoryMinuteVolumeAlarmThreshold      uint8
	LowExpiratoryMinuteVolumeAlarmThreshold        uint8
	HighExpiratoryMinuteVolumeAlarmThreshold       uint8
	LowRespiratoryRateAlarmThreshold               uint8
	HighRespiratoryRateAlarmThreshold              uint8
	TargetTidalVolume                             uint16
	LowTidalVolumeAlarmThreshold                  uint16
	HighTidalVolumeAlarmThreshold                 uint16
	PlateauDuration                               uint16
	LeakAlarmThreshold                            uint16
	TargetInspiratoryFlow                         uint8
	InspiratoryDurationCommand                    uint16
	PreviousInspiratoryDuration                   uint16
	BatteryLevel                                  uint16
	Locale                                        Locale
	PatientHeight                                 uint8
	PatientGender                                 PatientGender
	PeakPressureAlarmThreshold                    uint16
}

// AlarmTrap reports an alarm firing or clearing.
type AlarmTrap struct {
	Header
	Centile            uint16
	Pressure           uint16
	Phase              Phase
	SubPhase           SubPhase // SubPhaseNone under protocol v2
	Cycle              uint32
	AlarmCode          uint8
	AlarmPriority      AlarmPriority
	Triggered          bool
	Expected           uint32
	Measured           uint32
	CyclesSinceTrigger uint32
}

func (*AlarmTrap) Kind() Kind { return KindAlarmTrap }

// ControlAck acknowledges a control setting applied by the firmware,
// either from a host-issued ControlMessage or a local adjustment.
type ControlAck struct {
	Header
	Setting ControlSetting
	Value   uint16
}

func (*ControlAck) Kind() Kind { return KindControlAck }

// EolTestSnapshot reports progress through the end-of-line test
// procedure. v2 only.
type EolTestSnapshot struct {
	Header
	CurrentStep EolTestStep
	ContentKind EolTestContentKind
	Message     string
}

func (*EolTestSnapshot) Kind() Kind { return KindEolTestSnapshot }

// FatalError reports an unrecoverable firmware condition. v2 only.
type FatalError struct {
	Header
	ErrorKind FatalErrorKind

	// CalibrationError payload.
	PressureOffset, MinPressure, MaxPressure int16
	FlowAtStarting, FlowWithBlowerOn         *int16

	// BatteryDeeplyDischarged / InconsistentPressure payloads.
	BatteryLevel uint16
	Pressure     uint16
}

func (*FatalError) Kind() Kind { return KindFatalError }
