// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package telemetry

// Telemetry frame sentinels. The footer is the nibble-swap of the header,
// the same pairing the firmware uses between its own two-byte \x03\x0C /
// \x30\xC0 markers.
var (
	TelemetryHeader = [4]byte{0x54, 0x3A, 0x01, 0x05}
	TelemetryFooter = [4]byte{0x45, 0xA3, 0x10, 0x50}
)

// Control frame sentinels, doubling the firmware's real \x05\x0A / \x50\xA0
// control markers to the fixed four-byte width this protocol uses everywhere.
var (
	ControlHeader = [4]byte{0x05, 0x0A, 0x05, 0x0A}
	ControlFooter = [4]byte{0x50, 0xA0, 0x50, 0xA0}
)

// Frame size limits.
const (
	// MaxFrameSize is the nominal size of a single telemetry frame
	// (header..crc inclusive): large enough for the fullest v2
	// StoppedMessage/MachineStateSnapshot body plus two 32-entry
	// alarm-code arrays, with headroom. The decoder does not check
	// frames against it.
	MaxFrameSize = 512

	// StreamBufferSize is the ring/linear buffer capacity a Stream keeps
	// in flight, per spec.md §5's one-buffer resource bound.
	StreamBufferSize = 4096

	// MaxAlarmCodes is the plausibility cap applied to a declared
	// alarm-code array length once CRC has already failed; see
	// CheckAlarmCodeCounts.
	MaxAlarmCodes = 32

	// MaxStringLength bounds a single length-prefixed string field.
	MaxStringLength = 255
)

// ProtocolVersion identifies which schema generation a frame's body uses.
type ProtocolVersion uint8

const (
	ProtocolV1 ProtocolVersion = 1
	ProtocolV2 ProtocolVersion = 2
)

// Kind identifies a telemetry message's wire tag.
type Kind uint8

const (
	KindBootMessage          Kind = 0x01
	KindStoppedMessage       Kind = 0x02
	KindDataSnapshot         Kind = 0x03
	KindMachineStateSnapshot Kind = 0x04
	KindAlarmTrap            Kind = 0x05
	KindControlAck           Kind = 0x06
	KindEolTestSnapshot      Kind = 0x07
	KindFatalError           Kind = 0x08
)
