// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package telemetry

import "fmt"

// EncodeTelemetry serializes a telemetry message back to wire format:
// header, version, kind, schema-encoded body, footer, then a
// little-endian CRC32 over everything from header through footer.
//
// Mirrors fusain.EncodePacketFromValues, generalized from one CBOR body
// to this protocol's version-gated field schema, and from byte-stuffed
// framing to this protocol's fixed four-byte sentinels (no escaping
// needed: every field is fixed-width or self-length-prefixed).
func EncodeTelemetry(kind Kind, version ProtocolVersion, msg Message) ([]byte, error) {
	if msg.Kind() != kind {
		return nil, fmt.Errorf("telemetry: message kind %02X does not match requested kind %02X", msg.Kind(), kind)
	}
	body, err := EncodeBody(msg, version)
	if err != nil {
		return nil, err
	}

	frame := make([]byte, 0, 6+len(body)+4+4)
	frame = append(frame, TelemetryHeader[:]...)
	frame = append(frame, byte(version), byte(kind))
	frame = append(frame, body...)
	frame = append(frame, TelemetryFooter[:]...)

	crc := CalculateCRC32(frame)
	frame = append(frame, byte(crc), byte(crc>>8), byte(crc>>16), byte(crc>>24))

	return frame, nil
}

// ControlMessage is a host-issued command targeting one ventilation
// setting, mirroring original_source/src/control.rs's ControlMessage.
type ControlMessage struct {
	Setting ControlSetting
	Value   uint16
}

func (c ControlMessage) String() string {
	return fmt.Sprintf("%s = %d", c.Setting, c.Value)
}

// EncodeControl serializes a control command: header, one setting byte,
// the little-endian value, footer, then a little-endian CRC32 over
// header through footer. The original firmware encodes the value
// big-endian; this protocol's redesign keeps every multi-byte field
// little-endian uniformly, per spec.md §4.5.
func EncodeControl(setting ControlSetting, value uint16) []byte {
	body := []byte{uint8(setting), byte(value), byte(value >> 8)}

	frame := make([]byte, 0, 4+len(body)+4+4)
	frame = append(frame, ControlHeader[:]...)
	frame = append(frame, body...)
	frame = append(frame, ControlFooter[:]...)

	crc := CalculateCRC32(frame)
	frame = append(frame, byte(crc), byte(crc>>8), byte(crc>>16), byte(crc>>24))

	return frame
}
