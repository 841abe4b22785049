// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package telemetry

import "fmt"

// ErrorClass is the coarse envelope classification spec.md §4.7 asks
// for, so a UI can decide how to react without switching on every
// concrete error type.
type ErrorClass int

const (
	// ClassCorruptedFrame covers errors where bytes were received but
	// failed integrity or shape checks: bad CRC, truncated body,
	// invalid UTF-8, an implausible array length.
	ClassCorruptedFrame ErrorClass = iota
	// ClassProtocolViolation covers well-formed frames the decoder
	// does not understand: unknown kind, unknown version, an enum tag
	// outside its known range.
	ClassProtocolViolation
	// ClassTransport covers errors from the underlying byte source
	// itself (io.Reader failures), not the protocol.
	ClassTransport
)

func (c ErrorClass) String() string {
	switch c {
	case ClassCorruptedFrame:
		return "corrupted-frame"
	case ClassProtocolViolation:
		return "protocol-violation"
	case ClassTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// ShortInputError reports that a frame or field needs more bytes than
// are currently available. The framer stashes the partial frame and
// waits for more input rather than treating this as a hard failure.
type ShortInputError struct {
	Needed int
	Have   int
}

func (e *ShortInputError) Error() string {
	return fmt.Sprintf("telemetry: need %d bytes, have %d", e.Needed, e.Have)
}

// CRCError reports a frame whose trailing CRC32 did not match the
// header..footer span it is supposed to cover.
type CRCError struct {
	Expected     uint32
	Observed     uint32
	DeclaredKind Kind
	// Anomalies holds plausibility-check findings (see
	// CheckAlarmCodeCounts) computed against the structurally-parsed
	// body despite the CRC failure; empty when none apply.
	Anomalies []string
}

func (e *CRCError) Error() string {
	if len(e.Anomalies) == 0 {
		return fmt.Sprintf("telemetry: CRC mismatch for kind 0x%02X: expected 0x%08X, got 0x%08X",
			e.DeclaredKind, e.Expected, e.Observed)
	}
	return fmt.Sprintf("telemetry: CRC mismatch for kind 0x%02X: expected 0x%08X, got 0x%08X (%v)",
		e.DeclaredKind, e.Expected, e.Observed, e.Anomalies)
}

// InvalidEnumError reports a single-byte enum field carrying a tag the
// schema for its (kind, version) does not define.
type InvalidEnumError struct {
	Field    string
	Observed uint8
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("telemetry: invalid %s tag 0x%02X", e.Field, e.Observed)
}

// InvalidUTF8Error reports a length-prefixed string field whose bytes
// are not valid UTF-8. Unlike the original firmware's lossy decoding,
// this protocol never silently substitutes replacement characters.
type InvalidUTF8Error struct {
	Field string
}

func (e *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("telemetry: field %s is not valid UTF-8", e.Field)
}

// UnknownKindError reports a frame whose kind byte is not defined for
// its declared protocol version (e.g. kind 0x07 under version 1).
type UnknownKindError struct {
	Kind    Kind
	Version ProtocolVersion
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("telemetry: kind 0x%02X is not defined for protocol version %d", e.Kind, e.Version)
}

// UnknownVersionError reports a frame whose version byte this decoder
// does not implement at all.
type UnknownVersionError struct {
	Version ProtocolVersion
}

func (e *UnknownVersionError) Error() string {
	return fmt.Sprintf("telemetry: unsupported protocol version %d", e.Version)
}

// FramingError reports a structural problem with the frame envelope
// itself: a footer that doesn't match at the expected offset. Frame
// size is not checked, so no FramingError is reported for a frame
// larger than MaxFrameSize or than the Stream buffer.
type FramingError struct {
	Message string
}

func (e *FramingError) Error() string {
	return "telemetry: framing: " + e.Message
}

// ClassifyError maps a decode error to its coarse envelope class. A nil
// err falls through to ClassTransport; callers should check err != nil
// first.
func ClassifyError(err error) ErrorClass {
	switch err.(type) {
	case *CRCError, *InvalidUTF8Error, *FramingError, *ShortInputError:
		return ClassCorruptedFrame
	case *UnknownKindError, *UnknownVersionError, *InvalidEnumError:
		return ClassProtocolViolation
	default:
		return ClassTransport
	}
}
