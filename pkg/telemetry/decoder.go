// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package telemetry

import (
	"context"
	"errors"
	"io"
	"time"
)

// ParseBytes scans buf for one telemetry frame, the way the framer's S0
// idle state does: it slides across buf looking for TelemetryHeader, and
// any bytes before the match are silently discarded as link noise (not
// reported as an error — only a locked-on frame that then fails to
// validate is).
//
// It returns the number of bytes of buf that were consumed. A caller
// streaming from a growing buffer should drop the first consumed bytes
// and try again with whatever remains plus newly arrived data.
//
// A *ShortInputError return means buf does not yet hold a complete
// frame; the caller should stash buf and retry once more bytes arrive,
// per spec.md §4.3's S2 short-input stash rule.
func ParseBytes(buf []byte) (frame *Frame, consumed int, err error) {
	headerPos := findHeader(buf)
	if headerPos < 0 {
		// No match anywhere in buf. Keep the last 3 bytes: a header
		// could straddle the boundary with the next read.
		keep := 3
		if len(buf) < keep {
			keep = len(buf)
		}
		return nil, len(buf) - keep, &ShortInputError{Needed: 4, Have: len(buf)}
	}

	if headerPos+6 > len(buf) {
		// Header matched but version+kind bytes aren't in yet.
		return nil, headerPos, &ShortInputError{Needed: headerPos + 6 - len(buf), Have: len(buf) - headerPos}
	}

	version := ProtocolVersion(buf[headerPos+4])
	kind := Kind(buf[headerPos+5])

	bodyStart := headerPos + 6
	r := newFieldReader(buf[bodyStart:])
	msg, decodeErr := decodeBodyInto(r, kind, version)
	if decodeErr != nil {
		var short *ShortInputError
		if errors.As(decodeErr, &short) {
			return nil, headerPos, short
		}
		// A structural decode failure (unknown kind/version, bad
		// enum tag, bad UTF-8) still has no known frame length, so we
		// cannot safely skip past it. Resync conservatively: drop
		// exactly the 4 header bytes that got us here and rescan from
		// the next byte, never more.
		return nil, headerPos + 4, decodeErr
	}

	return completeFrame(buf, headerPos, bodyStart, r.pos, version, kind, msg)
}

// completeFrame validates footer and CRC once the body's length
// (bodyLen, the reader's final position) is known.
func completeFrame(buf []byte, headerPos, bodyStart, bodyLen int, version ProtocolVersion, kind Kind, msg Message) (*Frame, int, error) {
	footerStart := bodyStart + bodyLen
	crcStart := footerStart + 4
	frameEnd := crcStart + 4
	if frameEnd > len(buf) {
		return nil, headerPos, &ShortInputError{Needed: frameEnd - len(buf), Have: len(buf) - headerPos}
	}

	var footer [4]byte
	copy(footer[:], buf[footerStart:crcStart])
	if footer != TelemetryFooter {
		// The header match was spurious (coincidental bytes inside a
		// body, or genuine corruption). Bounded resync: skip only the
		// 4 header bytes, never the body we tentatively parsed.
		return nil, headerPos + 4, &FramingError{Message: "footer sentinel mismatch"}
	}

	declaredCRC := uint32(buf[crcStart]) | uint32(buf[crcStart+1])<<8 |
		uint32(buf[crcStart+2])<<16 | uint32(buf[crcStart+3])<<24
	computedCRC := CalculateCRC32(buf[headerPos:crcStart])

	if declaredCRC != computedCRC {
		return nil, frameEnd, &CRCError{
			Expected:     computedCRC,
			Observed:     declaredCRC,
			DeclaredKind: kind,
			Anomalies:    CheckAlarmCodeCounts(msg),
		}
	}

	return &Frame{
		Version:   version,
		Kind:      kind,
		Message:   msg,
		Timestamp: time.Now(),
	}, frameEnd, nil
}

// decodeBodyInto shares DecodeBody's dispatch but exposes the reader so
// its final position can be read back as the body length.
func decodeBodyInto(r *fieldReader, kind Kind, version ProtocolVersion) (Message, error) {
	switch version {
	case ProtocolV1, ProtocolV2:
	default:
		return nil, &UnknownVersionError{Version: version}
	}
	switch kind {
	case KindBootMessage:
		return decodeBootMessage(r)
	case KindStoppedMessage:
		return decodeStoppedMessage(r, version)
	case KindDataSnapshot:
		return decodeDataSnapshot(r, version)
	case KindMachineStateSnapshot:
		return decodeMachineStateSnapshot(r, version)
	case KindAlarmTrap:
		return decodeAlarmTrap(r, version)
	case KindControlAck:
		return decodeControlAck(r)
	case KindEolTestSnapshot:
		if version != ProtocolV2 {
			return nil, &UnknownKindError{Kind: kind, Version: version}
		}
		return decodeEolTestSnapshot(r)
	case KindFatalError:
		if version != ProtocolV2 {
			return nil, &UnknownKindError{Kind: kind, Version: version}
		}
		return decodeFatalError(r)
	default:
		return nil, &UnknownKindError{Kind: kind, Version: version}
	}
}

// findHeader returns the earliest offset in buf where TelemetryHeader
// starts, or -1 if no (possibly partial) match exists.
func findHeader(buf []byte) int {
	for i := 0; i+4 <= len(buf); i++ {
		if buf[i] == TelemetryHeader[0] && buf[i+1] == TelemetryHeader[1] &&
			buf[i+2] == TelemetryHeader[2] && buf[i+3] == TelemetryHeader[3] {
			return i
		}
	}
	return -1
}

// Stream pulls bytes from an io.Reader and yields one Envelope per
// decoded frame (or per error), the way spec.md §4.6 describes: a
// single cooperative consumer over one bounded buffer, no goroutines.
//
// Grounded on helios_protocol.Decoder's byte-at-a-time state machine,
// generalized here to a buffer-based framer because this protocol's
// body length isn't known until the schema has been walked.
type Stream struct {
	r   io.Reader
	buf []byte
	eof bool
	err error
}

// NewStream wraps r in a Stream with the spec's default buffer bound.
func NewStream(r io.Reader) *Stream {
	return &Stream{r: r, buf: make([]byte, 0, StreamBufferSize)}
}

// Err returns the fatal transport error that ended the stream, if any.
// A clean EOF with no pending bytes is not an error.
func (s *Stream) Err() error {
	return s.err
}

// Next returns the next Envelope and true, or a zero Envelope and false
// once the underlying reader is exhausted and no partial frame remains.
func (s *Stream) Next(ctx context.Context) (Envelope, bool) {
	for {
		if ctx != nil {
			select {
			case <-ctx.Done():
				s.err = ctx.Err()
				return Envelope{}, false
			default:
			}
		}

		frame, consumed, err := ParseBytes(s.buf)
		if err == nil {
			s.buf = s.buf[consumed:]
			return Envelope{Frame: frame}, true
		}

		var short *ShortInputError
		if errors.As(err, &short) {
			s.buf = s.buf[consumed:]
			if s.eof {
				// No more bytes will ever arrive to complete this
				// frame; surface the short-input error once, then
				// stop, per spec.md §8's truncation property.
				if len(s.buf) > 0 {
					pending := &ShortInputError{Needed: short.Needed, Have: len(s.buf)}
					s.buf = nil
					return Envelope{Err: pending}, true
				}
				return Envelope{}, false
			}
			s.fill()
			continue
		}

		// A concrete decode/CRC/framing error: consumed bytes still
		// advance past the offending frame or header.
		s.buf = s.buf[consumed:]
		return Envelope{Err: err}, true
	}
}

// fill reads more bytes from the underlying reader into buf, bounded by
// StreamBufferSize. Returns true if new bytes were appended or the
// reader has just reported EOF or an error.
func (s *Stream) fill() bool {
	if s.eof {
		return false
	}
	room := StreamBufferSize - len(s.buf)
	if room <= 0 {
		// Buffer exhausted without a valid frame in it: the
		// plausibility cap has been hit. Drop the oldest byte and
		// keep scanning rather than growing without bound.
		s.buf = s.buf[1:]
		room = 1
	}
	chunk := make([]byte, room)
	n, err := s.r.Read(chunk)
	if n > 0 {
		s.buf = append(s.buf, chunk[:n]...)
	}
	if err != nil {
		if !errors.Is(err, io.EOF) {
			s.err = err
		}
		s.eof = true
	}
	return n > 0 || s.eof
}
