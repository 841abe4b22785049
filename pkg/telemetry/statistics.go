// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package telemetry

import (
	"fmt"
	"time"
)

// Statistics tracks frame counts and error rates across a Stream,
// mirroring helios_protocol.Statistics. A caller feeds it every
// Envelope it receives and can render a summary at whatever cadence it
// likes; the CORE itself never logs.
type Statistics struct {
	StartTime      time.Time
	LastUpdateTime time.Time

	TotalFrames       uint64
	ValidFrames       uint64
	CRCErrors         uint64
	ProtocolErrors    uint64
	TransportErrors   uint64
	CorruptedFrames   uint64

	PacketRate float64
	ErrorRate  float64
}

// NewStatistics creates a new statistics tracker.
func NewStatistics() *Statistics {
	now := time.Now()
	return &Statistics{StartTime: now, LastUpdateTime: now}
}

// Update folds one Envelope into the running counters.
func (s *Statistics) Update(env Envelope) {
	s.TotalFrames++
	s.LastUpdateTime = time.Now()

	if env.Err == nil {
		s.ValidFrames++
		return
	}

	switch env.Class() {
	case ClassCorruptedFrame:
		s.CorruptedFrames++
		if _, ok := env.Err.(*CRCError); ok {
			s.CRCErrors++
		}
	case ClassProtocolViolation:
		s.ProtocolErrors++
	case ClassTransport:
		s.TransportErrors++
	}
}

// CalculateRates recomputes PacketRate and ErrorRate from elapsed time.
func (s *Statistics) CalculateRates() {
	elapsed := time.Since(s.StartTime).Seconds()
	if elapsed <= 0 {
		return
	}
	s.PacketRate = float64(s.TotalFrames) / elapsed
	errCount := s.CRCErrors + s.ProtocolErrors + s.TransportErrors
	s.ErrorRate = float64(errCount) / elapsed
}

// String renders a summary, mirroring helios_protocol.Statistics.String.
func (s *Statistics) String() string {
	s.CalculateRates()

	var validPercent, crcPercent, protocolPercent float64
	if s.TotalFrames > 0 {
		validPercent = float64(s.ValidFrames) * 100.0 / float64(s.TotalFrames)
		crcPercent = float64(s.CRCErrors) * 100.0 / float64(s.TotalFrames)
		protocolPercent = float64(s.ProtocolErrors) * 100.0 / float64(s.TotalFrames)
	}

	elapsed := time.Since(s.StartTime)
	result := fmt.Sprintf("=== Telemetry Statistics (%.0f seconds) ===\n", elapsed.Seconds())
	result += fmt.Sprintf("Total Frames:     %8d\n", s.TotalFrames)
	result += fmt.Sprintf("Valid Frames:     %8d (%.1f%%)\n", s.ValidFrames, validPercent)
	if s.CRCErrors > 0 {
		result += fmt.Sprintf("CRC Errors:       %8d (%.1f%%)\n", s.CRCErrors, crcPercent)
	}
	if s.ProtocolErrors > 0 {
		result += fmt.Sprintf("Protocol Errors:  %8d (%.1f%%)\n", s.ProtocolErrors, protocolPercent)
	}
	if s.TransportErrors > 0 {
		result += fmt.Sprintf("Transport Errors: %8d\n", s.TransportErrors)
	}
	result += fmt.Sprintf("Frame Rate:       %8.1f frames/sec\n", s.PacketRate)
	result += fmt.Sprintf("Error Rate:       %8.1f errors/sec\n", s.ErrorRate)
	result += "=========================================\n"
	return result
}

// Reset zeroes all counters and restarts the measurement window.
func (s *Statistics) Reset() {
	now := time.Now()
	*s = Statistics{StartTime: now, LastUpdateTime: now}
}

// ComputeDuration sums the simulated real-time span covered by a batch
// of messages: 10ms per DataSnapshot, 100ms per StoppedMessage, matching
// original_source/src/statistics.rs's compute_duration.
func ComputeDuration(messages []Message) uint32 {
	var duration uint32
	for _, m := range messages {
		switch m.(type) {
		case *DataSnapshot:
			duration += 10
		case *StoppedMessage:
			duration += 100
		}
	}
	return duration
}
