// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

// Package telemetry decodes and encodes the binary telemetry protocol
// spoken by a MakAir-style ventilator controller: a framed, CRC32-guarded,
// two-version-aware message stream from the controller, and a mirrored
// control-setting encoder back to it.
//
// The wire format is a closed set of fixed-layout messages, not a dynamic
// container, so unlike Thermoquad's own Fusain/Helios protocols this
// package has no payload codec to plug in and no byte-stuffing to undo:
// every field is fixed-width or length-prefixed and framing uses
// distinct, non-overlapping sentinel patterns instead of escaping.
package telemetry
