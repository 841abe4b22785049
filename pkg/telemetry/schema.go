// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package telemetry

import "fmt"

// DecodeBody parses a frame's body into its typed Message, dispatching
// on (kind, version) per spec.md §4.2's single unified schema rather
// than two independent parallel decoders. Callers that also need the
// number of bytes consumed (the framer) use decodeBodyInto directly.
func DecodeBody(kind Kind, version ProtocolVersion, body []byte) (Message, error) {
	return decodeBodyInto(newFieldReader(body), kind, version)
}

// EncodeBody serializes msg's body for the given protocol version,
// mirroring DecodeBody field for field.
func EncodeBody(msg Message, version ProtocolVersion) ([]byte, error) {
	w := &fieldWriter{}
	switch m := msg.(type) {
	case *BootMessage:
		encodeBootMessage(w, m)
	case *StoppedMessage:
		if err := encodeStoppedMessage(w, m, version); err != nil {
			return nil, err
		}
	case *DataSnapshot:
		if err := encodeDataSnapshot(w, m, version); err != nil {
			return nil, err
		}
	case *MachineStateSnapshot:
		if err := encodeMachineStateSnapshot(w, m, version); err != nil {
			return nil, err
		}
	case *AlarmTrap:
		encodeAlarmTrap(w, m, version)
	case *ControlAck:
		encodeControlAck(w, m)
	case *EolTestSnapshot:
		if version != ProtocolV2 {
			return nil, &UnknownKindError{Kind: KindEolTestSnapshot, Version: version}
		}
		encodeEolTestSnapshot(w, m)
	case *FatalError:
		if version != ProtocolV2 {
			return nil, &UnknownKindError{Kind: KindFatalError, Version: version}
		}
		encodeFatalError(w, m)
	default:
		return nil, fmt.Errorf("telemetry: unknown message type %T", msg)
	}
	return w.buf, nil
}

func decodeHeader(r *fieldReader) (Header, error) {
	version, err := r.str("version")
	if err != nil {
		return Header{}, err
	}
	deviceID, err := r.str("device_id")
	if err != nil {
		return Header{}, err
	}
	systick, err := r.u32()
	if err != nil {
		return Header{}, err
	}
	return Header{Version: version, DeviceID: deviceID, Systick: systick}, nil
}

func encodeHeader(w *fieldWriter, h Header) {
	w.str(h.Version)
	w.str(h.DeviceID)
	w.u32(h.Systick)
}

// decodePhaseField decodes the phase (and, under v1, sub-phase) tag
// shared by DataSnapshot and AlarmTrap.
func decodePhaseField(r *fieldReader, version ProtocolVersion) (Phase, SubPhase, error) {
	tag, err := r.u8()
	if err != nil {
		return 0, 0, err
	}
	if version == ProtocolV1 {
		phase, sub, ok := decodePhaseAndSubPhase(tag)
		if !ok {
			return 0, 0, &InvalidEnumError{Field: "phase_and_subphase", Observed: tag}
		}
		return phase, sub, nil
	}
	switch Phase(tag) {
	case PhaseInhalation, PhaseExhalation:
		return Phase(tag), SubPhaseNone, nil
	default:
		return 0, 0, &InvalidEnumError{Field: "phase", Observed: tag}
	}
}

func encodePhaseField(w *fieldWriter, phase Phase, sub SubPhase, version ProtocolVersion) {
	if version == ProtocolV1 {
		switch {
		case phase == PhaseInhalation && sub == SubPhaseInspiration:
			w.u8(17)
		case phase == PhaseInhalation && sub == SubPhaseHoldInspiration:
			w.u8(18)
		default:
			w.u8(68)
		}
		return
	}
	w.u8(uint8(phase))
}

// --- BootMessage -----------------------------------------------------

func decodeBootMessage(r *fieldReader) (*BootMessage, error) {
	h, err := decodeHeader(r)
	if err != nil {
		return nil, err
	}
	modeTag, err := r.u8()
	if err != nil {
		return nil, err
	}
	mode := Mode(modeTag)
	switch mode {
	case ModeProduction, ModeQualification, ModeIntegrationTest:
	default:
		return nil, &InvalidEnumError{Field: "mode", Observed: modeTag}
	}
	value128, err := r.u8()
	if err != nil {
		return nil, err
	}
	return &BootMessage{Header: h, Mode: mode, Value128: value128}, nil
}

func encodeBootMessage(w *fieldWriter, m *BootMessage) {
	encodeHeader(w, m.Header)
	w.u8(uint8(m.Mode))
	w.u8(m.Value128)
}

// --- StoppedMessage ----------------------------------------------------

func decodeStoppedMessage(r *fieldReader, version ProtocolVersion) (*StoppedMessage, error) {
	h, err := decodeHeader(r)
	if err != nil {
		return nil, err
	}
	msg := &StoppedMessage{Header: h}
	if version == ProtocolV1 {
		return msg, nil
	}

	ext := &StoppedExtended{}
	var err2 error
	if ext.PeakCommand, err2 = r.u8(); err2 != nil {
		return nil, err2
	}
	if ext.PlateauCommand, err2 = r.u8(); err2 != nil {
		return nil, err2
	}
	if ext.PeepCommand, err2 = r.u8(); err2 != nil {
		return nil, err2
	}
	if ext.CpmCommand, err2 = r.u8(); err2 != nil {
		return nil, err2
	}
	if ext.ExpiratoryTerm, err2 = r.u8(); err2 != nil {
		return nil, err2
	}
	if ext.TriggerEnabled, err2 = r.boolean(); err2 != nil {
		return nil, err2
	}
	if ext.TriggerOffset, err2 = r.u8(); err2 != nil {
		return nil, err2
	}
	if ext.AlarmSnoozed, err2 = r.boolean(); err2 != nil {
		return nil, err2
	}
	if ext.CPULoad, err2 = r.u8(); err2 != nil {
		return nil, err2
	}
	modeTag, err2 := r.u8()
	if err2 != nil {
		return nil, err2
	}
	if ext.VentilationMode, err2 = decodeVentilationMode(modeTag); err2 != nil {
		return nil, err2
	}
	if ext.InspiratoryTriggerFlow, err2 = r.u8(); err2 != nil {
		return nil, err2
	}
	if ext.ExpiratoryTriggerFlow, err2 = r.u8(); err2 != nil {
		return nil, err2
	}
	if ext.TiMin, err2 = r.u16(); err2 != nil {
		return nil, err2
	}
	if ext.TiMax, err2 = r.u16(); err2 != nil {
		return nil, err2
	}
	if ext.LowInspiratoryMinuteVolumeAlarmThreshold, err2 = r.u8(); err2 != nil {
		return nil, err2
	}
	if ext.HighInspiratoryMinuteVolumeAlarmThreshold, err2 = r.u8(); err2 != nil {
		return nil, err2
	}
	if ext.LowExpiratoryMinuteVolumeAlarmThreshold, err2 = r.u8(); err2 != nil {
		return nil, err2
	}
	if ext.HighExpiratoryMinuteVolumeAlarmThreshold, err2 = r.u8(); err2 != nil {
		return nil, err2
	}
	if ext.LowRespiratoryRateAlarmThreshold, err2 = r.u8(); err2 != nil {
		return nil, err2
	}
	if ext.HighRespiratoryRateAlarmThreshold, err2 = r.u8(); err2 != nil {
		return nil, err2
	}
	if ext.TargetTidalVolume, err2 = r.u16(); err2 != nil {
		return nil, err2
	}
	if ext.LowTidalVolumeAlarmThreshold, err2 = r.u16(); err2 != nil {
		return nil, err2
	}
	if ext.HighTidalVolumeAlarmThreshold, err2 = r.u16(); err2 != nil {
		return nil, err2
	}
	if ext.PlateauDuration, err2 = r.u16(); err2 != nil {
		return nil, err2
	}
	if ext.LeakAlarmThreshold, err2 = r.u16(); err2 != nil {
		return nil, err2
	}
	if ext.TargetInspiratoryFlow, err2 = r.u8(); err2 != nil {
		return nil, err2
	}
	if ext.InspiratoryDurationCommand, err2 = r.u16(); err2 != nil {
		return nil, err2
	}
	if ext.BatteryLevel, err2 = r.u16(); err2 != nil {
		return nil, err2
	}
	if ext.CurrentAlarmCodes, err2 = r.byteArray(); err2 != nil {
		return nil, err2
	}
	if ext.Locale, err2 = r.locale(); err2 != nil {
		return nil, err2
	}
	if ext.PatientHeight, err2 = r.u8(); err2 != nil {
		return nil, err2
	}
	genderTag, err2 := r.u8()
	if err2 != nil {
		return nil, err2
	}
	if ext.PatientGender, err2 = decodePatientGender(genderTag); err2 != nil {
		return nil, err2
	}
	if ext.PeakPressureAlarmThreshold, err2 = r.u16(); err2 != nil {
		return nil, err2
	}

	msg.Extended = ext
	return msg, nil
}

func encodeStoppedMessage(w *fieldWriter, m *StoppedMessage, version ProtocolVersion) error {
	encodeHeader(w, m.Header)
	if version == ProtocolV1 {
		return nil
	}
	ext := m.Extended
	if ext == nil {
		return fmt.Errorf("telemetry: StoppedMessage missing Extended fields for protocol v2")
	}
	w.u8(ext.PeakCommand)
	w.u8(ext.PlateauCommand)
	w.u8(ext.PeepCommand)
	w.u8(ext.CpmCommand)
	w.u8(ext.ExpiratoryTerm)
	w.boolean(ext.TriggerEnabled)
	w.u8(ext.TriggerOffset)
	w.boolean(ext.AlarmSnoozed)
	w.u8(ext.CPULoad)
	w.u8(uint8(ext.VentilationMode))
	w.u8(ext.InspiratoryTriggerFlow)
	w.u8(ext.ExpiratoryTriggerFlow)
	w.u16(ext.TiMin)
	w.u16(ext.TiMax)
	w.u8(ext.LowInspiratoryMinuteVolumeAlarmThreshold)
	w.u8(ext.HighInspiratoryMinuteVolumeAlarmThreshold)
	w.u8(ext.LowExpiratoryMinuteVolumeAlarmThreshold)
	w.u8(ext.HighExpiratoryMinuteVolumeAlarmThreshold)
	w.u8(ext.LowRespiratoryRateAlarmThreshold)
	w.u8(ext.HighRespiratoryRateAlarmThreshold)
	w.u16(ext.TargetTidalVolume)
	w.u16(ext.LowTidalVolumeAlarmThreshold)
	w.u16(ext.HighTidalVolumeAlarmThreshold)
	w.u16(ext.PlateauDuration)
	w.u16(ext.LeakAlarmThreshold)
	w.u8(ext.TargetInspiratoryFlow)
	w.u16(ext.InspiratoryDurationCommand)
	w.u16(ext.BatteryLevel)
	w.byteArray(ext.CurrentAlarmCodes)
	w.locale(ext.Locale)
	w.u8(ext.PatientHeight)
	w.u8(uint8(ext.PatientGender))
	w.u16(ext.PeakPressureAlarmThreshold)
	return nil
}

func decodeVentilationMode(tag uint8) (VentilationMode, error) {
	switch VentilationMode(tag) {
	case VentilationPCCMV, VentilationPCAC, VentilationVCCMV, VentilationPCVSAI, VentilationVCAC:
		return VentilationMode(tag), nil
	default:
		return 0, &InvalidEnumError{Field: "ventilation_mode", Observed: tag}
	}
}

func decodePatientGender(tag uint8) (PatientGender, error) {
	switch PatientGender(tag) {
	case PatientGenderMale, PatientGenderFemale:
		return PatientGender(tag), nil
	default:
		return 0, &InvalidEnumError{Field: "patient_gender", Observed: tag}
	}
}

// --- DataSnapshot ------------------------------------------------------

func decodeDataSnapshot(r *fieldReader, version ProtocolVersion) (*DataSnapshot, error) {
	h, err := decodeHeader(r)
	if err != nil {
		return nil, err
	}
	centile, err := r.u16()
	if err != nil {
		return nil, err
	}
	pressure, err := r.u16()
	if err != nil {
		return nil, err
	}
	phase, sub, err := decodePhaseField(r, version)
	if err != nil {
		return nil, err
	}
	blowerValve, err := r.u8()
	if err != nil {
		return nil, err
	}
	patientValve, err := r.u8()
	if err != nil {
		return nil, err
	}
	blowerRPM, err := r.u8()
	if err != nil {
		return nil, err
	}
	battery, err := r.u8()
	if err != nil {
		return nil, err
	}
	msg := &DataSnapshot{
		Header:               h,
		Centile:              centile,
		Pressure:             pressure,
		Phase:                phase,
		SubPhase:             sub,
		BlowerValvePosition:  blowerValve,
		PatientValvePosition: patientValve,
		BlowerRPM:            blowerRPM,
		BatteryLevel:         battery,
	}
	if version == ProtocolV2 {
		inFlow, err := r.i16()
		if err != nil {
			return nil, err
		}
		exFlow, err := r.i16()
		if err != nil {
			return nil, err
		}
		msg.InspiratoryFlow = &inFlow
		msg.ExpiratoryFlow = &exFlow
	}
	return msg, nil
}

func encodeDataSnapshot(w *fieldWriter, m *DataSnapshot, version ProtocolVersion) error {
	encodeHeader(w, m.Header)
	w.u16(m.Centile)
	w.u16(m.Pressure)
	encodePhaseField(w, m.Phase, m.SubPhase, version)
	w.u8(m.BlowerValvePosition)
	w.u8(m.PatientValvePosition)
	w.u8(m.BlowerRPM)
	w.u8(m.BatteryLevel)
	if version == ProtocolV2 {
		if m.InspiratoryFlow == nil || m.ExpiratoryFlow == nil {
			return fmt.Errorf("telemetry: DataSnapshot missing flow fields for protocol v2")
		}
		w.i16(*m.InspiratoryFlow)
		w.i16(*m.ExpiratoryFlow)
	}
	return nil
}

// --- MachineStateSnapshot ------------------------------------------------

func decodeMachineStateSnapshot(r *fieldReader, version ProtocolVersion) (*MachineStateSnapshot, error) {
	h, err := decodeHeader(r)
	if err != nil {
		return nil, err
	}
	cycle, err := r.u32()
	if err != nil {
		return nil, err
	}
	peak, err := r.u8()
	if err != nil {
		return nil, err
	}
	plateau, err := r.u8()
	if err != nil {
		return nil, err
	}
	peep, err := r.u8()
	if err != nil {
		return nil, err
	}
	cpm, err := r.u8()
	if err != nil {
		return nil, err
	}
	prevPeak, err := r.u16()
	if err != nil {
		return nil, err
	}
	prevPlateau, err := r.u16()
	if err != nil {
		return nil, err
	}
	prevPeep, err := r.u16()
	if err != nil {
		return nil, err
	}
	currentCodes, err := r.byteArray()
	if err != nil {
		return nil, err
	}
	previousCodes, err := r.byteArray()
	if err != nil {
		return nil, err
	}
	prevVolume, err := r.optionalU16()
	if err != nil {
		return nil, err
	}
	expTerm, err := r.u8()
	if err != nil {
		return nil, err
	}
	triggerEnabled, err := r.boolean()
	if err != nil {
		return nil, err
	}
	triggerOffset, err := r.u8()
	if err != nil {
		return nil, err
	}

	msg := &MachineStateSnapshot{
		Header:                   h,
		Cycle:                    cycle,
		PeakCommand:              peak,
		PlateauCommand:           plateau,
		PeepCommand:              peep,
		CpmCommand:               cpm,
		PreviousPeakPressure:     prevPeak,
		PreviousPlateauPressure:  prevPlateau,
		PreviousPeepPressure:     prevPeep,
		CurrentAlarmCodes:        currentCodes,
		PreviousAlarmCodes:       previousCodes,
		PreviousVolume:           prevVolume,
		ExpiratoryTerm:           expTerm,
		TriggerEnabled:           triggerEnabled,
		TriggerOffset:            triggerOffset,
	}
	if version == ProtocolV1 {
		return msg, nil
	}

	ext := &MachineStateExtended{}
	var err2 error
	if ext.PreviousCpm, err2 = r.u8(); err2 != nil {
		return nil, err2
	}
	if ext.AlarmSnoozed, err2 = r.boolean(); err2 != nil {
		return nil, err2
	}
	if ext.CPULoad, err2 = r.u8(); err2 != nil {
		return nil, err2
	}
	modeTag, err2 := r.u8()
	if err2 != nil {
		return nil, err2
	}
	if ext.VentilationMode, err2 = decodeVentilationMode(modeTag); err2 != nil {
		return nil, err2
	}
	if ext.InspiratoryTriggerFlow, err2 = r.u8(); err2 != nil {
		return nil, err2
	}
	if ext.ExpiratoryTriggerFlow, err2 = r.u8(); err2 != nil {
		return nil, err2
	}
	if ext.TiMin, err2 = r.u16(); err2 != nil {
		return nil, err2
	}
	if ext.TiMax, err2 = r.u16(); err2 != nil {
		return nil, err2
	}
	if ext.LowInspiratoryMinuteVolumeAlarmThreshold, err2 = r.u8(); err2 != nil {
		return nil, err2
	}
	if ext.HighInspiratoryMinuteVolumeAlarmThreshold, err2 = r.u8(); err2 != nil {
		return nil, err2
	}
	if ext.LowExpiratoryMinuteVolumeAlarmThreshold, err2 = r.u8(); err2 != nil {
		return nil, err2
	}
	if ext.HighExpiratoryMinuteVolumeAlarmThreshold, err2 = r.u8(); err2 != nil {
		return nil, err2
	}
	if ext.LowRespiratoryRateAlarmThreshold, err2 = r.u8(); err2 != nil {
		return nil, err2
	}
	if ext.HighRespiratoryRateAlarmThreshold, err2 = r.u8(); err2 != nil {
		return nil, err2
	}
	if ext.TargetTidalVolume, err2 = r.u16(); err2 != nil {
		return nil, err2
	}
	if ext.LowTidalVolumeAlarmThreshold, err2 = r.u16(); err2 != nil {
		return nil, err2
	}
	if ext.HighTidalVolumeAlarmThreshold, err2 = r.u16(); err2 != nil {
		return nil, err2
	}
	if ext.PlateauDuration, err2 = r.u16(); err2 != nil {
		return nil, err2
	}
	if ext.LeakAlarmThreshold, err2 = r.u16(); err2 != nil {
		return nil, err2
	}
	if ext.TargetInspiratoryFlow, err2 = r.u8(); err2 != nil {
		return nil, err2
	}
	if ext.InspiratoryDurationCommand, err2 = r.u16(); err2 != nil {
		return nil, err2
	}
	if ext.PreviousInspiratoryDuration, err2 = r.u16(); err2 != nil {
		return nil, err2
	}
	if ext.BatteryLevel, err2 = r.u16(); err2 != nil {
		return nil, err2
	}
	if ext.Locale, err2 = r.locale(); err2 != nil {
		return nil, err2
	}
	if ext.PatientHeight, err2 = r.u8(); err2 != nil {
		return nil, err2
	}
	genderTag, err2 := r.u8()
	if err2 != nil {
		return nil, err2
	}
	if ext.PatientGender, err2 = decodePatientGender(genderTag); err2 != nil {
		return nil, err2
	}
	if ext.PeakPressureAlarmThreshold, err2 = r.u16(); err2 != nil {
		return nil, err2
	}

	msg.Extended = ext
	return msg, nil
}

func encodeMachineStateSnapshot(w *fieldWriter, m *MachineStateSnapshot, version ProtocolVersion) error {
	encodeHeader(w, m.Header)
	w.u32(m.Cycle)
	w.u8(m.PeakCommand)
	w.u8(m.PlateauCommand)
	w.u8(m.PeepCommand)
	w.u8(m.CpmCommand)
	w.u16(m.PreviousPeakPressure)
	w.u16(m.PreviousPlateauPressure)
	w.u16(m.PreviousPeepPressure)
	w.byteArray(m.CurrentAlarmCodes)
	w.byteArray(m.PreviousAlarmCodes)
	w.optionalU16(m.PreviousVolume)
	w.u8(m.ExpiratoryTerm)
	w.boolean(m.TriggerEnabled)
	w.u8(m.TriggerOffset)
	if version == ProtocolV1 {
		return nil
	}
	ext := m.Extended
	if ext == nil {
		return fmt.Errorf("telemetry: MachineStateSnapshot missing Extended fields for protocol v2")
	}
	w.u8(ext.PreviousCpm)
	w.boolean(ext.AlarmSnoozed)
	w.u8(ext.CPULoad)
	w.u8(uint8(ext.VentilationMode))
	w.u8(ext.InspiratoryTriggerFlow)
	w.u8(ext.ExpiratoryTriggerFlow)
	w.u16(ext.TiMin)
	w.u16(ext.TiMax)
	w.u8(ext.LowInspiratoryMinuteVolumeAlarmThreshold)
	w.u8(ext.HighInspiratoryMinuteVolumeAlarmThreshold)
	w.u8(ext.LowExpiratoryMinuteVolumeAlarmThreshold)
	w.u8(ext.HighExpiratoryMinuteVolumeAlarmThreshold)
	w.u8(ext.LowRespiratoryRateAlarmThreshold)
	w.u8(ext.HighRespiratoryRateAlarmThreshold)
	w.u16(ext.TargetTidalVolume)
	w.u16(ext.LowTidalVolumeAlarmThreshold)
	w.u16(ext.HighTidalVolumeAlarmThreshold)
	w.u16(ext.PlateauDuration)
	w.u16(ext.LeakAlarmThreshold)
	w.u8(ext.TargetInspiratoryFlow)
	w.u16(ext.InspiratoryDurationCommand)
	w.u16(ext.PreviousInspiratoryDuration)
	w.u16(ext.BatteryLevel)
	w.locale(ext.Locale)
	w.u8(ext.PatientHeight)
	w.u8(uint8(ext.PatientGender))
	w.u16(ext.PeakPressureAlarmThreshold)
	return nil
}

// --- AlarmTrap -----------------------------------------------------------

func decodeAlarmTrap(r *fieldReader, version ProtocolVersion) (*AlarmTrap, error) {
	h, err := decodeHeader(r)
	if err != nil {
		return nil, err
	}
	centile, err := r.u16()
	if err != nil {
		return nil, err
	}
	pressure, err := r.u16()
	if err != nil {
		return nil, err
	}
	phase, sub, err := decodePhaseField(r, version)
	if err != nil {
		return nil, err
	}
	cycle, err := r.u32()
	if err != nil {
		return nil, err
	}
	code, err := r.u8()
	if err != nil {
		return nil, err
	}
	priorityTag, err := r.u8()
	if err != nil {
		return nil, err
	}
	priority := AlarmPriority(priorityTag)
	switch priority {
	case AlarmPriorityLow, AlarmPriorityMedium, AlarmPriorityHigh:
	default:
		return nil, &InvalidEnumError{Field: "alarm_priority", Observed: priorityTag}
	}
	triggered, err := r.boolean()
	if err != nil {
		return nil, err
	}
	expected, err := r.u32()
	if err != nil {
		return nil, err
	}
	measured, err := r.u32()
	if err != nil {
		return nil, err
	}
	cyclesSince, err := r.u32()
	if err != nil {
		return nil, err
	}
	return &AlarmTrap{
		Header:             h,
		Centile:            centile,
		Pressure:           pressure,
		Phase:              phase,
		SubPhase:           sub,
		Cycle:              cycle,
		AlarmCode:          code,
		AlarmPriority:      priority,
		Triggered:          triggered,
		Expected:           expected,
		Measured:           measured,
		CyclesSinceTrigger: cyclesSince,
	}, nil
}

func encodeAlarmTrap(w *fieldWriter, m *AlarmTrap, version ProtocolVersion) {
	encodeHeader(w, m.Header)
	w.u16(m.Centile)
	w.u16(m.Pressure)
	encodePhaseField(w, m.Phase, m.SubPhase, version)
	w.u32(m.Cycle)
	w.u8(m.AlarmCode)
	w.u8(uint8(m.AlarmPriority))
	w.boolean(m.Triggered)
	w.u32(m.Expected)
	w.u32(m.Measured)
	w.u32(m.CyclesSinceTrigger)
}

// --- ControlAck ------------------------------------------------------------

func decodeControlAck(r *fieldReader) (*ControlAck, error) {
	h, err := decodeHeader(r)
	if err != nil {
		return nil, err
	}
	settingTag, err := r.u8()
	if err != nil {
		return nil, err
	}
	setting := ControlSetting(settingTag)
	switch setting {
	case ControlPeakPressure, ControlPlateauPressure, ControlPEEP:
	default:
		return nil, &InvalidEnumError{Field: "control_setting", Observed: settingTag}
	}
	value, err := r.u16()
	if err != nil {
		return nil, err
	}
	return &ControlAck{Header: h, Setting: setting, Value: value}, nil
}

func encodeControlAck(w *fieldWriter, m *ControlAck) {
	encodeHeader(w, m.Header)
	w.u8(uint8(m.Setting))
	w.u16(m.Value)
}

// --- EolTestSnapshot ---------------------------------------------------

func decodeEolTestSnapshot(r *fieldReader) (*EolTestSnapshot, error) {
	h, err := decodeHeader(r)
	if err != nil {
		return nil, err
	}
	stepTag, err := r.u8()
	if err != nil {
		return nil, err
	}
	step := EolTestStep(stepTag)
	switch step {
	case EolTestStepPowerSupply, EolTestStepPressureSensors, EolTestStepMinValve,
		EolTestStepMaxValve, EolTestStepFlowSensors, EolTestStepBlower,
		EolTestStepSafetyValve, EolTestStepAllTestsDone:
	default:
		return nil, &InvalidEnumError{Field: "eol_test_step", Observed: stepTag}
	}
	contentTag, err := r.u8()
	if err != nil {
		return nil, err
	}
	content := EolTestContentKind(contentTag)
	switch content {
	case EolTestContentInProgress, EolTestContentError, EolTestContentSuccess:
	default:
		return nil, &InvalidEnumError{Field: "eol_test_snapshot_content", Observed: contentTag}
	}
	message, err := r.str("eol_test_message")
	if err != nil {
		return nil, err
	}
	return &EolTestSnapshot{
		Header:      h,
		CurrentStep: step,
		ContentKind: content,
		Message:     message,
	}, nil
}

func encodeEolTestSnapshot(w *fieldWriter, m *EolTestSnapshot) {
	encodeHeader(w, m.Header)
	w.u8(uint8(m.CurrentStep))
	w.u8(uint8(m.ContentKind))
	w.str(m.Message)
}

// --- FatalError --------------------------------------------------------

func decodeFatalError(r *fieldReader) (*FatalError, error) {
	h, err := decodeHeader(r)
	if err != nil {
		return nil, err
	}
	kindTag, err := r.u8()
	if err != nil {
		return nil, err
	}
	msg := &FatalError{Header: h, ErrorKind: FatalErrorKind(kindTag)}
	switch msg.ErrorKind {
	case FatalErrorWatchdogRestart, FatalErrorMassFlowMeterError:
		// no payload
	case FatalErrorCalibrationError:
		if msg.PressureOffset, err = r.i16(); err != nil {
			return nil, err
		}
		if msg.MinPressure, err = r.i16(); err != nil {
			return nil, err
		}
		if msg.MaxPressure, err = r.i16(); err != nil {
			return nil, err
		}
		if msg.FlowAtStarting, err = r.optionalI16(); err != nil {
			return nil, err
		}
		if msg.FlowWithBlowerOn, err = r.optionalI16(); err != nil {
			return nil, err
		}
	case FatalErrorBatteryDeeplyDischarged:
		if msg.BatteryLevel, err = r.u16(); err != nil {
			return nil, err
		}
	case FatalErrorInconsistentPressure:
		if msg.Pressure, err = r.u16(); err != nil {
			return nil, err
		}
	default:
		return nil, &InvalidEnumError{Field: "fatal_error_kind", Observed: kindTag}
	}
	return msg, nil
}

func encodeFatalError(w *fieldWriter, m *FatalError) {
	encodeHeader(w, m.Header)
	w.u8(uint8(m.ErrorKind))
	switch m.ErrorKind {
	case FatalErrorWatchdogRestart, FatalErrorMassFlowMeterError:
	case FatalErrorCalibrationError:
		w.i16(m.PressureOffset)
		w.i16(m.MinPressure)
		w.i16(m.MaxPressure)
		w.optionalI16(m.FlowAtStarting)
		w.optionalI16(m.FlowWithBlowerOn)
	case FatalErrorBatteryDeeplyDischarged:
		w.u16(m.BatteryLevel)
	case FatalErrorInconsistentPressure:
		w.u16(m.Pressure)
	}
}
