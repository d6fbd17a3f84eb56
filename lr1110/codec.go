package lr1110

import (
	"encoding/binary"
	"strconv"
)

// Opcode is a 16 bit radio command opcode.
type Opcode uint16

// Radio configuration and status opcodes.
const (
	OpResetStats           Opcode = 0x0200
	OpGetStats             Opcode = 0x0201
	OpGetPacketType        Opcode = 0x0202
	OpGetRxBufferStatus    Opcode = 0x0203
	OpGetPacketStatus      Opcode = 0x0204
	OpGetRSSIInst          Opcode = 0x0205
	OpSetGFSKSyncWord      Opcode = 0x0206
	OpSetLoRaPublicNetwork Opcode = 0x0208
	OpSetRfFrequency       Opcode = 0x020B
	OpAutoTxRx             Opcode = 0x020C
	OpSetCADParams         Opcode = 0x020D
	OpSetPacketType        Opcode = 0x020E
	OpSetModulationParams  Opcode = 0x020F
	OpSetPacketParams      Opcode = 0x0210
	OpSetTxParams          Opcode = 0x0211
	OpSetPacketAddress     Opcode = 0x0212
	OpSetRxTxFallbackMode  Opcode = 0x0213
	OpSetRxDutyCycle       Opcode = 0x0214
	OpSetPAConfig          Opcode = 0x0215
	OpSetGFSKCRCParams     Opcode = 0x0224
	OpSetGFSKWhitening     Opcode = 0x0225
	OpSetLoRaSyncWord      Opcode = 0x022B
)

var opcodeNames = map[Opcode]string{
	OpResetStats:           "ResetStats",
	OpGetStats:             "GetStats",
	OpGetPacketType:        "GetPacketType",
	OpGetRxBufferStatus:    "GetRxBufferStatus",
	OpGetPacketStatus:      "GetPacketStatus",
	OpGetRSSIInst:          "GetRSSIInst",
	OpSetGFSKSyncWord:      "SetGFSKSyncWord",
	OpSetLoRaPublicNetwork: "SetLoRaPublicNetwork",
	OpSetRfFrequency:       "SetRfFrequency",
	OpAutoTxRx:             "AutoTxRx",
	OpSetCADParams:         "SetCADParams",
	OpSetPacketType:        "SetPacketType",
	OpSetModulationParams:  "SetModulationParams",
	OpSetPacketParams:      "SetPacketParams",
	OpSetTxParams:          "SetTxParams",
	OpSetPacketAddress:     "SetPacketAddress",
	OpSetRxTxFallbackMode:  "SetRxTxFallbackMode",
	OpSetRxDutyCycle:       "SetRxDutyCycle",
	OpSetPAConfig:          "SetPAConfig",
	OpSetGFSKCRCParams:     "SetGFSKCRCParams",
	OpSetGFSKWhitening:     "SetGFSKWhitening",
	OpSetLoRaSyncWord:      "SetLoRaSyncWord",
}

func (op Opcode) String() string {
	if s, ok := opcodeNames[op]; ok {
		return s
	}
	return "Opcode(0x" + strconv.FormatUint(uint64(op), 16) + ")"
}

// Append appends the opcode followed by params to dst.
func (op Opcode) Append(dst []byte, params ...byte) []byte {
	dst = binary.BigEndian.AppendUint16(dst, uint16(op))
	return append(dst, params...)
}

// OpcodeOf returns the opcode of a command frame.
func OpcodeOf(frame []byte) (Opcode, bool) {
	if len(frame) < 2 {
		return 0, false
	}
	return Opcode(binary.BigEndian.Uint16(frame)), true
}

func appendU24(dst []byte, v uint32) []byte {
	return append(dst, byte(v>>16), byte(v>>8), byte(v))
}

// AppendSetPacketType appends a SetPacketType command. It must precede
// modulation and packet parameter commands.
func AppendSetPacketType(dst []byte, pt PacketType) ([]byte, error) {
	if !enumValid(packetTypeNames, pt) {
		return dst, invalid("packet type", pt)
	}
	return OpSetPacketType.Append(dst, byte(pt)), nil
}

// AppendSetModulationParamsLoRa appends a SetModulationParams command for LoRa packets.
func AppendSetModulationParamsLoRa(dst []byte, m ModulationParamsLoRa) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return dst, err
	}
	return OpSetModulationParams.Append(dst,
		byte(m.SpreadingFactor), byte(m.Bandwidth), byte(m.CodingRate), m.PPMOffset), nil
}

// AppendSetModulationParamsGFSK appends a SetModulationParams command for GFSK packets.
func AppendSetModulationParamsGFSK(dst []byte, m ModulationParamsGFSK) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return dst, err
	}
	dst = OpSetModulationParams.Append(dst)
	dst = binary.BigEndian.AppendUint32(dst, m.Bitrate)
	dst = append(dst, byte(m.PulseShape), byte(m.Bandwidth))
	return binary.BigEndian.AppendUint32(dst, m.Fdev), nil
}

// AppendSetPacketParamsLoRa appends a SetPacketParams command for LoRa packets.
func AppendSetPacketParamsLoRa(dst []byte, p PacketParamsLoRa) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return dst, err
	}
	dst = OpSetPacketParams.Append(dst)
	dst = binary.BigEndian.AppendUint16(dst, p.PreambleLength)
	return append(dst, byte(p.HeaderType), p.PayloadLength, byte(p.CRC), byte(p.IQ)), nil
}

// AppendSetPacketParamsGFSK appends a SetPacketParams command for GFSK packets.
func AppendSetPacketParamsGFSK(dst []byte, p PacketParamsGFSK) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return dst, err
	}
	dst = OpSetPacketParams.Append(dst)
	dst = binary.BigEndian.AppendUint16(dst, p.PreambleLength)
	return append(dst, byte(p.PreambleDetect), p.SyncWordLength, byte(p.AddressFiltering),
		byte(p.HeaderType), p.PayloadLength, byte(p.CRC), byte(p.DCFree)), nil
}

// AppendSetPAConfig appends a SetPAConfig command.
func AppendSetPAConfig(dst []byte, c PAConfig) ([]byte, error) {
	if err := c.Validate(); err != nil {
		return dst, err
	}
	return OpSetPAConfig.Append(dst, byte(c.Selection), byte(c.Supply), c.DutyCycle, c.HPSel), nil
}

// AppendSetTxParams appends a SetTxParams command. Power is not checked
// against a PA configuration, see [PAConfig.ValidateTxPower].
func AppendSetTxParams(dst []byte, dBm int8, ramp RampTime) ([]byte, error) {
	if !enumValid(rampTimeNames, ramp) {
		return dst, invalid("ramp time", ramp)
	}
	return OpSetTxParams.Append(dst, byte(dBm), byte(ramp)), nil
}

// AppendSetRfFrequency appends a SetRfFrequency command, hz is the carrier frequency.
func AppendSetRfFrequency(dst []byte, hz uint32) ([]byte, error) {
	if hz == 0 {
		return dst, invalid("RF frequency", hz)
	}
	return binary.BigEndian.AppendUint32(OpSetRfFrequency.Append(dst), hz), nil
}

// AppendSetCADParams appends a SetCADParams command.
func AppendSetCADParams(dst []byte, c CADParams) ([]byte, error) {
	if err := c.Validate(); err != nil {
		return dst, err
	}
	dst = OpSetCADParams.Append(dst, c.SymbolNum, c.DetPeak, c.DetMin, byte(c.ExitMode))
	return appendU24(dst, c.Timeout), nil
}

// AppendSetRxTxFallbackMode appends a SetRxTxFallbackMode command.
func AppendSetRxTxFallbackMode(dst []byte, mode FallbackMode) ([]byte, error) {
	if !enumValid(fallbackModeNames, mode) {
		return dst, invalid("fallback mode", mode)
	}
	return OpSetRxTxFallbackMode.Append(dst, byte(mode)), nil
}

// AppendSetLoRaPublicNetwork appends a SetLoRaPublicNetwork command.
func AppendSetLoRaPublicNetwork(dst []byte, nt LoRaNetworkType) ([]byte, error) {
	if !enumValid(networkTypeNames, nt) {
		return dst, invalid("network type", nt)
	}
	return OpSetLoRaPublicNetwork.Append(dst, byte(nt)), nil
}

// AppendSetRxDutyCycle appends a SetRxDutyCycle command. Periods are 24 bit
// counts of the 32.768kHz RTC.
func AppendSetRxDutyCycle(dst []byte, rxPeriod, sleepPeriod uint32, mode RxDutyCycleMode) ([]byte, error) {
	switch {
	case rxPeriod > maxU24:
		return dst, invalid("RX period", rxPeriod)
	case sleepPeriod > maxU24:
		return dst, invalid("sleep period", sleepPeriod)
	case !enumValid(dutyCycleModeNames, mode):
		return dst, invalid("RX duty cycle mode", mode)
	}
	dst = OpSetRxDutyCycle.Append(dst)
	dst = appendU24(dst, rxPeriod)
	dst = appendU24(dst, sleepPeriod)
	return append(dst, byte(mode)), nil
}

// AppendAutoTxRx appends an AutoTxRx command. Delay and timeout are 24 bit
// counts of the 32.768kHz RTC.
func AppendAutoTxRx(dst []byte, delay uint32, mode IntermediaryMode, timeout uint32) ([]byte, error) {
	switch {
	case delay > maxU24:
		return dst, invalid("AutoTxRx delay", delay)
	case timeout > maxU24:
		return dst, invalid("AutoTxRx timeout", timeout)
	case !enumValid(intermediaryModeNames, mode):
		return dst, invalid("intermediary mode", mode)
	}
	dst = OpAutoTxRx.Append(dst)
	dst = appendU24(dst, delay)
	dst = append(dst, byte(mode))
	return appendU24(dst, timeout), nil
}

// AppendSetPacketAddress appends a SetPacketAddress command with the GFSK node and broadcast addresses.
func AppendSetPacketAddress(dst []byte, node, broadcast uint8) []byte {
	return OpSetPacketAddress.Append(dst, node, broadcast)
}

// AppendSetGFSKSyncWord appends a SetGFSKSyncWord command. Only the first
// sync word length bits configured in the packet parameters are used.
func AppendSetGFSKSyncWord(dst []byte, syncWord [8]byte) []byte {
	return OpSetGFSKSyncWord.Append(dst, syncWord[:]...)
}

// AppendSetGFSKCRCParams appends a SetGFSKCRCParams command.
func AppendSetGFSKCRCParams(dst []byte, seed, polynomial uint32) []byte {
	dst = binary.BigEndian.AppendUint32(OpSetGFSKCRCParams.Append(dst), seed)
	return binary.BigEndian.AppendUint32(dst, polynomial)
}

// AppendSetGFSKWhiteningSeed appends a SetGFSKWhitening command. Only the 9 LSBs of seed are used.
func AppendSetGFSKWhiteningSeed(dst []byte, seed uint16) []byte {
	return binary.BigEndian.AppendUint16(OpSetGFSKWhitening.Append(dst), seed)
}

// AppendSetLoRaSyncWord appends a SetLoRaSyncWord command, an alternative to
// selecting a network type.
func AppendSetLoRaSyncWord(dst []byte, sync uint8) []byte {
	return OpSetLoRaSyncWord.Append(dst, sync)
}
