package lr1110

import (
	"github.com/pkg/errors"

	"github.com/semtrx/lora"
)

// GFSK modulation limits.
const (
	MinGFSKBitrate = 600
	MaxGFSKBitrate = 300_000
	MaxGFSKFdev    = 200_000
	// MaxSyncWordLength is the longest GFSK sync word, in bits.
	MaxSyncWordLength = 64
)

// ModulationParamsGFSK is the modulation configuration for GFSK packets.
type ModulationParamsGFSK struct {
	Bitrate    uint32 // bit/s
	PulseShape PulseShape
	Bandwidth  GFSKRxBandwidth
	Fdev       uint32 // Frequency deviation in Hz.
}

// Validate checks the parameters are within the chip's range.
func (m ModulationParamsGFSK) Validate() error {
	switch {
	case m.Bitrate < MinGFSKBitrate || m.Bitrate > MaxGFSKBitrate:
		return invalid("GFSK bitrate", m.Bitrate)
	case m.Fdev > MaxGFSKFdev:
		return invalid("GFSK frequency deviation", m.Fdev)
	case !enumValid(pulseShapeNames, m.PulseShape):
		return invalid("pulse shape", m.PulseShape)
	case !enumValid(gfskRxBandwidthNames, m.Bandwidth):
		return invalid("GFSK bandwidth", m.Bandwidth)
	}
	return nil
}

// OccupiedBandwidth is the Carson bandwidth of the modulation: bitrate + 2*fdev.
// The receiver bandwidth should be at least this wide.
func (m ModulationParamsGFSK) OccupiedBandwidth() lora.Frequency {
	return lora.Frequency(m.Bitrate) + 2*lora.Frequency(m.Fdev)
}

// ModulationParamsLoRa is the modulation configuration for LoRa packets.
type ModulationParamsLoRa struct {
	SpreadingFactor LoRaSpreadingFactor
	Bandwidth       LoRaBandwidth
	CodingRate      LoRaCodingRate
	// PPMOffset enables low data rate optimization when set to 1.
	PPMOffset uint8
}

// Validate checks the parameters are within the chip's range.
func (m ModulationParamsLoRa) Validate() error {
	switch {
	case !enumValid(spreadingFactorNames, m.SpreadingFactor):
		return invalid("spreading factor", m.SpreadingFactor)
	case !enumValid(loraBandwidthNames, m.Bandwidth):
		return invalid("LoRa bandwidth", m.Bandwidth)
	case !enumValid(codingRateNames, m.CodingRate):
		return invalid("coding rate", m.CodingRate)
	case m.PPMOffset > 1:
		return invalid("ppm offset", m.PPMOffset)
	}
	return nil
}

// PacketParamsGFSK is the packet configuration for GFSK packets.
type PacketParamsGFSK struct {
	PreambleLength   uint16 // Transmitted preamble length in bits.
	PreambleDetect   GFSKPreambleDetect
	SyncWordLength   uint8 // In bits.
	AddressFiltering GFSKAddressFiltering
	HeaderType       GFSKHeaderType
	PayloadLength    uint8 // In bytes.
	CRC              GFSKCRCType
	DCFree           GFSKDCFree
}

// Validate checks the parameters are within the chip's range and that the
// preamble detector fits in the preamble.
func (p PacketParamsGFSK) Validate() error {
	switch {
	case !enumValid(preambleDetectNames, p.PreambleDetect):
		return invalid("preamble detector length", p.PreambleDetect)
	case p.SyncWordLength > MaxSyncWordLength:
		return invalid("sync word length", p.SyncWordLength)
	case !enumValid(addressFilteringNames, p.AddressFiltering):
		return invalid("address filtering", p.AddressFiltering)
	case !enumValid(gfskHeaderNames, p.HeaderType):
		return invalid("GFSK header type", p.HeaderType)
	case !enumValid(gfskCRCNames, p.CRC):
		return invalid("GFSK CRC", p.CRC)
	case !enumValid(dcFreeNames, p.DCFree):
		return invalid("DC free", p.DCFree)
	case p.PreambleDetect.Bits() > int(p.PreambleLength):
		return errors.Wrapf(ErrInvalidParameter, "lr1110: preamble detector length %d bits exceeds preamble %d bits",
			p.PreambleDetect.Bits(), p.PreambleLength)
	}
	return nil
}

// PacketParamsLoRa is the packet configuration for LoRa packets.
type PacketParamsLoRa struct {
	PreambleLength uint16 // In symbols.
	HeaderType     LoRaHeaderType
	PayloadLength  uint8 // In bytes.
	CRC            LoRaCRC
	IQ             LoRaIQ
}

// Validate checks the parameters are within the chip's range.
func (p PacketParamsLoRa) Validate() error {
	switch {
	case !enumValid(loraHeaderNames, p.HeaderType):
		return invalid("LoRa header type", p.HeaderType)
	case !enumValid(loraCRCNames, p.CRC):
		return invalid("LoRa CRC", p.CRC)
	case !enumValid(loraIQNames, p.IQ):
		return invalid("IQ", p.IQ)
	case p.HeaderType == LoRaHeaderImplicit && p.PayloadLength == 0:
		return errors.Wrap(ErrInvalidParameter, "lr1110: implicit header requires a payload length")
	}
	return nil
}

// PacketStatusGFSK is the status of the last GFSK packet.
type PacketStatusGFSK struct {
	RSSISync int8  // RSSI latched on sync address detection, dBm.
	RSSIAvg  int8  // RSSI averaged over the payload, dBm.
	RxLength uint8 // Length of the last received packet in bytes.
	// AddrErr is set when the received address matches neither the node
	// nor the broadcast address.
	AddrErr bool
	// CRCErr is set on CRC mismatch. RX with CRC enabled only.
	CRCErr bool
	// LenErr is set when the received length exceeds the maximum length.
	// RX with variable length packets only.
	LenErr bool
	// AbortErr is set when the current packet was aborted, in RX or TX.
	AbortErr bool
	Received bool // Reception done.
	Sent     bool // Transmission done.
}

// PacketStatusLoRa is the status of the last received LoRa packet.
type PacketStatusLoRa struct {
	RSSIPacket       int8 // Average RSSI over the packet, dBm.
	SNRPacket        int8 // Estimated SNR, dB.
	SignalRSSIPacket int8 // RSSI of the despread signal, dBm.
}

// RxBufferStatus locates the last received packet in the reception buffer.
type RxBufferStatus struct {
	PayloadLength uint8
	StartPointer  uint8 // Offset of the first received byte.
}

// StatsGFSK are the GFSK packet counters since last reset.
type StatsGFSK struct {
	Received     uint16
	CRCErrors    uint16
	LengthErrors uint16
}

// StatsLoRa are the LoRa packet counters since last reset.
type StatsLoRa struct {
	Received     uint16
	CRCErrors    uint16
	HeaderErrors uint16
	FalseSyncs   uint16
}
