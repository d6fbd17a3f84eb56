package lr1110

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Response lengths, excluding the leading stat1 byte.
const (
	PacketStatusLoRaLen = 3
	PacketStatusGFSKLen = 4
	RxBufferStatusLen   = 2
	StatsGFSKLen        = 6
	StatsLoRaLen        = 8
	PacketTypeLen       = 1
)

// GFSK packet status bits of the fourth response byte.
const (
	statusSent     = 1 << 0
	statusReceived = 1 << 1
	statusAbortErr = 1 << 2
	statusLenErr   = 1 << 3
	statusCRCErr   = 1 << 4
	statusAddrErr  = 1 << 5
)

func short(what string, got, want int) error {
	return errors.Wrapf(io.ErrUnexpectedEOF, "lr1110: %s response is %d bytes, want %d", what, got, want)
}

// rssi decodes an RSSI byte counted in -0.5dBm steps.
func rssi(b byte) int8 { return -int8(b >> 1) }

// rssiByte encodes dBm as an RSSI byte, saturating at 0 and -127dBm.
func rssiByte(dBm int8) byte {
	v := -int(dBm)
	if v < 0 {
		v = 0
	} else if v > 127 {
		v = 127
	}
	return byte(v << 1)
}

// snr decodes a signed SNR byte counted in quarter dB, rounded to the nearest dB.
func snr(b byte) int8 { return int8((int(int8(b)) + 2) >> 2) }

// snrByte encodes dB as an SNR byte, saturating at the int8 range.
func snrByte(dB int8) byte {
	v := int(dB) << 2
	if v > 127 {
		v = 127
	} else if v < -128 {
		v = -128
	}
	return byte(int8(v))
}

// DecodePacketStatusLoRa decodes a GetPacketStatus response with the radio
// in LoRa mode.
func DecodePacketStatusLoRa(b []byte) (PacketStatusLoRa, error) {
	if len(b) < PacketStatusLoRaLen {
		return PacketStatusLoRa{}, short("LoRa packet status", len(b), PacketStatusLoRaLen)
	}
	return PacketStatusLoRa{
		RSSIPacket:       rssi(b[0]),
		SNRPacket:        snr(b[1]),
		SignalRSSIPacket: rssi(b[2]),
	}, nil
}

// Encode is the inverse of DecodePacketStatusLoRa up to rounding.
func (s PacketStatusLoRa) Encode() [PacketStatusLoRaLen]byte {
	return [PacketStatusLoRaLen]byte{rssiByte(s.RSSIPacket), snrByte(s.SNRPacket), rssiByte(s.SignalRSSIPacket)}
}

// DecodePacketStatusGFSK decodes a GetPacketStatus response with the radio
// in GFSK mode.
func DecodePacketStatusGFSK(b []byte) (PacketStatusGFSK, error) {
	if len(b) < PacketStatusGFSKLen {
		return PacketStatusGFSK{}, short("GFSK packet status", len(b), PacketStatusGFSKLen)
	}
	st := b[3]
	return PacketStatusGFSK{
		RSSISync: rssi(b[0]),
		RSSIAvg:  rssi(b[1]),
		RxLength: b[2],
		AddrErr:  st&statusAddrErr != 0,
		CRCErr:   st&statusCRCErr != 0,
		LenErr:   st&statusLenErr != 0,
		AbortErr: st&statusAbortErr != 0,
		Received: st&statusReceived != 0,
		Sent:     st&statusSent != 0,
	}, nil
}

// StatusByte packs the flags as reported by the chip.
func (s PacketStatusGFSK) StatusByte() (st byte) {
	for _, f := range [...]struct {
		set bool
		bit byte
	}{
		{s.AddrErr, statusAddrErr},
		{s.CRCErr, statusCRCErr},
		{s.LenErr, statusLenErr},
		{s.AbortErr, statusAbortErr},
		{s.Received, statusReceived},
		{s.Sent, statusSent},
	} {
		if f.set {
			st |= f.bit
		}
	}
	return st
}

// Encode is the inverse of DecodePacketStatusGFSK up to rounding.
func (s PacketStatusGFSK) Encode() [PacketStatusGFSKLen]byte {
	return [PacketStatusGFSKLen]byte{rssiByte(s.RSSISync), rssiByte(s.RSSIAvg), s.RxLength, s.StatusByte()}
}

// Err returns a non-nil error if any error flag is set.
func (s PacketStatusGFSK) Err() error {
	switch {
	case s.AbortErr:
		return errors.New("lr1110: GFSK packet aborted")
	case s.AddrErr:
		return errors.New("lr1110: GFSK address mismatch")
	case s.LenErr:
		return errors.New("lr1110: GFSK length error")
	case s.CRCErr:
		return errors.New("lr1110: GFSK CRC error")
	}
	return nil
}

// DecodeRxBufferStatus decodes a GetRxBufferStatus response.
func DecodeRxBufferStatus(b []byte) (RxBufferStatus, error) {
	if len(b) < RxBufferStatusLen {
		return RxBufferStatus{}, short("RX buffer status", len(b), RxBufferStatusLen)
	}
	return RxBufferStatus{PayloadLength: b[0], StartPointer: b[1]}, nil
}

// DecodeStatsGFSK decodes a GetStats response with the radio in GFSK mode.
func DecodeStatsGFSK(b []byte) (StatsGFSK, error) {
	if len(b) < StatsGFSKLen {
		return StatsGFSK{}, short("GFSK stats", len(b), StatsGFSKLen)
	}
	return StatsGFSK{
		Received:     binary.BigEndian.Uint16(b[0:]),
		CRCErrors:    binary.BigEndian.Uint16(b[2:]),
		LengthErrors: binary.BigEndian.Uint16(b[4:]),
	}, nil
}

// DecodeStatsLoRa decodes a GetStats response with the radio in LoRa mode.
func DecodeStatsLoRa(b []byte) (StatsLoRa, error) {
	if len(b) < StatsLoRaLen {
		return StatsLoRa{}, short("LoRa stats", len(b), StatsLoRaLen)
	}
	return StatsLoRa{
		Received:     binary.BigEndian.Uint16(b[0:]),
		CRCErrors:    binary.BigEndian.Uint16(b[2:]),
		HeaderErrors: binary.BigEndian.Uint16(b[4:]),
		FalseSyncs:   binary.BigEndian.Uint16(b[6:]),
	}, nil
}

// DecodePacketType decodes a GetPacketType response. Unknown values are an error.
func DecodePacketType(b []byte) (PacketType, error) {
	if len(b) < PacketTypeLen {
		return 0, short("packet type", len(b), PacketTypeLen)
	}
	pt := PacketType(b[0])
	if !enumValid(packetTypeNames, pt) {
		return pt, invalid("packet type", pt)
	}
	return pt, nil
}
