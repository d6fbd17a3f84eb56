package lr1110

import (
	"github.com/semtrx/lora"
)

// LoRaParams converts a chip independent configuration to LR1110 modulation
// and packet parameters. The payload length is taken from
// cfg.MaxImplicitPayloadLength, which the chip uses as the maximum length in
// explicit header mode and as the exact length in implicit header mode.
func LoRaParams(cfg lora.Config) (ModulationParamsLoRa, PacketParamsLoRa, error) {
	bw, err := LoRaBandwidthFor(cfg.Bandwidth)
	if err != nil {
		return ModulationParamsLoRa{}, PacketParamsLoRa{}, err
	}
	mod := ModulationParamsLoRa{
		SpreadingFactor: LoRaSpreadingFactor(cfg.SpreadFactor),
		Bandwidth:       bw,
		CodingRate:      LoRaCodingRate(cfg.CodingRate),
		PPMOffset:       b2u8(cfg.LDRO),
	}
	if err := mod.Validate(); err != nil {
		return mod, PacketParamsLoRa{}, err
	}
	pkt := PacketParamsLoRa{
		PreambleLength: cfg.PreambleLength,
		HeaderType:     LoRaHeaderType(cfg.HeaderType),
		PayloadLength:  cfg.MaxImplicitPayloadLength,
		CRC:            LoRaCRC(b2u8(cfg.CRC)),
		IQ:             LoRaIQ(b2u8(cfg.IQInversion)),
	}
	if pkt.PayloadLength == 0 && pkt.HeaderType == LoRaHeaderExplicit {
		pkt.PayloadLength = 255
	}
	return mod, pkt, pkt.Validate()
}

// Config returns the chip independent view of the parameters. Frequency,
// sync word and TX power are not part of the parameters and are left unset.
func (m ModulationParamsLoRa) Config(p PacketParamsLoRa) lora.Config {
	return lora.Config{
		Bandwidth:                m.Bandwidth.Frequency(),
		SpreadFactor:             lora.SpreadFactor(m.SpreadingFactor),
		CodingRate:               lora.CodingRate(m.CodingRate),
		LDRO:                     m.PPMOffset != 0,
		PreambleLength:           p.PreambleLength,
		HeaderType:               lora.HeaderType(p.HeaderType),
		MaxImplicitPayloadLength: p.PayloadLength,
		CRC:                      p.CRC == LoRaCRCOn,
		IQInversion:              p.IQ == IQInverted,
	}
}

// NetworkType returns the network type matching a LoRa sync word. Sync
// words other than the public and private ones need SetLoRaSyncWord.
func NetworkType(sync uint8) (LoRaNetworkType, bool) {
	switch sync {
	case lora.SyncPublic:
		return NetworkPublic, true
	case lora.SyncPrivate:
		return NetworkPrivate, true
	}
	return 0, false
}

func b2u8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
