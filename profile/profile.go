// Package profile holds named LR1110 radio setups that can be loaded from
// configuration files, resolved against LoRaWAN regional data rates and
// turned into the ordered sequence of command frames that configures the chip.
package profile

import (
	"time"

	"github.com/pkg/errors"

	"github.com/semtrx/lora"
	"github.com/semtrx/lora/lr1110"
)

// Frequency ranges covered by the power amplifiers.
const (
	MinSubGHzFrequency = 150 * lora.MegaHertz
	MaxSubGHzFrequency = 960 * lora.MegaHertz
	Min2_4GHzFrequency = 2400 * lora.MegaHertz
	Max2_4GHzFrequency = 2500 * lora.MegaHertz
)

// Profile is a complete radio setup for either LoRa or GFSK operation.
type Profile struct {
	Name       string              `mapstructure:"name"`
	Frequency  lora.Frequency      `mapstructure:"frequency"`
	PacketType lr1110.PacketType   `mapstructure:"packet_type"`
	TxPower    int8                `mapstructure:"tx_power"`
	RampTime   lr1110.RampTime     `mapstructure:"ramp_time"`
	Fallback   lr1110.FallbackMode `mapstructure:"fallback"`

	PA     PA     `mapstructure:"pa"`
	LoRa   LoRa   `mapstructure:"lora"`
	GFSK   GFSK   `mapstructure:"gfsk"`
	CAD    CAD    `mapstructure:"cad"`
	Region Region `mapstructure:"region"`
}

// PA selects and tunes the power amplifier.
type PA struct {
	Selection lr1110.PASelection       `mapstructure:"selection"`
	Supply    lr1110.PARegulatorSupply `mapstructure:"supply"`
	DutyCycle uint8                    `mapstructure:"duty_cycle"`
	HPSel     uint8                    `mapstructure:"hp_sel"`
}

// LoRa holds the LoRa modulation and packet settings.
type LoRa struct {
	SpreadingFactor lr1110.LoRaSpreadingFactor `mapstructure:"spreading_factor"`
	Bandwidth       lr1110.LoRaBandwidth       `mapstructure:"bandwidth"`
	CodingRate      lr1110.LoRaCodingRate      `mapstructure:"coding_rate"`
	// LDRO forces low data rate optimization. When false it is still enabled
	// for symbol periods that mandate it.
	LDRO           bool                   `mapstructure:"ldro"`
	PreambleLength uint16                 `mapstructure:"preamble_length"`
	HeaderType     lr1110.LoRaHeaderType  `mapstructure:"header_type"`
	PayloadLength  uint8                  `mapstructure:"payload_length"`
	CRC            lr1110.LoRaCRC         `mapstructure:"crc"`
	IQ             lr1110.LoRaIQ          `mapstructure:"iq"`
	Network        lr1110.LoRaNetworkType `mapstructure:"network"`
	// SyncWord overrides Network when non-zero.
	SyncWord uint8 `mapstructure:"sync_word"`
}

// GFSK holds the GFSK modulation and packet settings.
type GFSK struct {
	Bitrate          uint32                      `mapstructure:"bitrate"`
	PulseShape       lr1110.PulseShape           `mapstructure:"pulse_shape"`
	Bandwidth        lr1110.GFSKRxBandwidth      `mapstructure:"bandwidth"`
	Fdev             uint32                      `mapstructure:"fdev"`
	PreambleLength   uint16                      `mapstructure:"preamble_length"`
	PreambleDetect   lr1110.GFSKPreambleDetect   `mapstructure:"preamble_detect"`
	SyncWord         HexBytes                    `mapstructure:"sync_word"`
	SyncWordLength   uint8                       `mapstructure:"sync_word_length"`
	AddressFiltering lr1110.GFSKAddressFiltering `mapstructure:"address_filtering"`
	NodeAddress      uint8                       `mapstructure:"node_address"`
	BroadcastAddress uint8                       `mapstructure:"broadcast_address"`
	HeaderType       lr1110.GFSKHeaderType       `mapstructure:"header_type"`
	PayloadLength    uint8                       `mapstructure:"payload_length"`
	CRC              lr1110.GFSKCRCType          `mapstructure:"crc"`
	DCFree           lr1110.GFSKDCFree           `mapstructure:"dc_free"`
	CRCSeed          uint32                      `mapstructure:"crc_seed"`
	CRCPolynomial    uint32                      `mapstructure:"crc_polynomial"`
	WhiteningSeed    uint16                      `mapstructure:"whitening_seed"`
}

// CAD configures channel activity detection. It only applies to LoRa.
type CAD struct {
	Enabled   bool               `mapstructure:"enabled"`
	SymbolNum uint8              `mapstructure:"symbol_num"`
	DetPeak   uint8              `mapstructure:"det_peak"`
	DetMin    uint8              `mapstructure:"det_min"`
	ExitMode  lr1110.CADExitMode `mapstructure:"exit_mode"`
	Timeout   time.Duration      `mapstructure:"timeout"`
}

// Region selects a LoRaWAN regional data rate. When Name is set, the
// modulation settings are derived from the data rate by ApplyRegion.
type Region struct {
	Name               string `mapstructure:"name"`
	DataRate           int    `mapstructure:"data_rate"`
	DwellTime400ms     bool   `mapstructure:"dwell_time_400ms"`
	RepeaterCompatible bool   `mapstructure:"repeater_compatible"`
}

// Default returns a public network LoRa profile at 868.1MHz, SF7 BW125 CR4/5,
// transmitting 14dBm through the low power PA.
func Default() Profile {
	cad := lr1110.DefaultCADParams()
	pa := lr1110.DefaultPAConfig(lr1110.PALowPower)
	return Profile{
		Name:       "default",
		Frequency:  lora.Freq868_1M,
		PacketType: lr1110.PacketLoRa,
		TxPower:    14,
		RampTime:   lr1110.Ramp40us,
		Fallback:   lr1110.FallbackStandbyRC,
		PA: PA{
			Selection: pa.Selection,
			Supply:    pa.Supply,
			DutyCycle: pa.DutyCycle,
			HPSel:     pa.HPSel,
		},
		LoRa: LoRa{
			SpreadingFactor: lr1110.SF7,
			Bandwidth:       lr1110.BW125,
			CodingRate:      lr1110.CR4_5,
			PreambleLength:  8,
			HeaderType:      lr1110.LoRaHeaderExplicit,
			PayloadLength:   255,
			CRC:             lr1110.LoRaCRCOn,
			IQ:              lr1110.IQStandard,
			Network:         lr1110.NetworkPublic,
		},
		GFSK: GFSK{
			Bitrate:          50_000,
			PulseShape:       lr1110.PulseShapeBT1,
			Bandwidth:        lr1110.RxBW117300,
			Fdev:             25_000,
			PreambleLength:   40,
			PreambleDetect:   lr1110.PreambleDetect16Bits,
			SyncWord:         HexBytes{0xC1, 0x94, 0xC1},
			SyncWordLength:   24,
			AddressFiltering: lr1110.AddressFilterDisable,
			HeaderType:       lr1110.GFSKHeaderExplicit,
			PayloadLength:    255,
			CRC:              lr1110.GFSKCRC2BytesInv,
			DCFree:           lr1110.DCFreeWhitening,
			CRCSeed:          0x1D0F,
			CRCPolynomial:    0x1021,
			WhiteningSeed:    0x01FF,
		},
		CAD: CAD{
			SymbolNum: cad.SymbolNum,
			DetPeak:   cad.DetPeak,
			DetMin:    cad.DetMin,
			ExitMode:  cad.ExitMode,
		},
	}
}

// PAConfig returns the chip PA configuration.
func (p *Profile) PAConfig() lr1110.PAConfig {
	return lr1110.PAConfig{
		Selection: p.PA.Selection,
		Supply:    p.PA.Supply,
		DutyCycle: p.PA.DutyCycle,
		HPSel:     p.PA.HPSel,
	}
}

// LoRaModulation returns the LoRa modulation parameters. Low data rate
// optimization is enabled when forced or when the symbol period requires it.
func (p *Profile) LoRaModulation() lr1110.ModulationParamsLoRa {
	m := lr1110.ModulationParamsLoRa{
		SpreadingFactor: p.LoRa.SpreadingFactor,
		Bandwidth:       p.LoRa.Bandwidth,
		CodingRate:      p.LoRa.CodingRate,
	}
	cfg := m.Config(lr1110.PacketParamsLoRa{})
	if p.LoRa.LDRO || cfg.NeedsLDRO() {
		m.PPMOffset = 1
	}
	return m
}

// LoRaPacket returns the LoRa packet parameters.
func (p *Profile) LoRaPacket() lr1110.PacketParamsLoRa {
	return lr1110.PacketParamsLoRa{
		PreambleLength: p.LoRa.PreambleLength,
		HeaderType:     p.LoRa.HeaderType,
		PayloadLength:  p.LoRa.PayloadLength,
		CRC:            p.LoRa.CRC,
		IQ:             p.LoRa.IQ,
	}
}

// GFSKModulation returns the GFSK modulation parameters.
func (p *Profile) GFSKModulation() lr1110.ModulationParamsGFSK {
	return lr1110.ModulationParamsGFSK{
		Bitrate:    p.GFSK.Bitrate,
		PulseShape: p.GFSK.PulseShape,
		Bandwidth:  p.GFSK.Bandwidth,
		Fdev:       p.GFSK.Fdev,
	}
}

// GFSKPacket returns the GFSK packet parameters.
func (p *Profile) GFSKPacket() lr1110.PacketParamsGFSK {
	return lr1110.PacketParamsGFSK{
		PreambleLength:   p.GFSK.PreambleLength,
		PreambleDetect:   p.GFSK.PreambleDetect,
		SyncWordLength:   p.GFSK.SyncWordLength,
		AddressFiltering: p.GFSK.AddressFiltering,
		HeaderType:       p.GFSK.HeaderType,
		PayloadLength:    p.GFSK.PayloadLength,
		CRC:              p.GFSK.CRC,
		DCFree:           p.GFSK.DCFree,
	}
}

// CADParams returns the chip CAD parameters.
func (p *Profile) CADParams() lr1110.CADParams {
	return lr1110.CADParams{
		SymbolNum: p.CAD.SymbolNum,
		DetPeak:   p.CAD.DetPeak,
		DetMin:    p.CAD.DetMin,
		ExitMode:  p.CAD.ExitMode,
		Timeout:   lr1110.CADTimeout(p.CAD.Timeout),
	}
}

// LoRaConfig returns the chip independent view of the LoRa settings.
func (p *Profile) LoRaConfig() lora.Config {
	cfg := p.LoRaModulation().Config(p.LoRaPacket())
	cfg.Frequency = p.Frequency
	cfg.TxPower = p.TxPower
	cfg.SyncWord = p.loraSyncWord()
	return cfg
}

func (p *Profile) loraSyncWord() uint8 {
	switch {
	case p.LoRa.SyncWord != 0:
		return p.LoRa.SyncWord
	case p.LoRa.Network == lr1110.NetworkPublic:
		return lora.SyncPublic
	}
	return lora.SyncPrivate
}

// TimeOnAir returns the time it takes to transmit a payload of n bytes.
func (p *Profile) TimeOnAir(n int) (time.Duration, error) {
	switch p.PacketType {
	case lr1110.PacketLoRa:
		cfg := p.LoRaConfig()
		return cfg.TimeOnAir(n), nil
	case lr1110.PacketGFSK:
		if p.GFSK.Bitrate == 0 {
			return 0, errors.New("profile: GFSK bitrate is zero")
		}
		bits := int64(p.GFSK.PreambleLength) + int64(p.GFSK.SyncWordLength)
		bytes := int64(n) + int64(p.GFSK.CRC.Length())
		if p.GFSK.HeaderType == lr1110.GFSKHeaderExplicit {
			bytes++
		}
		if p.GFSK.AddressFiltering != lr1110.AddressFilterDisable {
			bytes++
		}
		bits += 8 * bytes
		return time.Second * time.Duration(bits) / time.Duration(p.GFSK.Bitrate), nil
	}
	return 0, errors.Errorf("profile: no time on air for packet type %s", p.PacketType)
}

// Validate checks every chip parameter of the selected packet type and the
// cross-field constraints between them.
func (p *Profile) Validate() error {
	pa := p.PAConfig()
	if err := pa.ValidateTxPower(p.TxPower); err != nil {
		return err
	}
	if err := p.validateFrequency(); err != nil {
		return err
	}

	switch p.PacketType {
	case lr1110.PacketLoRa:
		if err := p.LoRaModulation().Validate(); err != nil {
			return err
		}
		if err := p.LoRaPacket().Validate(); err != nil {
			return err
		}
		if p.CAD.Enabled {
			if err := p.CADParams().Validate(); err != nil {
				return err
			}
		}
	case lr1110.PacketGFSK:
		if p.CAD.Enabled {
			return errors.Wrap(lr1110.ErrInvalidParameter, "profile: CAD requires LoRa packets")
		}
		if err := p.GFSKModulation().Validate(); err != nil {
			return err
		}
		if err := p.GFSKPacket().Validate(); err != nil {
			return err
		}
		if len(p.GFSK.SyncWord) > lr1110.MaxSyncWordLength/8 {
			return errors.Wrapf(lr1110.ErrInvalidParameter, "profile: GFSK sync word is %d bytes, max %d",
				len(p.GFSK.SyncWord), lr1110.MaxSyncWordLength/8)
		}
		if int(p.GFSK.SyncWordLength) > 8*len(p.GFSK.SyncWord) {
			return errors.Wrapf(lr1110.ErrInvalidParameter, "profile: GFSK sync word length %d bits exceeds sync word %x",
				p.GFSK.SyncWordLength, []byte(p.GFSK.SyncWord))
		}
		if p.GFSK.Bandwidth.Frequency() < p.GFSKModulation().OccupiedBandwidth() {
			return errors.Wrapf(lr1110.ErrInvalidParameter, "profile: GFSK bandwidth %s narrower than occupied bandwidth %dHz",
				p.GFSK.Bandwidth, p.GFSKModulation().OccupiedBandwidth())
		}
	default:
		return errors.Wrapf(lr1110.ErrInvalidParameter, "profile: packet type %s", p.PacketType)
	}
	_, err := p.Commands()
	return err
}

func (p *Profile) validateFrequency() error {
	f := p.Frequency
	if p.PA.Selection == lr1110.PAHighFrequency {
		if f < Min2_4GHzFrequency || f > Max2_4GHzFrequency {
			return errors.Wrapf(lr1110.ErrInvalidParameter, "profile: frequency %dHz outside 2.4GHz band of HF PA", f)
		}
		return nil
	}
	if f < MinSubGHzFrequency || f > MaxSubGHzFrequency {
		return errors.Wrapf(lr1110.ErrInvalidParameter, "profile: frequency %dHz outside sub-GHz range of %s PA", f, p.PA.Selection)
	}
	return nil
}
