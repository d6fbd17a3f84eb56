package profile

import (
	"github.com/brocaar/lorawan"
	"github.com/brocaar/lorawan/band"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/semtrx/lora"
	"github.com/semtrx/lora/lr1110"
)

// Modulation used for LoRaWAN FSK data rates.
const (
	regionFSKFdev       = 25_000
	regionFSKPulseShape = lr1110.PulseShapeBT1
)

// ApplyRegion sets the modulation from the LoRaWAN regional data rate named
// by p.Region. It is a no-op when no region is set. Frequency, power and
// packet settings other than the modulation are left untouched.
func (p *Profile) ApplyRegion() error {
	if p.Region.Name == "" {
		return nil
	}

	dwellTime := lorawan.DwellTimeNoLimit
	if p.Region.DwellTime400ms {
		dwellTime = lorawan.DwellTime400ms
	}

	b, err := band.GetConfig(band.Name(p.Region.Name), p.Region.RepeaterCompatible, dwellTime)
	if err != nil {
		return errors.Wrapf(err, "get band config error for region %s", p.Region.Name)
	}
	dr, err := b.GetDataRate(p.Region.DataRate)
	if err != nil {
		return errors.Wrapf(err, "get data-rate %d error for region %s", p.Region.DataRate, p.Region.Name)
	}

	switch dr.Modulation {
	case band.LoRaModulation:
		bw, err := lr1110.LoRaBandwidthFor(lora.Frequency(dr.Bandwidth) * lora.KiloHertz)
		if err != nil {
			return err
		}
		p.PacketType = lr1110.PacketLoRa
		p.LoRa.SpreadingFactor = lr1110.LoRaSpreadingFactor(dr.SpreadFactor)
		p.LoRa.Bandwidth = bw
	case band.FSKModulation:
		p.PacketType = lr1110.PacketGFSK
		p.GFSK.Bitrate = uint32(dr.BitRate)
		p.GFSK.Fdev = regionFSKFdev
		p.GFSK.PulseShape = regionFSKPulseShape
		bw, err := lr1110.GFSKRxBandwidthFor(p.GFSKModulation().OccupiedBandwidth())
		if err != nil {
			return err
		}
		p.GFSK.Bandwidth = bw
	default:
		return errors.Errorf("unsupported modulation: %s", dr.Modulation)
	}

	log.WithFields(log.Fields{
		"profile":     p.Name,
		"region":      p.Region.Name,
		"dr":          p.Region.DataRate,
		"modulation":  dr.Modulation,
		"packet_type": p.PacketType,
	}).Debug("profile: regional data-rate applied")
	return nil
}
