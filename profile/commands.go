package profile

import (
	"github.com/pkg/errors"

	"github.com/semtrx/lora/lr1110"
)

// Commands returns the command frames that configure the chip for the
// profile, in the order they must be sent: the packet type first since it
// resets modulation and packet parameters, then the parameters, the
// frequency and the PA.
func (p *Profile) Commands() ([][]byte, error) {
	var b builder

	b.add(lr1110.AppendSetPacketType(nil, p.PacketType))
	switch p.PacketType {
	case lr1110.PacketLoRa:
		b.add(lr1110.AppendSetModulationParamsLoRa(nil, p.LoRaModulation()))
		b.add(lr1110.AppendSetPacketParamsLoRa(nil, p.LoRaPacket()))
		if p.LoRa.SyncWord != 0 {
			b.frame(lr1110.AppendSetLoRaSyncWord(nil, p.LoRa.SyncWord))
		} else {
			b.add(lr1110.AppendSetLoRaPublicNetwork(nil, p.LoRa.Network))
		}
	case lr1110.PacketGFSK:
		b.add(lr1110.AppendSetModulationParamsGFSK(nil, p.GFSKModulation()))
		b.add(lr1110.AppendSetPacketParamsGFSK(nil, p.GFSKPacket()))
		if len(p.GFSK.SyncWord) > 8 {
			b.fail(errors.Wrapf(lr1110.ErrInvalidParameter, "profile: GFSK sync word is %d bytes", len(p.GFSK.SyncWord)))
		}
		var sync [8]byte
		copy(sync[:], p.GFSK.SyncWord)
		b.frame(lr1110.AppendSetGFSKSyncWord(nil, sync))
		if p.GFSK.AddressFiltering != lr1110.AddressFilterDisable {
			b.frame(lr1110.AppendSetPacketAddress(nil, p.GFSK.NodeAddress, p.GFSK.BroadcastAddress))
		}
		if p.GFSK.CRC != lr1110.GFSKCRCOff {
			b.frame(lr1110.AppendSetGFSKCRCParams(nil, p.GFSK.CRCSeed, p.GFSK.CRCPolynomial))
		}
		if p.GFSK.DCFree == lr1110.DCFreeWhitening {
			b.frame(lr1110.AppendSetGFSKWhiteningSeed(nil, p.GFSK.WhiteningSeed))
		}
	default:
		return nil, errors.Wrapf(lr1110.ErrInvalidParameter, "profile: packet type %s", p.PacketType)
	}

	if p.Frequency < 0 || p.Frequency > 1<<32-1 {
		b.fail(errors.Wrapf(lr1110.ErrInvalidParameter, "profile: frequency %dHz", p.Frequency))
	} else {
		b.add(lr1110.AppendSetRfFrequency(nil, uint32(p.Frequency)))
	}
	b.add(lr1110.AppendSetPAConfig(nil, p.PAConfig()))
	b.add(lr1110.AppendSetTxParams(nil, p.TxPower, p.RampTime))
	b.add(lr1110.AppendSetRxTxFallbackMode(nil, p.Fallback))
	if p.CAD.Enabled && p.PacketType == lr1110.PacketLoRa {
		b.add(lr1110.AppendSetCADParams(nil, p.CADParams()))
	}

	if b.err != nil {
		return nil, b.err
	}
	return b.frames, nil
}

// builder collects frames and keeps the first error.
type builder struct {
	frames [][]byte
	err    error
}

func (b *builder) add(frame []byte, err error) {
	if err != nil {
		b.fail(err)
		return
	}
	b.frame(frame)
}

func (b *builder) frame(frame []byte) {
	if b.err == nil {
		b.frames = append(b.frames, frame)
	}
}

func (b *builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}
