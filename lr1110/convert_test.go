package lr1110

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semtrx/lora"
)

func TestLoRaBandwidthFor(t *testing.T) {
	for _, tC := range []struct {
		freq lora.Frequency
		want LoRaBandwidth
	}{
		{lora.BW10_4k, BW10},
		{10400, BW10},
		{15.6e3, BW15},
		{20.8e3, BW20},
		{31.25e3, BW31},
		{41.7e3, BW41},
		{62.5e3, BW62},
		{lora.BW125k, BW125},
		{lora.BW250k, BW250},
		{lora.BW500k, BW500},
	} {
		got, err := LoRaBandwidthFor(tC.freq)
		require.NoError(t, err, "%dHz", tC.freq)
		assert.Equal(t, tC.want, got, "%dHz", tC.freq)
	}
	for _, f := range []lora.Frequency{0, 7.8e3, 100e3, 600e3} {
		_, err := LoRaBandwidthFor(f)
		assert.Error(t, err, "%dHz", f)
	}

	var prev lora.Frequency
	for _, e := range loraBandwidths {
		assert.Greater(t, int64(e.bw.Frequency()), int64(prev), e.bw.String())
		prev = e.bw.Frequency()
	}
	assert.Zero(t, LoRaBandwidth(0x07).Frequency())
}

func TestGFSKRxBandwidthFor(t *testing.T) {
	for _, tC := range []struct {
		freq lora.Frequency
		want GFSKRxBandwidth
	}{
		{0, RxBW4800},
		{4800, RxBW4800},
		{4801, RxBW5800},
		{100e3, RxBW117300},
		{234300, RxBW234300},
		{467e3, RxBW467000},
	} {
		got, err := GFSKRxBandwidthFor(tC.freq)
		require.NoError(t, err)
		assert.Equal(t, tC.want, got, "%dHz", tC.freq)
	}
	_, err := GFSKRxBandwidthFor(467001)
	assert.Error(t, err)

	m := ModulationParamsGFSK{Bitrate: 50000, Fdev: 25000}
	bw, err := GFSKRxBandwidthFor(m.OccupiedBandwidth())
	require.NoError(t, err)
	assert.Equal(t, RxBW117300, bw)
	assert.EqualValues(t, 117300, bw.Frequency())
}

func TestLoRaParams(t *testing.T) {
	cfg := lora.Config{
		Bandwidth:      lora.BW125k,
		Frequency:      lora.Freq868_1M,
		SpreadFactor:   lora.SF7,
		CodingRate:     lora.CR4_5,
		HeaderType:     lora.HeaderExplicit,
		CRC:            true,
		PreambleLength: 8,
	}
	mod, pkt, err := LoRaParams(cfg)
	require.NoError(t, err)
	assert.Equal(t, ModulationParamsLoRa{SpreadingFactor: SF7, Bandwidth: BW125, CodingRate: CR4_5}, mod)
	assert.Equal(t, PacketParamsLoRa{
		PreambleLength: 8,
		HeaderType:     LoRaHeaderExplicit,
		PayloadLength:  255,
		CRC:            LoRaCRCOn,
		IQ:             IQStandard,
	}, pkt)

	back := mod.Config(pkt)
	assert.Equal(t, cfg.Bandwidth, back.Bandwidth)
	assert.Equal(t, cfg.SpreadFactor, back.SpreadFactor)
	assert.Equal(t, cfg.CodingRate, back.CodingRate)
	assert.Equal(t, cfg.CRC, back.CRC)
	assert.Equal(t, cfg.TimeOnAir(20), back.TimeOnAir(20))

	cfg.SpreadFactor = lora.SF12
	cfg.LDRO = true
	cfg.IQInversion = true
	cfg.HeaderType = lora.HeaderImplicit
	cfg.MaxImplicitPayloadLength = 16
	mod, pkt, err = LoRaParams(cfg)
	require.NoError(t, err)
	assert.EqualValues(t, 1, mod.PPMOffset)
	assert.Equal(t, IQInverted, pkt.IQ)
	assert.EqualValues(t, 16, pkt.PayloadLength)

	cfg.MaxImplicitPayloadLength = 0
	_, _, err = LoRaParams(cfg)
	assert.Error(t, err, "implicit header without payload length")

	cfg = lora.Config{Bandwidth: lora.BW125k, SpreadFactor: 4, CodingRate: lora.CR4_5}
	_, _, err = LoRaParams(cfg)
	assert.Error(t, err)
	cfg = lora.Config{Bandwidth: 7.8e3, SpreadFactor: lora.SF7, CodingRate: lora.CR4_5}
	_, _, err = LoRaParams(cfg)
	assert.Error(t, err)
}

func TestNetworkType(t *testing.T) {
	nt, ok := NetworkType(lora.SyncPublic)
	assert.True(t, ok)
	assert.Equal(t, NetworkPublic, nt)
	nt, ok = NetworkType(lora.SyncPrivate)
	assert.True(t, ok)
	assert.Equal(t, NetworkPrivate, nt)
	_, ok = NetworkType(0x21)
	assert.False(t, ok)
}
