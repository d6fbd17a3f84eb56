package profile

import (
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semtrx/lora"
	"github.com/semtrx/lora/lr1110"
)

func TestDefault(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	p := Default()
	require.NoError(p.Validate())

	frames, err := p.Commands()
	require.NoError(err)
	assert.Equal([][]byte{
		{0x02, 0x0E, 0x02},
		{0x02, 0x0F, 0x07, 0x04, 0x01, 0x00},
		{0x02, 0x10, 0x00, 0x08, 0x00, 0xFF, 0x01, 0x00},
		{0x02, 0x08, 0x01},
		{0x02, 0x0B, 0x33, 0xBE, 0x27, 0xA0},
		{0x02, 0x15, 0x00, 0x00, 0x04, 0x00},
		{0x02, 0x11, 0x0E, 0x02},
		{0x02, 0x13, 0x01},
	}, frames)

	toa, err := p.TimeOnAir(10)
	require.NoError(err)
	assert.Equal(41216*time.Microsecond, toa)

	cfg := p.LoRaConfig()
	assert.Equal(lora.Freq868_1M, cfg.Frequency)
	assert.EqualValues(lora.SyncPublic, cfg.SyncWord)
	assert.EqualValues(14, cfg.TxPower)
	assert.False(cfg.LDRO)
}

func TestLoRaOptions(t *testing.T) {
	p := Default()
	p.LoRa.SpreadingFactor = lr1110.SF12
	assert.EqualValues(t, 1, p.LoRaModulation().PPMOffset, "SF12 BW125 mandates LDRO")
	p.LoRa.Bandwidth = lr1110.BW500
	assert.EqualValues(t, 0, p.LoRaModulation().PPMOffset)
	p.LoRa.LDRO = true
	assert.EqualValues(t, 1, p.LoRaModulation().PPMOffset)

	p = Default()
	p.LoRa.Network = lr1110.NetworkPrivate
	assert.EqualValues(t, lora.SyncPrivate, p.LoRaConfig().SyncWord)
	p.LoRa.SyncWord = 0x21
	frames, err := p.Commands()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0x2B, 0x21}, frames[3])

	p = Default()
	p.CAD.Enabled = true
	p.CAD.ExitMode = lr1110.CADExitRx
	p.CAD.Timeout = time.Millisecond
	require.NoError(t, p.Validate())
	frames, err = p.Commands()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0x0D, 0x02, 0x32, 0x0A, 0x01, 0x00, 0x00, 0x20}, frames[len(frames)-1])
}

func TestGFSKTimeOnAir(t *testing.T) {
	p := Default()
	p.PacketType = lr1110.PacketGFSK
	toa, err := p.TimeOnAir(10)
	require.NoError(t, err)
	// 40 preamble + 24 sync + 8*(1 header + 10 payload + 2 CRC) bits at 50kb/s.
	assert.Equal(t, 3360*time.Microsecond, toa)

	p.GFSK.Bitrate = 0
	_, err = p.TimeOnAir(10)
	assert.Error(t, err)

	p.PacketType = lr1110.PacketNone
	_, err = p.TimeOnAir(10)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	for _, tC := range []struct {
		desc   string
		modify func(p *Profile)
	}{
		{"HP above 14dBm on DCDC", func(p *Profile) {
			p.PA = PA{Selection: lr1110.PAHighPower, Supply: lr1110.SupplyDCDC, DutyCycle: 4, HPSel: 7}
			p.TxPower = 20
		}},
		{"LP above 14dBm", func(p *Profile) { p.TxPower = 15 }},
		{"HF PA at 868MHz", func(p *Profile) {
			p.PA = PA{Selection: lr1110.PAHighFrequency}
			p.TxPower = 10
		}},
		{"LP PA at 2.45GHz", func(p *Profile) { p.Frequency = 2450 * lora.MegaHertz }},
		{"zero frequency", func(p *Profile) { p.Frequency = 0 }},
		{"CAD with GFSK", func(p *Profile) {
			p.PacketType = lr1110.PacketGFSK
			p.CAD.Enabled = true
		}},
		{"CAD det_min", func(p *Profile) {
			p.CAD.Enabled = true
			p.CAD.DetMin = 200
		}},
		{"GFSK bandwidth narrower than signal", func(p *Profile) {
			p.PacketType = lr1110.PacketGFSK
			p.GFSK.Bandwidth = lr1110.RxBW58600
		}},
		{"GFSK sync word shorter than its length", func(p *Profile) {
			p.PacketType = lr1110.PacketGFSK
			p.GFSK.SyncWord = HexBytes{0xC1}
		}},
		{"GFSK sync word too long", func(p *Profile) {
			p.PacketType = lr1110.PacketGFSK
			p.GFSK.SyncWord = make(HexBytes, 9)
		}},
		{"ramp time", func(p *Profile) { p.RampTime = 9 }},
		{"fallback", func(p *Profile) { p.Fallback = 0 }},
		{"packet type", func(p *Profile) { p.PacketType = lr1110.PacketRanging }},
		{"LoRa implicit without length", func(p *Profile) {
			p.LoRa.HeaderType = lr1110.LoRaHeaderImplicit
			p.LoRa.PayloadLength = 0
		}},
	} {
		t.Run(tC.desc, func(t *testing.T) {
			p := Default()
			tC.modify(&p)
			err := p.Validate()
			require.Error(t, err)
			assert.Equal(t, lr1110.ErrInvalidParameter, errors.Cause(err))
		})
	}

	p := Default()
	p.PA = PA{Selection: lr1110.PAHighFrequency}
	p.TxPower = 10
	p.Frequency = 2450 * lora.MegaHertz
	assert.NoError(t, p.Validate())
}

const gfskConfig = `
name="gfsk-915"
frequency="915MHz"
packet_type="GFSK"
tx_power=22
ramp_time="80us"

[pa]
selection="HP"
supply="VBAT"
duty_cycle=4
hp_sel=7

[gfsk]
bitrate=100000
bandwidth="BW234300"
fdev="50000"
sync_word="0x12ad"
sync_word_length=16
address_filtering="NODE"
node_address=66
crc="OFF"
dc_free="OFF"

[cad]
timeout="1ms"
exit_mode="0x01"
`

func TestDecode(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	v := viper.New()
	v.SetConfigType("toml")
	require.NoError(v.ReadConfig(strings.NewReader(gfskConfig)))

	p, err := Decode(v)
	require.NoError(err)
	assert.Equal("gfsk-915", p.Name)
	assert.Equal(915*lora.MegaHertz, p.Frequency)
	assert.Equal(lr1110.PacketGFSK, p.PacketType)
	assert.Equal(lr1110.Ramp80us, p.RampTime)
	assert.Equal(PA{Selection: lr1110.PAHighPower, Supply: lr1110.SupplyVBAT, DutyCycle: 4, HPSel: 7}, p.PA)
	assert.Equal(HexBytes{0x12, 0xAD}, p.GFSK.SyncWord)
	assert.Equal(lr1110.RxBW234300, p.GFSK.Bandwidth)
	assert.EqualValues(50000, p.GFSK.Fdev)
	assert.Equal(time.Millisecond, p.CAD.Timeout)
	assert.Equal(lr1110.CADExitRx, p.CAD.ExitMode)
	// Not in the file.
	assert.EqualValues(40, p.GFSK.PreambleLength)
	assert.Equal(lr1110.SF7, p.LoRa.SpreadingFactor)

	require.NoError(p.Validate())
	frames, err := p.Commands()
	require.NoError(err)
	assert.Equal([][]byte{
		{0x02, 0x0E, 0x01},
		{0x02, 0x0F, 0x00, 0x01, 0x86, 0xA0, 0x0B, 0x0A, 0x00, 0x00, 0xC3, 0x50},
		{0x02, 0x10, 0x00, 0x28, 0x05, 0x10, 0x01, 0x01, 0xFF, 0x01, 0x00},
		{0x02, 0x06, 0x12, 0xAD, 0, 0, 0, 0, 0, 0},
		{0x02, 0x12, 0x42, 0x00},
		{0x02, 0x0B, 0x36, 0x89, 0xCA, 0xC0},
		{0x02, 0x15, 0x01, 0x01, 0x04, 0x07},
		{0x02, 0x11, 0x16, 0x03},
		{0x02, 0x13, 0x01},
	}, frames)
}

func TestDecodeInvalid(t *testing.T) {
	for _, cfg := range []string{
		`packet_type="WIFI"`,
		`frequency="868.1 parsecs"`,
		`[lora]
spreading_factor="SF4"`,
		`[gfsk]
sync_word="xyz"`,
	} {
		v := viper.New()
		v.SetConfigType("toml")
		require.NoError(t, v.ReadConfig(strings.NewReader(cfg)))
		_, err := Decode(v)
		assert.Error(t, err, cfg)
	}
}

func TestParseFrequency(t *testing.T) {
	for _, tC := range []struct {
		in     string
		expect lora.Frequency
	}{
		{"868.1MHz", 868_100_000},
		{"868.1 mhz", 868_100_000},
		{"125k", 125_000},
		{"10.417kHz", 10_417},
		{"2.4GHz", 2_400_000_000},
		{"915000000", 915_000_000},
		{"433.175M", 433_175_000},
		{"500Hz", 500},
	} {
		got, err := ParseFrequency(tC.in)
		require.NoError(t, err, tC.in)
		assert.Equal(t, tC.expect, got, tC.in)
	}
	for _, in := range []string{"", "MHz", "-1MHz", "12x"} {
		_, err := ParseFrequency(in)
		assert.Error(t, err, in)
	}
}

func TestHexBytes(t *testing.T) {
	var b HexBytes
	require.NoError(t, b.UnmarshalText([]byte(" 0xC194C1 ")))
	assert.Equal(t, HexBytes{0xC1, 0x94, 0xC1}, b)
	text, err := b.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "c194c1", string(text))
	require.NoError(t, b.UnmarshalText([]byte("0X2dD4")))
	assert.Equal(t, HexBytes{0x2D, 0xD4}, b)
	assert.Error(t, b.UnmarshalText([]byte("c19")))
}
