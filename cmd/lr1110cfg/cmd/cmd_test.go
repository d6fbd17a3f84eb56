package cmd

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semtrx/lora"
	"github.com/semtrx/lora/lr1110"
	"github.com/semtrx/lora/profile"
)

func TestConfigFile(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	p := profile.Default()
	p.Name = "sensor"
	p.PacketType = lr1110.PacketGFSK
	p.CAD.Timeout = 2 * time.Millisecond
	p.Region.Name = "EU868"
	p.Region.DataRate = 7

	var buf bytes.Buffer
	require.NoError(writeConfigFile(&buf, 5, p))

	v := viper.New()
	v.SetConfigType("toml")
	require.NoError(v.ReadConfig(&buf))
	assert.Equal(5, v.GetInt("general.log_level"))

	decoded, err := profile.Decode(v)
	require.NoError(err)
	assert.Equal(p, decoded)
}

func TestViperBindEnvs(t *testing.T) {
	t.Setenv("LR1110CFG_FREQUENCY", "915MHz")
	t.Setenv("LR1110CFG_LORA__SPREADING_FACTOR", "SF9")
	t.Setenv("LR1110CFG_PA__SELECTION", "HP")
	t.Setenv("LR1110CFG_GFSK__SYNC_WORD", "2dd4")
	t.Setenv("LR1110CFG_CAD__TIMEOUT", "10ms")

	v := viper.New()
	viperBindEnvs(v, profile.Default())

	p, err := profile.Decode(v)
	require.NoError(t, err)
	assert.Equal(t, 915*lora.MegaHertz, p.Frequency)
	assert.Equal(t, lr1110.SF9, p.LoRa.SpreadingFactor)
	assert.Equal(t, lr1110.PAHighPower, p.PA.Selection)
	assert.Equal(t, profile.HexBytes{0x2D, 0xD4}, p.GFSK.SyncWord)
	assert.Equal(t, 10*time.Millisecond, p.CAD.Timeout)
	// Not overridden.
	assert.Equal(t, lr1110.BW125, p.LoRa.Bandwidth)
}

func TestWriteFrames(t *testing.T) {
	p := profile.Default()
	frames, err := p.Commands()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeFrames(&buf, frames[:2]))
	assert.Equal(t,
		fmt.Sprintf("%-26s # SetPacketType\n%-26s # SetModulationParams\n", "020e02", "020f07040100"),
		buf.String())
}
