package cmd

import (
	"io"
	"text/template"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/semtrx/lora/profile"
)

// when updating this template, make sure every profile field is listed
const configTemplate = `# Profile name, used in log messages.
name="{{ .Profile.Name }}"

# RF frequency.
#
# Either in Hz or with a unit, e.g. "868.1MHz". The LP and HP power amplifiers
# cover 150MHz to 960MHz, the HF power amplifier covers the 2.4GHz band.
frequency={{ .Profile.Frequency }}

# Packet type.
#
# Valid values are LORA and GFSK.
packet_type="{{ .Profile.PacketType }}"

# TX output power in dBm.
#
# LP: -17 to 14, HP: -9 to 22, HF: -18 to 13. HP above 14 requires the VBAT
# supply.
tx_power={{ .Profile.TxPower }}

# PA ramp time.
#
# 10us, 20us, 40us, 80us, 200us, 800us, 1700us or 3400us.
ramp_time="{{ .Profile.RampTime }}"

# Mode entered after a transmission or reception.
#
# STDBY_RC, STDBY_XOSC or FS.
fallback="{{ .Profile.Fallback }}"


[general]
# Log level
#
# debug=5, info=4, warning=3, error=2, fatal=1, panic=0
log_level={{ .General.LogLevel }}


# Power amplifier.
[pa]
# LP, HP or HF.
selection="{{ .Profile.PA.Selection }}"

# DCDC or VBAT.
supply="{{ .Profile.PA.Supply }}"

# Duty cycle, max 7 for LP, 4 for HP and 0 for HF.
duty_cycle={{ .Profile.PA.DutyCycle }}

# Number of HP PA slices minus one, 0 to 7.
hp_sel={{ .Profile.PA.HPSel }}


# LoRa settings, used when packet_type is LORA.
[lora]
# SF5 to SF12.
spreading_factor="{{ .Profile.LoRa.SpreadingFactor }}"

# BW10, BW15, BW20, BW31, BW41, BW62, BW125, BW250 or BW500.
bandwidth="{{ .Profile.LoRa.Bandwidth }}"

# CR4_5, CR4_6, CR4_7, CR4_8 or the long interleaver CR4_5_LI, CR4_6_LI,
# CR4_8_LI.
coding_rate="{{ .Profile.LoRa.CodingRate }}"

# Force low data rate optimization.
#
# It is always enabled when the symbol period is 16.38ms or longer.
ldro={{ .Profile.LoRa.LDRO }}

# Preamble length in symbols.
preamble_length={{ .Profile.LoRa.PreambleLength }}

# EXPLICIT or IMPLICIT.
header_type="{{ .Profile.LoRa.HeaderType }}"

# Payload length in bytes, the exact length for implicit headers.
payload_length={{ .Profile.LoRa.PayloadLength }}

# ON or OFF.
crc="{{ .Profile.LoRa.CRC }}"

# STANDARD or INVERTED.
iq="{{ .Profile.LoRa.IQ }}"

# PUBLIC or PRIVATE.
network="{{ .Profile.LoRa.Network }}"

# Sync word, overrides network when not 0.
sync_word={{ .Profile.LoRa.SyncWord }}


# GFSK settings, used when packet_type is GFSK.
[gfsk]
# Bitrate in bit/s, 600 to 300000.
bitrate={{ .Profile.GFSK.Bitrate }}

# BT0.3, BT0.5, BT0.7, BT1.0 or OFF.
pulse_shape="{{ .Profile.GFSK.PulseShape }}"

# RX bandwidth, BW4800 to BW467000.
#
# Must be at least bitrate + 2*fdev.
bandwidth="{{ .Profile.GFSK.Bandwidth }}"

# Frequency deviation in Hz.
fdev={{ .Profile.GFSK.Fdev }}

# Preamble length in bits.
preamble_length={{ .Profile.GFSK.PreambleLength }}

# Preamble detector length, OFF or 8_BITS to 32_BITS.
preamble_detect="{{ .Profile.GFSK.PreambleDetect }}"

# Sync word (HEX encoded, max 8 bytes).
sync_word="{{ .Profile.GFSK.SyncWord }}"

# Sync word length in bits.
sync_word_length={{ .Profile.GFSK.SyncWordLength }}

# DISABLE, NODE or NODE_AND_BROADCAST.
address_filtering="{{ .Profile.GFSK.AddressFiltering }}"
node_address={{ .Profile.GFSK.NodeAddress }}
broadcast_address={{ .Profile.GFSK.BroadcastAddress }}

# EXPLICIT or IMPLICIT.
header_type="{{ .Profile.GFSK.HeaderType }}"

# Payload length in bytes.
payload_length={{ .Profile.GFSK.PayloadLength }}

# OFF, 1_BYTE, 2_BYTES, 1_BYTE_INV or 2_BYTES_INV.
crc="{{ .Profile.GFSK.CRC }}"
crc_seed={{ .Profile.GFSK.CRCSeed }}
crc_polynomial={{ .Profile.GFSK.CRCPolynomial }}

# OFF or WHITENING.
dc_free="{{ .Profile.GFSK.DCFree }}"
whitening_seed={{ .Profile.GFSK.WhiteningSeed }}


# Channel activity detection, LoRa only.
[cad]
enabled={{ .Profile.CAD.Enabled }}

# Symbols used for detection: 1, 2, 4, 8 or 16.
symbol_num={{ .Profile.CAD.SymbolNum }}
det_peak={{ .Profile.CAD.DetPeak }}
det_min={{ .Profile.CAD.DetMin }}

# STDBY_RC, RX or TX.
exit_mode="{{ .Profile.CAD.ExitMode }}"

# Timeout when exit_mode is RX or TX.
timeout="{{ .Profile.CAD.Timeout }}"


# LoRaWAN region.
#
# When name is set, the modulation is taken from the regional data rate.
[region]
# Region name, e.g. EU868, US915, AS923.
name="{{ .Profile.Region.Name }}"
data_rate={{ .Profile.Region.DataRate }}
dwell_time_400ms={{ .Profile.Region.DwellTime400ms }}
repeater_compatible={{ .Profile.Region.RepeaterCompatible }}
`

type configFile struct {
	General struct {
		LogLevel int
	}
	Profile profile.Profile
}

var configCmd = &cobra.Command{
	Use:   "configfile",
	Short: "Print the lr1110cfg configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := profile.Decode(viper.GetViper())
		if err != nil {
			return err
		}
		return writeConfigFile(cmd.OutOrStdout(), viper.GetInt("general.log_level"), p)
	},
}

func writeConfigFile(w io.Writer, logLevel int, p profile.Profile) error {
	var c configFile
	c.General.LogLevel = logLevel
	c.Profile = p

	t := template.Must(template.New("config").Parse(configTemplate))
	if err := t.Execute(w, &c); err != nil {
		return errors.Wrap(err, "execute config template error")
	}
	return nil
}
