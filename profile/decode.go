package profile

import (
	"encoding/hex"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/semtrx/lora"
)

// HexBytes is a byte slice that is written to and read from configuration
// files as a hex string, e.g. "c194c1".
type HexBytes []byte

// MarshalText implements encoding.TextMarshaler.
func (b HexBytes) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToString(b)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An optional 0x or 0X
// prefix is accepted.
func (b *HexBytes) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	out, err := hex.DecodeString(s)
	if err != nil {
		return errors.Wrapf(err, "decode hex %q error", text)
	}
	*b = out
	return nil
}

func (b HexBytes) String() string { return hex.EncodeToString(b) }

var frequencyUnits = []struct {
	suffix string
	unit   lora.Frequency
}{
	// Longest suffixes first so "khz" is not matched as "hz".
	{"ghz", lora.GigaHertz},
	{"mhz", lora.MegaHertz},
	{"khz", lora.KiloHertz},
	{"hz", lora.Hertz},
	{"g", lora.GigaHertz},
	{"m", lora.MegaHertz},
	{"k", lora.KiloHertz},
}

// ParseFrequency parses a frequency such as "868.1MHz", "125k" or "915000000".
// Values without a unit are in Hz. Results are rounded to the nearest Hz.
func ParseFrequency(s string) (lora.Frequency, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	unit := lora.Hertz
	for _, u := range frequencyUnits {
		if strings.HasSuffix(v, u.suffix) {
			v = strings.TrimSpace(strings.TrimSuffix(v, u.suffix))
			unit = u.unit
			break
		}
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parse frequency %q error", s)
	}
	if f < 0 {
		return 0, errors.Errorf("parse frequency %q error: negative frequency", s)
	}
	return lora.Frequency(f*float64(unit) + 0.5), nil
}

var frequencyType = reflect.TypeOf(lora.Frequency(0))

// StringToFrequencyHookFunc returns a DecodeHookFunc that converts strings
// to lora.Frequency using ParseFrequency.
func StringToFrequencyHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t != frequencyType {
			return data, nil
		}
		return ParseFrequency(reflect.ValueOf(data).String())
	}
}

// DecodeHook is the decode hook used for profile configuration. Enumerations
// are given by name or number, durations as "10ms" and frequencies as "868.1MHz".
func DecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		StringToFrequencyHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.TextUnmarshallerHookFunc(),
	)
}

// Decode returns the profile stored in v. Settings missing from v keep their
// Default value. Slices such as the GFSK sync word are replaced, not merged.
func Decode(v *viper.Viper) (Profile, error) {
	p := Default()
	zeroSlices := func(c *mapstructure.DecoderConfig) { c.ZeroFields = true }
	if err := v.Unmarshal(&p, viper.DecodeHook(DecodeHook()), zeroSlices); err != nil {
		return p, errors.Wrap(err, "unmarshal profile error")
	}
	return p, nil
}
