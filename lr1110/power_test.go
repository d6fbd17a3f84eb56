package lr1110

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPAConfig(t *testing.T) {
	hp := DefaultPAConfig(PAHighPower)
	require.NoError(t, hp.Validate())
	assert.InDelta(t, 0.36, hp.DutyCycleRatio(), 1e-9)
	assert.Equal(t, 8, hp.Slices())

	lp := DefaultPAConfig(PALowPower)
	require.NoError(t, lp.Validate())
	lp.DutyCycle = 7
	require.NoError(t, lp.Validate())
	assert.InDelta(t, 0.48, lp.DutyCycleRatio(), 1e-9)

	for _, tC := range []struct {
		desc string
		cfg  PAConfig
	}{
		{"HP duty cycle above 4", PAConfig{Selection: PAHighPower, Supply: SupplyVBAT, DutyCycle: 5}},
		{"LP duty cycle above 7", PAConfig{Selection: PALowPower, DutyCycle: 8}},
		{"HF duty cycle", PAConfig{Selection: PAHighFrequency, DutyCycle: 1}},
		{"HP slices", PAConfig{Selection: PAHighPower, HPSel: 8}},
		{"selection", PAConfig{Selection: 3}},
		{"supply", PAConfig{Supply: 2}},
	} {
		err := tC.cfg.Validate()
		assert.Equal(t, ErrInvalidParameter, errors.Cause(err), tC.desc)
	}
}

func TestValidateTxPower(t *testing.T) {
	for _, tC := range []struct {
		cfg   PAConfig
		dBm   int8
		valid bool
	}{
		{cfg: DefaultPAConfig(PALowPower), dBm: 14, valid: true},
		{cfg: DefaultPAConfig(PALowPower), dBm: -17, valid: true},
		{cfg: DefaultPAConfig(PALowPower), dBm: 15, valid: false},
		{cfg: DefaultPAConfig(PALowPower), dBm: -18, valid: false},
		{cfg: DefaultPAConfig(PAHighPower), dBm: 22, valid: true},
		{cfg: DefaultPAConfig(PAHighPower), dBm: -9, valid: true},
		{cfg: DefaultPAConfig(PAHighPower), dBm: 23, valid: false},
		{cfg: DefaultPAConfig(PAHighPower), dBm: -10, valid: false},
		{cfg: PAConfig{Selection: PAHighPower, Supply: SupplyDCDC, DutyCycle: 4, HPSel: 7}, dBm: 14, valid: true},
		{cfg: PAConfig{Selection: PAHighPower, Supply: SupplyDCDC, DutyCycle: 4, HPSel: 7}, dBm: 15, valid: false},
		{cfg: DefaultPAConfig(PAHighFrequency), dBm: 13, valid: true},
		{cfg: DefaultPAConfig(PAHighFrequency), dBm: 14, valid: false},
	} {
		err := tC.cfg.ValidateTxPower(tC.dBm)
		if tC.valid {
			assert.NoError(t, err, "%s PA %ddBm", tC.cfg.Selection, tC.dBm)
		} else {
			assert.Error(t, err, "%s PA %ddBm", tC.cfg.Selection, tC.dBm)
		}
	}
}
