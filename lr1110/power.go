package lr1110

import (
	"github.com/pkg/errors"
)

// PAConfig configures the power amplifier.
//
// DutyCycle controls the PA duty cycle as 0.2 + 0.04*DutyCycle and can be used
// to adapt multi-band operation on a single matching network. The low power PA
// accepts 0.2 to 0.48 (DutyCycle 0-7), the high power PA 0.2 to 0.36
// (DutyCycle 0-4).
//
// HPSel sets the number of high power PA slices to HPSel+1.
type PAConfig struct {
	Selection PASelection
	Supply    PARegulatorSupply
	DutyCycle uint8 // Default 0x04.
	HPSel     uint8 // Default 0x07.
}

// Output power ranges in dBm per amplifier.
const (
	MinPowerLP = -17
	MaxPowerLP = 14
	MinPowerHP = -9
	MaxPowerHP = 22
	MinPowerHF = -18
	MaxPowerHF = 13
	// MaxPowerDCDC is the highest output power reachable without the VBAT
	// supply on the high power PA.
	MaxPowerDCDC = 14
)

// DefaultPAConfig returns the reference configuration for a given amplifier.
func DefaultPAConfig(sel PASelection) PAConfig {
	switch sel {
	case PAHighPower:
		return PAConfig{Selection: PAHighPower, Supply: SupplyVBAT, DutyCycle: 0x04, HPSel: 0x07}
	case PAHighFrequency:
		return PAConfig{Selection: PAHighFrequency, Supply: SupplyDCDC}
	}
	return PAConfig{Selection: PALowPower, Supply: SupplyDCDC, DutyCycle: 0x04}
}

// DutyCycleRatio returns the PA duty cycle, between 0.2 and 0.48.
func (c PAConfig) DutyCycleRatio() float64 { return 0.2 + 0.04*float64(c.DutyCycle) }

// Slices returns the number of high power PA slices in use.
func (c PAConfig) Slices() int { return int(c.HPSel) + 1 }

// Validate checks the duty cycle and slices are allowed for the selected amplifier.
func (c PAConfig) Validate() error {
	if !enumValid(paSelectionNames, c.Selection) {
		return invalid("PA selection", c.Selection)
	}
	if !enumValid(regulatorSupplyNames, c.Supply) {
		return invalid("PA regulator supply", c.Supply)
	}
	maxDuty := uint8(7)
	switch c.Selection {
	case PAHighPower:
		maxDuty = 4
	case PAHighFrequency:
		maxDuty = 0
	}
	if c.DutyCycle > maxDuty {
		return errors.Wrapf(ErrInvalidParameter, "lr1110: PA duty cycle %d exceeds %d for %s PA",
			c.DutyCycle, maxDuty, c.Selection)
	}
	if c.HPSel > 7 {
		return invalid("HP PA slice selection", c.HPSel)
	}
	return nil
}

// PowerRange returns the output power range in dBm of the selected amplifier.
func (c PAConfig) PowerRange() (min, max int8) {
	switch c.Selection {
	case PAHighPower:
		return MinPowerHP, MaxPowerHP
	case PAHighFrequency:
		return MinPowerHF, MaxPowerHF
	}
	return MinPowerLP, MaxPowerLP
}

// ValidateTxPower checks dBm can be output with the PA configuration.
func (c PAConfig) ValidateTxPower(dBm int8) error {
	min, max := c.PowerRange()
	if dBm < min || dBm > max {
		return errors.Wrapf(ErrInvalidParameter, "lr1110: tx power %ddBm outside %s PA range [%d, %d]",
			dBm, c.Selection, min, max)
	}
	if c.Selection == PAHighPower && dBm > MaxPowerDCDC && c.Supply != SupplyVBAT {
		return errors.Wrapf(ErrInvalidParameter, "lr1110: tx power %ddBm requires VBAT supply", dBm)
	}
	return nil
}
