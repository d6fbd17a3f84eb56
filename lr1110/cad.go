package lr1110

import (
	"time"

	"github.com/pkg/errors"
)

const (
	// DefaultDetPeak is a correlator peak to average ratio of 6.25.
	DefaultDetPeak = 0x32
	DefaultDetMin  = 0x0A
	// MaxDetMin is the largest authorized minimum correlation peak power.
	MaxDetMin = 181
	// CADTimeoutStep is the unit of [CADParams].Timeout.
	CADTimeoutStep = 31250 * time.Nanosecond
	maxU24         = 1<<24 - 1
)

// CADParams configures Channel Activity Detection.
//
// DetPeak and DetMin tune the CAD sensitivity and depend on the spreading
// factor, the bandwidth and SymbolNum. DetPeak is fixed point: the 5 MSBits
// are the integer part and the 3 LSBits count eighths, so 0x32 is 6.25.
// DetMin is unit free: the ratio between the minimal power of a correlation
// peak and the measurement gain that counts as a detection. It avoids
// detections on noise.
type CADParams struct {
	SymbolNum uint8 // Symbols used for detection: 1, 2, 4, 8 or 16.
	DetPeak   uint8 // Correlator peak to average ratio, default 0x32.
	DetMin    uint8 // Minimum correlation peak power, default 0x0A.
	ExitMode  CADExitMode
	// Timeout of the RX or TX following a CAD in 31.25us steps. 24 bits.
	Timeout uint32
}

// DefaultCADParams returns CAD parameters with the default detection
// thresholds over 2 symbols, exiting to standby RC.
func DefaultCADParams() CADParams {
	return CADParams{
		SymbolNum: 2,
		DetPeak:   DefaultDetPeak,
		DetMin:    DefaultDetMin,
		ExitMode:  CADExitStandbyRC,
	}
}

// DetPeakRatio returns DetPeak as a ratio.
func (c CADParams) DetPeakRatio() float64 {
	return float64(c.DetPeak>>3) + float64(c.DetPeak&0b111)/8
}

// TimeoutDuration returns the timeout as a duration.
func (c CADParams) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * CADTimeoutStep
}

// CADTimeout converts d to timeout steps rounding to the nearest step. Durations
// beyond the 24 bit range saturate.
func CADTimeout(d time.Duration) uint32 {
	if d <= 0 {
		return 0
	}
	steps := (d + CADTimeoutStep/2) / CADTimeoutStep
	if steps > maxU24 {
		return maxU24
	}
	return uint32(steps)
}

// Validate checks the parameters are within the chip's range.
func (c CADParams) Validate() error {
	switch c.SymbolNum {
	case 1, 2, 4, 8, 16:
	default:
		return invalid("CAD symbol number", c.SymbolNum)
	}
	switch {
	case c.DetMin > MaxDetMin:
		return errors.Wrapf(ErrInvalidParameter, "lr1110: CAD det_min %d exceeds %d", c.DetMin, MaxDetMin)
	case !enumValid(cadExitModeNames, c.ExitMode):
		return invalid("CAD exit mode", c.ExitMode)
	case c.Timeout > maxU24:
		return invalid("CAD timeout", c.Timeout)
	}
	return nil
}
