package lr1110

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCADParams(t *testing.T) {
	c := DefaultCADParams()
	require.NoError(t, c.Validate())
	assert.Equal(t, 6.25, c.DetPeakRatio())

	c.DetPeak = 0xFF
	assert.Equal(t, 31.875, c.DetPeakRatio())

	c.Timeout = 32
	assert.Equal(t, time.Millisecond, c.TimeoutDuration())
	assert.EqualValues(t, 32, CADTimeout(time.Millisecond))
	assert.EqualValues(t, 1, CADTimeout(20*time.Microsecond))
	assert.EqualValues(t, 0, CADTimeout(-time.Second))
	assert.EqualValues(t, 0xFFFFFF, CADTimeout(time.Hour))

	c.DetMin = MaxDetMin
	require.NoError(t, c.Validate())
	c.DetMin = MaxDetMin + 1
	assert.EqualError(t, c.Validate(), "lr1110: CAD det_min 182 exceeds 181: invalid parameter")

	c = DefaultCADParams()
	c.SymbolNum = 0
	assert.Error(t, c.Validate())
	c.SymbolNum = 16
	c.ExitMode = 0x02
	assert.Error(t, c.Validate())
	c.ExitMode = CADExitTx
	c.Timeout = 1 << 24
	assert.Error(t, c.Validate())
}
