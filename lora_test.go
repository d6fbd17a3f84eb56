package lora_test

import (
	"testing"
	"time"

	"github.com/semtrx/lora"
)

func TestTimeOnAir(t *testing.T) {
	const (
		loraWANCodeRate       = lora.CR4_5
		loraWANPreambleLength = 8
		// MHDR + FHDR + FPort + MIC bytes added to the application payload.
		loraWANOverhead = 13
	)
	testCases := []struct {
		desc     string
		expected time.Duration
		plen     int
		cfg      lora.Config
	}{
		{
			desc: "LoRaWAN 240bytes", // https://www.thethingsnetwork.org/airtime-calculator
			cfg: lora.Config{
				Bandwidth:      lora.BW125k,
				Frequency:      915e6,
				SpreadFactor:   lora.SF7,
				HeaderType:     lora.HeaderExplicit,
				CodingRate:     loraWANCodeRate,
				CRC:            true,
				PreambleLength: loraWANPreambleLength,
			},
			plen:     240 + loraWANOverhead,
			expected: 394496 * time.Microsecond,
		},
		{
			desc: "LoRaWAN 10byte BW=500kHz", // https://www.thethingsnetwork.org/airtime-calculator
			cfg: lora.Config{
				Bandwidth:      lora.BW500k,
				Frequency:      915e6,
				SpreadFactor:   lora.SF7,
				HeaderType:     lora.HeaderExplicit,
				CodingRate:     loraWANCodeRate,
				CRC:            true,
				PreambleLength: loraWANPreambleLength,
			},
			plen:     10 + loraWANOverhead,
			expected: 15424 * time.Microsecond,
		},
		{
			desc: "LoRaWAN 51byte SF12 LDRO",
			cfg: lora.Config{
				Bandwidth:      lora.BW125k,
				Frequency:      lora.Freq868_1M,
				SpreadFactor:   lora.SF12,
				HeaderType:     lora.HeaderExplicit,
				CodingRate:     loraWANCodeRate,
				CRC:            true,
				LDRO:           true,
				PreambleLength: loraWANPreambleLength,
			},
			plen:     51 + loraWANOverhead,
			expected: 2793472 * time.Microsecond,
		},
		{
			desc: "SF5 implicit no CRC",
			cfg: lora.Config{
				Bandwidth:      lora.BW500k,
				Frequency:      lora.Freq868_1M,
				SpreadFactor:   lora.SF5,
				HeaderType:     lora.HeaderImplicit,
				CodingRate:     lora.CR4_5,
				PreambleLength: 8,
			},
			plen:     10,
			expected: 2384 * time.Microsecond,
		},
		{
			desc:     "zero bandwidth",
			cfg:      lora.Config{SpreadFactor: lora.SF7},
			plen:     10,
			expected: 0,
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			got := tC.cfg.TimeOnAir(tC.plen)
			if got != tC.expected {
				t.Errorf("%s: got %s, expected %s", tC.desc, got.String(), tC.expected.String())
			}
		})
	}
}

func TestLongInterleaverTimeOnAir(t *testing.T) {
	cfg := lora.Config{
		Bandwidth:      lora.BW125k,
		SpreadFactor:   lora.SF9,
		CodingRate:     lora.CR4_8,
		CRC:            true,
		PreambleLength: 8,
	}
	short := cfg.TimeOnAir(32)
	cfg.CodingRate = lora.CR4_8LI
	if long := cfg.TimeOnAir(32); long != short {
		t.Errorf("4/8 long interleaver airtime %s differs from short %s", long, short)
	}
	cfg.CodingRate = lora.CR4_5LI
	if long := cfg.TimeOnAir(32); long >= short {
		t.Errorf("4/5 long interleaver airtime %s not shorter than 4/8 %s", long, short)
	}
}

func TestNeedsLDRO(t *testing.T) {
	for _, tC := range []struct {
		sf   lora.SpreadFactor
		bw   lora.Frequency
		want bool
	}{
		{sf: lora.SF7, bw: lora.BW125k, want: false},
		{sf: lora.SF10, bw: lora.BW125k, want: false},
		{sf: lora.SF11, bw: lora.BW125k, want: true},
		{sf: lora.SF12, bw: lora.BW125k, want: true},
		{sf: lora.SF11, bw: lora.BW250k, want: false},
		{sf: lora.SF12, bw: lora.BW250k, want: true},
		{sf: lora.SF12, bw: lora.BW500k, want: false},
		{sf: lora.SF7, bw: lora.BW10_4k, want: false},
		{sf: lora.SF8, bw: lora.BW10_4k, want: true},
	} {
		cfg := lora.Config{SpreadFactor: tC.sf, Bandwidth: tC.bw}
		if got := cfg.NeedsLDRO(); got != tC.want {
			t.Errorf("SF%d BW=%dHz: got LDRO=%v, want %v (symbol period %s)", tC.sf, tC.bw, got, tC.want, cfg.SymbolPeriod())
		}
	}
}

func TestCodingRateDenominator(t *testing.T) {
	want := map[lora.CodingRate]uint8{
		lora.CRNone:  4,
		lora.CR4_5:   5,
		lora.CR4_6:   6,
		lora.CR4_7:   7,
		lora.CR4_8:   8,
		lora.CR4_5LI: 5,
		lora.CR4_6LI: 6,
		lora.CR4_8LI: 8,
	}
	for cr, den := range want {
		if got := cr.Denominator(); got != den {
			t.Errorf("CR %d: got denominator %d, want %d", cr, got, den)
		}
		if cr.LongInterleaver() != (cr >= lora.CR4_5LI) {
			t.Errorf("CR %d: wrong long interleaver report", cr)
		}
	}
}
