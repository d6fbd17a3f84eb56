package lr1110

import (
	"github.com/semtrx/lora"
)

// loraBandwidths is ordered by increasing bandwidth.
var loraBandwidths = [...]struct {
	bw   LoRaBandwidth
	freq lora.Frequency
}{
	{BW10, lora.BW10_4k},
	{BW15, lora.BW15_6k},
	{BW20, lora.BW20_8k},
	{BW31, lora.BW31_2k},
	{BW41, lora.BW41_7k},
	{BW62, lora.BW62_5k},
	{BW125, lora.BW125k},
	{BW250, lora.BW250k},
	{BW500, lora.BW500k},
}

// Frequency returns the bandwidth in Hertz or 0 for unknown values.
func (v LoRaBandwidth) Frequency() lora.Frequency {
	for _, e := range loraBandwidths {
		if e.bw == v {
			return e.freq
		}
	}
	return 0
}

// LoRaBandwidthFor returns the LoRa bandwidth nearest to f. It fails if the
// nearest supported bandwidth is more than 2% away from f.
func LoRaBandwidthFor(f lora.Frequency) (LoRaBandwidth, error) {
	best := loraBandwidths[0]
	for _, e := range loraBandwidths[1:] {
		if absFreq(e.freq-f) < absFreq(best.freq-f) {
			best = e
		}
	}
	if 50*absFreq(best.freq-f) > best.freq {
		return 0, invalid("LoRa bandwidth", f.Hertz())
	}
	return best.bw, nil
}

// gfskRxBandwidths is ordered by increasing bandwidth.
var gfskRxBandwidths = [...]struct {
	bw   GFSKRxBandwidth
	freq lora.Frequency
}{
	{RxBW4800, 4800},
	{RxBW5800, 5800},
	{RxBW7300, 7300},
	{RxBW9700, 9700},
	{RxBW11700, 11700},
	{RxBW14600, 14600},
	{RxBW19500, 19500},
	{RxBW23400, 23400},
	{RxBW29300, 29300},
	{RxBW39000, 39000},
	{RxBW46900, 46900},
	{RxBW58600, 58600},
	{RxBW78200, 78200},
	{RxBW93800, 93800},
	{RxBW117300, 117300},
	{RxBW156200, 156200},
	{RxBW187200, 187200},
	{RxBW234300, 234300},
	{RxBW312000, 312000},
	{RxBW373600, 373600},
	{RxBW467000, 467000},
}

// Frequency returns the double side band bandwidth in Hertz or 0 for unknown values.
func (v GFSKRxBandwidth) Frequency() lora.Frequency {
	for _, e := range gfskRxBandwidths {
		if e.bw == v {
			return e.freq
		}
	}
	return 0
}

// GFSKRxBandwidthFor returns the narrowest receiver bandwidth that is at
// least f wide.
func GFSKRxBandwidthFor(f lora.Frequency) (GFSKRxBandwidth, error) {
	for _, e := range gfskRxBandwidths {
		if e.freq >= f {
			return e.bw, nil
		}
	}
	return 0, invalid("GFSK RX bandwidth", f.Hertz())
}

func absFreq(f lora.Frequency) lora.Frequency {
	if f < 0 {
		return -f
	}
	return f
}
