package lr1110

// PASelection selects the power amplifier used for transmission.
//   - Low-power PA can reach up to 14dBm.
//   - High-power PA can reach up to 22dBm.
//   - High-frequency PA drives the 2.4GHz output.
type PASelection uint8

const (
	PALowPower      PASelection = 0x00
	PAHighPower     PASelection = 0x01
	PAHighFrequency PASelection = 0x02
)

var paSelectionNames = map[PASelection]string{
	PALowPower:      "LP",
	PAHighPower:     "HP",
	PAHighFrequency: "HF",
}

func (v PASelection) String() string { return enumString(paSelectionNames, "PASelection", v) }
func (v PASelection) MarshalText() ([]byte, error) {
	return enumMarshal(paSelectionNames, "PASelection", v)
}
func (v *PASelection) UnmarshalText(b []byte) (err error) {
	*v, err = enumParse(paSelectionNames, "PASelection", b)
	return err
}

// GFSKAddressFiltering configures GFSK address filtering. If filtering is
// enabled and a wrong address is received the reception is aborted and the
// address error flag of the packet status is set.
type GFSKAddressFiltering uint8

const (
	AddressFilterDisable          GFSKAddressFiltering = 0x00
	AddressFilterNode             GFSKAddressFiltering = 0x01
	AddressFilterNodeAndBroadcast GFSKAddressFiltering = 0x02
)

var addressFilteringNames = map[GFSKAddressFiltering]string{
	AddressFilterDisable:          "DISABLE",
	AddressFilterNode:             "NODE",
	AddressFilterNodeAndBroadcast: "NODE_AND_BROADCAST",
}

func (v GFSKAddressFiltering) String() string {
	return enumString(addressFilteringNames, "GFSKAddressFiltering", v)
}
func (v GFSKAddressFiltering) MarshalText() ([]byte, error) {
	return enumMarshal(addressFilteringNames, "GFSKAddressFiltering", v)
}
func (v *GFSKAddressFiltering) UnmarshalText(b []byte) (err error) {
	*v, err = enumParse(addressFilteringNames, "GFSKAddressFiltering", b)
	return err
}

// FallbackMode is the chip mode entered after a successful transmission or
// reception. Unused for RX duty cycle and AutoTxRx operations.
type FallbackMode uint8

const (
	FallbackStandbyRC   FallbackMode = 0x01 // Default.
	FallbackStandbyXOSC FallbackMode = 0x02
	FallbackFS          FallbackMode = 0x03
)

var fallbackModeNames = map[FallbackMode]string{
	FallbackStandbyRC:   "STDBY_RC",
	FallbackStandbyXOSC: "STDBY_XOSC",
	FallbackFS:          "FS",
}

func (v FallbackMode) String() string { return enumString(fallbackModeNames, "FallbackMode", v) }
func (v FallbackMode) MarshalText() ([]byte, error) {
	return enumMarshal(fallbackModeNames, "FallbackMode", v)
}
func (v *FallbackMode) UnmarshalText(b []byte) (err error) {
	*v, err = enumParse(fallbackModeNames, "FallbackMode", b)
	return err
}

// RampTime is the ramping time of the PA. A high value improves spectral quality.
type RampTime uint8

const (
	Ramp10us   RampTime = 0x00
	Ramp20us   RampTime = 0x01
	Ramp40us   RampTime = 0x02 // Default.
	Ramp80us   RampTime = 0x03
	Ramp200us  RampTime = 0x04
	Ramp800us  RampTime = 0x05
	Ramp1700us RampTime = 0x06
	Ramp3400us RampTime = 0x07
)

var rampTimeNames = map[RampTime]string{
	Ramp10us:   "10us",
	Ramp20us:   "20us",
	Ramp40us:   "40us",
	Ramp80us:   "80us",
	Ramp200us:  "200us",
	Ramp800us:  "800us",
	Ramp1700us: "1700us",
	Ramp3400us: "3400us",
}

func (v RampTime) String() string { return enumString(rampTimeNames, "RampTime", v) }
func (v RampTime) MarshalText() ([]byte, error) {
	return enumMarshal(rampTimeNames, "RampTime", v)
}
func (v *RampTime) UnmarshalText(b []byte) (err error) {
	*v, err = enumParse(rampTimeNames, "RampTime", b)
	return err
}

// LoRaNetworkType selects the LoRa sync word family.
type LoRaNetworkType uint8

const (
	NetworkPrivate LoRaNetworkType = 0x00
	NetworkPublic  LoRaNetworkType = 0x01
)

var networkTypeNames = map[LoRaNetworkType]string{
	NetworkPrivate: "PRIVATE",
	NetworkPublic:  "PUBLIC",
}

func (v LoRaNetworkType) String() string {
	return enumString(networkTypeNames, "LoRaNetworkType", v)
}
func (v LoRaNetworkType) MarshalText() ([]byte, error) {
	return enumMarshal(networkTypeNames, "LoRaNetworkType", v)
}
func (v *LoRaNetworkType) UnmarshalText(b []byte) (err error) {
	*v, err = enumParse(networkTypeNames, "LoRaNetworkType", b)
	return err
}

// LoRaSpreadingFactor values equal the spreading factor they name.
type LoRaSpreadingFactor uint8

const (
	SF5  LoRaSpreadingFactor = 0x05
	SF6  LoRaSpreadingFactor = 0x06
	SF7  LoRaSpreadingFactor = 0x07
	SF8  LoRaSpreadingFactor = 0x08
	SF9  LoRaSpreadingFactor = 0x09
	SF10 LoRaSpreadingFactor = 0x0A
	SF11 LoRaSpreadingFactor = 0x0B
	SF12 LoRaSpreadingFactor = 0x0C
)

var spreadingFactorNames = map[LoRaSpreadingFactor]string{
	SF5:  "SF5",
	SF6:  "SF6",
	SF7:  "SF7",
	SF8:  "SF8",
	SF9:  "SF9",
	SF10: "SF10",
	SF11: "SF11",
	SF12: "SF12",
}

func (v LoRaSpreadingFactor) String() string {
	return enumString(spreadingFactorNames, "LoRaSpreadingFactor", v)
}
func (v LoRaSpreadingFactor) MarshalText() ([]byte, error) {
	return enumMarshal(spreadingFactorNames, "LoRaSpreadingFactor", v)
}
func (v *LoRaSpreadingFactor) UnmarshalText(b []byte) (err error) {
	*v, err = enumParse(spreadingFactorNames, "LoRaSpreadingFactor", b)
	return err
}

// LoRaBandwidth is the chip encoding of a LoRa bandwidth. The encoding is not
// ordered by bandwidth, see [LoRaBandwidth.Frequency].
type LoRaBandwidth uint8

const (
	BW10  LoRaBandwidth = 0x08 // 10.42kHz
	BW15  LoRaBandwidth = 0x01 // 15.63kHz
	BW20  LoRaBandwidth = 0x09 // 20.83kHz
	BW31  LoRaBandwidth = 0x02 // 31.25kHz
	BW41  LoRaBandwidth = 0x0A // 41.67kHz
	BW62  LoRaBandwidth = 0x03 // 62.50kHz
	BW125 LoRaBandwidth = 0x04
	BW250 LoRaBandwidth = 0x05
	BW500 LoRaBandwidth = 0x06
)

var loraBandwidthNames = map[LoRaBandwidth]string{
	BW10:  "BW10",
	BW15:  "BW15",
	BW20:  "BW20",
	BW31:  "BW31",
	BW41:  "BW41",
	BW62:  "BW62",
	BW125: "BW125",
	BW250: "BW250",
	BW500: "BW500",
}

func (v LoRaBandwidth) String() string { return enumString(loraBandwidthNames, "LoRaBandwidth", v) }
func (v LoRaBandwidth) MarshalText() ([]byte, error) {
	return enumMarshal(loraBandwidthNames, "LoRaBandwidth", v)
}
func (v *LoRaBandwidth) UnmarshalText(b []byte) (err error) {
	*v, err = enumParse(loraBandwidthNames, "LoRaBandwidth", b)
	return err
}

// LoRaCodingRate values 1-4 use the short interleaver, 5-7 the long one.
type LoRaCodingRate uint8

const (
	CRNone  LoRaCodingRate = 0x00
	CR4_5   LoRaCodingRate = 0x01
	CR4_6   LoRaCodingRate = 0x02
	CR4_7   LoRaCodingRate = 0x03
	CR4_8   LoRaCodingRate = 0x04
	CR4_5LI LoRaCodingRate = 0x05
	CR4_6LI LoRaCodingRate = 0x06
	CR4_8LI LoRaCodingRate = 0x07
)

var codingRateNames = map[LoRaCodingRate]string{
	CRNone:  "NONE",
	CR4_5:   "CR4_5",
	CR4_6:   "CR4_6",
	CR4_7:   "CR4_7",
	CR4_8:   "CR4_8",
	CR4_5LI: "CR4_5_LI",
	CR4_6LI: "CR4_6_LI",
	CR4_8LI: "CR4_8_LI",
}

func (v LoRaCodingRate) String() string { return enumString(codingRateNames, "LoRaCodingRate", v) }
func (v LoRaCodingRate) MarshalText() ([]byte, error) {
	return enumMarshal(codingRateNames, "LoRaCodingRate", v)
}
func (v *LoRaCodingRate) UnmarshalText(b []byte) (err error) {
	*v, err = enumParse(codingRateNames, "LoRaCodingRate", b)
	return err
}

// IntermediaryMode is the mode the chip waits in between the two legs of an
// AutoTxRx operation.
type IntermediaryMode uint8

const (
	ModeSleep       IntermediaryMode = 0x00
	ModeStandbyRC   IntermediaryMode = 0x01
	ModeStandbyXOSC IntermediaryMode = 0x02
	ModeFS          IntermediaryMode = 0x03
)

var intermediaryModeNames = map[IntermediaryMode]string{
	ModeSleep:       "SLEEP",
	ModeStandbyRC:   "STDBY_RC",
	ModeStandbyXOSC: "STDBY_XOSC",
	ModeFS:          "FS",
}

func (v IntermediaryMode) String() string {
	return enumString(intermediaryModeNames, "IntermediaryMode", v)
}
func (v IntermediaryMode) MarshalText() ([]byte, error) {
	return enumMarshal(intermediaryModeNames, "IntermediaryMode", v)
}
func (v *IntermediaryMode) UnmarshalText(b []byte) (err error) {
	*v, err = enumParse(intermediaryModeNames, "IntermediaryMode", b)
	return err
}

// GFSKCRCType configures the GFSK CRC. When not off, a CRC is computed and
// appended after the payload on transmit and checked on receive.
// Note that GFSKCRCOff is 0x01 and a single byte CRC is 0x00.
type GFSKCRCType uint8

const (
	GFSKCRCOff       GFSKCRCType = 0x01
	GFSKCRC1Byte     GFSKCRCType = 0x00
	GFSKCRC2Bytes    GFSKCRCType = 0x02
	GFSKCRC1ByteInv  GFSKCRCType = 0x04
	GFSKCRC2BytesInv GFSKCRCType = 0x06
)

var gfskCRCNames = map[GFSKCRCType]string{
	GFSKCRCOff:       "OFF",
	GFSKCRC1Byte:     "1_BYTE",
	GFSKCRC2Bytes:    "2_BYTES",
	GFSKCRC1ByteInv:  "1_BYTE_INV",
	GFSKCRC2BytesInv: "2_BYTES_INV",
}

func (v GFSKCRCType) String() string { return enumString(gfskCRCNames, "GFSKCRCType", v) }
func (v GFSKCRCType) MarshalText() ([]byte, error) {
	return enumMarshal(gfskCRCNames, "GFSKCRCType", v)
}
func (v *GFSKCRCType) UnmarshalText(b []byte) (err error) {
	*v, err = enumParse(gfskCRCNames, "GFSKCRCType", b)
	return err
}

// Length returns the number of CRC bytes appended to the payload.
func (v GFSKCRCType) Length() int {
	switch v {
	case GFSKCRC1Byte, GFSKCRC1ByteInv:
		return 1
	case GFSKCRC2Bytes, GFSKCRC2BytesInv:
		return 2
	}
	return 0
}

// GFSKDCFree configures whitening.
type GFSKDCFree uint8

const (
	DCFreeOff       GFSKDCFree = 0x00
	DCFreeWhitening GFSKDCFree = 0x01
)

var dcFreeNames = map[GFSKDCFree]string{
	DCFreeOff:       "OFF",
	DCFreeWhitening: "WHITENING",
}

func (v GFSKDCFree) String() string { return enumString(dcFreeNames, "GFSKDCFree", v) }
func (v GFSKDCFree) MarshalText() ([]byte, error) {
	return enumMarshal(dcFreeNames, "GFSKDCFree", v)
}
func (v *GFSKDCFree) UnmarshalText(b []byte) (err error) {
	*v, err = enumParse(dcFreeNames, "GFSKDCFree", b)
	return err
}

// GFSKHeaderType indicates whether the payload length is sent over the air.
// With an explicit header the modem prepends a length byte on transmit and
// reads it back on receive. With an implicit header both ends must agree on
// the payload length beforehand.
type GFSKHeaderType uint8

const (
	GFSKHeaderImplicit GFSKHeaderType = 0x00
	GFSKHeaderExplicit GFSKHeaderType = 0x01
)

var gfskHeaderNames = map[GFSKHeaderType]string{
	GFSKHeaderImplicit: "IMPLICIT",
	GFSKHeaderExplicit: "EXPLICIT",
}

func (v GFSKHeaderType) String() string { return enumString(gfskHeaderNames, "GFSKHeaderType", v) }
func (v GFSKHeaderType) MarshalText() ([]byte, error) {
	return enumMarshal(gfskHeaderNames, "GFSKHeaderType", v)
}
func (v *GFSKHeaderType) UnmarshalText(b []byte) (err error) {
	*v, err = enumParse(gfskHeaderNames, "GFSKHeaderType", b)
	return err
}

// GFSKPreambleDetect is the minimum number of preamble bits that must be
// received to continue reception. Shorter preambles stop the reception without
// an IRQ. It has no effect on transmission.
type GFSKPreambleDetect uint8

const (
	PreambleDetectOff    GFSKPreambleDetect = 0x00
	PreambleDetect8Bits  GFSKPreambleDetect = 0x04
	PreambleDetect16Bits GFSKPreambleDetect = 0x05
	PreambleDetect24Bits GFSKPreambleDetect = 0x06
	PreambleDetect32Bits GFSKPreambleDetect = 0x07
)

var preambleDetectNames = map[GFSKPreambleDetect]string{
	PreambleDetectOff:    "OFF",
	PreambleDetect8Bits:  "8_BITS",
	PreambleDetect16Bits: "16_BITS",
	PreambleDetect24Bits: "24_BITS",
	PreambleDetect32Bits: "32_BITS",
}

func (v GFSKPreambleDetect) String() string {
	return enumString(preambleDetectNames, "GFSKPreambleDetect", v)
}
func (v GFSKPreambleDetect) MarshalText() ([]byte, error) {
	return enumMarshal(preambleDetectNames, "GFSKPreambleDetect", v)
}
func (v *GFSKPreambleDetect) UnmarshalText(b []byte) (err error) {
	*v, err = enumParse(preambleDetectNames, "GFSKPreambleDetect", b)
	return err
}

// Bits returns the detector length in bits, 0 when off.
func (v GFSKPreambleDetect) Bits() int {
	if v < PreambleDetect8Bits || v > PreambleDetect32Bits {
		return 0
	}
	return 8 * int(v-PreambleDetect8Bits+1)
}

// LoRaCRC enables the LoRa payload CRC.
type LoRaCRC uint8

const (
	LoRaCRCOff LoRaCRC = 0x00
	LoRaCRCOn  LoRaCRC = 0x01
)

var loraCRCNames = map[LoRaCRC]string{
	LoRaCRCOff: "OFF",
	LoRaCRCOn:  "ON",
}

func (v LoRaCRC) String() string { return enumString(loraCRCNames, "LoRaCRC", v) }
func (v LoRaCRC) MarshalText() ([]byte, error) {
	return enumMarshal(loraCRCNames, "LoRaCRC", v)
}
func (v *LoRaCRC) UnmarshalText(b []byte) (err error) {
	*v, err = enumParse(loraCRCNames, "LoRaCRC", b)
	return err
}

// LoRaHeaderType: an explicit header is transmitted over the air, an implicit
// one is not.
type LoRaHeaderType uint8

const (
	LoRaHeaderExplicit LoRaHeaderType = 0x00
	LoRaHeaderImplicit LoRaHeaderType = 0x01
)

var loraHeaderNames = map[LoRaHeaderType]string{
	LoRaHeaderExplicit: "EXPLICIT",
	LoRaHeaderImplicit: "IMPLICIT",
}

func (v LoRaHeaderType) String() string { return enumString(loraHeaderNames, "LoRaHeaderType", v) }
func (v LoRaHeaderType) MarshalText() ([]byte, error) {
	return enumMarshal(loraHeaderNames, "LoRaHeaderType", v)
}
func (v *LoRaHeaderType) UnmarshalText(b []byte) (err error) {
	*v, err = enumParse(loraHeaderNames, "LoRaHeaderType", b)
	return err
}

// LoRaIQ modes are mutually exclusive: a packet sent with standard IQ will not
// be received by a receiver configured with inverted IQ.
type LoRaIQ uint8

const (
	IQStandard LoRaIQ = 0x00
	IQInverted LoRaIQ = 0x01
)

var loraIQNames = map[LoRaIQ]string{
	IQStandard: "STANDARD",
	IQInverted: "INVERTED",
}

func (v LoRaIQ) String() string { return enumString(loraIQNames, "LoRaIQ", v) }
func (v LoRaIQ) MarshalText() ([]byte, error) {
	return enumMarshal(loraIQNames, "LoRaIQ", v)
}
func (v *LoRaIQ) UnmarshalText(b []byte) (err error) {
	*v, err = enumParse(loraIQNames, "LoRaIQ", b)
	return err
}

// PacketType is the modem the radio is configured for.
type PacketType uint8

const (
	// PacketNone is the state after cold start, Wi-Fi or GNSS capture. The
	// radio has to be reconfigured before use.
	PacketNone    PacketType = 0x00
	PacketGFSK    PacketType = 0x01
	PacketLoRa    PacketType = 0x02
	PacketRanging PacketType = 0x05
)

var packetTypeNames = map[PacketType]string{
	PacketNone:    "NONE",
	PacketGFSK:    "GFSK",
	PacketLoRa:    "LORA",
	PacketRanging: "RANGING",
}

func (v PacketType) String() string { return enumString(packetTypeNames, "PacketType", v) }
func (v PacketType) MarshalText() ([]byte, error) {
	return enumMarshal(packetTypeNames, "PacketType", v)
}
func (v *PacketType) UnmarshalText(b []byte) (err error) {
	*v, err = enumParse(packetTypeNames, "PacketType", b)
	return err
}

// PARegulatorSupply selects the power amplifier supply source.
type PARegulatorSupply uint8

const (
	SupplyDCDC PARegulatorSupply = 0x00
	// SupplyVBAT is required for output power above +14dBm.
	SupplyVBAT PARegulatorSupply = 0x01
)

var regulatorSupplyNames = map[PARegulatorSupply]string{
	SupplyDCDC: "DCDC",
	SupplyVBAT: "VBAT",
}

func (v PARegulatorSupply) String() string {
	return enumString(regulatorSupplyNames, "PARegulatorSupply", v)
}
func (v PARegulatorSupply) MarshalText() ([]byte, error) {
	return enumMarshal(regulatorSupplyNames, "PARegulatorSupply", v)
}
func (v *PARegulatorSupply) UnmarshalText(b []byte) (err error) {
	*v, err = enumParse(regulatorSupplyNames, "PARegulatorSupply", b)
	return err
}

// RxDutyCycleMode selects how the radio listens during an RX duty cycle.
type RxDutyCycleMode uint8

const (
	// DutyCycleRx listens with a regular receive window. LoRa and GFSK.
	DutyCycleRx RxDutyCycleMode = 0x00
	// DutyCycleCAD listens with channel activity detection. LoRa only.
	DutyCycleCAD RxDutyCycleMode = 0x01
)

var dutyCycleModeNames = map[RxDutyCycleMode]string{
	DutyCycleRx:  "RX",
	DutyCycleCAD: "CAD",
}

func (v RxDutyCycleMode) String() string {
	return enumString(dutyCycleModeNames, "RxDutyCycleMode", v)
}
func (v RxDutyCycleMode) MarshalText() ([]byte, error) {
	return enumMarshal(dutyCycleModeNames, "RxDutyCycleMode", v)
}
func (v *RxDutyCycleMode) UnmarshalText(b []byte) (err error) {
	*v, err = enumParse(dutyCycleModeNames, "RxDutyCycleMode", b)
	return err
}

// GFSKRxBandwidth is the double side band receiver bandwidth for GFSK.
type GFSKRxBandwidth uint8

const (
	RxBW4800   GFSKRxBandwidth = 0x1F
	RxBW5800   GFSKRxBandwidth = 0x17
	RxBW7300   GFSKRxBandwidth = 0x0F
	RxBW9700   GFSKRxBandwidth = 0x1E
	RxBW11700  GFSKRxBandwidth = 0x16
	RxBW14600  GFSKRxBandwidth = 0x0E
	RxBW19500  GFSKRxBandwidth = 0x1D
	RxBW23400  GFSKRxBandwidth = 0x15
	RxBW29300  GFSKRxBandwidth = 0x0D
	RxBW39000  GFSKRxBandwidth = 0x1C
	RxBW46900  GFSKRxBandwidth = 0x14
	RxBW58600  GFSKRxBandwidth = 0x0C
	RxBW78200  GFSKRxBandwidth = 0x1B
	RxBW93800  GFSKRxBandwidth = 0x13
	RxBW117300 GFSKRxBandwidth = 0x0B
	RxBW156200 GFSKRxBandwidth = 0x1A
	RxBW187200 GFSKRxBandwidth = 0x12
	RxBW234300 GFSKRxBandwidth = 0x0A
	RxBW312000 GFSKRxBandwidth = 0x19
	RxBW373600 GFSKRxBandwidth = 0x11
	RxBW467000 GFSKRxBandwidth = 0x09
)

var gfskRxBandwidthNames = map[GFSKRxBandwidth]string{
	RxBW4800:   "BW4800",
	RxBW5800:   "BW5800",
	RxBW7300:   "BW7300",
	RxBW9700:   "BW9700",
	RxBW11700:  "BW11700",
	RxBW14600:  "BW14600",
	RxBW19500:  "BW19500",
	RxBW23400:  "BW23400",
	RxBW29300:  "BW29300",
	RxBW39000:  "BW39000",
	RxBW46900:  "BW46900",
	RxBW58600:  "BW58600",
	RxBW78200:  "BW78200",
	RxBW93800:  "BW93800",
	RxBW117300: "BW117300",
	RxBW156200: "BW156200",
	RxBW187200: "BW187200",
	RxBW234300: "BW234300",
	RxBW312000: "BW312000",
	RxBW373600: "BW373600",
	RxBW467000: "BW467000",
}

func (v GFSKRxBandwidth) String() string {
	return enumString(gfskRxBandwidthNames, "GFSKRxBandwidth", v)
}
func (v GFSKRxBandwidth) MarshalText() ([]byte, error) {
	return enumMarshal(gfskRxBandwidthNames, "GFSKRxBandwidth", v)
}
func (v *GFSKRxBandwidth) UnmarshalText(b []byte) (err error) {
	*v, err = enumParse(gfskRxBandwidthNames, "GFSKRxBandwidth", b)
	return err
}

// CADExitMode is the automatic action taken when a channel activity detection
// terminates.
//
// With CADExitRx the chip enters RX on activity detected, with a timeout of
// 31.25us × [CADParams].Timeout. A negative CAD with CADExitRx or a positive
// one with CADExitTx leaves the chip in standby RC.
type CADExitMode uint8

const (
	CADExitStandbyRC CADExitMode = 0x00
	CADExitRx        CADExitMode = 0x01
	CADExitTx        CADExitMode = 0x10
)

var cadExitModeNames = map[CADExitMode]string{
	CADExitStandbyRC: "STDBY_RC",
	CADExitRx:        "RX",
	CADExitTx:        "TX",
}

func (v CADExitMode) String() string { return enumString(cadExitModeNames, "CADExitMode", v) }
func (v CADExitMode) MarshalText() ([]byte, error) {
	return enumMarshal(cadExitModeNames, "CADExitMode", v)
}
func (v *CADExitMode) UnmarshalText(b []byte) (err error) {
	*v, err = enumParse(cadExitModeNames, "CADExitMode", b)
	return err
}

// PulseShape is the GFSK gaussian filter configuration.
type PulseShape uint8

const (
	PulseShapeOff  PulseShape = 0x00
	PulseShapeBT03 PulseShape = 0x08
	PulseShapeBT05 PulseShape = 0x09
	PulseShapeBT07 PulseShape = 0x0A
	PulseShapeBT1  PulseShape = 0x0B
)

var pulseShapeNames = map[PulseShape]string{
	PulseShapeOff:  "OFF",
	PulseShapeBT03: "BT0.3",
	PulseShapeBT05: "BT0.5",
	PulseShapeBT07: "BT0.7",
	PulseShapeBT1:  "BT1.0",
}

func (v PulseShape) String() string { return enumString(pulseShapeNames, "PulseShape", v) }
func (v PulseShape) MarshalText() ([]byte, error) {
	return enumMarshal(pulseShapeNames, "PulseShape", v)
}
func (v *PulseShape) UnmarshalText(b []byte) (err error) {
	*v, err = enumParse(pulseShapeNames, "PulseShape", b)
	return err
}
