/*
Package lr1110 holds the radio type vocabulary of the Semtech LR1110 transceiver:
modulation and packet parameters for LoRa and GFSK, power amplifier settings,
channel activity detection parameters and the packet status and statistics
reported by the chip.

Every enumeration is a named uint8 whose constants carry the exact value the
chip expects over its command interface. Note that several tables are not
monotonic: LoRa and GFSK bandwidth values, GFSK CRC types and preamble detector
lengths are sparse and out of order. Use the String, MarshalText and Frequency
helpers instead of arithmetic on the raw values.

# Configuration commands

The package does not talk to the chip. It encodes the parameter blocks of the
radio configuration commands and decodes the status responses, so a driver only
has to frame them on its bus:

	+--------+--------+-----------------------+
	| opcode | opcode |  parameters ...       |   command frame
	|  MSB   |  LSB   |                       |
	+--------+--------+-----------------------+

	+--------+-----------------------+
	| stat1  |  response ...         |   response frame, decoders take the
	+--------+-----------------------+   bytes after stat1

Multi-byte parameters are big endian. Timeouts and periods are 24 bit values.
*/
package lr1110
