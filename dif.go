package mbus

/*
DIF (Data Information Field, 1 byte) opens a Data Information Block. It
tells the assembler how many payload bytes follow and whether the field
extends into one or more DIFE bytes.

	| <-                 8 bits                 -> |
	| ext | sn_lsb | function  |   data field code  |
	| [1b]|  [1b]  |   [2b]    |        [4b]        |

Masks (normative, per spec): data 0x0F, function 0x30, sn-lsb 0x40,
extension 0x80.
*/
type DIF byte

const (
	difDataMask      = 0x0F
	difFunctionMask  = 0x30
	difSNLSBMask     = 0x40
	difExtensionMask = 0x80
)

// DataFieldCode returns the 4-bit data-field code (bits 0..3), which
// selects the payload shape per the table in codes.go.
func (d DIF) DataFieldCode() DataFieldCode {
	return DataFieldCode(byte(d) & difDataMask)
}

// Function returns the 2-bit function field (bits 4..5).
func (d DIF) Function() FunctionField {
	return FunctionField((byte(d) & difFunctionMask) >> 4)
}

// StorageNumberLSB returns bit 6, the least-significant bit of the
// record's storage number (further bits come from DIFEs).
func (d DIF) StorageNumberLSB() bool {
	return byte(d)&difSNLSBMask != 0
}

// Extension reports whether a DIFE byte follows (bit 7).
func (d DIF) Extension() bool {
	return byte(d)&difExtensionMask != 0
}

// Byte returns the underlying byte.
func (d DIF) Byte() byte {
	return byte(d)
}
