package mbus

/*
DIB (Data Information Block) is a DIF followed by zero to ten DIFE
bytes, chained by each field's extension bit (bit 7).

	-------------------------------
	|   DIF  |        DIFE        |
	+--------+--------------------+
	| 1 byte | 0-10 (1 byte each) |
	-------------------------------

The chain terminates at the first field whose extension bit is 0. If ten
DIFEs have been consumed and the tenth still carries extension=1, the
block is malformed.
*/
type DIB struct {
	DIF   DIF
	DIFEs []DIFE
}

// Len reports the number of bytes the block occupies (1 + len(DIFEs)).
func (d DIB) Len() int {
	return 1 + len(d.DIFEs)
}

// StorageNumber reassembles the full storage number from the DIF's
// storage-number LSB and the DIFE chain's storage-number nibbles, least
// significant nibble first.
func (d DIB) StorageNumber() uint64 {
	sn := uint64(0)
	if d.DIF.StorageNumberLSB() {
		sn = 1
	}
	for i, e := range d.DIFEs {
		sn |= uint64(e.StorageNumber()) << uint(1+4*i)
	}
	return sn
}

// ParseDIB consumes a DIB from c: one DIF byte plus its DIFE extension
// chain, per the algorithm in spec §4.3.
func ParseDIB(c *Cursor) (DIB, error) {
	primary, exts, err := parseExtensionChain(c, "dib.chain", func(b byte) bool {
		return DIF(b).Extension()
	})
	if err != nil {
		return DIB{}, err
	}
	difes := make([]DIFE, len(exts))
	for i, b := range exts {
		difes[i] = DIFE(b)
	}
	_lg.Debugf("parsed DIB: dif=%#02x difes=%d", primary, len(difes))
	return DIB{DIF: DIF(primary), DIFEs: difes}, nil
}
