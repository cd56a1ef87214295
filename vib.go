package mbus

/*
VIB (Value Information Block) is a VIF followed by zero to ten VIFE
bytes, chained by each field's extension bit (bit 7), with the same
termination invariants as DIB.
*/
type VIB struct {
	VIF   VIF
	VIFEs []VIFE
}

// Len reports the number of bytes the block occupies (1 + len(VIFEs)).
func (v VIB) Len() int {
	return 1 + len(v.VIFEs)
}

// ParseVIB consumes a VIB from c: one VIF byte plus its VIFE extension
// chain, per the algorithm in spec §4.3.
func ParseVIB(c *Cursor) (VIB, error) {
	primary, exts, err := parseExtensionChain(c, "vib.chain", func(b byte) bool {
		return VIF(b).Extension()
	})
	if err != nil {
		return VIB{}, err
	}
	vifes := make([]VIFE, len(exts))
	for i, b := range exts {
		vifes[i] = VIFE(b)
	}
	_lg.Debugf("parsed VIB: vif=%#02x vifes=%d", primary, len(vifes))
	return VIB{VIF: VIF(primary), VIFEs: vifes}, nil
}
