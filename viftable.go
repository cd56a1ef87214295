package mbus

import "math"

// VIFInterpretation is the result of matching a VIF's 7-bit code against
// the primary VIF table (spec §4.5). When Unknown is true, no row
// matched and the raw byte is preserved for the caller to interpret
// (e.g. a secondary or manufacturer-specific table layered on top of
// this core).
type VIFInterpretation struct {
	Quantity   Quantity
	Unit       PhysicalUnit
	Multiplier float64
	Unknown    bool
	Raw        VIF
}

// vifRow is one entry of the static primary VIF table: a code mask
// (cmask), an exponent sub-field mask (emask) selecting bits within the
// low 7 bits of the VIF, and a function computing the row's multiplier
// from the exponent bits. The on-time/operating-time rows have no
// multiplier function; they set timeUnit and take their unit from the
// exponent bits via timeUnitForExponent.
type vifRow struct {
	cmask, emask byte
	quantity     Quantity
	unit         PhysicalUnit // fixed unit, or UnitNone when timeUnit is set
	timeUnit     bool         // true for the on-time/operating-time rows, whose unit varies with e
	multiplier   func(e byte) float64
}

// primaryVIFTable is the static, read-only table of §4.5. It is never
// mutated after package init ("No globals" per spec §9 — this is a
// constant lookup table, not process-wide mutable state).
var primaryVIFTable = []vifRow{
	{cmask: 0b0000000, emask: 0b0000111, quantity: QuantityEnergy, unit: UnitWattHour,
		multiplier: func(e byte) float64 { return math.Pow(10, float64(int(e)-3)) }},
	{cmask: 0b0001000, emask: 0b0000111, quantity: QuantityEnergy, unit: UnitJoule,
		multiplier: func(e byte) float64 { return math.Pow(10, float64(e)) }},
	{cmask: 0b0010000, emask: 0b0000111, quantity: QuantityVolume, unit: UnitCubicMeter,
		multiplier: func(e byte) float64 { return math.Pow(10, float64(int(e)-6)) }},
	{cmask: 0b0011000, emask: 0b0000111, quantity: QuantityMass, unit: UnitKilogram,
		multiplier: func(e byte) float64 { return math.Pow(10, float64(int(e)-3)) }},
	{cmask: 0b0100000, emask: 0b0000011, quantity: QuantityOnTime, timeUnit: true},
	{cmask: 0b0100100, emask: 0b0000011, quantity: QuantityOperatingTime, timeUnit: true},
	{cmask: 0b0101000, emask: 0b0000111, quantity: QuantityPower, unit: UnitWatt,
		multiplier: func(e byte) float64 { return math.Pow(10, float64(int(e)-3)) }},
}

// timeUnitForExponent maps the 2-bit on-time/operating-time exponent
// sub-field to its unit: 0=second, 1=minute, 2=hour, 3=day.
func timeUnitForExponent(e byte) PhysicalUnit {
	switch e & 0b11 {
	case 0:
		return UnitSecond
	case 1:
		return UnitMinute
	case 2:
		return UnitHour
	default:
		return UnitDay
	}
}

// DecodeVIFPrimary matches vif's low 7 bits against the primary VIF
// table and returns the first matching row. Rows are disjoint by
// construction, so match order does not affect the result. A VIF with
// no matching row is not an error: it yields Unknown=true carrying the
// raw byte, per §4.5.
func DecodeVIFPrimary(vif VIF) VIFInterpretation {
	code := vif.Code()
	for _, row := range primaryVIFTable {
		if code&^row.emask != row.cmask {
			continue
		}
		e := code & row.emask
		if row.timeUnit {
			return VIFInterpretation{
				Quantity: row.quantity,
				Unit:     timeUnitForExponent(e),
				Raw:      vif,
			}
		}
		return VIFInterpretation{
			Quantity:   row.quantity,
			Unit:       row.unit,
			Multiplier: row.multiplier(e),
			Raw:        vif,
		}
	}
	return VIFInterpretation{Unknown: true, Raw: vif}
}
