package mbus

// Quantity is the closed set of physical quantities the primary VIF
// table (spec §4.5) can produce.
type Quantity int

const (
	QuantityUnknown Quantity = iota
	QuantityEnergy
	QuantityVolume
	QuantityMass
	QuantityOnTime
	QuantityOperatingTime
	QuantityPower
)

func (q Quantity) String() string {
	switch q {
	case QuantityEnergy:
		return "energy"
	case QuantityVolume:
		return "volume"
	case QuantityMass:
		return "mass"
	case QuantityOnTime:
		return "on-time"
	case QuantityOperatingTime:
		return "operating-time"
	case QuantityPower:
		return "power"
	default:
		return "unknown"
	}
}

// PhysicalUnit is the closed set of unit symbols used by the primary
// VIF table.
type PhysicalUnit int

const (
	UnitNone PhysicalUnit = iota
	UnitWattHour
	UnitJoule
	UnitCubicMeter
	UnitKilogram
	UnitSecond
	UnitMinute
	UnitHour
	UnitDay
	UnitWatt
)

func (u PhysicalUnit) String() string {
	switch u {
	case UnitWattHour:
		return "Wh"
	case UnitJoule:
		return "J"
	case UnitCubicMeter:
		return "m3"
	case UnitKilogram:
		return "kg"
	case UnitSecond:
		return "s"
	case UnitMinute:
		return "min"
	case UnitHour:
		return "h"
	case UnitDay:
		return "day"
	case UnitWatt:
		return "W"
	default:
		return ""
	}
}
