package mbus

// DataFieldCode is the 4-bit DIF sub-field that selects a record's
// payload shape (spec §4.4).
type DataFieldCode byte

const (
	DataFieldNoData       DataFieldCode = 0b0000
	DataFieldInt8         DataFieldCode = 0b0001
	DataFieldInt16        DataFieldCode = 0b0010
	DataFieldInt24        DataFieldCode = 0b0011
	DataFieldInt32        DataFieldCode = 0b0100
	DataFieldReal32       DataFieldCode = 0b0101
	DataFieldInt48        DataFieldCode = 0b0110
	DataFieldInt64        DataFieldCode = 0b0111
	DataFieldReadout      DataFieldCode = 0b1000
	DataFieldBCD2         DataFieldCode = 0b1001
	DataFieldBCD4         DataFieldCode = 0b1010
	DataFieldBCD6         DataFieldCode = 0b1011
	DataFieldBCD8         DataFieldCode = 0b1100
	DataFieldVarLen       DataFieldCode = 0b1101
	DataFieldBCD12        DataFieldCode = 0b1110
	DataFieldSpecialFunc  DataFieldCode = 0b1111
)

func (c DataFieldCode) String() string {
	switch c {
	case DataFieldNoData:
		return "no-data"
	case DataFieldInt8:
		return "int8"
	case DataFieldInt16:
		return "int16"
	case DataFieldInt24:
		return "int24"
	case DataFieldInt32:
		return "int32"
	case DataFieldReal32:
		return "real32"
	case DataFieldInt48:
		return "int48"
	case DataFieldInt64:
		return "int64"
	case DataFieldReadout:
		return "readout"
	case DataFieldBCD2:
		return "bcd2"
	case DataFieldBCD4:
		return "bcd4"
	case DataFieldBCD6:
		return "bcd6"
	case DataFieldBCD8:
		return "bcd8"
	case DataFieldVarLen:
		return "varlen"
	case DataFieldBCD12:
		return "bcd12"
	case DataFieldSpecialFunc:
		return "special-func"
	default:
		return "unknown"
	}
}

// BytesFor returns the fixed payload byte count for c, or variable=true
// for DataFieldVarLen, whose length is only known after reading its
// length-prefix byte (see record.go).
func BytesFor(c DataFieldCode) (n int, variable bool) {
	switch c {
	case DataFieldNoData, DataFieldReadout, DataFieldSpecialFunc:
		return 0, false
	case DataFieldInt8, DataFieldBCD2:
		return 1, false
	case DataFieldInt16, DataFieldBCD4:
		return 2, false
	case DataFieldInt24, DataFieldBCD6:
		return 3, false
	case DataFieldInt32, DataFieldReal32:
		return 4, false
	case DataFieldBCD8:
		return 4, false
	case DataFieldInt48, DataFieldBCD12:
		return 6, false
	case DataFieldInt64:
		return 8, false
	case DataFieldVarLen:
		return 0, true
	default:
		return 0, false
	}
}

// FunctionField is the 2-bit DIF sub-field distinguishing instantaneous
// values from stored maxima/minima/error values.
type FunctionField byte

const (
	FunctionInstantaneous FunctionField = 0b00
	FunctionMaximum       FunctionField = 0b01
	FunctionMinimum       FunctionField = 0b10
	FunctionError         FunctionField = 0b11
)

func (f FunctionField) String() string {
	switch f {
	case FunctionInstantaneous:
		return "instantaneous"
	case FunctionMaximum:
		return "maximum"
	case FunctionMinimum:
		return "minimum"
	case FunctionError:
		return "error"
	default:
		return "unknown"
	}
}

// Medium is the 4-bit EN 13757 medium/device type enumeration used to
// classify a meter. It is carried out-of-band of the Data Record header
// (typically in the Long Frame's CI-dependent fixed data header) but is
// exposed here as a closed taxonomy for callers that decode it.
type Medium byte

const (
	MediumOther         Medium = 0x00
	MediumOil           Medium = 0x01
	MediumElectricity   Medium = 0x02
	MediumGas           Medium = 0x03
	MediumHeat          Medium = 0x04
	MediumSteam         Medium = 0x05
	MediumHotWater      Medium = 0x06
	MediumWater         Medium = 0x07
	MediumHCA           Medium = 0x08 // heat-cost allocator
	MediumReserved      Medium = 0x09
	MediumGasMode2      Medium = 0x0A
	MediumHeatMode2     Medium = 0x0B
	MediumHotWaterMode2 Medium = 0x0C
	MediumWaterMode2    Medium = 0x0D
	MediumHCAMode2      Medium = 0x0E
	MediumReservedMode2 Medium = 0x0F
)

func (m Medium) String() string {
	switch m {
	case MediumOther:
		return "other"
	case MediumOil:
		return "oil"
	case MediumElectricity:
		return "electricity"
	case MediumGas:
		return "gas"
	case MediumHeat:
		return "heat"
	case MediumSteam:
		return "steam"
	case MediumHotWater:
		return "hot-water"
	case MediumWater:
		return "water"
	case MediumHCA:
		return "hca"
	case MediumGasMode2:
		return "gas-mode2"
	case MediumHeatMode2:
		return "heat-mode2"
	case MediumHotWaterMode2:
		return "hot-water-mode2"
	case MediumWaterMode2:
		return "water-mode2"
	case MediumHCAMode2:
		return "hca-mode2"
	default:
		return "reserved"
	}
}
