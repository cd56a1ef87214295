package mbus

import (
	"math"
	"testing"
)

func TestDecodeVIFPrimary_Power(t *testing.T) {
	// Spec scenario S7: VIF=0xA9 -> code 0x29 matches the power row, e=1,
	// multiplier = 10^(1-3) = 0.01.
	got := DecodeVIFPrimary(VIF(0xA9))
	if got.Unknown {
		t.Fatal("DecodeVIFPrimary(0xA9).Unknown = true, want false")
	}
	if got.Quantity != QuantityPower {
		t.Errorf("Quantity = %v, want QuantityPower", got.Quantity)
	}
	if got.Unit != UnitWatt {
		t.Errorf("Unit = %v, want UnitWatt", got.Unit)
	}
	if math.Abs(got.Multiplier-0.01) > 1e-12 {
		t.Errorf("Multiplier = %v, want 0.01", got.Multiplier)
	}
}

func TestDecodeVIFPrimary_AllRows(t *testing.T) {
	tests := []struct {
		name string
		code byte // low 7 bits
		want Quantity
		unit PhysicalUnit
	}{
		{"energy Wh base", 0b0000000, QuantityEnergy, UnitWattHour},
		{"energy Wh e=7", 0b0000111, QuantityEnergy, UnitWattHour},
		{"energy J base", 0b0001000, QuantityEnergy, UnitJoule},
		{"volume m3 base", 0b0010000, QuantityVolume, UnitCubicMeter},
		{"mass kg base", 0b0011000, QuantityMass, UnitKilogram},
		{"power W base", 0b0101000, QuantityPower, UnitWatt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeVIFPrimary(VIF(tt.code))
			if got.Unknown {
				t.Fatalf("DecodeVIFPrimary(%#07b).Unknown = true", tt.code)
			}
			if got.Quantity != tt.want || got.Unit != tt.unit {
				t.Errorf("DecodeVIFPrimary(%#07b) = {%v %v}, want {%v %v}", tt.code, got.Quantity, got.Unit, tt.want, tt.unit)
			}
		})
	}
}

func TestDecodeVIFPrimary_OnTimeOperatingTimeUnits(t *testing.T) {
	tests := []struct {
		name string
		code byte
		want Quantity
		unit PhysicalUnit
	}{
		{"on-time seconds", 0b0100000, QuantityOnTime, UnitSecond},
		{"on-time minutes", 0b0100001, QuantityOnTime, UnitMinute},
		{"on-time hours", 0b0100010, QuantityOnTime, UnitHour},
		{"on-time days", 0b0100011, QuantityOnTime, UnitDay},
		{"operating-time seconds", 0b0100100, QuantityOperatingTime, UnitSecond},
		{"operating-time minutes", 0b0100101, QuantityOperatingTime, UnitMinute},
		{"operating-time hours", 0b0100110, QuantityOperatingTime, UnitHour},
		{"operating-time days", 0b0100111, QuantityOperatingTime, UnitDay},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeVIFPrimary(VIF(tt.code))
			if got.Unknown {
				t.Fatalf("DecodeVIFPrimary(%#07b).Unknown = true", tt.code)
			}
			if got.Quantity != tt.want {
				t.Errorf("Quantity = %v, want %v", got.Quantity, tt.want)
			}
			if got.Unit != tt.unit {
				t.Errorf("Unit = %v, want %v (the hour/day rows must not collapse back to seconds)", got.Unit, tt.unit)
			}
		})
	}
}

func TestDecodeVIFPrimary_Unknown(t *testing.T) {
	// 0b1111111 matches no row in the primary table.
	got := DecodeVIFPrimary(VIF(0b1111111))
	if !got.Unknown {
		t.Error("DecodeVIFPrimary(0b1111111).Unknown = false, want true")
	}
	if got.Raw != VIF(0b1111111) {
		t.Errorf("Raw = %#02x, want 0x7F", got.Raw)
	}
}
