package mbus

import (
	"encoding/binary"
	"math"
)

// ValueKind tags the variant carried by a DecodedValue.
type ValueKind int

const (
	ValueNoData ValueKind = iota
	ValueInt
	ValueReal32
	ValueBCD
	ValueBoolean
	ValueReadoutSelector
	ValueSpecialFunction
	ValueDate
	ValueTime
	ValueDateTime
	ValueVarLenBytes
)

// DecodedValue is the tagged-union result of decoding a record's payload
// bytes according to its DIF data-field code (spec §4.4), or a VIFE
// date/time selector override (spec §4.8).
//
// Only the field matching Kind is meaningful; the others are zero. This
// mirrors the "variant over inheritance" design note (spec §9): one
// closed struct instead of a decoder-specific interface hierarchy.
type DecodedValue struct {
	Kind ValueKind

	Int     int64   // ValueInt: sign-extended per the payload's byte width
	Real32  float32 // ValueReal32
	BCD     uint64  // ValueBCD: decoded decimal value
	Bool    bool    // ValueBoolean
	Date     Date      // ValueDate
	Time     TimeOfDay // ValueTime
	DateTime DateTime  // ValueDateTime
	Bytes    []byte   // ValueVarLenBytes, ValueReadoutSelector, ValueSpecialFunction
}

// DecodeSignedInt decodes payload as a little-endian two's-complement
// signed integer (Type B). The width is len(payload); any width from 1 to
// 8 bytes is accepted, including widths the DIF table never produces (5
// and 7).
func DecodeSignedInt(payload []byte) (int64, error) {
	n := len(payload)
	if n == 0 || n > 8 {
		return 0, newDecodeError("values.int", -1, payload, "unsupported signed integer width")
	}
	var v uint64
	for i := n - 1; i >= 0; i-- {
		v = (v << 8) | uint64(payload[i])
	}
	signBit := uint64(1) << (uint(n)*8 - 1)
	if v&signBit != 0 {
		v -= uint64(1) << (uint(n) * 8)
	}
	return int64(v), nil
}

// DecodeUnsignedInt decodes payload as a plain little-endian unsigned
// integer (Type C).
func DecodeUnsignedInt(payload []byte) (uint64, error) {
	n := len(payload)
	if n == 0 || n > 8 {
		return 0, newDecodeError("values.uint", -1, payload, "unsupported unsigned integer width")
	}
	var v uint64
	for i := n - 1; i >= 0; i-- {
		v = (v << 8) | uint64(payload[i])
	}
	return v, nil
}

// DecodeBoolean decodes payload as a boolean (Type D): the unsigned
// interpretation is true iff it is nonzero.
func DecodeBoolean(payload []byte) (bool, error) {
	v, err := DecodeUnsignedInt(payload)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// DecodeBCD decodes payload as unsigned BCD (Type A): nibbles read
// least-significant byte first, low nibble of each byte the less
// significant decimal digit. A nibble greater than 9 is rejected.
func DecodeBCD(payload []byte) (uint64, error) {
	var v uint64
	mul := uint64(1)
	for _, b := range payload {
		lo := b & 0x0F
		hi := (b >> 4) & 0x0F
		if lo > 9 || hi > 9 {
			return 0, newDecodeError("values.bcd", -1, []byte{b}, "bad BCD nibble")
		}
		v += uint64(lo) * mul
		mul *= 10
		v += uint64(hi) * mul
		mul *= 10
	}
	return v, nil
}

// decodeReal32 decodes a 4-byte little-endian IEEE-754 binary32 (Type H).
func decodeReal32(payload []byte) (float32, error) {
	if len(payload) != 4 {
		return 0, newDecodeError("values.real32", -1, payload, "real32 requires exactly 4 bytes")
	}
	bits := binary.LittleEndian.Uint32(payload)
	return math.Float32frombits(bits), nil
}
