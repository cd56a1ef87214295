package mbus

// Record is a fully decoded Data Record: its header blocks, the raw
// payload bytes, and the typed value those bytes decode to.
type Record struct {
	DIB     DIB
	VIB     VIB
	Payload []byte
	Value   DecodedValue
}

// DecodeRecord consumes one Data Record from c: a DIB, a VIB, and a
// payload whose length is determined by the DIB's data-field code (or,
// for DataFieldVarLen, a length-prefix byte read from the payload
// itself). The state machine is start -> dib -> vib -> payload -> done;
// any sub-parser failure is terminal for the record: partial records are
// never returned (spec §4.8, §7).
func DecodeRecord(c *Cursor) (Record, error) {
	dib, err := ParseDIB(c)
	if err != nil {
		return Record{}, err
	}

	vib, err := ParseVIB(c)
	if err != nil {
		return Record{}, err
	}

	code := dib.DIF.DataFieldCode()
	payload, err := takeRecordPayload(c, code)
	if err != nil {
		return Record{}, err
	}

	value, err := decodeRecordValue(code, vib, payload)
	if err != nil {
		return Record{}, err
	}

	_lg.Debugf("decoded record: dif_code=%s payload_len=%d value_kind=%d", code, len(payload), value.Kind)
	return Record{DIB: dib, VIB: vib, Payload: payload, Value: value}, nil
}

func takeRecordPayload(c *Cursor, code DataFieldCode) ([]byte, error) {
	n, variable := BytesFor(code)
	if !variable {
		return c.Take(n)
	}
	lenByte, err := c.TakeOne()
	if err != nil {
		return nil, newUnexpectedEndError("record.payload.length", c.Offset())
	}
	return c.Take(int(lenByte))
}

// decodeRecordValue decodes payload according to code, unless the VIB's
// VIFE chain ends with a date/time selector byte, in which case that
// selector overrides the integer interpretation (spec §4.8).
func decodeRecordValue(code DataFieldCode, vib VIB, payload []byte) (DecodedValue, error) {
	if len(vib.VIFEs) > 0 {
		last := vib.VIFEs[len(vib.VIFEs)-1]
		if selector, isDateTime := last.IsDateTimeSelector(); selector {
			_lg.Debugf("applying VIFE date/time selector %#02x", byte(last))
			if isDateTime {
				dt, err := DecodeDateTime(payload)
				if err != nil {
					return DecodedValue{}, err
				}
				return DecodedValue{Kind: ValueDateTime, DateTime: dt}, nil
			}
			d, err := DecodeDate(payload)
			if err != nil {
				return DecodedValue{}, err
			}
			return DecodedValue{Kind: ValueDate, Date: d}, nil
		}
	}

	switch code {
	case DataFieldNoData:
		return DecodedValue{Kind: ValueNoData}, nil
	case DataFieldReadout:
		return DecodedValue{Kind: ValueReadoutSelector, Bytes: payload}, nil
	case DataFieldSpecialFunc:
		return DecodedValue{Kind: ValueSpecialFunction, Bytes: payload}, nil
	case DataFieldInt8, DataFieldInt16, DataFieldInt24, DataFieldInt32, DataFieldInt48, DataFieldInt64:
		v, err := DecodeSignedInt(payload)
		if err != nil {
			return DecodedValue{}, err
		}
		return DecodedValue{Kind: ValueInt, Int: v}, nil
	case DataFieldReal32:
		v, err := decodeReal32(payload)
		if err != nil {
			return DecodedValue{}, err
		}
		return DecodedValue{Kind: ValueReal32, Real32: v}, nil
	case DataFieldBCD2, DataFieldBCD4, DataFieldBCD6, DataFieldBCD8, DataFieldBCD12:
		v, err := DecodeBCD(payload)
		if err != nil {
			return DecodedValue{}, err
		}
		return DecodedValue{Kind: ValueBCD, BCD: v}, nil
	case DataFieldVarLen:
		return DecodedValue{Kind: ValueVarLenBytes, Bytes: payload}, nil
	default:
		return DecodedValue{}, newDecodeError("record.value", -1, payload, "unknown data-field code")
	}
}

// DecodeValue exposes payload decoding directly, bypassing framing and
// record assembly, for test harnesses and callers that already have a
// DIF/VIB/payload triple in hand (spec §6).
func DecodeValue(dif DIF, vib VIB, payload []byte) (DecodedValue, error) {
	return decodeRecordValue(dif.DataFieldCode(), vib, payload)
}

