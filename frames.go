package mbus

/*
Frame classifies the three Data Link envelope shapes defined by
EN 13757-2/3 that this core recognizes (spec §4.7):

	Ack          1 byte:  0xE5
	ShortFrame   5 bytes: 0x10 C A CHK 0x16
	LongFrame    var:     0x68 L L 0x68 (C A CI payload...) CHK 0x16

DecodeFrame is the single entry point; it classifies by leading byte and
never retries with a different interpretation (spec §7: "never by
retry").
*/
type Frame interface {
	Kind() FrameKind
	Raw() []byte
}

type FrameKind int

const (
	FrameKindAck FrameKind = iota
	FrameKindShort
	FrameKindLong
)

func (k FrameKind) String() string {
	switch k {
	case FrameKindAck:
		return "ack"
	case FrameKindShort:
		return "short"
	case FrameKindLong:
		return "long"
	default:
		return "unknown"
	}
}

const (
	ackByte        = 0xE5
	shortStartByte = 0x10
	longStartByte  = 0x68
	stopByte       = 0x16
)

// AckFrame is the single-byte acknowledgement frame.
type AckFrame struct {
	raw []byte
}

func (f AckFrame) Kind() FrameKind { return FrameKindAck }
func (f AckFrame) Raw() []byte     { return f.raw }

// ShortFrame is the 5-byte control frame: 0x10 C A CHK 0x16.
type ShortFrame struct {
	C   ControlField
	A   AddressField
	raw []byte
}

func (f ShortFrame) Kind() FrameKind { return FrameKindShort }
func (f ShortFrame) Raw() []byte     { return f.raw }

// LongFrame is the variable-length control/data frame:
// 0x68 L L 0x68 (C A CI payload...) CHK 0x16. Payload is the opaque
// slice following CI, to be fed to the record assembler.
type LongFrame struct {
	C       ControlField
	A       AddressField
	CI      byte
	Payload []byte
	raw     []byte
}

func (f LongFrame) Kind() FrameKind { return FrameKindLong }
func (f LongFrame) Raw() []byte     { return f.raw }

// DecodeFrame classifies and validates data as one of Ack, ShortFrame,
// or LongFrame. A leading byte matching none of the three markers, or a
// frame that fails its own structural checks (length, start/stop
// markers, checksum), yields *DecodeError wrapping ErrDecode. Empty input,
// and a long frame shorter than its minimum header, yield *DecodeError
// wrapping ErrUnexpectedEnd instead.
func DecodeFrame(data []byte) (Frame, error) {
	if len(data) == 0 {
		return nil, newUnexpectedEndError("frame.classify", 0)
	}

	switch data[0] {
	case ackByte:
		if len(data) != 1 {
			return nil, newDecodeError("frame.ack", 0, data, "ack frame must be exactly 1 byte")
		}
		_lg.Debug("decoded ack frame")
		return AckFrame{raw: data}, nil
	case shortStartByte:
		return decodeShortFrame(data)
	case longStartByte:
		return decodeLongFrame(data)
	default:
		return nil, newDecodeError("frame.classify", 0, data[:1], "unrecognized frame start byte")
	}
}

func decodeShortFrame(data []byte) (Frame, error) {
	const shortFrameLen = 5
	if len(data) != shortFrameLen {
		return nil, newDecodeError("frame.short.length", 0, data, "short frame must be exactly 5 bytes")
	}
	if data[4] != stopByte {
		return nil, newDecodeError("frame.short.stop", 4, data[4:5], "short frame stop byte mismatch")
	}
	c, a, chk := data[1], data[2], data[3]
	if want := byte(int(c)+int(a)) % 256; chk != want {
		return nil, newDecodeError("frame.short.checksum", 3, data[3:4], "short frame checksum mismatch")
	}
	_lg.Debugf("decoded short frame: c=%#02x a=%#02x", c, a)
	return ShortFrame{C: ControlField(c), A: AddressField(a), raw: data}, nil
}

func decodeLongFrame(data []byte) (Frame, error) {
	const minHeader = 4 // 0x68 L L 0x68
	if len(data) < minHeader+1+2 {
		return nil, newUnexpectedEndError("frame.long.header", len(data))
	}
	l1, l2 := data[1], data[2]
	if l1 != l2 {
		return nil, newDecodeError("frame.long.length", 1, data[1:3], "long frame length fields mismatch")
	}
	if data[3] != longStartByte {
		return nil, newDecodeError("frame.long.start2", 3, data[3:4], "long frame second start byte mismatch")
	}
	l := int(l1)
	wantTotal := minHeader + l + 2 // header + payload(L) + CHK + stop
	if len(data) != wantTotal {
		return nil, newDecodeError("frame.long.length", 1, []byte{l1}, "long frame length field does not match frame size")
	}
	if l < 3 {
		return nil, newDecodeError("frame.long.length", 1, []byte{l1}, "long frame payload shorter than C+A+CI")
	}

	payload := data[minHeader : minHeader+l]
	chk := data[minHeader+l]
	stop := data[minHeader+l+1]
	if stop != stopByte {
		return nil, newDecodeError("frame.long.stop", minHeader+l+1, data[minHeader+l+1:], "long frame stop byte mismatch")
	}

	sum := 0
	for _, b := range payload {
		sum += int(b)
	}
	if want := byte(sum % 256); chk != want {
		return nil, newDecodeError("frame.long.checksum", minHeader+l, []byte{chk}, "long frame checksum mismatch")
	}

	c, a, ci := payload[0], payload[1], payload[2]
	_lg.Debugf("decoded long frame: c=%#02x a=%#02x ci=%#02x payload_len=%d", c, a, ci, len(payload)-3)
	return LongFrame{
		C:       ControlField(c),
		A:       AddressField(a),
		CI:      ci,
		Payload: payload[3:],
		raw:     data,
	}, nil
}
