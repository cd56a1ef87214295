package mbus

import "time"

// CenturyRolloverYear is the century-rollover constant used by the CP16
// Date and CP32 DateTime decoders: a raw two-digit year less than this
// value is read as 20xx, otherwise as 19xx. The standard leaves this
// configurable; this core treats 81 as the fixed default (spec §9 Open
// Question).
const CenturyRolloverYear = 81

func yearFromParts(lsp, msp byte) int {
	yearLSB := lsp & 0xE0
	yearMSB := msp & 0xF0
	year := int((yearMSB | (yearLSB >> 4)) >> 1)
	if year < CenturyRolloverYear {
		return 2000 + year
	}
	return 1900 + year
}

// yearToParts is the inverse of yearFromParts: it splits a full calendar
// year into the bit patterns DecodeDate/DecodeDateTime expect in the
// low-byte's top 3 bits and the high-byte's top 4 bits.
func yearToParts(year int) (lspBits, mspBits byte) {
	y := year
	if y >= 2000 {
		y -= 2000
	} else {
		y -= 1900
	}
	lspBits = byte((y << 5) & 0xE0)
	mspBits = byte((y << 1) & 0xF0)
	return lspBits, mspBits
}

// Date is the Type G (CP16) compound date: year, month, day.
type Date struct {
	Year  int
	Month int
	Day   int
}

// DecodeDate decodes a 2-byte CP16 date per spec §4.6:
//
//	day   = b0 & 0x1F
//	month = b1 & 0x0F
//	year  = ((b1 & 0xF0) | ((b0 & 0xE0) >> 4)) >> 1, century-adjusted
func DecodeDate(b []byte) (Date, error) {
	if len(b) != 2 {
		return Date{}, newDecodeError("datetime.date", -1, b, "date requires exactly 2 bytes")
	}
	d := Date{
		Day:   int(b[0] & 0x1F),
		Month: int(b[1] & 0x0F),
		Year:  yearFromParts(b[0], b[1]),
	}
	if err := validateDate(d.Year, d.Month, d.Day); err != nil {
		return Date{}, err
	}
	return d, nil
}

// Encode re-serializes d into its 2-byte CP16 wire form. Encode is the
// inverse of DecodeDate, used by the package's round-trip tests.
func (d Date) Encode() []byte {
	lspBits, mspBits := yearToParts(d.Year)
	b0 := byte(d.Day&0x1F) | lspBits
	b1 := byte(d.Month&0x0F) | mspBits
	return []byte{b0, b1}
}

// Time returns the canonical time.Time for d (at midnight, UTC). A Date
// returned by DecodeDate has already been range-checked; the standard
// library is used here only to obtain a calendar value, not to validate
// one (see DESIGN.md).
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// TimeOfDay is the Type... CP16/CP24 time: hour, minute, second. Second
// is 0 when the 2-byte (CP16) variant is decoded.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// DecodeTime decodes a 2-byte (CP16, no seconds) or 3-byte (with
// seconds) time per spec §4.6.
func DecodeTime(b []byte) (TimeOfDay, error) {
	switch len(b) {
	case 2:
		t := TimeOfDay{Minute: int(b[0] & 0x3F), Hour: int(b[1] & 0x1F)}
		if err := validateTime(t.Hour, t.Minute, t.Second); err != nil {
			return TimeOfDay{}, err
		}
		return t, nil
	case 3:
		t := TimeOfDay{
			Minute: int(b[0] & 0x3F),
			Hour:   int(b[1] & 0x1F),
			Second: int(b[2] & 0x3F),
		}
		if err := validateTime(t.Hour, t.Minute, t.Second); err != nil {
			return TimeOfDay{}, err
		}
		return t, nil
	default:
		return TimeOfDay{}, newDecodeError("datetime.time", -1, b, "time requires 2 or 3 bytes")
	}
}

// Encode re-serializes t into its wire form. withSeconds selects the
// 3-byte variant; otherwise the 2-byte variant is produced (seconds
// dropped).
func (t TimeOfDay) Encode(withSeconds bool) []byte {
	b0 := byte(t.Minute & 0x3F)
	b1 := byte(t.Hour & 0x1F)
	if !withSeconds {
		return []byte{b0, b1}
	}
	return []byte{b0, b1, byte(t.Second & 0x3F)}
}

// DateTime is the Type F (CP32/CP40) compound date-time. Second is 0 for
// the 4-byte variant.
type DateTime struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// DecodeDateTime decodes a 4-byte (CP32, no seconds) or 5-byte (CP40,
// with seconds) date-time per spec §4.6.
func DecodeDateTime(b []byte) (DateTime, error) {
	if len(b) != 4 && len(b) != 5 {
		return DateTime{}, newDecodeError("datetime.datetime", -1, b, "date-time requires 4 or 5 bytes")
	}
	dt := DateTime{
		Minute: int(b[0] & 0x3F),
		Hour:   int(b[1] & 0x1F),
		Day:    int(b[2] & 0x1F),
		Month:  int(b[3] & 0x0F),
		Year:   yearFromParts(b[2], b[3]),
	}
	if len(b) == 5 {
		dt.Second = int(b[4] & 0x3F)
	}
	if err := validateDate(dt.Year, dt.Month, dt.Day); err != nil {
		return DateTime{}, err
	}
	if err := validateTime(dt.Hour, dt.Minute, dt.Second); err != nil {
		return DateTime{}, err
	}
	return dt, nil
}

// Encode re-serializes dt into its wire form. withSeconds selects the
// 5-byte (CP40) variant.
func (dt DateTime) Encode(withSeconds bool) []byte {
	lspBits, mspBits := yearToParts(dt.Year)
	b0 := byte(dt.Minute & 0x3F)
	b1 := byte(dt.Hour & 0x1F)
	b2 := byte(dt.Day&0x1F) | lspBits
	b3 := byte(dt.Month&0x0F) | mspBits
	if !withSeconds {
		return []byte{b0, b1, b2, b3}
	}
	return []byte{b0, b1, b2, b3, byte(dt.Second & 0x3F)}
}

// Time returns the canonical time.Time for dt (UTC; the core does not
// interpret time zones, per spec §1 Non-goals).
func (dt DateTime) Time() time.Time {
	return time.Date(dt.Year, time.Month(dt.Month), dt.Day, dt.Hour, dt.Minute, dt.Second, 0, time.UTC)
}

func validateDate(year, month, day int) error {
	if month < 1 || month > 12 {
		return newDecodeError("datetime.validate", -1, nil, "invalid date/time: month out of range")
	}
	if day < 1 || day > daysInMonth(year, month) {
		return newDecodeError("datetime.validate", -1, nil, "invalid date/time: day out of range")
	}
	return nil
}

func validateTime(hour, minute, second int) error {
	if hour < 0 || hour > 23 {
		return newDecodeError("datetime.validate", -1, nil, "invalid date/time: hour out of range")
	}
	if minute < 0 || minute > 59 {
		return newDecodeError("datetime.validate", -1, nil, "invalid date/time: minute out of range")
	}
	if second < 0 || second > 59 {
		return newDecodeError("datetime.validate", -1, nil, "invalid date/time: second out of range")
	}
	return nil
}

func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
