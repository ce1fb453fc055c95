package changelog

import "fmt"

// Date is a release date exactly as written in the heading: four year digits,
// two month digits, two day digits. Fields are not range checked; month 13 or
// day 99 are accepted; the grammar fixes digit widths, not the calendar.
type Date struct {
	Year  uint16
	Month uint8
	Day   uint8
}

// String re-encodes the date as YYYY-MM-DD. Because parsing is fixed-width,
// a parsed date always reproduces its original digits exactly.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// ParseDate consumes a YYYY-MM-DD literal from the front of s and returns the
// date plus whatever text follows the ten consumed bytes. Trailing text is
// legal and left for the caller. Two-digit years, locale forms, and
// separators other than '-' are rejected.
func ParseDate(s string) (Date, string, error) {
	year, err := fixedDigits(s, 0, 4)
	if err != nil {
		return Date{}, "", err
	}
	if err := literalAt(s, 4, '-'); err != nil {
		return Date{}, "", err
	}
	month, err := fixedDigits(s, 5, 2)
	if err != nil {
		return Date{}, "", err
	}
	if err := literalAt(s, 7, '-'); err != nil {
		return Date{}, "", err
	}
	day, err := fixedDigits(s, 8, 2)
	if err != nil {
		return Date{}, "", err
	}
	return Date{Year: uint16(year), Month: uint8(month), Day: uint8(day)}, s[10:], nil
}

// fixedDigits decodes exactly width ASCII digits starting at off.
func fixedDigits(s string, off, width int) (int, error) {
	if len(s) < off+width {
		return 0, &ClassifyError{
			Kind:     KindFormat,
			Input:    s,
			Offset:   off,
			Expected: fmt.Sprintf("%d digits", width),
		}
	}
	v := 0
	for i := off; i < off+width; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, &ClassifyError{Kind: KindFormat, Input: s, Offset: off, Expected: "digit"}
		}
		v = v*10 + int(c-'0')
	}
	return v, nil
}

// literalAt requires the byte want at offset off.
func literalAt(s string, off int, want byte) error {
	if off >= len(s) || s[off] != want {
		return &ClassifyError{
			Kind:     KindFormat,
			Input:    s,
			Offset:   off,
			Expected: fmt.Sprintf("%q", string(want)),
		}
	}
	return nil
}
