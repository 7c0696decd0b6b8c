package dataprocessing

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// minDateYear gates out pre-2000 dates, which the source systems use as
// sentinel/placeholder values.
const minDateYear = 2000

// minDateSerial is the Excel serial for 2000-01-01 (epoch 1899-12-30).
const minDateSerial = 36526

var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// CleanNumber decodes a raw cell into a number, defaulting to 0 on any
// failure. Text values go through dual-locale separator disambiguation:
// when both separators appear, the later one is the decimal mark; a lone
// comma is decimal; a lone dot followed by exactly three digits is treated
// as a thousands separator. The three-digit rule is a documented heuristic
// carried over from the historical parser; "10.500" decodes as 10500.
func CleanNumber(c Cell) float64 {
	switch c.Kind {
	case CellNumber:
		return c.Number
	case CellText:
		return cleanNumericText(c.Text)
	}
	return 0
}

func cleanNumericText(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	t := b.String()

	dot := strings.LastIndex(t, ".")
	comma := strings.LastIndex(t, ",")
	switch {
	case dot >= 0 && comma >= 0:
		if comma > dot {
			// Brazilian: 1.234,56
			t = strings.ReplaceAll(t, ".", "")
			t = strings.ReplaceAll(t, ",", ".")
		} else {
			// US: 1,234.56
			t = strings.ReplaceAll(t, ",", "")
		}
	case comma >= 0:
		t = strings.ReplaceAll(t, ",", ".")
	case dot >= 0:
		if rest := t[dot+1:]; len(rest) == 3 && allDigits(rest) {
			t = strings.ReplaceAll(t, ".", "")
		}
	}

	v, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0
	}
	return v
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

var (
	dayFirstDatePattern = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2,4})$`)
	monthYearPattern    = regexp.MustCompile(`^([a-zç]{3})[\s./-]*(\d{2,4})$`)
	isoDatePattern      = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
)

// Portuguese three-letter month abbreviations as they appear in the exports.
var monthAbbrev = map[string]time.Month{
	"jan": time.January, "fev": time.February, "mar": time.March,
	"abr": time.April, "mai": time.May, "jun": time.June,
	"jul": time.July, "ago": time.August, "set": time.September,
	"out": time.October, "nov": time.November, "dez": time.December,
}

// DecodeDate decodes a raw cell into an ISO YYYY-MM-DD string, or "" when
// no valid calendar date in or after year 2000 can be recovered. Numeric
// cells are interpreted as Excel day-count serials. Text is tried day-first
// (Brazilian), then month-abbreviation + year, then ISO; the first match
// wins. The empty result signals "unparseable" and is filtered downstream.
func DecodeDate(c Cell) string {
	switch c.Kind {
	case CellDate:
		return formatISODate(c.Date.Year(), c.Date.Month(), c.Date.Day())
	case CellNumber:
		return decodeSerialDate(c.Number)
	case CellText:
		return decodeTextDate(c.Text)
	}
	return ""
}

func decodeSerialDate(serial float64) string {
	if serial < minDateSerial {
		return ""
	}
	t := serialEpoch.Add(time.Duration(serial * 86400 * float64(time.Second)))
	return formatISODate(t.Year(), t.Month(), t.Day())
}

func decodeTextDate(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	if m := dayFirstDatePattern.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if year < 100 {
			year += 2000
		}
		return validISODate(year, time.Month(month), day)
	}

	if m := monthYearPattern.FindStringSubmatch(s); m != nil {
		if month, ok := monthAbbrev[m[1]]; ok {
			year, _ := strconv.Atoi(m[2])
			if year < 100 {
				year += 2000
			}
			return validISODate(year, month, 1)
		}
	}

	if m := isoDatePattern.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return validISODate(year, time.Month(month), day)
	}

	return ""
}

// validISODate formats year/month/day after checking that they denote a real
// calendar date (no overflow normalization) at or after the year gate.
func validISODate(year int, month time.Month, day int) string {
	if month < time.January || month > time.December || day < 1 {
		return ""
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return ""
	}
	return formatISODate(year, month, day)
}

func formatISODate(year int, month time.Month, day int) string {
	if year < minDateYear {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}
