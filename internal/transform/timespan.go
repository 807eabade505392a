package transform

import (
	"fmt"

	"wrecklore/internal/linkedart"
	"wrecklore/internal/normalize"
)

// ResolveTimeSpan derives a UTC interval from the structured date columns.
// Precedence: full day, then year+month (spanning the whole month), then year
// alone (spanning the whole year). Components that fail to parse are treated
// as absent and resolution falls through to the next coarser rule. The
// free-text dateLost column is never parsed; it only decorates labels.
func ResolveTimeSpan(year, month, day string) *linkedart.TimeSpan {
	y, okY := normalize.Integer(year)
	if !okY || y < 1 || y > 9999 {
		return nil
	}
	m, okM := normalize.Integer(month)
	okM = okM && m >= 1 && m <= 12

	if okM {
		d, okD := normalize.Integer(day)
		if okD && d >= 1 && d <= lastDayOfMonth(y, m) {
			date := fmt.Sprintf("%04d-%02d-%02d", y, m, d)
			return &linkedart.TimeSpan{
				Type:  "TimeSpan",
				Label: date,
				Begin: date + "T00:00:00Z",
				End:   date + "T23:59:59Z",
			}
		}
		return &linkedart.TimeSpan{
			Type:  "TimeSpan",
			Label: fmt.Sprintf("%04d-%02d", y, m),
			Begin: fmt.Sprintf("%04d-%02d-01T00:00:00Z", y, m),
			End:   fmt.Sprintf("%04d-%02d-%02dT23:59:59Z", y, m, lastDayOfMonth(y, m)),
		}
	}

	return &linkedart.TimeSpan{
		Type:  "TimeSpan",
		Label: fmt.Sprintf("%d", y),
		Begin: fmt.Sprintf("%04d-01-01T00:00:00Z", y),
		End:   fmt.Sprintf("%04d-12-31T23:59:59Z", y),
	}
}

func lastDayOfMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	default:
		if isLeapYear(year) {
			return 29
		}
		return 28
	}
}

func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}
