package geomag

import "time"

// IsLeapYear applies the Gregorian leap-year rule.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DecimalYear maps t to year + (dayOfYear-1)/daysInYear using its UTC fields.
// The time of day is ignored; resolution is one day.
func DecimalYear(t time.Time) float64 {
	utc := t.UTC()
	days := 365.0
	if IsLeapYear(utc.Year()) {
		days = 366.0
	}
	return float64(utc.Year()) + float64(utc.YearDay()-1)/days
}
