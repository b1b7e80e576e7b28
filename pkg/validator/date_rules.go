package validator

import (
	"strconv"
	"strings"
	"time"
)

// Accepted layouts are YYYY/MM/DD, YYYY-MM-DD and YYYY年MM月DD日.
const dateSeparators = "/-年月日"

// Largest year accepted as a calendar date.
const maxYear = 32767

// Date fails with Date unless value splits into exactly three numeric
// fragments (year, month, day) on the separators / - 年 月 日 that form a real
// calendar date. Empty fragments left by the split are ignored, so
// "2018年05月15日" yields three fragments. At most one entry is recorded per
// call.
func (v *Validator) Date(value, field string) bool {
	if !isCalendarDate(value) {
		return v.fail(Date, field)
	}
	return true
}

func isCalendarDate(value string) bool {
	parts := strings.FieldsFunc(value, func(r rune) bool {
		return strings.ContainsRune(dateSeparators, r)
	})
	if len(parts) != 3 {
		return false
	}

	var ymd [3]int
	for i, part := range parts {
		if !isDigits(part) {
			return false
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return false
		}
		ymd[i] = n
	}

	year, month, day := ymd[0], ymd[1], ymd[2]
	if year < 1 || year > maxYear || month < 1 || month > 12 || day < 1 {
		return false
	}
	return day <= daysIn(time.Month(month), year)
}

// daysIn relies on time.Date normalising day 0 to the last day of the
// previous month.
func daysIn(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
