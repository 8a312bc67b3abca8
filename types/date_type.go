package types

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/meguriri/miniob-2025/common"
)

const (
	minDateYear = 0
	maxDateYear = 9999
)

type dateType struct{}

func (dateType) TypeID() TypeID { return Date }

// Compare accepts a Char right operand, which is read as a date.
// text which does not parse compares as date 0.
func (dateType) Compare(left Value, right Value) int {
	common.SH_Assert(left.ValueType() == Date, "left type is not date")
	assertComparable(left, right, Date, Char)
	return compareOrdered(left.ToDate(), right.ToDate())
}

// SetValueFromStr accepts "Y-M-D" with unpadded components.
func (dateType) SetValueFromStr(val *Value, data string) error {
	parts := strings.Split(strings.TrimSpace(data), "-")
	if len(parts) != 3 {
		return fmt.Errorf("%q: %w", data, ErrInvalidDateFormat)
	}
	var ymd [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return fmt.Errorf("%q: %w", data, ErrInvalidDateFormat)
		}
		ymd[i] = n
	}
	if !IsValidDate(ymd[0], ymd[1], ymd[2]) {
		return fmt.Errorf("%q: %w", data, ErrInvalidDateFormat)
	}
	val.SetDate(ymd[0], ymd[1], ymd[2])
	return nil
}

func (dateType) CastTo(val Value, target TypeID) (Value, error) {
	switch target {
	case Char:
		return NewChar(val.ToString()), nil
	}
	return Value{}, castErr(Date, target)
}

// ToString always pads to YYYY-MM-DD
func (dateType) ToString(val Value) string {
	date := val.ToInteger()
	year := date / 10000
	month := (date % 10000) / 100
	day := date % 100
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

var daysOfMonth = [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func IsValidDate(year int, month int, day int) bool {
	// the encoding y*10000+m*100+d must fit in an int32
	if year < minDateYear || year > maxDateYear {
		return false
	}
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	maxDay := daysOfMonth[month-1]
	if month == 2 && isLeapYear(year) {
		maxDay = 29
	}
	return day <= maxDay
}
