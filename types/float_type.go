package types

import (
	"fmt"
	"strconv"
	"strings"
)

type floatType struct{}

func (floatType) TypeID() TypeID { return Float }

func (floatType) Compare(left Value, right Value) int {
	assertComparable(left, right, Float, Integer)
	return compareFloat(left.ToFloat(), right.ToFloat())
}

func (floatType) SetValueFromStr(val *Value, data string) error {
	ret, err := strconv.ParseFloat(strings.TrimSpace(data), 32)
	if err != nil {
		return fmt.Errorf("%q is not a float: %w", data, ErrInvalidArgument)
	}
	val.SetFloat(float32(ret))
	return nil
}

// CastTo truncates toward zero when converting to Integer.
func (floatType) CastTo(val Value, target TypeID) (Value, error) {
	switch target {
	case Integer:
		return NewInteger(int32(val.ToFloat())), nil
	case Char:
		return NewChar(val.ToString()), nil
	}
	return Value{}, castErr(Float, target)
}

func (floatType) ToString(val Value) string {
	return strconv.FormatFloat(float64(val.ToFloat()), 'f', -1, 32)
}
