package types

import (
	"fmt"
	"strconv"
	"strings"
)

type integerType struct{}

func (integerType) TypeID() TypeID { return Integer }

func (integerType) Compare(left Value, right Value) int {
	assertComparable(left, right, Integer, Float)
	if right.ValueType() == Float {
		return compareFloat(left.ToFloat(), right.ToFloat())
	}
	return compareOrdered(left.ToInteger(), right.ToInteger())
}

func (integerType) SetValueFromStr(val *Value, data string) error {
	ret, err := strconv.ParseInt(strings.TrimSpace(data), 10, 32)
	if err != nil {
		return fmt.Errorf("%q is not an integer: %w", data, ErrInvalidArgument)
	}
	val.SetInteger(int32(ret))
	return nil
}

func (integerType) CastTo(val Value, target TypeID) (Value, error) {
	switch target {
	case Float:
		return NewFloat(float32(val.ToInteger())), nil
	case Boolean:
		return NewBoolean(val.ToInteger() != 0), nil
	case Char:
		return NewChar(val.ToString()), nil
	}
	return Value{}, castErr(Integer, target)
}

func (integerType) ToString(val Value) string {
	return strconv.FormatInt(int64(val.ToInteger()), 10)
}
