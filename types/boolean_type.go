package types

import (
	"fmt"
	"strconv"
	"strings"
)

type booleanType struct{}

func (booleanType) TypeID() TypeID { return Boolean }

func (booleanType) Compare(left Value, right Value) int {
	assertComparable(left, right, Boolean)
	return compareOrdered(left.ToInteger(), right.ToInteger())
}

func (booleanType) SetValueFromStr(val *Value, data string) error {
	ret, err := strconv.ParseBool(strings.TrimSpace(data))
	if err != nil {
		return fmt.Errorf("%q is not a boolean: %w", data, ErrInvalidArgument)
	}
	val.SetBoolean(ret)
	return nil
}

func (booleanType) CastTo(val Value, target TypeID) (Value, error) {
	switch target {
	case Integer:
		return NewInteger(val.ToInteger()), nil
	case Char:
		return NewChar(val.ToString()), nil
	}
	return Value{}, castErr(Boolean, target)
}

func (booleanType) ToString(val Value) string {
	return strconv.FormatBool(val.ToBoolean())
}
