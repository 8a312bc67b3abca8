package types

import (
	"bytes"
)

type charType struct{}

func (charType) TypeID() TypeID { return Char }

func (charType) Compare(left Value, right Value) int {
	assertComparable(left, right, Char)
	return bytes.Compare(left.Data(), right.Data())
}

func (charType) SetValueFromStr(val *Value, data string) error {
	val.SetChar(data)
	return nil
}

// CastTo parses the text with the target type's parser, so a failed
// conversion reports that type's format error.
func (charType) CastTo(val Value, target TypeID) (Value, error) {
	switch target {
	case Integer, Float, Boolean, Date:
		var ret Value
		if err := TypeInstance(target).SetValueFromStr(&ret, val.ToChar()); err != nil {
			return Value{}, err
		}
		return ret, nil
	}
	return Value{}, castErr(Char, target)
}

func (charType) ToString(val Value) string {
	return string(val.Data())
}
