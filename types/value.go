package types

import (
	"encoding/binary"
	"math"
	"strconv"
)

// A Value represents a view over SQL data stored in some materialized
// state. It carries a type tag and the raw little-endian bytes of the
// datum, so its length is always len(data).
//
// Values are immutable once built: Set* methods replace the byte slice
// instead of writing into it, so copies of a Value never observe each
// other's changes.
type Value struct {
	valueType TypeID
	data      []byte
}

func NewInteger(value int32) Value {
	data := make([]byte, 4)
	binary.LittleEndian.PutUint32(data, uint32(value))
	return Value{Integer, data}
}

func NewFloat(value float32) Value {
	data := make([]byte, 4)
	binary.LittleEndian.PutUint32(data, math.Float32bits(value))
	return Value{Float, data}
}

func NewBoolean(value bool) Value {
	data := []byte{0}
	if value {
		data[0] = 1
	}
	return Value{Boolean, data}
}

func NewChar(value string) Value {
	return Value{Char, []byte(value)}
}

// NewDate builds a date from its components without validating them.
// Use the Date type's SetValueFromStr or IsValidDate when input is untrusted.
func NewDate(year int, month int, day int) Value {
	return newDateFromInt(int32(year*10000 + month*100 + day))
}

func newDateFromInt(date int32) Value {
	ret := NewInteger(date)
	ret.valueType = Date
	return ret
}

func NewNull() Value {
	return Value{Null, []byte{}}
}

// NewValueFromBytes is used for deserialization of a fixed width field.
// Char content ends at the first zero byte or at the end of data.
func NewValueFromBytes(data []byte, valueType TypeID) Value {
	switch valueType {
	case Integer, Float, Date:
		buf := make([]byte, 4)
		copy(buf, data)
		return Value{valueType, buf}
	case Boolean:
		buf := make([]byte, 1)
		copy(buf, data)
		return Value{valueType, buf}
	case Char:
		end := len(data)
		for i, b := range data {
			if b == 0 {
				end = i
				break
			}
		}
		buf := make([]byte, end)
		copy(buf, data[:end])
		return Value{valueType, buf}
	}
	return NewNull()
}

func (v Value) ValueType() TypeID {
	return v.valueType
}

// Length is the byte length of the raw representation.
// For Char it is the content length without terminator.
func (v Value) Length() int {
	return len(v.data)
}

// Data returns the raw bytes. the slice must not be modified.
func (v Value) Data() []byte {
	return v.data
}

func (v Value) IsNull() bool {
	return v.valueType == Null
}

// SetType changes the type tag only. it must be followed by a Set* call
// which installs a representation matching the new tag.
func (v *Value) SetType(valueType TypeID) {
	v.valueType = valueType
}

func (v *Value) SetInteger(value int32) {
	*v = NewInteger(value)
}

func (v *Value) SetFloat(value float32) {
	*v = NewFloat(value)
}

func (v *Value) SetBoolean(value bool) {
	*v = NewBoolean(value)
}

func (v *Value) SetChar(value string) {
	*v = NewChar(value)
}

func (v *Value) SetDate(year int, month int, day int) {
	*v = NewDate(year, month, day)
}

// if you use this to get column value
// NULL value check is needed in general
func (v Value) ToInteger() int32 {
	switch v.valueType {
	case Integer, Date:
		return int32(binary.LittleEndian.Uint32(v.data))
	case Float:
		return int32(v.ToFloat())
	case Boolean:
		if v.ToBoolean() {
			return 1
		}
		return 0
	case Char:
		ret, err := strconv.ParseInt(string(v.data), 10, 32)
		if err != nil {
			return 0
		}
		return int32(ret)
	}
	return 0
}

func (v Value) ToFloat() float32 {
	switch v.valueType {
	case Float:
		return math.Float32frombits(binary.LittleEndian.Uint32(v.data))
	case Integer, Date, Boolean:
		return float32(v.ToInteger())
	case Char:
		ret, err := strconv.ParseFloat(string(v.data), 32)
		if err != nil {
			return 0
		}
		return float32(ret)
	}
	return 0
}

func (v Value) ToBoolean() bool {
	switch v.valueType {
	case Boolean:
		return v.data[0] != 0
	case Integer, Date:
		return v.ToInteger() != 0
	case Float:
		return v.ToFloat() != 0
	case Char:
		ret, err := strconv.ParseBool(string(v.data))
		return err == nil && ret
	}
	return false
}

// ToDate returns the encoded date (year*10000 + month*100 + day).
// text which is not a valid date yields 0.
func (v Value) ToDate() int32 {
	switch v.valueType {
	case Date:
		return v.ToInteger()
	case Char:
		var parsed Value
		if err := TypeInstance(Date).SetValueFromStr(&parsed, string(v.data)); err != nil {
			return 0
		}
		return parsed.ToInteger()
	}
	return 0
}

func (v Value) ToChar() string {
	if v.valueType == Char {
		return string(v.data)
	}
	return v.ToString()
}

func (v Value) ToString() string {
	return TypeInstance(v.valueType).ToString(v)
}

// CompareTo returns -1, 0 or 1. both sides must be non-NULL.
func (v Value) CompareTo(right Value) int {
	return TypeInstance(v.valueType).Compare(v, right)
}

// CastTo converts v into target. casting to the own type returns v.
func (v Value) CastTo(target TypeID) (Value, error) {
	if v.valueType == target {
		return v, nil
	}
	return TypeInstance(v.valueType).CastTo(v, target)
}

func (v Value) CompareEquals(right Value) bool {
	if v.IsNull() && right.IsNull() {
		return true
	} else if v.IsNull() || right.IsNull() {
		return false
	}
	return v.CompareTo(right) == 0
}

func (v Value) CompareNotEquals(right Value) bool {
	return !v.CompareEquals(right)
}

func (v Value) CompareGreaterThan(right Value) bool {
	if v.IsNull() || right.IsNull() {
		return false
	}
	return v.CompareTo(right) > 0
}

func (v Value) CompareGreaterThanOrEqual(right Value) bool {
	if v.IsNull() || right.IsNull() {
		return v.IsNull() && right.IsNull()
	}
	return v.CompareTo(right) >= 0
}

func (v Value) CompareLessThan(right Value) bool {
	if v.IsNull() || right.IsNull() {
		return false
	}
	return v.CompareTo(right) < 0
}

func (v Value) CompareLessThanOrEqual(right Value) bool {
	if v.IsNull() || right.IsNull() {
		return v.IsNull() && right.IsNull()
	}
	return v.CompareTo(right) <= 0
}
