package types

import (
	"fmt"
	"math"

	"github.com/meguriri/miniob-2025/common"
	"golang.org/x/exp/constraints"
)

// DataType is the per-type policy used by operators which handle values
// without knowing the concrete type pairing in advance.
type DataType interface {
	TypeID() TypeID
	// Compare returns -1, 0 or 1. both operands must be non-NULL
	Compare(left Value, right Value) int
	// SetValueFromStr parses data into val. val is left untouched on error
	SetValueFromStr(val *Value, data string) error
	CastTo(val Value, target TypeID) (Value, error)
	ToString(val Value) string
}

var dataTypes = map[TypeID]DataType{
	Integer: integerType{},
	Float:   floatType{},
	Boolean: booleanType{},
	Char:    charType{},
	Date:    dateType{},
	Null:    nullType{},
}

// TypeInstance returns the policy registered for typeID.
// unknown tags get a policy which rejects every operation.
func TypeInstance(typeID TypeID) DataType {
	if ret, ok := dataTypes[typeID]; ok {
		return ret
	}
	return undefinedType{}
}

const floatEpsilon = 1e-6

func compareOrdered[T constraints.Ordered](left T, right T) int {
	if left < right {
		return -1
	} else if left > right {
		return 1
	}
	return 0
}

func compareFloat(left float32, right float32) int {
	if math.Abs(float64(left)-float64(right)) < floatEpsilon {
		return 0
	}
	return compareOrdered(left, right)
}

func castErr(from TypeID, to TypeID) error {
	return fmt.Errorf("cast from %s to %s: %w", from, to, ErrUnimplemented)
}

func assertComparable(left Value, right Value, allowed ...TypeID) {
	for _, t := range allowed {
		if right.ValueType() == t {
			return
		}
	}
	common.SH_Assert(false, fmt.Sprintf("can not compare %s with %s", left.ValueType(), right.ValueType()))
}

type undefinedType struct{}

func (undefinedType) TypeID() TypeID { return Invalid }

func (undefinedType) Compare(left Value, right Value) int {
	common.SH_Assert(false, "compare on undefined type")
	return 0
}

func (undefinedType) SetValueFromStr(val *Value, data string) error {
	return ErrUnimplemented
}

func (undefinedType) CastTo(val Value, target TypeID) (Value, error) {
	return Value{}, castErr(Invalid, target)
}

func (undefinedType) ToString(val Value) string { return "" }

// NULL is a placeholder for a missing datum. it has no conversions.
type nullType struct{}

func (nullType) TypeID() TypeID { return Null }

func (nullType) Compare(left Value, right Value) int {
	common.SH_Assert(false, "NULL is not comparable")
	return 0
}

func (nullType) SetValueFromStr(val *Value, data string) error {
	return ErrUnimplemented
}

func (nullType) CastTo(val Value, target TypeID) (Value, error) {
	return Value{}, castErr(Null, target)
}

func (nullType) ToString(val Value) string { return "NULL" }
