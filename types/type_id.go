package types

type TypeID int

// Every possible attribute type
const (
	Invalid TypeID = iota
	Integer
	Float
	Boolean
	Char
	Date
	Null
)

var typeNames = [...]string{"undefined", "ints", "floats", "booleans", "chars", "dates", "null"}

func (t TypeID) String() string {
	if t < Invalid || int(t) >= len(typeNames) {
		return typeNames[Invalid]
	}
	return typeNames[t]
}

// Size returns the fixed width of the type in a record.
// Char has no fixed width; its width comes from the column definition.
func (t TypeID) Size() uint32 {
	switch t {
	case Integer, Float, Date:
		return 4
	case Boolean:
		return 1
	}
	return 0
}

func (t TypeID) IsValid() bool {
	return t > Invalid && t <= Null
}
