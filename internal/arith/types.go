package arith

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownType reports a name that does not denote a fundamental arithmetic type.
var ErrUnknownType = errors.New("unknown arithmetic type")

// Type identifies one fundamental arithmetic type. The set is closed: any
// value outside [TypeBool, TypeLongDouble] is not classifiable.
type Type uint8

const (
	TypeInvalid Type = iota
	TypeBool
	TypeChar
	TypeSChar
	TypeUChar
	TypeChar16
	TypeChar32
	TypeWChar
	TypeShort
	TypeUShort
	TypeInt
	TypeUInt
	TypeLong
	TypeULong
	TypeLongLong
	TypeULongLong
	TypeFloat
	TypeDouble
	TypeLongDouble

	typeCount
)

var typeNames = [typeCount]string{
	TypeInvalid:    "invalid",
	TypeBool:       "bool",
	TypeChar:       "char",
	TypeSChar:      "signed char",
	TypeUChar:      "unsigned char",
	TypeChar16:     "char16_t",
	TypeChar32:     "char32_t",
	TypeWChar:      "wchar_t",
	TypeShort:      "short",
	TypeUShort:     "unsigned short",
	TypeInt:        "int",
	TypeUInt:       "unsigned int",
	TypeLong:       "long",
	TypeULong:      "unsigned long",
	TypeLongLong:   "long long",
	TypeULongLong:  "unsigned long long",
	TypeFloat:      "float",
	TypeDouble:     "double",
	TypeLongDouble: "long double",
}

// Marker struct names, used as short aliases on the command line.
var typeIdents = [typeCount]string{
	TypeBool:       "Bool",
	TypeChar:       "Char",
	TypeSChar:      "SChar",
	TypeUChar:      "UChar",
	TypeChar16:     "Char16",
	TypeChar32:     "Char32",
	TypeWChar:      "WChar",
	TypeShort:      "Short",
	TypeUShort:     "UShort",
	TypeInt:        "Int",
	TypeUInt:       "UInt",
	TypeLong:       "Long",
	TypeULong:      "ULong",
	TypeLongLong:   "LongLong",
	TypeULongLong:  "ULongLong",
	TypeFloat:      "Float",
	TypeDouble:     "Double",
	TypeLongDouble: "LongDouble",
}

// Valid reports whether t belongs to the closed arithmetic set.
func (t Type) Valid() bool {
	return t > TypeInvalid && t < typeCount
}

func (t Type) String() string {
	if t < typeCount {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", t)
}

// Ident returns the Go marker name for t ("ULongLong" for unsigned long long).
func (t Type) Ident() string {
	if !t.Valid() {
		return ""
	}
	return typeIdents[t]
}

// All returns every arithmetic type in declaration order.
func All() []Type {
	out := make([]Type, 0, typeCount-1)
	for t := TypeBool; t < typeCount; t++ {
		out = append(out, t)
	}
	return out
}

// ParseType accepts either the C spelling ("unsigned long long",
// "char16_t") or the marker name ("ULongLong"), case-insensitively.
// Redundant whitespace inside the C spelling is ignored.
func ParseType(s string) (Type, error) {
	name := strings.ToLower(strings.Join(strings.Fields(s), " "))
	if name == "" {
		return TypeInvalid, fmt.Errorf("%w: empty name", ErrUnknownType)
	}
	for t := TypeBool; t < typeCount; t++ {
		if typeNames[t] == name || strings.ToLower(typeIdents[t]) == name {
			return t, nil
		}
	}
	return TypeInvalid, fmt.Errorf("%w: %q", ErrUnknownType, s)
}
