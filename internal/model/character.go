package model

import "strconv"

// Character is a playable entry in the roster
type Character struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Gender          string `json:"gender"`
	Age             int    `json:"age"`
	FirstAppearance string `json:"firstAppearence"` // key spelling kept for stored records
	Role            string `json:"role"`
	Group           string `json:"group"`
	Status          string `json:"status"`
	Survival        string `json:"survival"`
}

// AttrKind distinguishes string and integer attribute values
type AttrKind int

const (
	AttrString AttrKind = iota
	AttrInt
)

// AttrValue is a single typed attribute value of a character
type AttrValue struct {
	Kind AttrKind
	Str  string
	Int  int
}

// StringAttr wraps a string attribute value
func StringAttr(s string) AttrValue {
	return AttrValue{Kind: AttrString, Str: s}
}

// IntAttr wraps an integer attribute value
func IntAttr(n int) AttrValue {
	return AttrValue{Kind: AttrInt, Int: n}
}

// Equal reports exact equality: same kind, case-sensitive strings, numeric ints
func (v AttrValue) Equal(other AttrValue) bool {
	if v.Kind != other.Kind {
		return false
	}
	if v.Kind == AttrInt {
		return v.Int == other.Int
	}
	return v.Str == other.Str
}

// String returns the display form of the value
func (v AttrValue) String() string {
	if v.Kind == AttrInt {
		return strconv.Itoa(v.Int)
	}
	return v.Str
}
