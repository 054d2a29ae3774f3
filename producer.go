package ruston

import "strings"

// String builds a string value. The lexer cannot represent a quote or a
// NUL inside a string, so those are rejected instead of producing a tree
// that can never round-trip.
func String(s string) (v *Value, err error) {
	if strings.ContainsAny(s, "\"\x00") {
		return nil, ErrInvalidStringChar
	}
	return &Value{Kind: KindString, Str: s}, nil
}

func MustString(s string) (v *Value) {
	var err error
	v, err = String(s)
	if err != nil {
		panic(err)
	}
	return
}

func Number(f float64) (v *Value) {
	return &Value{Kind: KindNumber, Num: f}
}

func Boolean(b bool) (v *Value) {
	return &Value{Kind: KindBoolean, Bool: b}
}

func Null() (v *Value) {
	return &Value{Kind: KindNull}
}

func Array(children ...*Value) (v *Value) {
	if children == nil {
		children = make([]*Value, 0, 0)
	}
	return &Value{Kind: KindArray, Array: children}
}

func Object(members map[string]*Value) (v *Value) {
	if members == nil {
		members = make(map[string]*Value)
	}
	return &Value{Kind: KindObject, Object: members}
}
