package ruston

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

type Kind int

var (
	ErrEndOfInput        = errors.New("unexpected end of input")
	ErrUnexpectedToken   = errors.New("unexpected token")
	ErrExpectedDelimiter = errors.New("expected delimiter")
	ErrUnexpectedEnd     = errors.New("unexpected end of value")
	ErrInvalidSourceByte = errors.New("NUL byte in source")
	ErrInvalidStringChar = errors.New("invalid string character")
)

const (
	KindNull Kind = iota
	KindBoolean
	KindNumber
	KindString
	KindArray
	KindObject
)

// Value is one parsed JSON construct. Kind selects which of the variant
// fields is meaningful; the zero Value is null.
type Value struct {
	Kind
	Object map[string]*Value
	Array  []*Value
	Str    string
	Num    float64
	Bool   bool
}

// String renders the tree back as compact JSON. Object members are written
// in sorted key order so the output is deterministic.
func (v *Value) String() string {
	var sb strings.Builder

	err := v.appendToBuilder(&sb)
	if err != nil {
		return "!!(" + err.Error() + ")!!"
	}

	return sb.String()
}

func (v *Value) appendToBuilder(sb *strings.Builder) (err error) {
	if v == nil {
		return
	}

	switch v.Kind {
	case KindNull:
		sb.WriteString("null")
		return
	case KindBoolean:
		sb.WriteString(strconv.FormatBool(v.Bool))
		return
	case KindNumber:
		sb.WriteString(strconv.FormatFloat(v.Num, 'f', -1, 64))
		return
	case KindString:
		// a quote or NUL in the value cannot be re-lexed
		if strings.ContainsAny(v.Str, "\"\x00") {
			return ErrInvalidStringChar
		}
		sb.WriteByte('"')
		sb.WriteString(v.Str)
		sb.WriteByte('"')
		return
	case KindArray:
		sb.WriteByte('[')
		for i, c := range v.Array {
			err = c.appendToBuilder(sb)
			if err != nil {
				return
			}
			if i < len(v.Array)-1 {
				sb.WriteByte(',')
			}
		}
		sb.WriteByte(']')
		return
	case KindObject:
		keys := make([]string, 0, len(v.Object))
		for k := range v.Object {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteByte('{')
		for i, k := range keys {
			if strings.ContainsAny(k, "\"\x00") {
				return ErrInvalidStringChar
			}
			sb.WriteByte('"')
			sb.WriteString(k)
			sb.WriteString(`":`)
			err = v.Object[k].appendToBuilder(sb)
			if err != nil {
				return
			}
			if i < len(keys)-1 {
				sb.WriteByte(',')
			}
		}
		sb.WriteByte('}')
		return
	}

	return
}
