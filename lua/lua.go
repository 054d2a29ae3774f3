package lua

import (
	"errors"

	"github.com/lowercasebtw/ruston"
	lua "github.com/yuin/gopher-lua"
)

var ErrUnknownKind = errors.New("unknown value kind")

// FromValue converts a parsed JSON tree into gopher-lua values: objects
// and arrays become tables, leaves map to the matching lua primitives.
// Array elements keep their order; object member order follows the map.
func FromValue(v *ruston.Value) (lv lua.LValue, err error) {
	if v == nil {
		return lua.LNil, nil
	}

	switch v.Kind {
	case ruston.KindNull:
		return lua.LNil, nil
	case ruston.KindBoolean:
		return lua.LBool(v.Bool), nil
	case ruston.KindNumber:
		return lua.LNumber(v.Num), nil
	case ruston.KindString:
		return lua.LString(v.Str), nil
	case ruston.KindArray:
		t := &lua.LTable{
			Metatable: lua.LNil,
		}
		for _, c := range v.Array {
			var clv lua.LValue
			clv, err = FromValue(c)
			if err != nil {
				return nil, err
			}
			t.Append(clv)
		}
		return t, nil
	case ruston.KindObject:
		t := &lua.LTable{
			Metatable: lua.LNil,
		}
		for k, c := range v.Object {
			var clv lua.LValue
			clv, err = FromValue(c)
			if err != nil {
				return nil, err
			}
			t.RawSetString(k, clv)
		}
		return t, nil
	}

	return nil, ErrUnknownKind
}
