package lua

import (
	"reflect"
	"testing"

	"github.com/lowercasebtw/ruston"
	lua "github.com/yuin/gopher-lua"
)

func table() *lua.LTable {
	return &lua.LTable{
		Metatable: lua.LNil,
	}
}

func expectArray(children ...lua.LValue) *lua.LTable {
	t := table()
	for _, c := range children {
		t.Append(c)
	}
	return t
}

func expectObject(members map[string]lua.LValue) *lua.LTable {
	t := table()
	for k, m := range members {
		t.RawSetString(k, m)
	}
	return t
}

func TestFromValue(t *testing.T) {
	type test struct {
		name  string
		v     *ruston.Value
		wantV lua.LValue
	}
	var cases = []test{
		{
			name:  "null",
			v:     ruston.Null(),
			wantV: lua.LNil,
		},
		{
			name:  "boolean",
			v:     ruston.Boolean(true),
			wantV: lua.LTrue,
		},
		{
			name:  "number",
			v:     ruston.Number(-12),
			wantV: lua.LNumber(-12),
		},
		{
			name:  "string",
			v:     ruston.MustString("hello"),
			wantV: lua.LString("hello"),
		},
		{
			name: "array keeps element order",
			v: ruston.Array(
				ruston.Boolean(true),
				ruston.MustString("hello"),
				ruston.Number(-12),
			),
			wantV: expectArray(
				lua.LTrue,
				lua.LString("hello"),
				lua.LNumber(-12),
			),
		},
		{
			name: "object members become string keys",
			v: ruston.Object(map[string]*ruston.Value{
				"a": ruston.Number(1),
				"b": ruston.Null(),
			}),
			wantV: expectObject(map[string]lua.LValue{
				"a": lua.LNumber(1),
				"b": lua.LNil,
			}),
		},
		{
			name:  "empty object",
			v:     ruston.Object(nil),
			wantV: table(),
		},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			gotV, err := FromValue(tt.v)
			if err != nil {
				t.Fatalf("FromValue() error = %v", err)
			}
			if !reflect.DeepEqual(gotV, tt.wantV) {
				t.Errorf("FromValue() gotV = %v, want %v", gotV, tt.wantV)
			}
		})
	}
}

func TestFromParsedDocument(t *testing.T) {
	v, err := ruston.Parse(`[true, false, "hello", {}, -12]`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	gotV, err := FromValue(v)
	if err != nil {
		t.Fatalf("FromValue() error = %v", err)
	}

	wantV := expectArray(
		lua.LTrue,
		lua.LFalse,
		lua.LString("hello"),
		table(),
		lua.LNumber(-12),
	)
	if !reflect.DeepEqual(gotV, wantV) {
		t.Errorf("FromValue() gotV = %v, want %v", gotV, wantV)
	}
}
