package ruston

import (
	"errors"
	"reflect"
	"testing"
)

func TestString_rejectsUnlexableBytes(t *testing.T) {
	for _, s := range []string{`a"b`, "a\x00b"} {
		_, err := String(s)
		if !errors.Is(err, ErrInvalidStringChar) {
			t.Errorf("String(%q) error = %v, want ErrInvalidStringChar", s, err)
		}
	}

	if _, err := String(`a\b`); err != nil {
		t.Errorf("String(`a\\b`) error = %v, a lone backslash is lexable", err)
	}
}

func TestProducerNormalizesEmpty(t *testing.T) {
	if v := Array(); v.Array == nil || len(v.Array) != 0 {
		t.Errorf("Array() = %v, want empty non-nil slice", v.Array)
	}
	if v := Object(nil); v.Object == nil || len(v.Object) != 0 {
		t.Errorf("Object(nil) = %v, want empty non-nil map", v.Object)
	}
}

func TestProducerRoundTrip(t *testing.T) {
	built := Object(map[string]*Value{
		"flag": Boolean(true),
		"name": MustString("hello"),
		"nope": Null(),
		"vals": Array(Number(-12), Number(0), Object(nil)),
	})

	parsed, err := Parse(built.String())
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", built.String(), err)
	}
	if !reflect.DeepEqual(parsed, built) {
		t.Errorf("round trip: got %v, want %v", parsed, built)
	}
}
