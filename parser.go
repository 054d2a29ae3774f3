package ruston

import (
	"strconv"
	"strings"
)

// SyntaxError reports why and where a parse failed. Err is one of the
// package sentinel errors, so callers can match with errors.Is.
type SyntaxError struct {
	Err    error
	Offset int  // byte offset into the source
	Got    byte // offending byte, 0 when the input ended
	Want   byte // expected delimiter, 0 when not applicable
}

func (e *SyntaxError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Err.Error())
	if e.Want != 0 {
		sb.WriteString(" '")
		sb.WriteByte(e.Want)
		sb.WriteString("'")
	}
	if e.Got != 0 {
		sb.WriteString(", got '")
		sb.WriteByte(e.Got)
		sb.WriteString("'")
	}
	sb.WriteString(" at offset ")
	sb.WriteString(strconv.Itoa(e.Offset))
	return sb.String()
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// Parser reads one source buffer front to back. The cursor only ever moves
// forward; after a failed Parse the instance must be discarded.
type Parser struct {
	source string
	cursor int
}

func NewParser(source string) *Parser {
	return &Parser{source: source}
}

// Parse decodes source as a single JSON value.
func Parse(source string) (v *Value, err error) {
	return NewParser(source).Parse()
}

// Parse consumes the whole source and returns the root value. Anything but
// whitespace after the root value is an error.
func (p *Parser) Parse() (v *Value, err error) {
	// past-end reads return a 0 sentinel, so a real NUL would read as EOF
	if i := strings.IndexByte(p.source, 0); i >= 0 {
		return nil, &SyntaxError{Err: ErrInvalidSourceByte, Offset: i}
	}

	v, err = p.parseValue()
	if err != nil {
		return nil, err
	}

	p.trimLeft()
	if !p.eof() {
		return nil, &SyntaxError{Err: ErrUnexpectedToken, Offset: p.cursor, Got: p.current()}
	}
	return
}

func (p *Parser) eof() bool { return p.cursor >= len(p.source) }

// current returns the byte under the cursor, or 0 at or past the end so
// that delimiter comparisons fail naturally without a bounds branch.
func (p *Parser) current() byte {
	if p.cursor >= len(p.source) {
		return 0
	}
	return p.source[p.cursor]
}

func (p *Parser) peek() byte {
	if p.cursor+1 >= len(p.source) {
		return 0
	}
	return p.source[p.cursor+1]
}

// tryConsume advances past lit only on an exact match; never partially.
func (p *Parser) tryConsume(lit string) bool {
	if p.cursor+len(lit) > len(p.source) {
		return false
	}
	if p.source[p.cursor:p.cursor+len(lit)] != lit {
		return false
	}
	p.cursor += len(lit)
	return true
}

func (p *Parser) tryConsumeByte(b byte) bool {
	if p.current() != b {
		return false
	}
	p.cursor++
	return true
}

// trimLeft skips spaces, tabs and newlines. Carriage return is not in the
// accepted whitespace set.
func (p *Parser) trimLeft() {
	for !p.eof() {
		switch p.current() {
		case ' ', '\t', '\n':
			p.cursor++
		default:
			return
		}
	}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func (p *Parser) parseValue() (v *Value, err error) {
	p.trimLeft()
	if p.eof() {
		return nil, &SyntaxError{Err: ErrEndOfInput, Offset: p.cursor}
	}

	switch c := p.current(); {
	case c == '{':
		return p.parseObject()
	case c == '[':
		return p.parseArray()
	case c == '"':
		return p.parseString()
	case c == 't' || c == 'f':
		return p.parseBoolean()
	case c == 'n':
		return p.parseNull()
	case c == '-' || c == '+' || isDigit(c):
		return p.parseNumber()
	default:
		return nil, &SyntaxError{Err: ErrUnexpectedToken, Offset: p.cursor, Got: c}
	}
}

// lexString returns the raw bytes strictly between two quotes. No escape
// interpretation: a backslash before a quote still ends the string.
func (p *Parser) lexString() (s string, err error) {
	if !p.tryConsumeByte('"') {
		return "", &SyntaxError{Err: ErrExpectedDelimiter, Offset: p.cursor, Got: p.current(), Want: '"'}
	}

	start := p.cursor
	for !p.eof() && p.current() != '"' {
		p.cursor++
	}

	if !p.tryConsumeByte('"') {
		return "", &SyntaxError{Err: ErrExpectedDelimiter, Offset: p.cursor, Want: '"'}
	}
	return p.source[start : p.cursor-1], nil
}

func (p *Parser) parseString() (v *Value, err error) {
	var s string
	s, err = p.lexString()
	if err != nil {
		return nil, err
	}
	return &Value{Kind: KindString, Str: s}, nil
}

func (p *Parser) parseObject() (v *Value, err error) {
	if !p.tryConsumeByte('{') {
		return nil, &SyntaxError{Err: ErrExpectedDelimiter, Offset: p.cursor, Got: p.current(), Want: '{'}
	}

	children := make(map[string]*Value)
	for !p.eof() && p.current() != '}' {
		p.trimLeft()

		var key string
		key, err = p.lexString()
		if err != nil {
			return nil, err
		}

		if !p.tryConsumeByte(':') {
			return nil, &SyntaxError{Err: ErrExpectedDelimiter, Offset: p.cursor, Got: p.current(), Want: ':'}
		}

		var child *Value
		child, err = p.parseValue()
		if err != nil {
			return nil, err
		}

		// a later duplicate key overwrites the earlier one
		children[key] = child

		if !p.tryConsumeByte(',') {
			break
		}
		// a comma must introduce another member
		if p.current() == '}' {
			return nil, &SyntaxError{Err: ErrUnexpectedToken, Offset: p.cursor, Got: '}'}
		}
	}

	if !p.tryConsumeByte('}') {
		return nil, &SyntaxError{Err: ErrExpectedDelimiter, Offset: p.cursor, Got: p.current(), Want: '}'}
	}
	return &Value{Kind: KindObject, Object: children}, nil
}

func (p *Parser) parseArray() (v *Value, err error) {
	if !p.tryConsumeByte('[') {
		return nil, &SyntaxError{Err: ErrExpectedDelimiter, Offset: p.cursor, Got: p.current(), Want: '['}
	}

	children := make([]*Value, 0, 10)
	p.trimLeft()
	if p.current() != ']' {
		for !p.eof() {
			var child *Value
			child, err = p.parseValue()
			if err != nil {
				return nil, err
			}
			children = append(children, child)

			if p.current() == ']' {
				break
			}
			// a comma continues the array unless it would trail before ']'
			if p.current() == ',' && p.peek() != ']' {
				p.cursor++
				continue
			}
			return nil, &SyntaxError{Err: ErrUnexpectedEnd, Offset: p.cursor, Got: p.current()}
		}
	}

	if !p.tryConsumeByte(']') {
		return nil, &SyntaxError{Err: ErrExpectedDelimiter, Offset: p.cursor, Got: p.current(), Want: ']'}
	}
	return &Value{Kind: KindArray, Array: children}, nil
}

func (p *Parser) parseBoolean() (v *Value, err error) {
	if p.tryConsume("true") {
		return &Value{Kind: KindBoolean, Bool: true}, nil
	}
	if p.tryConsume("false") {
		return &Value{Kind: KindBoolean, Bool: false}, nil
	}
	return nil, &SyntaxError{Err: ErrUnexpectedEnd, Offset: p.cursor, Got: p.current()}
}

func (p *Parser) parseNull() (v *Value, err error) {
	if !p.tryConsume("null") {
		return nil, &SyntaxError{Err: ErrUnexpectedEnd, Offset: p.cursor, Got: p.current()}
	}
	return &Value{Kind: KindNull}, nil
}

// parseNumber reads an optionally signed digit run. A leading '+' is
// accepted but has no effect on the sign. Fractions and exponents are not
// consumed; a following '.' or 'e' fails in the surrounding context.
func (p *Parser) parseNumber() (v *Value, err error) {
	negative := false
	if p.tryConsumeByte('-') {
		negative = true
	} else if p.tryConsumeByte('+') {
		negative = false
	}

	number := 0.0
	for !p.eof() && isDigit(p.current()) {
		number *= 10
		number += float64(p.current() - '0')
		p.cursor++
	}

	if negative {
		number = -number
	}
	return &Value{Kind: KindNumber, Num: number}, nil
}
