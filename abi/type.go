package abi

import (
	"strconv"
	"strings"
)

// Kind is the wire category of a Type.
type Kind uint8

// Kinds.
const (
	InvalidKind Kind = iota
	UintKind
	BoolKind
	StringKind
	BytesKind
	TupleKind
	ArrayKind
)

// Type describes one field of a tuple shape.
type Type struct {
	Kind Kind
	Abbr string

	// Elem is the element type of an array.
	Elem *Type

	// Fields are the field types of a tuple.
	Fields []Type
}

// Dynamic returns true if values of this type live in the tail and the head
// only holds their offset.
func (t Type) Dynamic() bool {
	switch t.Kind {
	case StringKind, BytesKind, TupleKind, ArrayKind:
		return true
	}

	return false
}

// String returns the canonical type name used in function signatures.
func (t Type) String() string {
	switch t.Kind {
	case TupleKind:
		names := make([]string, len(t.Fields))
		for i, f := range t.Fields {
			names[i] = f.String()
		}

		return "(" + strings.Join(names, ",") + ")"
	case ArrayKind:
		if t.Elem == nil {
			return "unknown[]"
		}

		return t.Elem.String() + "[]"
	}

	if t.Abbr == "" {
		return "unknown"
	}

	return t.Abbr
}

// accepts reports whether a value of type v may stand where t is expected.
// Widths and names of unsigned integers are not compared, and an invalid
// type on either side matches anything.
func (t Type) accepts(v Type) bool {
	if t.Kind == InvalidKind || v.Kind == InvalidKind {
		return true
	}

	if t.Kind != v.Kind {
		return false
	}

	switch t.Kind {
	case ArrayKind:
		if t.Elem == nil || v.Elem == nil {
			return true
		}

		return t.Elem.accepts(*v.Elem)
	case TupleKind:
		if len(t.Fields) != len(v.Fields) {
			return false
		}

		for i := range t.Fields {
			if !t.Fields[i].accepts(v.Fields[i]) {
				return false
			}
		}
	}

	return true
}

// ArrayOf returns the type of a variable length array of elem.
func ArrayOf(elem Type) Type {
	return Type{
		Kind: ArrayKind,
		Elem: &elem,
	}
}

// TupleOf returns the type of a tuple with the given fields.
func TupleOf(fields ...Type) Type {
	return Type{
		Kind:   TupleKind,
		Fields: fields,
	}
}

type types []Type

func (ts types) Match(abbr string) (t Type, ok bool) {
	for _, t := range ts {
		if t.Abbr == abbr {
			return t, true
		}
	}

	return t, false
}

var (
	Unknown = Type{}
	Uint    = Type{Kind: UintKind, Abbr: "uint256"}
	Address = Type{Kind: UintKind, Abbr: "address"}
	Bool    = Type{Kind: BoolKind, Abbr: "bool"}
	String  = Type{Kind: StringKind, Abbr: "string"}
	Bytes   = Type{Kind: BytesKind, Abbr: "bytes"}

	Types = types{
		Uint,
		Address,
		Bool,
		String,
		Bytes,
	}
)

// ParseType parses a type name such as "uint256", "string[]" or
// "(address,uint8)[]". Every unsigned width uintN is a Uint on the wire and
// keeps its name for signatures.
func ParseType(s string) (t Type, err error) {
	p := &typeParser{s: s}

	t, err = p.parse()
	if err != nil {
		return Unknown, err
	}

	if p.pos != len(s) {
		return Unknown, UnsupportedTypeError.New("unexpected %q at %d in %q", s[p.pos:], p.pos, s)
	}

	return t, nil
}

// MustParseType is like ParseType but panics on error.
func MustParseType(s string) Type {
	t, err := ParseType(s)
	if err != nil {
		panic(err)
	}

	return t
}

// ParseShape parses a parenthesized list of types, e.g. "(uint256,string)",
// into the field types of a tuple.
func ParseShape(s string) ([]Type, error) {
	t, err := ParseType(s)
	if err != nil {
		return nil, err
	}

	if t.Kind != TupleKind {
		return nil, UnsupportedTypeError.New("shape %q is not a tuple", s)
	}

	return t.Fields, nil
}

// MustParseShape is like ParseShape but panics on error.
func MustParseShape(s string) []Type {
	shape, err := ParseShape(s)
	if err != nil {
		panic(err)
	}

	return shape
}

type typeParser struct {
	s   string
	pos int
}

func (p *typeParser) peek() byte {
	if p.pos >= len(p.s) {
		return 0
	}

	return p.s[p.pos]
}

func (p *typeParser) parse() (t Type, err error) {
	if p.peek() == '(' {
		t, err = p.tuple()
	} else {
		t, err = p.name()
	}
	if err != nil {
		return Unknown, err
	}

	for strings.HasPrefix(p.s[p.pos:], "[]") {
		t = ArrayOf(t)
		p.pos += 2
	}

	return t, nil
}

func (p *typeParser) tuple() (t Type, err error) {
	p.pos++ // (

	t = TupleOf()
	if p.peek() == ')' {
		p.pos++
		return t, nil
	}

	for {
		f, err := p.parse()
		if err != nil {
			return Unknown, err
		}

		t.Fields = append(t.Fields, f)

		switch p.peek() {
		case ',':
			p.pos++
		case ')':
			p.pos++
			return t, nil
		default:
			return Unknown, UnsupportedTypeError.New("unterminated tuple in %q", p.s)
		}
	}
}

func (p *typeParser) name() (t Type, err error) {
	start := p.pos
	for p.pos < len(p.s) {
		c := p.s[p.pos]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			break
		}
		p.pos++
	}

	abbr := p.s[start:p.pos]

	if t, ok := Types.Match(abbr); ok {
		return t, nil
	}

	if strings.HasPrefix(abbr, "uint") {
		bits, err := strconv.Atoi(abbr[len("uint"):])
		if err == nil && bits > 0 && bits <= 256 && bits%8 == 0 {
			return Type{Kind: UintKind, Abbr: abbr}, nil
		}
	}

	if abbr == "uint" {
		return Uint, nil
	}

	return Unknown, UnsupportedTypeError.New("unsupported type %q in %q", abbr, p.s)
}
