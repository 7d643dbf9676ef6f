package abi

import (
	stdhex "encoding/hex"
	"math/big"
	"reflect"
	"strings"

	"go.uber.org/zap"

	"github.com/mt-akar/web3util/hex"
)

// Decoder reads tuples laid out by an Encoder.
type Decoder interface {
	// Decode reads a tuple whose fields have the given types, starting at
	// the beginning of the data.
	Decode(shape ...Type) (_ TupleValue, err error)

	// Depth returns the number of regions currently being decoded.
	Depth() int

	// Stack returns the regions currently being decoded.
	Stack() Stack
}

type decoder struct {
	data   []byte
	config Config
	stack  *Stack

	// budget is the number of fields the current Decode may still read.
	budget int
}

// NewDecoder returns a decoder over data with the default Config. Data must
// not include a selector.
func NewDecoder(data []byte) Decoder {
	return NewDecoderConfig(data, Config{})
}

// NewDecoderConfig returns a decoder over data.
func NewDecoderConfig(data []byte, config Config) Decoder {
	return &decoder{
		data:   data,
		config: config,
		stack:  &Stack{},
	}
}

func (d *decoder) Depth() int {
	return len(*d.stack)
}

func (d *decoder) Stack() Stack {
	return *d.stack
}

func (d *decoder) Decode(shape ...Type) (_ TupleValue, err error) {
	d.budget = d.config.maxElements(len(d.data))

	items, err := d.tuple(TupleOf(shape...), 0)
	if err != nil {
		return TupleValue{}, err
	}

	return TupleValue{Items: items}, nil
}

// tuple reads the fields of t from the region starting at base.
func (d *decoder) tuple(t Type, base int) (items []Value, err error) {
	if d.Depth() >= d.config.maxDepth() {
		return nil, DepthError.New("nesting deeper than %d", d.config.maxDepth())
	}

	frame := &Frame{Type: t, Base: base}
	d.stack.Push(frame)
	defer func() {
		perr := d.stack.Pop()
		if err == nil {
			err = perr
		}
	}()

	if len(t.Fields) > d.budget {
		return nil, ElementLimitError.New(
			"%d more fields at %d exceed the limit of %d (path %v)",
			len(t.Fields),
			base,
			d.config.maxElements(len(d.data)),
			d.stack.Path(),
		)
	}
	d.budget -= len(t.Fields)

	items = make([]Value, len(t.Fields))
	for i, f := range t.Fields {
		frame.Index = i

		items[i], err = d.field(f, base+i*WordSize, base)
		if err != nil {
			return nil, err
		}
	}

	return items, nil
}

// field reads a value of type t whose head word is at pos.
func (d *decoder) field(t Type, pos, base int) (v Value, err error) {
	word, err := d.word(pos)
	if err != nil {
		return nil, err
	}

	switch t.Kind {
	case UintKind:
		return UintValue{Value: hex.FromBytes(trimWord(word))}, nil
	case BoolKind:
		return BoolValue{Value: word[WordSize-1] != 0}, nil
	case StringKind, BytesKind, TupleKind, ArrayKind:
	default:
		return nil, UnimplementedError.New("cannot decode %s (kind %d)", t, t.Kind)
	}

	start, err := d.offset(word, base)
	if err != nil {
		return nil, err
	}

	Logger().Debug("abi: decode dynamic",
		zap.Int("depth", d.Depth()),
		zap.Ints("path", d.stack.Path()),
		zap.Stringer("type", t),
		zap.Int("head", pos),
		zap.Int("start", start),
	)

	switch t.Kind {
	case StringKind:
		data, err := d.packed(start)
		if err != nil {
			return nil, err
		}
		return StringValue{Value: string(data)}, nil
	case BytesKind:
		data, err := d.packed(start)
		if err != nil {
			return nil, err
		}
		return BytesValue{Value: data}, nil
	case TupleKind:
		items, err := d.tuple(t, start)
		if err != nil {
			return nil, err
		}
		return TupleValue{Items: items}, nil
	}

	return d.array(t, start)
}

// array reads a length word at start followed by a region of that many
// elements.
func (d *decoder) array(t Type, start int) (v Value, err error) {
	if t.Elem == nil {
		return nil, UnimplementedError.New("array without element type")
	}

	n, err := d.length(start)
	if err != nil {
		return nil, err
	}

	// Every element takes at least its head word.
	if n > (len(d.data)-start-WordSize)/WordSize {
		return nil, TruncatedDataError.New(
			"array of %d elements at %d exceeds %d bytes",
			n,
			start,
			len(d.data),
		)
	}

	fields := make([]Type, n)
	for i := range fields {
		fields[i] = *t.Elem
	}

	items, err := d.tuple(TupleOf(fields...), start+WordSize)
	if err != nil {
		return nil, err
	}

	return ArrayValue{Elem: *t.Elem, Items: items}, nil
}

// word returns the word at pos.
func (d *decoder) word(pos int) ([]byte, error) {
	if pos < 0 || pos > len(d.data)-WordSize {
		return nil, TruncatedDataError.New(
			"word at %d exceeds %d bytes (path %v)",
			pos,
			len(d.data),
			d.stack.Path(),
		)
	}

	return d.data[pos : pos+WordSize], nil
}

// offset converts an offset word relative to base into an absolute position.
func (d *decoder) offset(word []byte, base int) (int, error) {
	off := new(big.Int).SetBytes(word)
	if !off.IsInt64() || off.Int64() > int64(len(d.data)-base) {
		return 0, TruncatedDataError.New(
			"offset %s from %d exceeds %d bytes",
			off,
			base,
			len(d.data),
		)
	}

	return base + int(off.Int64()), nil
}

// length reads the length word at pos. Lengths beyond the data are rejected.
func (d *decoder) length(pos int) (int, error) {
	word, err := d.word(pos)
	if err != nil {
		return 0, err
	}

	n := new(big.Int).SetBytes(word)
	if !n.IsInt64() || n.Int64() > int64(len(d.data)) {
		return 0, TruncatedDataError.New("length %s at %d exceeds %d bytes", n, pos, len(d.data))
	}

	return int(n.Int64()), nil
}

// packed reads a length word at pos and returns the bytes that follow it.
func (d *decoder) packed(pos int) ([]byte, error) {
	n, err := d.length(pos)
	if err != nil {
		return nil, err
	}

	start := pos + WordSize
	if n > len(d.data)-start {
		return nil, TruncatedDataError.New(
			"%d bytes at %d exceed %d bytes",
			n,
			start,
			len(d.data),
		)
	}

	data := make([]byte, n)
	copy(data, d.data[start:])

	return data, nil
}

// trimWord drops leading zero bytes, keeping at least one.
func trimWord(word []byte) []byte {
	for len(word) > 1 && word[0] == 0 {
		word = word[1:]
	}

	return word
}

// ParseData converts 0x-prefixed or bare hex text into bytes.
func ParseData(text string) ([]byte, error) {
	digits := strings.TrimPrefix(text, "0x")

	data, err := stdhex.DecodeString(digits)
	if err != nil {
		return nil, hex.FormatError.New("invalid data %q: %v", text, err)
	}

	return data, nil
}

// DecodeShape decodes hex text into a tuple of the given field types.
func DecodeShape(text string, shape ...Type) (TupleValue, error) {
	data, err := ParseData(text)
	if err != nil {
		return TupleValue{}, err
	}

	return NewDecoder(data).Decode(shape...)
}

// DecodeHex decodes the unsigned integer in the first word of text.
func DecodeHex(text string) (*hex.Hex, error) {
	var h *hex.Hex

	err := DecodeInto(text, &h)
	if err != nil {
		return nil, err
	}

	return h, nil
}

// DecodeString decodes the string whose offset is in the first word of text.
func DecodeString(text string) (string, error) {
	var s string

	err := DecodeInto(text, &s)
	return s, err
}

// DecodeBool decodes the boolean in the first word of text.
func DecodeBool(text string) (bool, error) {
	var b bool

	err := DecodeInto(text, &b)
	return b, err
}

// DecodeBytes decodes the byte sequence whose offset is in the first word of
// text.
func DecodeBytes(text string) ([]byte, error) {
	var b []byte

	err := DecodeInto(text, &b)
	return b, err
}

// DecodeInto decodes text as a tuple with one field per target and stores the
// fields in the targets. Targets may be **hex.Hex, *bool, *string, *[]byte,
// *[]*hex.Hex, *[]bool, *[]string or *[][]byte, and must not be nil.
func DecodeInto(text string, targets ...any) (err error) {
	shape := make([]Type, len(targets))
	for i, target := range targets {
		shape[i], err = targetType(target)
		if err != nil {
			return err
		}
	}

	tuple, err := DecodeShape(text, shape...)
	if err != nil {
		return err
	}

	for i, target := range targets {
		assign(target, tuple.Items[i])
	}

	return nil
}

func targetType(target any) (Type, error) {
	if v := reflect.ValueOf(target); v.Kind() == reflect.Pointer && v.IsNil() {
		return Unknown, Error.New("nil target %T", target)
	}

	switch target.(type) {
	case **hex.Hex:
		return Uint, nil
	case *bool:
		return Bool, nil
	case *string:
		return String, nil
	case *[]byte:
		return Bytes, nil
	case *[]*hex.Hex:
		return ArrayOf(Uint), nil
	case *[]bool:
		return ArrayOf(Bool), nil
	case *[]string:
		return ArrayOf(String), nil
	case *[][]byte:
		return ArrayOf(Bytes), nil
	}

	return Unknown, UnsupportedTypeError.New("cannot decode into %T", target)
}

// assign stores v in target. The shape was derived from target, so v always
// has the matching variant.
func assign(target any, v Value) {
	switch t := target.(type) {
	case **hex.Hex:
		*t = v.(UintValue).Value
	case *bool:
		*t = v.(BoolValue).Value
	case *string:
		*t = v.(StringValue).Value
	case *[]byte:
		*t = v.(BytesValue).Value
	case *[]*hex.Hex:
		items := v.(ArrayValue).Items
		*t = make([]*hex.Hex, len(items))
		for i, item := range items {
			(*t)[i] = item.(UintValue).Value
		}
	case *[]bool:
		items := v.(ArrayValue).Items
		*t = make([]bool, len(items))
		for i, item := range items {
			(*t)[i] = item.(BoolValue).Value
		}
	case *[]string:
		items := v.(ArrayValue).Items
		*t = make([]string, len(items))
		for i, item := range items {
			(*t)[i] = item.(StringValue).Value
		}
	case *[][]byte:
		items := v.(ArrayValue).Items
		*t = make([][]byte, len(items))
		for i, item := range items {
			(*t)[i] = item.(BytesValue).Value
		}
	}
}
