package abi

import (
	"bytes"
	stdhex "encoding/hex"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/mt-akar/web3util/hex"
)

// Encoder writes tuples in the head/tail layout.
type Encoder interface {
	// Encode writes values as one tuple.
	Encode(values ...Value) (err error)

	// EncodeCall writes selector verbatim followed by values as one tuple.
	// The selector is not part of any offset.
	EncodeCall(selector []byte, values ...Value) (err error)
}

type encoder struct {
	w      io.Writer
	config Config
}

// NewEncoder returns an encoder writing to w with the default Config.
func NewEncoder(w io.Writer) Encoder {
	return NewEncoderConfig(w, Config{})
}

// NewEncoderConfig returns an encoder writing to w.
func NewEncoderConfig(w io.Writer, config Config) Encoder {
	return &encoder{
		w:      w,
		config: config,
	}
}

func (e *encoder) Encode(values ...Value) (err error) {
	return e.EncodeCall(nil, values...)
}

func (e *encoder) EncodeCall(selector []byte, values ...Value) (err error) {
	data, err := e.tuple(values, 1)
	if err != nil {
		return err
	}

	if len(selector) > 0 {
		_, err = e.w.Write(selector)
		if err != nil {
			return Error.Wrap(err)
		}
	}

	_, err = e.w.Write(data)
	if err != nil {
		return Error.Wrap(err)
	}

	return nil
}

// tuple encodes items as a head of one word per item followed by the tail
// holding the content of the dynamic items. Offsets are relative to the start
// of the head.
func (e *encoder) tuple(items []Value, depth int) (data []byte, err error) {
	if depth > e.config.maxDepth() {
		return nil, DepthError.New("nesting deeper than %d", e.config.maxDepth())
	}

	headSize := len(items) * WordSize

	head := make([]byte, 0, headSize)
	tail := []byte{}

	for i, item := range items {
		var word []byte

		switch v := item.(type) {
		case nil:
			word = zeroWord
		case UintValue:
			if v.Value == nil {
				word = zeroWord
				break
			}

			word, err = uintWord(v.Value.Int())
			if err != nil {
				return nil, err
			}
		case BoolValue:
			word = boolWord(v.Value)
		case StringValue, BytesValue, TupleValue, ArrayValue:
			offset := headSize + len(tail)
			word = intWord(offset)

			content, err := e.dynamic(v, depth)
			if err != nil {
				return nil, err
			}

			Logger().Debug("abi: encode dynamic",
				zap.Int("depth", depth),
				zap.Int("index", i),
				zap.Stringer("type", v.Type()),
				zap.Int("offset", offset),
				zap.Int("size", len(content)),
			)

			tail = append(tail, content...)
		default:
			return nil, UnsupportedTypeError.New("cannot encode %T", item)
		}

		head = append(head, word...)
	}

	return append(head, tail...), nil
}

func (e *encoder) dynamic(v Value, depth int) (data []byte, err error) {
	switch v := v.(type) {
	case StringValue:
		return packed([]byte(v.Value)), nil
	case BytesValue:
		return packed(v.Value), nil
	case TupleValue:
		return e.tuple(v.Items, depth+1)
	case ArrayValue:
		if v.Elem.Kind != InvalidKind {
			for i, item := range v.Items {
				if item != nil && !v.Elem.accepts(item.Type()) {
					return nil, UnsupportedTypeError.New(
						"item %d of %s array is %s",
						i,
						v.Elem,
						item.Type(),
					)
				}
			}
		}

		body, err := e.tuple(v.Items, depth+1)
		if err != nil {
			return nil, err
		}

		return append(intWord(len(v.Items)), body...), nil
	}

	return nil, UnsupportedTypeError.New("%T is not dynamic", v)
}

// Encode returns values encoded as one tuple.
func Encode(values ...Value) ([]byte, error) {
	return EncodeCall(nil, values...)
}

// EncodeCall returns selector followed by values encoded as one tuple.
func EncodeCall(selector []byte, values ...Value) ([]byte, error) {
	buf := bytes.NewBuffer(nil)

	err := NewEncoder(buf).EncodeCall(selector, values...)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// EncodeMethod prefixes the encoded values with the selector of signature,
// e.g. "transfer(address,uint256)".
func EncodeMethod(signature string, values ...Value) ([]byte, error) {
	return EncodeCall(Selector(signature), values...)
}

// EncodeHex returns values encoded as one tuple in 0x-prefixed hex.
func EncodeHex(values ...Value) (string, error) {
	return EncodeCallHex("", values...)
}

// EncodeCallHex returns "0x", the selector digits and the hex of the encoded
// values. The selector may carry its own 0x prefix; it is not validated.
func EncodeCallHex(selector string, values ...Value) (string, error) {
	data, err := Encode(values...)
	if err != nil {
		return "", err
	}

	return "0x" + strings.TrimPrefix(selector, "0x") + stdhex.EncodeToString(data), nil
}

// EncodeObjects lifts objects with ValueOf and encodes them as one tuple in
// 0x-prefixed hex.
func EncodeObjects(objects ...any) (string, error) {
	return EncodeObjectsCall("", objects...)
}

// EncodeObjectsCall is EncodeObjects with a selector prefix, see
// EncodeCallHex.
func EncodeObjectsCall(selector string, objects ...any) (string, error) {
	values, err := ValuesOf(objects...)
	if err != nil {
		return "", err
	}

	return EncodeCallHex(selector, values...)
}

// EncodeHexValue is a shorthand for encoding a single unsigned integer.
func EncodeHexValue(h *hex.Hex) (string, error) {
	return EncodeHex(UintValue{Value: h})
}
