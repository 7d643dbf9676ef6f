package abi

import (
	"math/big"
	"reflect"

	"github.com/mt-akar/web3util/hex"
)

// Value is one of UintValue, BoolValue, StringValue, BytesValue, TupleValue or
// ArrayValue. A nil Value inside a tuple or array is encoded as a zero word.
type Value interface {
	Type() Type

	value()
}

// UintValue is an unsigned integer of at most 256 bits.
type UintValue struct {
	Value *hex.Hex
}

// BoolValue is a boolean, encoded as 0 or 1.
type BoolValue struct {
	Value bool
}

// StringValue is text, encoded as its UTF-8 bytes.
type StringValue struct {
	Value string
}

// BytesValue is a raw byte sequence.
type BytesValue struct {
	Value []byte
}

// TupleValue is an ordered list of heterogeneous values.
type TupleValue struct {
	Items []Value
}

// ArrayValue is a variable length list of values of the same type. When Elem
// is set the encoder rejects items of another type; when it is not, items are
// encoded as given.
type ArrayValue struct {
	Elem  Type
	Items []Value
}

func (UintValue) value()   {}
func (BoolValue) value()   {}
func (StringValue) value() {}
func (BytesValue) value()  {}
func (TupleValue) value()  {}
func (ArrayValue) value()  {}

func (UintValue) Type() Type   { return Uint }
func (BoolValue) Type() Type   { return Bool }
func (StringValue) Type() Type { return String }
func (BytesValue) Type() Type  { return Bytes }

func (v TupleValue) Type() Type {
	fields := make([]Type, len(v.Items))
	for i, item := range v.Items {
		if item != nil {
			fields[i] = item.Type()
		}
	}

	return TupleOf(fields...)
}

func (v ArrayValue) Type() Type {
	if v.Elem.Kind == InvalidKind {
		for _, item := range v.Items {
			if item != nil {
				return ArrayOf(item.Type())
			}
		}
	}

	return ArrayOf(v.Elem)
}

// NewUint returns a UintValue holding n.
func NewUint(n uint64) UintValue {
	return UintValue{Value: hex.FromUint64(n)}
}

// Tuple returns a TupleValue of the items.
func Tuple(items ...Value) TupleValue {
	return TupleValue{Items: items}
}

// Array returns an ArrayValue of the items.
func Array(elem Type, items ...Value) ArrayValue {
	return ArrayValue{Elem: elem, Items: items}
}

// ValueOf lifts a Go value into a Value. Integers of any builtin width,
// *big.Int and *hex.Hex become UintValue; bool, string and []byte map to
// their variants. Fixed size byte arrays such as [20]byte addresses and
// [32]byte hashes are big-endian integers and become UintValue. Other slices
// and arrays become ArrayValue. A nil interface or pointer is the nil Value,
// and other pointers are followed.
func ValueOf(v any) (Value, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case Value:
		return v, nil
	case *hex.Hex:
		if v == nil {
			return nil, nil
		}
		return UintValue{Value: v}, nil
	case *big.Int:
		if v == nil {
			return nil, nil
		}
		h, err := hex.FromBigInt(v)
		if err != nil {
			return nil, err
		}
		return UintValue{Value: h}, nil
	case bool:
		return BoolValue{Value: v}, nil
	case string:
		return StringValue{Value: v}, nil
	case []byte:
		return BytesValue{Value: v}, nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, big.Int:
		h, err := hex.From(v)
		if err != nil {
			return nil, err
		}
		return UintValue{Value: h}, nil
	case []any:
		return arrayOf(len(v), func(i int) any { return v[i] })
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return nil, nil
		}
		return ValueOf(rv.Elem().Interface())
	case reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			data := make([]byte, rv.Len())
			for i := range data {
				data[i] = byte(rv.Index(i).Uint())
			}
			return UintValue{Value: hex.FromBytes(data)}, nil
		}
		return arrayOf(rv.Len(), func(i int) any { return rv.Index(i).Interface() })
	case reflect.Slice:
		return arrayOf(rv.Len(), func(i int) any { return rv.Index(i).Interface() })
	}

	return nil, UnsupportedTypeError.New("cannot encode %T", v)
}

// ValuesOf lifts every element with ValueOf.
func ValuesOf(objects ...any) ([]Value, error) {
	values := make([]Value, len(objects))
	for i, o := range objects {
		v, err := ValueOf(o)
		if err != nil {
			return nil, err
		}

		values[i] = v
	}

	return values, nil
}

func arrayOf(n int, index func(int) any) (Value, error) {
	a := ArrayValue{Items: make([]Value, n)}
	for i := 0; i < n; i++ {
		item, err := ValueOf(index(i))
		if err != nil {
			return nil, err
		}

		a.Items[i] = item
	}

	return a, nil
}
