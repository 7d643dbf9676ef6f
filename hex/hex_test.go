package hex_test

import (
	"fmt"
	"math"
	"math/big"
	"sync"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"github.com/mt-akar/web3util/hex"
)

func TestViews(t *testing.T) {
	type TC struct {
		name    string
		hex     *hex.Hex
		integer string
		text    string
		data    []byte
	}

	tcs := []TC{
		{
			name:    "int 285",
			hex:     hex.FromUint64(285),
			integer: "285",
			text:    "0x11d",
			data:    []byte{0x01, 0x1d},
		},
		{
			name:    "string 285",
			hex:     hex.MustFrom("0x11d"),
			integer: "285",
			text:    "0x11d",
			data:    []byte{0x01, 0x1d},
		},
		{
			name:    "bytes 285",
			hex:     hex.FromBytes([]byte{0x01, 0x1d}),
			integer: "285",
			text:    "0x11d",
			data:    []byte{0x01, 0x1d},
		},
		{
			name:    "padded string",
			hex:     hex.MustFrom("0x0014"),
			integer: "20",
			text:    "0x0014",
			data:    []byte{0x00, 0x14},
		},
		{
			name:    "padded bytes",
			hex:     hex.FromBytes([]byte{0x00, 0x14}),
			integer: "20",
			text:    "0x14",
			data:    []byte{0x00, 0x14},
		},
		{
			name:    "no prefix upper case",
			hex:     hex.MustFrom("ABCDEF"),
			integer: "11259375",
			text:    "0xabcdef",
			data:    []byte{0xab, 0xcd, 0xef},
		},
		{
			name:    "address",
			hex:     hex.MustFrom("0xdac17f958d2ee523a2206206994597c13d831ec7"),
			integer: "1248875146012964071876423320777688075155124985543",
			text:    "0xdac17f958d2ee523a2206206994597c13d831ec7",
			data:    []byte{218, 193, 127, 149, 141, 46, 229, 35, 162, 32, 98, 6, 153, 69, 151, 193, 61, 131, 30, 199},
		},
		{
			name:    "long zero padding",
			hex:     hex.MustFrom("0x000000000000000000000000000000000000000000000001"),
			integer: "1",
			text:    "0x000000000000000000000000000000000000000000000001",
			data:    append(make([]byte, 23), 1),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			require.Equal(t, tc.integer, tc.hex.Int().String())
			require.Equal(t, tc.text, tc.hex.HexString())
			require.Equal(t, tc.data, tc.hex.Bytes())
		})
	}
}

func TestZero(t *testing.T) {
	zeros := map[string]*hex.Hex{
		"int":      hex.FromUint64(0),
		"0x0":      hex.MustFrom("0x0"),
		"0":        hex.MustFrom("0"),
		"0x":       hex.MustFrom("0x"),
		"empty":    hex.FromBytes(nil),
		"zero val": &hex.Hex{},
	}

	for name, z := range zeros {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, 0, z.Int().Sign())
			require.Equal(t, "0x0", z.HexString())
			require.Equal(t, []byte{0}, z.Bytes())
		})
	}

	padded := hex.MustFrom("0x0000")
	require.Equal(t, 0, padded.Int().Sign())
	require.Equal(t, []byte{0, 0}, padded.Bytes())
	require.True(t, hex.MustFrom("0x000000000000000").Equal(0))
}

func TestInvalid(t *testing.T) {
	type TC struct {
		input string
		Mark  error
	}

	tcs := []TC{
		{"", oops.New("empty string is not zero")},
		{"123asd", oops.New("non hex letters")},
		{"0x0x0", oops.New("second prefix")},
		{"0.001", oops.New("decimal point")},
		{"0X14", oops.New("upper case prefix")},
		{" 0x14", oops.New("leading space")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%q", i, tc.input), func(t *testing.T) {
			_, err := hex.FromString(tc.input)
			require.Error(t, err, tc.Mark)
			require.True(t, hex.FormatError.Has(err), tc.Mark)
		})
	}

	t.Run("negative", func(t *testing.T) {
		_, err := hex.FromInt64(-1)
		require.True(t, hex.NegativeValueError.Has(err))

		_, err = hex.FromBigInt(big.NewInt(-20))
		require.True(t, hex.NegativeValueError.Has(err))

		_, err = hex.From(-5)
		require.True(t, hex.NegativeValueError.Has(err))
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := hex.From(1.5)
		require.True(t, hex.Error.Has(err))
	})
}

func TestEquality(t *testing.T) {
	h := hex.MustFrom("0x0014")

	require.True(t, h.Equal(hex.MustFrom("0x14")))
	require.True(t, h.Equal(hex.FromUint64(20)))
	require.True(t, h.Equal(20))
	require.True(t, h.Equal(uint8(20)))
	require.True(t, h.Equal(big.NewInt(20)))
	require.True(t, h.Equal("14"))
	require.True(t, h.Equal([]byte{0, 0, 20}))
	require.False(t, h.Equal(21))
	require.False(t, h.Equal("not hex"))
	require.False(t, h.Equal(20.0))

	require.Equal(t, hex.FromUint64(20).Key(), h.Key())
	require.Equal(t, "0x14", h.Key())

	set := map[string]bool{h.Key(): true}
	require.True(t, set[hex.FromBytes([]byte{20}).Key()])

	a, b := hex.FromUint64(834), hex.FromUint64(835)
	require.True(t, a.Lt(b))
	require.True(t, a.Lte(b))
	require.True(t, b.Gt(a))
	require.True(t, b.Gte(a))
	require.True(t, a.Lte(hex.MustFrom("0x0342")))
	require.Equal(t, -1, a.Cmp(b))

	c, err := a.Compare("0x343")
	require.NoError(t, err)
	require.Equal(t, -1, c)

	_, err = a.Compare(struct{}{})
	require.Error(t, err)
}

func TestArithmetic(t *testing.T) {
	h10 := hex.FromUint64(10)

	h20, err := h10.Add(h10)
	require.NoError(t, err)
	require.True(t, h20.Equal(20))

	h400, err := h20.Mul(h20)
	require.NoError(t, err)
	require.True(t, h400.Equal(400))

	h100, err := h400.Sub(hex.FromUint64(300))
	require.NoError(t, err)
	require.True(t, h100.Equal(100))

	h14, err := h100.Div(hex.FromUint64(7))
	require.NoError(t, err)
	require.True(t, h14.Equal(14))

	h2, err := h14.Mod(hex.FromUint64(3))
	require.NoError(t, err)
	require.True(t, h2.Equal(2))
	require.Equal(t, "0x2", h2.HexString())

	require.True(t, h2.Inc().Equal(3))

	h1, err := h2.Dec()
	require.NoError(t, err)
	require.True(t, h1.Equal(1))

	// Operands keep their views.
	padded := hex.MustFrom("0x000a")
	sum, err := padded.Add(padded)
	require.NoError(t, err)
	require.Equal(t, "0x000a", padded.HexString())
	require.Equal(t, "0x14", sum.HexString())

	_, err = h10.Sub(h20)
	require.True(t, hex.NegativeValueError.Has(err))

	_, err = hex.FromUint64(0).Dec()
	require.True(t, hex.NegativeValueError.Has(err))

	_, err = h10.Div(hex.FromUint64(0))
	require.True(t, hex.DivisionByZeroError.Has(err))

	_, err = h10.Mod(hex.MustFrom("0x"))
	require.True(t, hex.DivisionByZeroError.Has(err))
}

func TestNarrowing(t *testing.T) {
	two64 := new(big.Int).Lsh(big.NewInt(1), 64)

	big64, err := hex.FromBigInt(two64)
	require.NoError(t, err)

	_, err = big64.Uint64()
	require.True(t, hex.OverflowError.Has(err))

	max64, err := hex.FromBigInt(new(big.Int).Sub(two64, big.NewInt(1)))
	require.NoError(t, err)

	u64, err := max64.Uint64()
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint64), u64)

	_, err = max64.Int64()
	require.True(t, hex.OverflowError.Has(err))

	u8, err := hex.FromUint64(255).Uint8()
	require.NoError(t, err)
	require.Equal(t, uint8(255), u8)

	_, err = hex.FromUint64(256).Uint8()
	require.True(t, hex.OverflowError.Has(err))

	i8, err := hex.FromUint64(127).Int8()
	require.NoError(t, err)
	require.Equal(t, int8(127), i8)

	_, err = hex.FromUint64(128).Int8()
	require.True(t, hex.OverflowError.Has(err))

	u16, err := hex.MustFrom("0xffff").Uint16()
	require.NoError(t, err)
	require.Equal(t, uint16(math.MaxUint16), u16)

	_, err = hex.MustFrom("0x10000").Uint16()
	require.True(t, hex.OverflowError.Has(err))

	_, err = hex.MustFrom("0x8000").Int16()
	require.True(t, hex.OverflowError.Has(err))

	u32, err := hex.FromUint64(math.MaxUint32).Uint32()
	require.NoError(t, err)
	require.Equal(t, uint32(math.MaxUint32), u32)

	_, err = hex.FromUint64(math.MaxUint32 + 1).Uint32()
	require.True(t, hex.OverflowError.Has(err))

	_, err = hex.FromUint64(math.MaxInt32 + 1).Int32()
	require.True(t, hex.OverflowError.Has(err))

	n, err := hex.MustFrom("0x11d").IntValue()
	require.NoError(t, err)
	require.Equal(t, 285, n)

	u, err := hex.MustFrom("0x11d").Uint()
	require.NoError(t, err)
	require.Equal(t, uint(285), u)
}

func TestFormat(t *testing.T) {
	n, ok := new(big.Int).SetString("834772059474377393", 10)
	require.True(t, ok)

	h, err := hex.FromBigInt(n)
	require.NoError(t, err)

	require.Equal(t, "0xb95b4c3e9643ab1", h.String())
	require.Equal(t, "0xb95b4c3e9643ab1", fmt.Sprintf("%s", h))
	require.Equal(t, "0xb95b4c3e9643ab1", fmt.Sprintf("%v", h))
	require.Equal(t, `"0xb95b4c3e9643ab1"`, fmt.Sprintf("%q", h))
	require.Equal(t, "834772059474377393", fmt.Sprintf("%d", h))
	require.Equal(t, "b95b4c3e9643ab1", fmt.Sprintf("%x", h))
	require.Equal(t, "B95B4C3E9643AB1", fmt.Sprintf("%X", h))
	require.Equal(t, "0b95b4c3e9643ab1", fmt.Sprintf("%016x", h))

	var nilHex *hex.Hex
	require.Equal(t, "<nil>", nilHex.String())
}

func TestDecimal(t *testing.T) {
	type TC struct {
		text  string
		scale uint
		value string
		out   string
	}

	tcs := []TC{
		{"1.5", 18, "1500000000000000000", "1.500000000000000000"},
		{"0.005", 3, "5", "0.005"},
		{".5", 1, "5", "0.5"},
		{"42", 0, "42", "42"},
		{"42.", 2, "4200", "42.00"},
		{"0", 6, "0", "0.000000"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s/%d", i, tc.text, tc.scale), func(t *testing.T) {
			h, err := hex.ParseDecimal(tc.text, tc.scale)
			require.NoError(t, err)
			require.Equal(t, tc.value, h.Int().String())
			require.Equal(t, tc.out, h.Decimal(tc.scale))
		})
	}

	_, err := hex.ParseDecimal("0.0051", 3)
	require.True(t, hex.FormatError.Has(err))

	_, err = hex.ParseDecimal("1e5", 0)
	require.True(t, hex.FormatError.Has(err))

	_, err = hex.ParseDecimal(".", 2)
	require.True(t, hex.FormatError.Has(err))

	_, err = hex.ParseDecimal("-1", 0)
	require.True(t, hex.NegativeValueError.Has(err))
}

func TestWithViews(t *testing.T) {
	h := hex.MustFrom("0x0014")

	other := h.WithBytes([]byte{0, 0, 1})
	require.Equal(t, "0x0014", h.HexString())
	require.True(t, other.Equal(1))

	other, err := h.WithString("0xff")
	require.NoError(t, err)
	require.True(t, other.Equal(255))
	require.True(t, h.Equal(20))

	other, err = h.WithInt(big.NewInt(7))
	require.NoError(t, err)
	require.Equal(t, "0x7", other.HexString())

	_, err = h.WithInt(big.NewInt(-7))
	require.True(t, hex.NegativeValueError.Has(err))
}

func TestJSON(t *testing.T) {
	json := jsoniter.ConfigCompatibleWithStandardLibrary

	type Balance struct {
		Account *hex.Hex `json:"account"`
		Wei     *hex.Hex `json:"wei"`
	}

	in := Balance{
		Account: hex.MustFrom("0xdac17f958d2ee523a2206206994597c13d831ec7"),
		Wei:     hex.MustFrom("0x0014"),
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"account": "0xdac17f958d2ee523a2206206994597c13d831ec7",
		"wei": "0x0014"
	}`, string(data))

	var out Balance
	err = json.Unmarshal(data, &out)
	require.NoError(t, err, spew.Sdump(data))
	require.True(t, out.Wei.Equal(20))
	require.Equal(t, "0x0014", out.Wei.HexString())
	require.True(t, out.Account.Equal(in.Account))

	err = json.Unmarshal([]byte(`{"wei": "0x0x1"}`), &out)
	require.Error(t, err)
}

func TestKeccak256(t *testing.T) {
	require.Equal(t,
		"0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
		hex.BytesToString(hex.Keccak256(), true, false),
	)

	digest := hex.MustFrom("0x68656c6c6f").Keccak256()
	require.Equal(t,
		"0x1c8aff950685c2ed4bc3174f3472287b56d9517b9c948127319a09a7a36deac8",
		digest.HexString(),
	)
	require.Len(t, digest.Bytes(), 32)
}

func TestConcurrentReads(t *testing.T) {
	h := hex.MustFrom("0x00dac17f958d2ee523a2206206994597c13d831ec")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_ = h.Int()
			_ = h.Bytes()
			_ = h.HexString()
		}()
	}
	wg.Wait()

	require.Equal(t, "78054696625810254492276457548605504697195311596", h.Int().String())
}

func TestReturnedViewsAreCopies(t *testing.T) {
	h := hex.FromBytes([]byte{1, 2})

	data := h.Bytes()
	data[0] = 9
	require.Equal(t, []byte{1, 2}, h.Bytes())

	n := h.Int()
	n.SetInt64(5)
	require.True(t, h.Equal(0x0102))
}
