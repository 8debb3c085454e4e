package factorial

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/zorak1103/fact/internal/errors"
)

func TestOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    int64
		expected int64
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 6},
		{4, 24},
		{5, 120},
		{10, 3628800},
		{12, 479001600},
		{20, 2432902008176640000},
	}

	for _, tc := range tests {
		got, err := Of(tc.input)
		require.NoError(t, err)
		if got != tc.expected {
			t.Errorf("Of(%d) = %d; expected %d", tc.input, got, tc.expected)
		}
	}
}

func TestCompute_RecursiveLaw(t *testing.T) {
	t.Parallel()

	tests := []struct {
		arithmetic Arithmetic
		upTo       int64
	}{
		{Int32, 12},
		{Int64, 20},
		{Big, 60},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.arithmetic), func(t *testing.T) {
			t.Parallel()

			c := New(WithArithmetic(tt.arithmetic))
			for n := int64(1); n <= tt.upTo; n++ {
				cur, err := c.Compute(n)
				require.NoError(t, err)
				prev, err := c.Compute(n - 1)
				require.NoError(t, err)

				want := new(big.Int).Mul(big.NewInt(n), prev.Big())
				assert.Equal(t, 0, want.Cmp(cur.Big()), "%d! != %d * %d!", n, n, n-1)
			}
		})
	}
}

func TestCompute_Idempotent(t *testing.T) {
	t.Parallel()

	c := New(WithArithmetic(Big))

	first, err := c.Compute(30)
	require.NoError(t, err)
	second, err := c.Compute(30)
	require.NoError(t, err)

	assert.Equal(t, first.String(), second.String())
	assert.Equal(t, "265252859812191058636308480000000", first.String())
}

func TestCompute_NegativeInput(t *testing.T) {
	t.Parallel()

	for _, a := range []Arithmetic{Int32, Int64, Big} {
		for _, p := range []OverflowPolicy{OverflowError, OverflowWrap} {
			_, err := New(WithArithmetic(a), WithOverflowPolicy(p)).Compute(-1)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrNegativeInput)

			var negErr *apperrors.NegativeInputError
			require.True(t, errors.As(err, &negErr))
			assert.Equal(t, int64(-1), negErr.N)
		}
	}
}

func TestCompute_OverflowBoundary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		arithmetic Arithmetic
		policy     OverflowPolicy
		input      int64
		want       string
		wantBits   int
	}{
		{name: "int32 last fit", arithmetic: Int32, policy: OverflowError, input: 12, want: "479001600"},
		{name: "int32 first overflow", arithmetic: Int32, policy: OverflowError, input: 13, wantBits: 32},
		{name: "int32 wraps 13", arithmetic: Int32, policy: OverflowWrap, input: 13, want: "1932053504"},
		{name: "int32 wraps 14", arithmetic: Int32, policy: OverflowWrap, input: 14, want: "1278945280"},
		{name: "int32 wraps to zero", arithmetic: Int32, policy: OverflowWrap, input: 34, want: "0"},
		{name: "int64 last fit", arithmetic: Int64, policy: OverflowError, input: 20, want: "2432902008176640000"},
		{name: "int64 first overflow", arithmetic: Int64, policy: OverflowError, input: 21, wantBits: 64},
		{name: "int64 wraps 21", arithmetic: Int64, policy: OverflowWrap, input: 21, want: "-4249290049419214848"},
		{name: "big never overflows", arithmetic: Big, policy: OverflowError, input: 25, want: "15511210043330985984000000"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v, err := New(WithArithmetic(tt.arithmetic), WithOverflowPolicy(tt.policy)).Compute(tt.input)
			if tt.wantBits != 0 {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrOverflow)

				var ovErr *apperrors.OverflowError
				require.True(t, errors.As(err, &ovErr))
				assert.Equal(t, tt.input, ovErr.N)
				assert.Equal(t, tt.wantBits, ovErr.Bits)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.String())
		})
	}
}

func TestCompute_MaxInput(t *testing.T) {
	t.Parallel()

	c := New(WithArithmetic(Big), WithMaxInput(50))
	assert.Equal(t, int64(50), c.MaxInput())

	_, err := c.Compute(50)
	require.NoError(t, err)

	_, err = c.Compute(51)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInputRange)

	var rangeErr *apperrors.InputRangeError
	require.True(t, errors.As(err, &rangeErr))
	assert.Equal(t, int64(51), rangeErr.N)
	assert.Equal(t, int64(50), rangeErr.Max)
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	c := New()
	assert.Equal(t, Int64, c.Arithmetic())
	assert.Equal(t, OverflowError, c.OverflowPolicy())
	assert.Equal(t, DefaultMaxInput, c.MaxInput())

	c = New(WithMaxInput(0))
	assert.Equal(t, DefaultMaxInput, c.MaxInput())
}

func TestValue_Int64(t *testing.T) {
	t.Parallel()

	small, err := New(WithArithmetic(Big)).Compute(20)
	require.NoError(t, err)
	got, ok := small.Int64()
	assert.True(t, ok)
	assert.Equal(t, int64(2432902008176640000), got)

	large, err := New(WithArithmetic(Big)).Compute(21)
	require.NoError(t, err)
	_, ok = large.Int64()
	assert.False(t, ok)
	assert.Equal(t, "51090942171709440000", large.String())
}

func TestParseArithmetic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Arithmetic
		wantErr bool
	}{
		{"int32", Int32, false},
		{"INT64", Int64, false},
		{" big ", Big, false},
		{"int16", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		tt := tt
		got, err := ParseArithmetic(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		assert.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseOverflowPolicy(t *testing.T) {
	t.Parallel()

	p, err := ParseOverflowPolicy("Wrap")
	require.NoError(t, err)
	assert.Equal(t, OverflowWrap, p)

	p, err = ParseOverflowPolicy("error")
	require.NoError(t, err)
	assert.Equal(t, OverflowError, p)

	_, err = ParseOverflowPolicy("saturate")
	assert.Error(t, err)
}

func TestArithmetic_Bits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 32, Int32.Bits())
	assert.Equal(t, 64, Int64.Bits())
	assert.Equal(t, 0, Big.Bits())
}
