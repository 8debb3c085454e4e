// Package factorial computes n! by direct recursion over a selectable integer representation.
package factorial

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	apperrors "github.com/zorak1103/fact/internal/errors"
)

// DefaultMaxInput bounds recursion depth when no other ceiling is configured.
const DefaultMaxInput int64 = 10000

// Arithmetic selects the integer representation of the result.
type Arithmetic string

// Supported arithmetic modes.
const (
	Int32 Arithmetic = "int32"
	Int64 Arithmetic = "int64"
	Big   Arithmetic = "big"
)

// Bits returns the width of fixed-size arithmetic, or 0 for Big.
func (a Arithmetic) Bits() int {
	switch a {
	case Int32:
		return 32
	case Int64:
		return 64
	default:
		return 0
	}
}

// ParseArithmetic converts a configuration value into an Arithmetic.
func ParseArithmetic(s string) (Arithmetic, error) {
	switch a := Arithmetic(strings.ToLower(strings.TrimSpace(s))); a {
	case Int32, Int64, Big:
		return a, nil
	default:
		return "", fmt.Errorf("unknown arithmetic %q (expected int32, int64 or big)", s)
	}
}

// OverflowPolicy decides what happens when a fixed-width result leaves its range.
type OverflowPolicy string

// Supported overflow policies.
const (
	OverflowError OverflowPolicy = "error"
	OverflowWrap  OverflowPolicy = "wrap"
)

// ParseOverflowPolicy converts a configuration value into an OverflowPolicy.
func ParseOverflowPolicy(s string) (OverflowPolicy, error) {
	switch p := OverflowPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case OverflowError, OverflowWrap:
		return p, nil
	default:
		return "", fmt.Errorf("unknown overflow policy %q (expected error or wrap)", s)
	}
}

// Value is the result of a factorial computation.
type Value struct {
	fixed int64
	big   *big.Int
}

// String returns the decimal representation of the value.
func (v Value) String() string {
	if v.big != nil {
		return v.big.String()
	}
	return strconv.FormatInt(v.fixed, 10)
}

// Int64 returns the value as an int64 and whether it fits.
func (v Value) Int64() (int64, bool) {
	if v.big != nil {
		if !v.big.IsInt64() {
			return 0, false
		}
		return v.big.Int64(), true
	}
	return v.fixed, true
}

// Big returns a copy of the value as a big.Int.
func (v Value) Big() *big.Int {
	if v.big != nil {
		return new(big.Int).Set(v.big)
	}
	return big.NewInt(v.fixed)
}

// Computer evaluates factorials. It keeps no state between calls.
type Computer struct {
	arithmetic Arithmetic
	overflow   OverflowPolicy
	maxInput   int64
}

// Option configures a Computer.
type Option func(*Computer)

// WithArithmetic selects the result representation.
func WithArithmetic(a Arithmetic) Option {
	return func(c *Computer) { c.arithmetic = a }
}

// WithOverflowPolicy selects the overflow behavior for fixed-width arithmetic.
func WithOverflowPolicy(p OverflowPolicy) Option {
	return func(c *Computer) { c.overflow = p }
}

// WithMaxInput sets the largest accepted n. Values below 1 keep the default.
func WithMaxInput(maxInput int64) Option {
	return func(c *Computer) {
		if maxInput >= 1 {
			c.maxInput = maxInput
		}
	}
}

// New returns a Computer using int64 arithmetic, the error overflow policy and
// DefaultMaxInput unless overridden by opts.
func New(opts ...Option) *Computer {
	c := &Computer{
		arithmetic: Int64,
		overflow:   OverflowError,
		maxInput:   DefaultMaxInput,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Arithmetic returns the configured arithmetic.
func (c *Computer) Arithmetic() Arithmetic {
	return c.arithmetic
}

// OverflowPolicy returns the configured overflow policy.
func (c *Computer) OverflowPolicy() OverflowPolicy {
	return c.overflow
}

// MaxInput returns the largest n the computer accepts.
func (c *Computer) MaxInput() int64 {
	if c.arithmetic == Int32 && c.maxInput > math.MaxInt32 {
		return math.MaxInt32
	}
	return c.maxInput
}

// Compute returns n!.
// Negative n and n above MaxInput are rejected before recursion starts.
func (c *Computer) Compute(n int64) (Value, error) {
	if n < 0 {
		return Value{}, &apperrors.NegativeInputError{N: n}
	}
	if maxInput := c.MaxInput(); n > maxInput {
		return Value{}, &apperrors.InputRangeError{N: n, Max: maxInput}
	}

	wrap := c.overflow == OverflowWrap

	switch c.arithmetic {
	case Int32:
		v, ok := recurse32(int32(n), wrap)
		if !ok {
			return Value{}, &apperrors.OverflowError{N: n, Bits: 32}
		}
		return Value{fixed: int64(v)}, nil
	case Int64:
		v, ok := recurse64(n, wrap)
		if !ok {
			return Value{}, &apperrors.OverflowError{N: n, Bits: 64}
		}
		return Value{fixed: v}, nil
	case Big:
		return Value{big: recurseBig(n)}, nil
	default:
		return Value{}, fmt.Errorf("unsupported arithmetic %q", c.arithmetic)
	}
}

// Of returns n! using int64 arithmetic and the error overflow policy.
func Of(n int64) (int64, error) {
	v, err := New().Compute(n)
	if err != nil {
		return 0, err
	}
	r, _ := v.Int64()
	return r, nil
}

// recurse32 reports false once a product leaves the int32 range, unless wrap is set.
func recurse32(n int32, wrap bool) (int32, bool) {
	if n == 0 {
		return 1, true
	}
	prev, ok := recurse32(n-1, wrap)
	if !ok {
		return 0, false
	}
	if !wrap && prev > math.MaxInt32/n {
		return 0, false
	}
	return n * prev, true
}

func recurse64(n int64, wrap bool) (int64, bool) {
	if n == 0 {
		return 1, true
	}
	prev, ok := recurse64(n-1, wrap)
	if !ok {
		return 0, false
	}
	if !wrap && prev > math.MaxInt64/n {
		return 0, false
	}
	return n * prev, true
}

func recurseBig(n int64) *big.Int {
	if n == 0 {
		return big.NewInt(1)
	}
	prev := recurseBig(n - 1)
	return prev.Mul(prev, big.NewInt(n))
}
