// Copyright 2025 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package amount implements exact arithmetic on account balances.
//
// Balances are held in raw units, the smallest indivisible unit of the
// ledger. One display unit (NANO) is 10^30 raw. Values routinely exceed
// 2^128 during intermediate arithmetic, so everything is backed by big.Int.
package amount

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

const (
	// RawDecimals is the power of ten between raw and display units
	RawDecimals = 30

	// DisplayDecimals is the maximum number of fractional digits rendered
	// for display amounts
	DisplayDecimals = 5
)

var (
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrDivisionByZero = errors.New("division by zero")

	rawPerUnit        = new(big.Int).Exp(big.NewInt(10), big.NewInt(RawDecimals), nil)
	displayScale      = new(big.Int).Exp(big.NewInt(10), big.NewInt(DisplayDecimals), nil)
	displayRoundingUp = new(big.Int).Rsh(rawPerUnit, 1)
)

// Amount is a balance in raw units. The zero value is a zero balance.
// Amounts are immutable: every operation returns a new value.
type Amount struct {
	raw *big.Int
}

// Zero returns a zero amount
func Zero() Amount {
	return Amount{raw: new(big.Int)}
}

// FromRaw parses a base-10 numeral of any length in raw units. There is no
// sign and no fractional part. Anything unparsable yields a zero amount, so
// FromRaw must not be used to validate user input.
func FromRaw(s string) Amount {
	if !isDigits(s) {
		return Zero()
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Zero()
	}
	return Amount{raw: v}
}

// FromRawUint64 returns an amount of v raw
func FromRawUint64(v uint64) Amount {
	return Amount{raw: new(big.Int).SetUint64(v)}
}

// FromBigInt returns an amount of v raw. The value is copied.
func FromBigInt(v *big.Int) Amount {
	if v == nil {
		return Zero()
	}
	return Amount{raw: new(big.Int).Set(v)}
}

// FromDisplay converts a display unit value to raw. The shortest decimal
// representation of f is used, so FromDisplay(1.8) is exactly 1.8 * 10^30
// raw. NaN, infinite and negative values yield zero.
func FromDisplay(f float64) Amount {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return Zero()
	}
	ret, err := ParseDisplay(strconv.FormatFloat(f, 'f', -1, 64))
	if err != nil {
		return Zero()
	}
	return ret
}

// ParseDisplay parses a decimal display unit string such as "1.39" into an
// exact raw amount. At most 30 fractional digits are allowed.
func ParseDisplay(s string) (Amount, error) {
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if !isDigits(intPart) || (hasFrac && !isDigits(fracPart)) {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if len(fracPart) > RawDecimals {
		return Amount{}, fmt.Errorf(
			"%w: more than %d fractional digits",
			ErrInvalidAmount,
			RawDecimals,
		)
	}
	digits := intPart + fracPart + strings.Repeat("0", RawDecimals-len(fracPart))
	v, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return Amount{raw: v}, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func (a Amount) int() *big.Int {
	if a.raw == nil {
		return new(big.Int)
	}
	return a.raw
}

// BigInt returns a copy of the raw value
func (a Amount) BigInt() *big.Int {
	return new(big.Int).Set(a.int())
}

// RawString renders the raw value as a plain base-10 integer
func (a Amount) RawString() string {
	return a.int().String()
}

func (a Amount) String() string {
	return a.RawString()
}

// DisplayString renders the amount in display units with a '.' decimal separator
func (a Amount) DisplayString() string {
	return a.FormatDisplay(".")
}

// FormatDisplay renders raw / 10^30 rounded half-up to at most 5 fractional
// digits, with trailing fractional zeros removed and no digit grouping
func (a Amount) FormatDisplay(decimalSeparator string) string {
	v := a.int()
	abs := new(big.Int).Abs(v)
	scaled := new(big.Int).Mul(abs, displayScale)
	scaled.Add(scaled, displayRoundingUp)
	scaled.Quo(scaled, rawPerUnit)
	intPart, fracPart := new(big.Int).QuoRem(scaled, displayScale, new(big.Int))
	var sb strings.Builder
	if v.Sign() < 0 && scaled.Sign() != 0 {
		sb.WriteByte('-')
	}
	sb.WriteString(intPart.String())
	frac := fracPart.String()
	frac = strings.Repeat("0", DisplayDecimals-len(frac)) + frac
	frac = strings.TrimRight(frac, "0")
	if frac != "" {
		sb.WriteString(decimalSeparator)
		sb.WriteString(frac)
	}
	return sb.String()
}

// RawBytes returns the minimal big-endian encoding of the absolute raw
// value. A zero amount yields an empty slice.
func (a Amount) RawBytes() []byte {
	return a.int().Bytes()
}

// IsZero returns whether the amount is zero
func (a Amount) IsZero() bool {
	return a.int().Sign() == 0
}

// IsNegative returns whether the amount is below zero. Only Sub can produce
// a negative amount.
func (a Amount) IsNegative() bool {
	return a.int().Sign() < 0
}

func (a Amount) Add(b Amount) Amount {
	return Amount{raw: new(big.Int).Add(a.int(), b.int())}
}

// Sub returns a - b. The result may be negative; callers building blocks
// must check IsNegative.
func (a Amount) Sub(b Amount) Amount {
	return Amount{raw: new(big.Int).Sub(a.int(), b.int())}
}

func (a Amount) Mul(b Amount) Amount {
	return Amount{raw: new(big.Int).Mul(a.int(), b.int())}
}

func (a Amount) MulInt(n int64) Amount {
	return Amount{raw: new(big.Int).Mul(a.int(), big.NewInt(n))}
}

// Div returns a / b truncated toward zero
func (a Amount) Div(b Amount) (Amount, error) {
	if b.IsZero() {
		return Amount{}, ErrDivisionByZero
	}
	return Amount{raw: new(big.Int).Quo(a.int(), b.int())}, nil
}

// DivInt returns a / n truncated toward zero
func (a Amount) DivInt(n int64) (Amount, error) {
	return a.Div(Amount{raw: big.NewInt(n)})
}

// Cmp returns -1, 0 or +1 when a is less than, equal to or greater than b
func (a Amount) Cmp(b Amount) int {
	return a.int().Cmp(b.int())
}

func (a Amount) Equal(b Amount) bool          { return a.Cmp(b) == 0 }
func (a Amount) NotEqual(b Amount) bool       { return a.Cmp(b) != 0 }
func (a Amount) LessThan(b Amount) bool       { return a.Cmp(b) < 0 }
func (a Amount) LessOrEqual(b Amount) bool    { return a.Cmp(b) <= 0 }
func (a Amount) GreaterThan(b Amount) bool    { return a.Cmp(b) > 0 }
func (a Amount) GreaterOrEqual(b Amount) bool { return a.Cmp(b) >= 0 }

// MarshalJSON encodes the raw value as a decimal string, which is how the
// node RPC represents every balance
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.RawString())
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, err)
	}
	if !isDigits(s) {
		return fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	*a = FromRaw(s)
	return nil
}
