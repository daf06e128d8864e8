package wallet

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

func init() {
	// amounts are persisted as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Amount is an exact decimal quantity of money.
//
// Amounts are never represented as binary floating point: arithmetic is done
// on arbitrary precision decimals and values are persisted with all their
// digits. Rounding only happens when formatting for display.
type Amount struct {
	value decimal.Decimal
}

// A is a convenient factory for Amount from Go constants.
func A[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

// newDecimal converts any supported numeric type to a decimal.Decimal.
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Bounds of amounts read from users and documents.
const (
	// MaxScale is the maximum number of fractional digits.
	MaxScale = 8
	// MaxDigits is the maximum number of integer digits: amounts are below 10^15.
	MaxDigits = 15
)

// bounded checks d against MaxScale and MaxDigits and returns it in its
// shortest form, without trailing zeros in the coefficient.
//
// It only looks at the coefficient digits and the exponent: comparing d with
// a limit would rescale it, which is what huge exponents make unaffordable.
func bounded(d decimal.Decimal) (decimal.Decimal, error) {
	digits := d.Coefficient().String()
	negative := strings.HasPrefix(digits, "-")
	digits = strings.TrimPrefix(digits, "-")
	significant := strings.TrimRight(digits, "0")
	if significant == "" {
		return decimal.Zero, nil
	}
	exp := int64(d.Exponent()) + int64(len(digits)-len(significant))
	if -exp > MaxScale {
		return decimal.Decimal{}, fmt.Errorf("%w: more than %d fractional digits", ErrInvalidAmount, MaxScale)
	}
	if int64(len(significant))+exp > MaxDigits {
		return decimal.Decimal{}, fmt.Errorf("%w: more than %d integer digits", ErrInvalidAmount, MaxDigits)
	}
	coef, _ := new(big.Int).SetString(significant, 10)
	if negative {
		coef.Neg(coef)
	}
	return decimal.NewFromBigInt(coef, int32(exp)), nil
}

// ParseAmount parses a decimal string such as "12.50".
//
// Amounts with more than MaxScale fractional digits, or MaxDigits integer
// digits, are rejected with ErrInvalidAmount. It does not check the sign:
// Credit and Debit reject non-positive amounts.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: cannot parse %q: %v", ErrInvalidAmount, s, err)
	}
	if d, err = bounded(d); err != nil {
		return Amount{}, fmt.Errorf("%q: %w", s, err)
	}
	return Amount{value: d}, nil
}

// AmountFromFloat converts a float64 read at an I/O boundary into an Amount.
// NaN and infinite values are rejected with ErrInvalidAmount.
func AmountFromFloat(f float64) (Amount, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Amount{}, fmt.Errorf("%w: %v is not a finite number", ErrInvalidAmount, f)
	}
	d, err := bounded(decimal.NewFromFloat(f))
	if err != nil {
		return Amount{}, fmt.Errorf("%v: %w", f, err)
	}
	return Amount{value: d}, nil
}

// check returns an error wrapping ErrInvalidAmount if a is out of bounds.
func (a Amount) check() error {
	_, err := bounded(a.value)
	return err
}

// Cents returns the amount worth n hundredths of a unit.
func Cents(n int64) Amount { return Amount{value: decimal.New(n, -2)} }

func (a Amount) Add(b Amount) Amount       { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount       { return Amount{value: a.value.Sub(b.value)} }
func (a Amount) Neg() Amount               { return Amount{value: a.value.Neg()} }
func (a Amount) Equal(b Amount) bool       { return a.value.Equal(b.value) }
func (a Amount) Cmp(b Amount) int          { return a.value.Cmp(b.value) }
func (a Amount) IsZero() bool              { return a.value.IsZero() }
func (a Amount) IsPositive() bool          { return a.value.IsPositive() }
func (a Amount) IsNegative() bool          { return a.value.IsNegative() }
func (a Amount) LessThan(b Amount) bool    { return a.value.LessThan(b.value) }
func (a Amount) GreaterThan(b Amount) bool { return a.value.GreaterThan(b.value) }
func (a Amount) Decimal() decimal.Decimal  { return a.value }
func (a Amount) String() string            { return a.value.String() }

// Format returns the amount formatted in the given ISO 4217 currency, e.g.
// "$1,234.50" for "USD". The value is rounded to the currency's fraction digits.
func (a Amount) Format(currency string) string {
	// to get a never nil currency the Money constructor is needed.
	cur := money.New(0, currency).Currency()
	minor := a.value.Shift(int32(cur.Fraction)).Round(0)
	if minor.Abs().LessThanOrEqual(maxMinor) {
		return cur.Formatter().Format(minor.IntPart())
	}
	return formatLarge(a.value, cur.Formatter())
}

// maxMinor is the largest count of minor units go-money formats.
var maxMinor = decimal.NewFromInt(math.MaxInt64)

// formatLarge formats v like f does, for values whose minor units overflow
// an int64.
func formatLarge(v decimal.Decimal, f *money.Formatter) string {
	fixed := v.Abs().StringFixed(int32(f.Fraction))
	integer, fraction, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range integer {
		if i > 0 && (len(integer)-i)%3 == 0 {
			b.WriteString(f.Thousand)
		}
		b.WriteRune(r)
	}
	if fraction != "" {
		b.WriteString(f.Decimal)
		b.WriteString(fraction)
	}

	out := strings.Replace(f.Template, "1", b.String(), 1)
	out = strings.Replace(out, "$", f.Grapheme, 1)
	if v.IsNegative() {
		out = "-" + out
	}
	return out
}

// MarshalJSON writes the amount as a JSON number with all its digits.
func (a Amount) MarshalJSON() ([]byte, error) {
	return a.value.MarshalJSON()
}

// UnmarshalJSON accepts both JSON numbers and quoted decimal strings, within
// MaxScale and MaxDigits.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	d, err := bounded(d)
	if err != nil {
		return err
	}
	a.value = d
	return nil
}
