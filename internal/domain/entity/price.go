package entity

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ErrInvalidPrice is returned when a price string does not parse as a
// non-negative decimal, or cannot be expressed exactly in minor units.
var ErrInvalidPrice = errors.New("invalid price")

// Price is a product price kept as the decimal string it was uploaded with.
// All arithmetic goes through shopspring/decimal so "19.99" converts to 1999
// minor units exactly, with no float rounding on the way.
type Price string

// String returns the raw decimal string.
func (p Price) String() string {
	return string(p)
}

// Validate checks that the price parses as a non-negative decimal and carries
// at most two decimal places.
func (p Price) Validate() error {
	_, err := p.MinorUnits()

	return err
}

// MinorUnits converts the price to integer minor currency units (cents).
// Fails with ErrInvalidPrice for malformed strings, negative values, and
// values whose conversion to cents would lose precision.
func (p Price) MinorUnits() (int64, error) {
	dec, err := decimal.NewFromString(string(p))
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidPrice, "price %q is not a decimal", string(p))
	}

	if dec.IsNegative() {
		return 0, errors.Wrapf(ErrInvalidPrice, "price %q is negative", string(p))
	}

	cents := dec.Mul(decimal.NewFromInt(100))
	if !cents.IsInteger() {
		return 0, errors.Wrapf(ErrInvalidPrice, "price %q has more than two decimal places", string(p))
	}

	return cents.IntPart(), nil
}
