// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package models

import (
	"fmt"
	"math"
	"strconv"
)

// Cents is an amount of US dollars expressed in whole cents.
//
// Itinerary totals are sums of day costs, and those sums must match exactly
// when printed. Keeping amounts as integers avoids float drift; the JSON form
// is still a plain number with two decimals (e.g. 123.45).
type Cents int64

// FromUSD converts a dollar amount to cents, rounding half away from zero.
func FromUSD(usd float64) Cents {
	return Cents(math.Round(usd * 100))
}

// USD returns the amount in dollars.
func (c Cents) USD() float64 {
	return float64(c) / 100
}

// String formats the amount as "$1,234.56".
func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	whole := strconv.FormatInt(v/100, 10)
	for i := len(whole) - 3; i > 0; i -= 3 {
		whole = whole[:i] + "," + whole[i:]
	}
	return fmt.Sprintf("%s$%s.%02d", sign, whole, v%100)
}

// Decimal formats the amount without symbol or grouping ("1234.56").
func (c Cents) Decimal() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MarshalJSON encodes the amount as a JSON number with two decimals.
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(c.Decimal()), nil
}

// UnmarshalJSON accepts a JSON number in dollars.
func (c *Cents) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", string(data), err)
	}
	*c = FromUSD(f)
	return nil
}

// MeanCents returns the mean of amounts rounded to the nearest cent.
// An empty slice yields zero.
func MeanCents(amounts []Cents) Cents {
	if len(amounts) == 0 {
		return 0
	}
	var sum int64
	for _, a := range amounts {
		sum += int64(a)
	}
	return DivRound(Cents(sum), int64(len(amounts)))
}

// DivRound divides c by n rounding half away from zero. n must be positive.
func DivRound(c Cents, n int64) Cents {
	if n <= 0 {
		return 0
	}
	v := int64(c)
	if v >= 0 {
		return Cents((v + n/2) / n)
	}
	return Cents(-((-v + n/2) / n))
}
