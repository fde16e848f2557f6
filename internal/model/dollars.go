package model

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// PointsPerDollar is the resolution of Dollars.
const PointsPerDollar = 1_000_000

// Dollars is an amount of money measured in points.
type Dollars struct {
	points int64
}

// NewDollars returns an amount of the given number of points.
func NewDollars(points int64) Dollars {
	return Dollars{points: points}
}

// WholeDollars returns an amount of n dollars.
func WholeDollars(n int64) Dollars {
	return Dollars{points: n * PointsPerDollar}
}

// Points returns the raw amount.
func (d Dollars) Points() int64 {
	return d.points
}

// Add returns the sum of two amounts.
func (d Dollars) Add(other Dollars) Dollars {
	return Dollars{points: d.points + other.points}
}

// String renders the amount with cent precision, e.g. `$5.00`.
func (d Dollars) String() string {
	sign := ""
	points := d.points
	if points < 0 {
		sign = "-"
		points = -points
	}
	cents := points / (PointsPerDollar / 100)
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

// amountRegex accepts unsigned decimals with at most six fractional digits.
var amountRegex = regexp.MustCompile(`^([0-9]*)(?:\.([0-9]{1,6}))?$`)

// ParseDollars reads amounts such as `$5`, `0.25` or `$1.000001`. Signs are
// rejected; amounts beyond the int64 range of points are an error.
func ParseDollars(raw string) (Dollars, error) {
	text := strings.TrimPrefix(strings.TrimSpace(raw), "$")
	m := amountRegex.FindStringSubmatch(text)
	if m == nil || (m[1] == "" && m[2] == "") {
		return Dollars{}, fmt.Errorf("invalid amount %q", raw)
	}
	whole, frac := m[1], m[2]
	if whole == "" {
		whole = "0"
	}
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units > math.MaxInt64/PointsPerDollar {
		return Dollars{}, fmt.Errorf("amount %q is out of range", raw)
	}
	points := units * PointsPerDollar
	if frac != "" {
		part, err := strconv.ParseInt(frac+strings.Repeat("0", 6-len(frac)), 10, 64)
		if err != nil || points > math.MaxInt64-part {
			return Dollars{}, fmt.Errorf("amount %q is out of range", raw)
		}
		points += part
	}
	return Dollars{points: points}, nil
}
