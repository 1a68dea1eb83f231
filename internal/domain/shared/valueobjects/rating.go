package valueobjects

import (
	"fmt"
	"math"
)

const (
	MinReviewScore = 1
	MaxReviewScore = 5
)

// Rating is an average review score held in hundredths (433 means 4.33).
// Every rating shown or compared goes through ComputeRating so there is a
// single rounding rule.
type Rating int

// ZeroRating is the rating of an entity without qualifying reviews.
const ZeroRating Rating = 0

// ComputeRating returns sum/count rounded to two decimals, half to even.
// The division is done in integers so that no binary float error decides
// the rounding direction.
func ComputeRating(sum, count int64) Rating {
	if count <= 0 || sum <= 0 {
		return ZeroRating
	}
	num := sum * 100
	q, r := num/count, num%count
	switch {
	case 2*r > count:
		q++
	case 2*r == count && q%2 == 1:
		q++
	}
	return Rating(q)
}

// RatingFromFloat converts a stored decimal value.
func RatingFromFloat(f float64) Rating {
	return Rating(math.RoundToEven(f * 100))
}

func (r Rating) Float64() float64 {
	return float64(r) / 100
}

func (r Rating) String() string {
	return fmt.Sprintf("%d.%02d", int(r)/100, int(r)%100)
}

func (r Rating) IsValid() bool {
	return r >= 0 && r <= MaxReviewScore*100
}
