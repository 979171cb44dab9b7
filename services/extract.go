package services

import (
	"errors"
	"math"
	"regexp"
	"strconv"
)

var (
	powerRegex = regexp.MustCompile(`(\d+)W`)
	priceRegex = regexp.MustCompile(`\$(\d+)`)
)

// ExtractPower returns the wattage from a motor description like "6000W peak / 3000W nominal".
// Only the first "<digits>W" counts, so a peak rating listed before the nominal one wins.
func ExtractPower(motor string) (int, bool) {
	return firstInt(powerRegex, motor)
}

// ExtractPrice returns the dollar amount from a price string like "$4,500-5,200".
// Commas are not stripped: the digit run stops at the first comma, so "$4,500" gives 4.
func ExtractPrice(price string) (int, bool) {
	return firstInt(priceRegex, price)
}

func firstInt(re *regexp.Regexp, s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	m := re.FindStringSubmatch(s)
	if len(m) < 2 {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		// digits only, so the one failure is overflow: clamp into the top bucket
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return math.MaxInt, true
		}
		return 0, false
	}
	return n, true
}
