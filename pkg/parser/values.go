package parser

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	dateRegex   = regexp.MustCompile(`(\d+)/(\d+)/(\d+)`)
	amountRegex = regexp.MustCompile(`-?\d+(?:\.\d+)?`)
)

// ParseDate parses the bank's D/M/YY format. The two-digit year is taken
// as 2000+YY, which stops working in 2100; the statements only ever show
// two digits, so there is nothing better to do with them.
func ParseDate(text string) (time.Time, error) {
	chunks := dateRegex.FindStringSubmatch(text)
	if chunks == nil {
		return time.Time{}, fmt.Errorf("no D/M/YY date in %q", text)
	}

	day, _ := strconv.Atoi(chunks[1])
	month, _ := strconv.Atoi(chunks[2])
	year, _ := strconv.Atoi(chunks[3])

	return time.Date(2000+year, time.Month(month), day, 0, 0, 0, 0, time.Local), nil
}

// ParseAmount parses a statement cell into a number. Thousands-separator
// commas are stripped and a DR marker negates the value. Cells without a
// numeric value yield NaN; callers treat that as "no value here", not as
// a failure, since most statement cells are not amounts at all.
func ParseAmount(text string) float64 {
	cleaned := strings.ReplaceAll(text, ",", "")

	number := amountRegex.FindString(cleaned)
	if number == "" {
		return math.NaN()
	}

	value, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return math.NaN()
	}

	if strings.Contains(cleaned, "DR") {
		value = -value
	}
	return value
}
