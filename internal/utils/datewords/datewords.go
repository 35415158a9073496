// Package datewords spells calendar dates out in words, the form required on
// marginal notes ("the fifth day of May of the year two thousand twenty-six").
package datewords

import (
	"fmt"
	"strings"
	"time"
)

var ones = []string{
	"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
	"seventeen", "eighteen", "nineteen",
}

var tens = []string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
}

var dayOrdinals = []string{
	"", "first", "second", "third", "fourth", "fifth", "sixth", "seventh",
	"eighth", "ninth", "tenth", "eleventh", "twelfth", "thirteenth",
	"fourteenth", "fifteenth", "sixteenth", "seventeenth", "eighteenth",
	"nineteenth", "twentieth", "twenty-first", "twenty-second", "twenty-third",
	"twenty-fourth", "twenty-fifth", "twenty-sixth", "twenty-seventh",
	"twenty-eighth", "twenty-ninth", "thirtieth", "thirty-first",
}

// InWords renders the full legal form of a date.
func InWords(t time.Time) string {
	return fmt.Sprintf("the %s day of %s of the year %s",
		dayOrdinals[t.Day()], t.Month().String(), YearInWords(t.Year()))
}

// YearInWords spells a year between 1 and 9999 as a cardinal.
func YearInWords(year int) string {
	if year <= 0 || year > 9999 {
		return fmt.Sprintf("%d", year)
	}
	var parts []string
	if th := year / 1000; th > 0 {
		parts = append(parts, ones[th], "thousand")
	}
	if h := (year / 100) % 10; h > 0 {
		parts = append(parts, ones[h], "hundred")
	}
	if rest := year % 100; rest > 0 {
		parts = append(parts, cardinalUnder100(rest))
	}
	return strings.Join(parts, " ")
}

func cardinalUnder100(n int) string {
	if n < 20 {
		return ones[n]
	}
	if n%10 == 0 {
		return tens[n/10]
	}
	return tens[n/10] + "-" + ones[n%10]
}
