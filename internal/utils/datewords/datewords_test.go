package datewords

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInWords(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		{time.Date(2025, time.May, 5, 0, 0, 0, 0, time.UTC), "the fifth day of May of the year two thousand twenty-five"},
		{time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), "the first day of January of the year two thousand twenty-six"},
		{time.Date(1999, time.December, 31, 0, 0, 0, 0, time.UTC), "the thirty-first day of December of the year one thousand nine hundred ninety-nine"},
		{time.Date(2020, time.February, 29, 0, 0, 0, 0, time.UTC), "the twenty-ninth day of February of the year two thousand twenty"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, InWords(tt.date))
	}
}

func TestYearInWords(t *testing.T) {
	assert.Equal(t, "two thousand", YearInWords(2000))
	assert.Equal(t, "two thousand ten", YearInWords(2010))
	assert.Equal(t, "one thousand eight hundred seventy-three", YearInWords(1873))
	// Out of range falls back to digits rather than guessing.
	assert.Equal(t, "0", YearInWords(0))
	assert.Equal(t, "10000", YearInWords(10000))
}
