package sun

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestYearDay(t *testing.T) {
	assert.Equal(t, 1, NewDate(2015, time.January, 1).YearDay())
	assert.Equal(t, 102, NewDate(2015, time.April, 12).YearDay())
	assert.Equal(t, 365, NewDate(2015, time.December, 31).YearDay())
	assert.Equal(t, 60, NewDate(2016, time.February, 29).YearDay())
	assert.Equal(t, 366, NewDate(2016, time.December, 31).YearDay())

	for d := NewDate(2016, time.January, 1); d.Year == 2016; d = d.AddDays(1) {
		assert.Equal(t, d.Midnight().YearDay(), d.YearDay(), d.String())
	}
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 31, DaysIn(2015, time.January))
	assert.Equal(t, 28, DaysIn(2015, time.February))
	assert.Equal(t, 29, DaysIn(2016, time.February))
	assert.Equal(t, 28, DaysIn(1900, time.February))
	assert.Equal(t, 29, DaysIn(2000, time.February))
	assert.Equal(t, 30, DaysIn(2015, time.November))
	assert.Panics(t, func() { DaysIn(2015, 13) })
}

func TestDateValid(t *testing.T) {
	assert.True(t, NewDate(2016, time.February, 29).Valid())
	assert.False(t, NewDate(2015, time.February, 29).Valid())
	assert.False(t, NewDate(2015, time.April, 31).Valid())
	assert.False(t, NewDate(2015, 0, 1).Valid())
	assert.False(t, NewDate(2015, 13, 1).Valid())
	assert.False(t, NewDate(2015, time.May, 0).Valid())
}

func TestAddDays(t *testing.T) {
	assert.Equal(t, NewDate(2016, time.January, 1), NewDate(2015, time.December, 31).AddDays(1))
	assert.Equal(t, NewDate(2015, time.December, 31), NewDate(2016, time.January, 1).AddDays(-1))
	assert.Equal(t, NewDate(2016, time.February, 29), NewDate(2016, time.February, 28).AddDays(1))
	assert.Equal(t, NewDate(2015, time.March, 1), NewDate(2015, time.February, 28).AddDays(1))
	assert.Equal(t, NewDate(2015, time.July, 1), NewDate(2015, time.July, 1).AddDays(0))
}

func TestDateOf(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*3600)
	assert.Equal(t, NewDate(2015, time.December, 31), DateOf(time.Date(2016, 1, 1, 2, 0, 0, 0, moscow)))
	assert.Equal(t, NewDate(2016, time.January, 1), DateOf(time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func ExampleDate_String() {
	fmt.Println(NewDate(2015, time.April, 12))
	fmt.Println(NewDate(2015, time.April, 12).Midnight())
	// Output:
	// 2015-04-12
	// 2015-04-12 00:00:00 +0000 UTC
}
