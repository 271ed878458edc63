package sun

import (
	"fmt"
	"math"
	"time"
)

const oneDay = 24 * time.Hour

// Date is a Gregorian calendar day, independent of any time zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf returns the UTC calendar day containing t.
func DateOf(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{y, m, d}
}

func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var daysPerMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysIn returns the number of days in month of year. It panics if month is
// out of range.
func DaysIn(year int, month time.Month) int {
	if month < time.January || month > time.December {
		panic(fmt.Sprintf("sun: month %d out of range", month))
	}
	if month == time.February && IsLeapYear(year) {
		return 29
	}
	return daysPerMonth[month-1]
}

func (d Date) Valid() bool {
	if d.Month < time.January || d.Month > time.December {
		return false
	}
	return d.Day >= 1 && d.Day <= DaysIn(d.Year, d.Month)
}

func (d Date) mustBeValid() {
	if !d.Valid() {
		panic(fmt.Sprintf("sun: invalid date %s", d))
	}
}

// Midnight returns 00:00:00 UTC of the day.
func (d Date) Midnight() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days later (or earlier for negative n), with
// month and year rollover handled by time.Date normalisation.
func (d Date) AddDays(n int) Date {
	return DateOf(time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC))
}

// YearDay returns the ordinal day of the year, 1 for January 1st.
func (d Date) YearDay() int {
	year, month, day := float64(d.Year), float64(d.Month), float64(d.Day)
	n1 := math.Floor(275 * month / 9)
	n2 := math.Floor((month + 9) / 12)
	n3 := 1 + math.Floor((year-4*math.Floor(year/4)+2)/3)
	return int(n1 - (n2 * n3) + day - 30)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}
