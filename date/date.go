// Package date provides a day-granularity Date, calendar periods and date
// ranges used to select wallet transactions.
package date

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02"

// Date represents a date with day-level granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Of returns the day of t, in t's location.
func Of(t time.Time) Date { return New(t.Date()) }

// Today returns the current date in UTC, the location of wallet timestamps.
func Today() Date { return Of(time.Now().UTC()) }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

func (d Date) Year() int                   { return d.y }
func (d Date) Month() time.Month           { return d.m }
func (d Date) Day() int                    { return d.d }
func (d Date) Weekday() time.Weekday       { return d.time().Weekday() }
func (d Date) ISOWeek() (year, week int)   { return d.time().ISOWeek() }
func (d Date) IsZero() bool                { return d == Date{} }
func (d Date) Before(x Date) bool          { return d.time().Before(x.time()) }
func (d Date) After(x Date) bool           { return d.time().After(x.time()) }
func (d Date) Add(days int) Date           { return New(d.y, d.m, d.d+days) }
func (d Date) Format(layout string) string { return d.time().Format(layout) }
func (d Date) String() string              { return d.time().Format(DateFormat) }

// StartOf returns the first day of the period containing d.
func (d Date) StartOf(period Period) Date {
	switch period {
	case Daily:
		return d
	case Weekly:
		offset := int(d.Weekday() - time.Monday)
		if offset < 0 {
			offset += 7
		}
		return d.Add(-offset)
	case Monthly:
		return New(d.y, d.m, 1)
	case Quarterly:
		return New(d.y, (d.m-1)/3*3+1, 1)
	case Yearly:
		return New(d.y, time.January, 1)
	default:
		panic("unknown period")
	}
}

// EndOf returns the last day of the period containing d.
func (d Date) EndOf(period Period) Date {
	switch period {
	case Daily:
		return d
	case Weekly:
		return d.StartOf(Weekly).Add(6)
	case Monthly:
		return New(d.y, d.m+1, 0)
	case Quarterly:
		// day 0 of the month after the quarter is its last day.
		return New(d.y, (d.m-1)/3*3+4, 0)
	case Yearly:
		return New(d.y+1, time.January, 0)
	default:
		panic("unknown period")
	}
}

var relativeDateRE = regexp.MustCompile(`^([+-])(\d+)([dwmy])$`)

// Parse parses a Date.
//
// It accepts ISO dates, leniently ("2025-7-1" is July 1st), "0d" for today,
// and signed offsets from today such as "-1d", "+2w", "-3m" or "-1y".
// Month and year offsets keep the day of month, clamped to the last day of
// the target month: "-1m" on March 31st is the last day of February.
func Parse(str string) (Date, error) {
	return parseFrom(str, Today())
}

// parseFrom is Parse with relative dates counted from today.
func parseFrom(str string, today Date) (Date, error) {
	str = strings.TrimSpace(str)
	if str == "0d" {
		return today, nil
	}

	if match := relativeDateRE.FindStringSubmatch(str); match != nil {
		n, err := strconv.Atoi(match[2])
		if err != nil {
			return Date{}, fmt.Errorf("invalid number in relative date %q: %w", str, err)
		}
		if match[1] == "-" {
			n = -n
		}
		switch match[3] {
		case "d":
			return today.Add(n), nil
		case "w":
			return today.Add(7 * n), nil
		case "m":
			return today.shiftMonths(n), nil
		case "y":
			return today.shiftMonths(12 * n), nil
		}
	}

	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, DateFormat, err)
	}
	return Of(on), nil
}

// shiftMonths moves d by n months, clamping the day to the target month.
func (d Date) shiftMonths(n int) Date {
	first := New(d.y, d.m+time.Month(n), 1)
	return New(first.y, first.m, min(d.d, first.EndOf(Monthly).d))
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}
