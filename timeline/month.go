package timeline

import (
	"encoding/json"
	"fmt"
	"time"
)

const readMonthFormat = "2006-1" // Permissive read format (allows single-digit month).

// MonthFormat is the format used to represent months as strings.
const MonthFormat = "2006-01" // write month format

// Month represents a point in time with no lower than month granularity.
//
// All projections in flightplan are computed month by month; Month is the
// only time type the engine deals with.
type Month struct {
	y int
	m time.Month
}

// time returns a time.Time that is a canonical representation of that month
// (first day at midnight UTC).
func (m Month) time() time.Time { return time.Date(m.y, m.m, 1, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Month for the given year and month.
func New(year int, month time.Month) Month {
	m := Month{year, month}
	y, mm, _ := m.time().Date()
	return Month{y, mm}
}

// This returns the current month.
func This() Month { y, m, _ := time.Now().Date(); return New(y, m) }

// Year returns the month's year.
func (m Month) Year() int { return m.y }

// Month returns the month of the year.
func (m Month) Month() time.Month { return m.m }

// Before reports whether the month m is strictly before x.
func (m Month) Before(x Month) bool { return m.time().Before(x.time()) }

// After reports whether the month m is strictly after x.
func (m Month) After(x Month) bool { return m.time().After(x.time()) }

// Add returns a new Month with the given number of months added.
func (m Month) Add(months int) Month { return New(m.y, m.m+time.Month(months)) }

// Sub returns the number of months from x to m.
func (m Month) Sub(x Month) int { return (m.y-x.y)*12 + int(m.m) - int(x.m) }

// IsZero reports whether m is the zero Month.
func (m Month) IsZero() bool { return m == Month{} }

// String formats the month in its standard format.
func (m Month) String() string { return m.time().Format(MonthFormat) }

// Parse parses a Month from a string. It is lenient and accepts formats like "2025-7".
func Parse(str string) (Month, error) {
	on, err := time.Parse(readMonthFormat, str)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q want format %q: %w", str, readMonthFormat, err)
	}
	y, m, _ := on.Date()
	return New(y, m), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Month {
	m, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return m
}

// UnmarshalJSON implements the json specific way to unmarshal a month from a json string.
func (j *Month) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	m, err := Parse(str)
	if err != nil {
		return err
	}
	*j = m
	return nil
}

func (j Month) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Month pointer is a valid json marshal/unmarshaller type.
var _ json.Marshaler = (*Month)(nil)
var _ json.Unmarshaler = (*Month)(nil)
