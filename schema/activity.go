package schema

import "time"

// DayBucket holds the commit count for a single calendar day inside the
// visualization window. Days without commits keep a zero count rather than
// being omitted.
type DayBucket struct {
	Date  time.Time // Midnight of the calendar day, local time
	Count int       // Number of commits on that day
}

// ActivityMatrix is the bucketed activity of one subject over the window.
// A subject is either a single author or the whole repository aggregate.
// Days are stored in chronological order and always span a whole number
// of weeks.
type ActivityMatrix struct {
	Subject string      // Display name for the subject
	Days    []DayBucket // Exactly NumWeeks()*DaysPerWeek buckets
	Total   int         // Sum of all bucket counts
}

// NumWeeks returns the number of week strides covered by the matrix.
func (m *ActivityMatrix) NumWeeks() int {
	return len(m.Days) / DaysPerWeek
}

// Week returns the 7 day buckets of week i in chronological order.
func (m *ActivityMatrix) Week(i int) []DayBucket {
	return m.Days[i*DaysPerWeek : (i+1)*DaysPerWeek]
}

// Start returns the first calendar day of the window, or the zero time
// for an empty matrix.
func (m *ActivityMatrix) Start() time.Time {
	if len(m.Days) == 0 {
		return time.Time{}
	}
	return m.Days[0].Date
}

// End returns the last calendar day of the window, or the zero time for
// an empty matrix.
func (m *ActivityMatrix) End() time.Time {
	if len(m.Days) == 0 {
		return time.Time{}
	}
	return m.Days[len(m.Days)-1].Date
}
