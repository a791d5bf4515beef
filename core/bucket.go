// Package core has the activity aggregation and display orchestration for gad.
package core

import (
	"math"
	"time"

	"github.com/huangsam/gad/schema"
)

// BuildMatrix buckets raw commit timestamps into a day-count matrix of
// exactly weeks*7 consecutive calendar days ending at today. Timestamps
// outside the window are discarded; multiple commits on the same day
// accumulate. An empty timestamp sequence yields an all-zero matrix.
func BuildMatrix(subject string, times []time.Time, weeks int, today time.Time) schema.ActivityMatrix {
	if weeks < 1 {
		weeks = 1
	}
	anchor := truncateDay(today)
	numDays := weeks * schema.DaysPerWeek
	start := anchor.AddDate(0, 0, -(numDays - 1))

	days := make([]schema.DayBucket, numDays)
	for i := range days {
		days[i].Date = start.AddDate(0, 0, i)
	}

	total := 0
	for _, t := range times {
		idx := daysBetween(start, truncateDay(t.In(anchor.Location())))
		if idx < 0 || idx >= numDays {
			continue
		}
		days[idx].Count++
		total++
	}

	return schema.ActivityMatrix{Subject: subject, Days: days, Total: total}
}

// WindowStart returns the first instant of the visualization window for
// the given duration, anchored so the last day is today.
func WindowStart(weeks int, today time.Time) time.Time {
	if weeks < 1 {
		weeks = 1
	}
	return truncateDay(today).AddDate(0, 0, -(weeks*schema.DaysPerWeek - 1))
}

// truncateDay returns midnight of t's calendar day in t's location.
func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween returns the number of calendar days from a to b. Both must
// be midnights; rounding absorbs DST offsets within a day.
func daysBetween(a, b time.Time) int {
	return int(math.Round(b.Sub(a).Hours() / 24))
}
