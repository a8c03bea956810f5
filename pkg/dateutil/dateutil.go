package dateutil

import (
	"time"
)

// BeginningOfMonth returns midnight on the first day of the month containing date
func BeginningOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// FirstContributionDate returns the date of the first monthly instalment for a plan
// started on date: the same day when date is the 1st, otherwise the 1st of the next month.
func FirstContributionDate(date time.Time) time.Time {
	start := BeginningOfMonth(date)
	if date.Day() == 1 {
		return start
	}
	return AddMonths(start, 1)
}

// MaturityDate returns the end of the last monthly period, one month after the
// final contribution.
func MaturityDate(firstContribution time.Time, totalMonths int) time.Time {
	return AddMonths(firstContribution, totalMonths)
}

// AddMonths adds a specified number of months to a date
func AddMonths(date time.Time, months int) time.Time {
	return date.AddDate(0, months, 0)
}
