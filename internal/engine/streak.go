package engine

import (
	"time"

	"habitbuilder/internal/store"
)

const (
	// StreakBonusPoints is the flat bonus once the streak threshold is met.
	StreakBonusPoints = 5
	// StreakBonusThreshold is the minimum streak length for the bonus.
	StreakBonusThreshold = 3
)

// UpdateStreak advances the consecutive-day counter for a submission on
// the given day and returns the streak bonus earned.
//
// Same-day repeats and backwards clock movement are no-ops returning 0;
// a one-day gap increments, anything larger resets to 1. last_log_date
// is only advanced on a successful update, which makes the call
// idempotent for a given day.
func UpdateStreak(st *store.State, today string) int {
	last := st.LastLogDate
	if last == today {
		return 0
	}
	if last == "" {
		st.Streak = 1
	} else {
		lastDate, err := time.Parse(store.DateFormat, last)
		if err != nil {
			// Unparseable history: start over rather than refuse to log.
			st.Streak = 1
		} else {
			todayDate, err := time.Parse(store.DateFormat, today)
			if err != nil {
				return 0
			}
			switch delta := daysBetween(lastDate, todayDate); {
			case delta == 1:
				st.Streak++
			case delta > 1:
				st.Streak = 1
			default:
				return 0
			}
		}
	}
	st.LastLogDate = today

	if st.Streak >= StreakBonusThreshold {
		return StreakBonusPoints
	}
	return 0
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// DayNumber is the 1-based day count since the start date. A malformed
// start date counts as day 1.
func DayNumber(startDate string, today time.Time) int {
	start, err := time.Parse(store.DateFormat, startDate)
	if err != nil {
		return 1
	}
	day, err := time.Parse(store.DateFormat, store.Day(today))
	if err != nil {
		return 1
	}
	return daysBetween(start, day) + 1
}
