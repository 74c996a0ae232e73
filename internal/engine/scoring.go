package engine

import "habitbuilder/internal/store"

// CalculatePoints scores one day's log against the habit table. A
// completed habit earns its point value; an incomplete one costs half,
// rounded down (5 points → −2). Habits in the log that are no longer
// in the table are ignored. The energy rating is added on top.
func CalculatePoints(log *store.DayLog, habits []store.Habit) int {
	table := make(map[string]int, len(habits))
	for _, h := range habits {
		table[h.Name] = h.Points
	}

	points := 0
	for name, done := range log.Habits {
		value, ok := table[name]
		if !ok {
			continue
		}
		if done {
			points += value
		} else {
			points -= value / 2
		}
	}
	return points + log.Energy.Rating()
}

// CompletionPercent is the share of habits marked done, as an integer
// percentage. An empty map is 0, not a division by zero.
func CompletionPercent(completed map[string]bool) int {
	if len(completed) == 0 {
		return 0
	}
	done := 0
	for _, ok := range completed {
		if ok {
			done++
		}
	}
	return done * 100 / len(completed)
}
