package engine

import "habitbuilder/internal/store"

// PointsPerLevel is the flat per-level threshold: level = points/800 + 1.
const PointsPerLevel = 800

// MilestoneThresholds are the one-time celebration points totals.
var MilestoneThresholds = []int{100, 250, 500, 1000, 2000}

// EventKind tags a progress event.
type EventKind int

const (
	EventLevelUp EventKind = iota
	EventMilestone
)

// Event is an informational progress callback for the presentation
// layer: a level reached or a milestone total crossed. It carries no
// state of its own.
type Event struct {
	Kind  EventKind
	Value int
}

// LevelForPoints derives the level from a points total. Levels start
// at 1 and never decrease because the total never decreases.
func LevelForPoints(totalPoints int) int {
	if totalPoints < 0 {
		return 1
	}
	return totalPoints/PointsPerLevel + 1
}

// UpdateLevelsAndMilestones records any level-up and newly crossed
// milestones, returning the events in threshold order. The milestone
// set only ever grows.
func UpdateLevelsAndMilestones(st *store.State) []Event {
	var events []Event

	newLevel := LevelForPoints(st.TotalPoints)
	if newLevel > st.CurrentLevel {
		events = append(events, Event{Kind: EventLevelUp, Value: newLevel})
		st.CurrentLevel = newLevel
	}

	for _, threshold := range MilestoneThresholds {
		if st.TotalPoints >= threshold && !st.HasMilestone(threshold) {
			events = append(events, Event{Kind: EventMilestone, Value: threshold})
			st.Milestones = append(st.Milestones, threshold)
		}
	}
	return events
}
