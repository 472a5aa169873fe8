package community

import (
	"fmt"
	"time"

	"shoresquad/internal/models"
)

// EffectKind tells the service what to do after an update.
type EffectKind int

const (
	// EffectNotify shows Message to the visitor.
	EffectNotify EffectKind = iota
	// EffectRecordAction persists Action.
	EffectRecordAction
	// EffectRender marks Section as changed.
	EffectRender
)

const (
	SectionEvents = "events"
	SectionCrews  = "crews"
)

type Effect struct {
	Kind    EffectKind
	Message string
	Action  string
	ItemID  int
	Section string
}

// State is the community data shown on the site. Update functions never
// modify their input and return a new State instead.
type State struct {
	Events []models.Event
	Crews  []models.Crew
}

func (s State) clone() State {
	return State{
		Events: append([]models.Event(nil), s.Events...),
		Crews:  append([]models.Crew(nil), s.Crews...),
	}
}

// JoinEvent adds one participant to the event. found is false for unknown
// ids, in which case s is returned as is with no effects.
func JoinEvent(s State, id int) (next State, effects []Effect, found bool) {
	for i, event := range s.Events {
		if event.ID != id {
			continue
		}

		next = s.clone()
		next.Events[i].Participants++

		return next, []Effect{
			{Kind: EffectRender, Section: SectionEvents},
			{Kind: EffectNotify, Message: fmt.Sprintf("✅ You joined \"%s\"!", event.Name)},
			{Kind: EffectRecordAction, Action: models.ActionJoinEvent, ItemID: id},
		}, true
	}

	return s, nil, false
}

// JoinCrew adds one member to the crew. found is false for unknown ids.
func JoinCrew(s State, id int) (next State, effects []Effect, found bool) {
	for i, crew := range s.Crews {
		if crew.ID != id {
			continue
		}

		next = s.clone()
		next.Crews[i].Members++

		return next, []Effect{
			{Kind: EffectRender, Section: SectionCrews},
			{Kind: EffectNotify, Message: fmt.Sprintf("✅ Joined \"%s\"!", crew.Name)},
			{Kind: EffectRecordAction, Action: models.ActionJoinCrew, ItemID: id},
		}, true
	}

	return s, nil, false
}

// ViewCrew returns the crew detail text.
func ViewCrew(s State, id int) (string, bool) {
	for _, crew := range s.Crews {
		if crew.ID == id {
			return fmt.Sprintf("%s %s\n\nMembers: %d\nCleanups: %d\nLocation: %s",
				crew.Icon, crew.Name, crew.Members, crew.Cleanups, crew.Location), true
		}
	}
	return "", false
}

// ComputeStats derives the hero counters. Volunteers counts crew members plus
// event participants.
func ComputeStats(s State) models.Stats {
	stats := models.Stats{
		Crews:  len(s.Crews),
		Events: len(s.Events),
	}
	for _, crew := range s.Crews {
		stats.Volunteers += crew.Members
		stats.Cleanups += crew.Cleanups
	}
	for _, event := range s.Events {
		stats.Volunteers += event.Participants
	}
	return stats
}

// FormatEventDate renders 2025-01-15 as "15 Jan 2025". Unparsable input is
// returned unchanged.
func FormatEventDate(date string) string {
	t, err := time.ParseInLocation("2006-01-02", date, models.Singapore)
	if err != nil {
		return date
	}
	return t.Format("2 Jan 2006")
}
