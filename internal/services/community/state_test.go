package community

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoresquad/internal/models"
)

func TestJoinEvent(t *testing.T) {
	start := DefaultState()

	next, effects, found := JoinEvent(start, 1)
	require.True(t, found)
	assert.Equal(t, 25, next.Events[0].Participants)
	assert.Equal(t, 24, start.Events[0].Participants, "input state must not change")

	require.Len(t, effects, 3)
	assert.Equal(t, Effect{Kind: EffectRender, Section: SectionEvents}, effects[0])
	assert.Equal(t, Effect{Kind: EffectNotify, Message: `✅ You joined "Bondi Beach Spring Cleanup"!`}, effects[1])
	assert.Equal(t, Effect{Kind: EffectRecordAction, Action: models.ActionJoinEvent, ItemID: 1}, effects[2])

	again, _, found := JoinEvent(next, 1)
	require.True(t, found)
	assert.Equal(t, 26, again.Events[0].Participants)
	assert.Equal(t, 18, again.Events[1].Participants)
}

func TestJoinCrew(t *testing.T) {
	start := DefaultState()

	next, effects, found := JoinCrew(start, 2)
	require.True(t, found)
	assert.Equal(t, 20, next.Crews[1].Members)
	assert.Equal(t, 19, start.Crews[1].Members)

	require.Len(t, effects, 3)
	assert.Equal(t, `✅ Joined "Ocean Guardians"!`, effects[1].Message)
	assert.Equal(t, models.ActionJoinCrew, effects[2].Action)
	assert.Equal(t, 2, effects[2].ItemID)
}

func TestJoin_UnknownID(t *testing.T) {
	start := DefaultState()

	next, effects, found := JoinEvent(start, 99)
	assert.False(t, found)
	assert.Empty(t, effects)
	assert.Equal(t, start, next)

	next, effects, found = JoinCrew(start, 0)
	assert.False(t, found)
	assert.Empty(t, effects)
	assert.Equal(t, start, next)
}

func TestViewCrew(t *testing.T) {
	text, ok := ViewCrew(DefaultState(), 1)
	require.True(t, ok)
	assert.Equal(t, "🏄 Beach Warriors\n\nMembers: 12\nCleanups: 8\nLocation: Bondi, Sydney", text)

	_, ok = ViewCrew(DefaultState(), 42)
	assert.False(t, ok)
}

func TestComputeStats(t *testing.T) {
	stats := ComputeStats(DefaultState())
	assert.Equal(t, models.Stats{
		Volunteers: 12 + 19 + 7 + 24 + 18 + 32,
		Cleanups:   8 + 15 + 5,
		Crews:      3,
		Events:     3,
	}, stats)

	assert.Equal(t, models.Stats{}, ComputeStats(State{}))
}

func TestFormatEventDate(t *testing.T) {
	assert.Equal(t, "15 Jan 2025", FormatEventDate("2025-01-15"))
	assert.Equal(t, "2 Feb 2025", FormatEventDate("2025-02-02"))
	assert.Equal(t, "soon", FormatEventDate("soon"))
}
