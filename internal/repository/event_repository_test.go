package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eric-317/StudySync/internal/model"
)

func timePtr(s string) *string { return &s }

func TestEventInsertReturnsID(t *testing.T) {
	db := testDB(t)
	repo := NewEventRepository(db)
	user := testUser(t, db, "events@test")
	ctx := context.Background()

	event, err := repo.Insert(ctx, &model.CalendarEvent{
		UserID:      user.ID,
		EventDate:   "2024-04-01",
		EventTime:   timePtr("10:00:00"),
		Description: "lecture",
	})
	require.NoError(t, err)
	assert.NotZero(t, event.ID)
	assert.Equal(t, model.DefaultEventType, event.EventType, "empty event type falls back to the default")
}

func TestEventOrderingAllDayFirst(t *testing.T) {
	db := testDB(t)
	repo := NewEventRepository(db)
	user := testUser(t, db, "ordering@test")
	ctx := context.Background()

	for _, e := range []model.CalendarEvent{
		{UserID: user.ID, EventDate: "2024-04-02", EventTime: timePtr("14:00:00"), Description: "late"},
		{UserID: user.ID, EventDate: "2024-04-02", EventTime: nil, Description: "all day"},
		{UserID: user.ID, EventDate: "2024-04-02", EventTime: timePtr("09:00:00"), Description: "early"},
	} {
		event := e
		_, err := repo.Insert(ctx, &event)
		require.NoError(t, err)
	}

	events, err := repo.FindByDateAndUser(ctx, "2024-04-02", user.ID)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "all day", events[0].Description)
	assert.Equal(t, "early", events[1].Description)
	assert.Equal(t, "late", events[2].Description)
}

func TestEventOwnerScoping(t *testing.T) {
	db := testDB(t)
	repo := NewEventRepository(db)
	alice := testUser(t, db, "alice@events.test")
	bob := testUser(t, db, "bob@events.test")
	ctx := context.Background()

	_, err := repo.Insert(ctx, &model.CalendarEvent{UserID: alice.ID, EventDate: "2024-04-03", Description: "hers"})
	require.NoError(t, err)
	_, err = repo.Insert(ctx, &model.CalendarEvent{UserID: bob.ID, EventDate: "2024-04-03", Description: "his"})
	require.NoError(t, err)

	hers, err := repo.FindByDateAndUser(ctx, "2024-04-03", alice.ID)
	require.NoError(t, err)
	require.Len(t, hers, 1)
	assert.Equal(t, "hers", hers[0].Description)

	everyone, err := repo.FindByDate(ctx, AdminScope{}, "2024-04-03")
	require.NoError(t, err)
	assert.Len(t, everyone, 2)
}

func TestEventUpdateAndDelete(t *testing.T) {
	db := testDB(t)
	repo := NewEventRepository(db)
	user := testUser(t, db, "mutate@events.test")
	ctx := context.Background()

	event, err := repo.Insert(ctx, &model.CalendarEvent{
		UserID: user.ID, EventDate: "2024-04-04", EventTime: timePtr("08:00:00"), Description: "draft",
	})
	require.NoError(t, err)

	event.Description = "final"
	event.EventTime = nil // becomes all-day
	require.NoError(t, repo.Update(ctx, event))

	events, err := repo.FindByDateAndUser(ctx, "2024-04-04", user.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "final", events[0].Description)
	assert.True(t, events[0].AllDay())

	require.NoError(t, repo.Delete(ctx, event.ID))
	events, err = repo.FindByDateAndUser(ctx, "2024-04-04", user.ID)
	require.NoError(t, err)
	assert.Empty(t, events)

	missing := &model.CalendarEvent{ID: 9999, EventDate: "2024-04-04"}
	assert.ErrorIs(t, repo.Update(ctx, missing), ErrNotFound)
}
