package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"vh-server/dao/redis"
	"vh-server/db"
	"vh-server/models/event"
	"vh-server/util"
)

func newTestEventService(now time.Time) (*EventService, *redis.RedisEventsDAO) {
	client := db.NewMockRedisClient(context.Background())
	dao := redis.NewRedisEventsDAO(client)
	return NewEventService(dao, util.FixedClock{Instant: now}), dao
}

func TestUpsertEvent_AssignsID(t *testing.T) {
	es, dao := newTestEventService(testNow)

	saved, err := es.UpsertEvent("farewell", event.Event{Title: "Doom Night", Date: "2025-02-01"})
	assert.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "farewell", saved.Venue)
	assert.Equal(t, testNow.Format(time.RFC3339), saved.Created)

	events, err := dao.LoadEvents("farewell")
	assert.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestUpsertEvent_ReplacesByID(t *testing.T) {
	es, _ := newTestEventService(testNow)

	saved, err := es.UpsertEvent("farewell", event.Event{Title: "Doom Night", Date: "2025-02-01"})
	assert.NoError(t, err)

	saved.Title = "Doom Night II"
	updated, err := es.UpsertEvent("farewell", *saved)
	assert.NoError(t, err)
	assert.Equal(t, saved.ID, updated.ID)

	events, err := es.ListEvents("farewell", false, 0, 0)
	assert.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, "Doom Night II", events[0].Title)
}

func TestListEvents_SortFilterPaginate(t *testing.T) {
	es, _ := newTestEventService(testNow) // today is 2025-01-06

	seed := []event.Event{
		{Title: "Past show", Date: "2024-12-30"},
		{Title: "March show", Date: "2025-03-10"},
		{Title: "January show", Date: "2025-01-20"},
		{Title: "February show", Date: "2025-02-14"},
	}
	for _, e := range seed {
		_, err := es.UpsertEvent("howdy", e)
		assert.NoError(t, err)
	}

	all, err := es.ListEvents("howdy", false, 0, 0)
	assert.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, "Past show", all[0].Title)

	upcoming, err := es.ListEvents("howdy", true, 0, 0)
	assert.NoError(t, err)
	assert.Len(t, upcoming, 3)
	assert.Equal(t, "January show", upcoming[0].Title)
	assert.Equal(t, "March show", upcoming[2].Title)

	page, err := es.ListEvents("howdy", true, 1, 1)
	assert.NoError(t, err)
	assert.Len(t, page, 1)
	assert.Equal(t, "February show", page[0].Title)

	// Offset past the end yields an empty page, not an error.
	empty, err := es.ListEvents("howdy", true, 10, 5)
	assert.NoError(t, err)
	assert.Empty(t, empty)
}

func TestDeleteEvent_NoOpForUnknownID(t *testing.T) {
	es, _ := newTestEventService(testNow)

	saved, err := es.UpsertEvent("farewell", event.Event{Title: "Doom Night", Date: "2025-02-01"})
	assert.NoError(t, err)

	assert.NoError(t, es.DeleteEvent("farewell", "no-such-id"))
	events, _ := es.ListEvents("farewell", false, 0, 0)
	assert.Len(t, events, 1)

	assert.NoError(t, es.DeleteEvent("farewell", saved.ID))
	events, _ = es.ListEvents("farewell", false, 0, 0)
	assert.Empty(t, events)
}

func TestUpsertEvent_Validation(t *testing.T) {
	es, _ := newTestEventService(testNow)

	var verr *ValidationError

	_, err := es.UpsertEvent("", event.Event{Title: "x", Date: "2025-02-01"})
	assert.True(t, errors.As(err, &verr))

	_, err = es.UpsertEvent("farewell", event.Event{Date: "2025-02-01"})
	assert.True(t, errors.As(err, &verr))

	_, err = es.UpsertEvent("farewell", event.Event{Title: "x", Date: "someday"})
	assert.True(t, errors.As(err, &verr))
}
