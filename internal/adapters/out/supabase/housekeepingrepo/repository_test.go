package housekeepingrepo_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"concierge/internal/adapters/out/supabase"
	"concierge/internal/adapters/out/supabase/housekeepingrepo"
	"concierge/internal/core/domain/model/housekeeping"
	"concierge/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepository(t *testing.T, handler http.HandlerFunc) *housekeepingrepo.Repository {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := supabase.NewClient(
		supabase.Config{BaseURL: server.URL, APIKey: "test-key"},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	require.NoError(t, err)

	repo, err := housekeepingrepo.NewRepository(client)
	require.NoError(t, err)
	return repo
}

func TestRepository_FindAll_PushesFiltersDown(t *testing.T) {
	repo := newRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/housekeeping_schedule", r.URL.Path)
		assert.Equal(t, "eq.2026-08-29", r.URL.Query().Get("scheduled_date"))
		assert.Equal(t, "eq.scheduled", r.URL.Query().Get("status"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{
			"schedule_id": 5,
			"room_id": 203,
			"scheduled_date": "2026-08-29",
			"status": "scheduled",
			"staff_assigned": "maria",
			"completed_at": null
		}]`))
	})

	date := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	schedules, err := repo.FindAll(context.Background(), ports.HousekeepingFilter{
		Date:   &date,
		Status: housekeeping.StatusScheduled,
	})

	require.NoError(t, err)
	require.Len(t, schedules, 1)
	assert.Equal(t, int64(5), schedules[0].ID())
	assert.Equal(t, "2026-08-29", schedules[0].ScheduledDate().Format("2006-01-02"))
}

func TestRepository_FindAll_NullScheduledDate(t *testing.T) {
	// Rows with a null scheduled_date column decode to the zero date rather
	// than failing the whole read.
	repo := newRepository(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"schedule_id": 5, "room_id": 203, "scheduled_date": null, "status": "scheduled", "completed_at": null},
			{"schedule_id": 6, "room_id": 204, "scheduled_date": "2026-08-29", "status": "scheduled", "completed_at": null}
		]`))
	})

	schedules, err := repo.FindAll(context.Background(), ports.HousekeepingFilter{})

	require.NoError(t, err)
	require.Len(t, schedules, 2)
	assert.True(t, schedules[0].ScheduledDate().IsZero())
	assert.Equal(t, "2026-08-29", schedules[1].ScheduledDate().Format("2006-01-02"))
}

func TestRepository_UpdateStatus_Completed(t *testing.T) {
	completedAt := time.Date(2026, 8, 29, 15, 0, 0, 0, time.UTC)

	repo := newRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "eq.5", r.URL.Query().Get("schedule_id"))

		var patch map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&patch))
		assert.Equal(t, "completed", patch["status"])
		assert.Equal(t, "2026-08-29T15:00:00Z", patch["completed_at"])
		assert.Equal(t, "left extra towels", patch["notes"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{
			"schedule_id": 5,
			"room_id": 203,
			"scheduled_date": "2026-08-29",
			"status": "completed",
			"notes": "left extra towels",
			"completed_at": "2026-08-29T15:00:00Z"
		}]`))
	})

	updated, err := repo.UpdateStatus(context.Background(), 5, housekeeping.StatusCompleted,
		&completedAt, "left extra towels")

	require.NoError(t, err)
	assert.Equal(t, housekeeping.StatusCompleted, updated.Status())
	require.NotNil(t, updated.CompletedAt())
}

func TestRepository_SetRoomState(t *testing.T) {
	today := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	repo := newRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "eq.101", r.URL.Query().Get("room_id"))

		var patch map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&patch))
		assert.Equal(t, "cleaned", patch["status"])
		assert.Equal(t, "2026-08-29", patch["scheduled_date"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{
			"schedule_id": 5,
			"room_id": 101,
			"scheduled_date": "2026-08-29",
			"status": "cleaned",
			"completed_at": null
		}]`))
	})

	updated, err := repo.SetRoomState(context.Background(), 101, housekeeping.RoomCleaned, today)

	require.NoError(t, err)
	require.Len(t, updated, 1)
	assert.Equal(t, housekeeping.Status("cleaned"), updated[0].Status())
}
