package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/mindful/unplug/internal/error_values"
	"github.com/mindful/unplug/internal/repository"
	"github.com/mindful/unplug/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func testSession(uid uuid.UUID, start time.Time) entity.FocusSession {
	return entity.FocusSession{
		UserID:        uid,
		StartTime:     start,
		TargetMinutes: 25,
		BlockedApps:   []string{"Instagram", "YouTube"},
	}
}

func TestCreateFocusSession(t *testing.T) {
	repo := repository.NewFocusSessionsRepo(repository.NewStore())
	ctx := context.Background()
	uid := uuid.New()
	session := testSession(uid, time.Now())
	t.Run("successfully created", func(t *testing.T) {
		id, err := repo.Create(ctx, &session)
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.UUID{}, id)
	})
	t.Run("second active session rejected", func(t *testing.T) {
		dup := testSession(uid, time.Now())
		_, err := repo.Create(ctx, &dup)
		assert.ErrorIs(t, err, errorvalues.ErrSessionActive)
	})
	t.Run("other user unaffected", func(t *testing.T) {
		other := testSession(uuid.New(), time.Now())
		_, err := repo.Create(ctx, &other)
		assert.NoError(t, err)
	})
	t.Run("ended session doesn't occupy the slot", func(t *testing.T) {
		end := time.Now()
		past := testSession(uid, end.Add(-time.Hour))
		past.EndTime = &end
		past.IsCompleted = true
		_, err := repo.Create(ctx, &past)
		assert.NoError(t, err)
	})
}

func TestGetActiveFocusSession(t *testing.T) {
	repo := repository.NewFocusSessionsRepo(repository.NewStore())
	ctx := context.Background()
	uid := uuid.New()
	t.Run("idle user", func(t *testing.T) {
		_, err := repo.GetActive(ctx, uid)
		assert.ErrorIs(t, err, errorvalues.ErrNoActiveSession)
	})
	session := testSession(uid, time.Now())
	id, err := repo.Create(ctx, &session)
	if err != nil {
		t.Fatal(err)
	}
	t.Run("active user", func(t *testing.T) {
		active, err := repo.GetActive(ctx, uid)
		assert.NoError(t, err)
		assert.Equal(t, id, active.ID)
		assert.Nil(t, active.EndTime)
	})
	t.Run("idle again after finish", func(t *testing.T) {
		_, err := repo.Finish(ctx, id, time.Now())
		assert.NoError(t, err)
		_, err = repo.GetActive(ctx, uid)
		assert.ErrorIs(t, err, errorvalues.ErrNoActiveSession)
	})
}

func TestFinishFocusSession(t *testing.T) {
	repo := repository.NewFocusSessionsRepo(repository.NewStore())
	ctx := context.Background()
	uid := uuid.New()
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	end := start.Add(25 * time.Minute)
	session := testSession(uid, start)
	id, err := repo.Create(ctx, &session)
	if err != nil {
		t.Fatal(err)
	}
	t.Run("sets terminal fields", func(t *testing.T) {
		finished, err := repo.Finish(ctx, id, end)
		assert.NoError(t, err)
		assert.NotNil(t, finished.EndTime)
		assert.Equal(t, end, *finished.EndTime)
		assert.True(t, finished.IsCompleted)
		assert.Equal(t, 25, finished.ActualMinutes)
	})
	t.Run("repeated finish is a no-op", func(t *testing.T) {
		again, err := repo.Finish(ctx, id, end.Add(time.Hour))
		assert.NoError(t, err)
		assert.Equal(t, end, *again.EndTime)
		assert.Equal(t, 25, again.ActualMinutes)
	})
	t.Run("rounds elapsed time to whole minutes", func(t *testing.T) {
		other := testSession(uuid.New(), start)
		otherID, err := repo.Create(ctx, &other)
		assert.NoError(t, err)
		finished, err := repo.Finish(ctx, otherID, start.Add(25*time.Minute+40*time.Second))
		assert.NoError(t, err)
		assert.Equal(t, 26, finished.ActualMinutes)
	})
	t.Run("unexist session", func(t *testing.T) {
		_, err := repo.Finish(ctx, uuid.New(), end)
		assert.ErrorIs(t, err, errorvalues.ErrSessionNotFound)
	})
}

func TestConcurrentStarts(t *testing.T) {
	repo := repository.NewFocusSessionsRepo(repository.NewStore())
	ctx := context.Background()
	uid := uuid.New()
	var wg sync.WaitGroup
	var mu sync.Mutex
	created, conflicts := 0, 0
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			session := testSession(uid, time.Now())
			_, err := repo.Create(ctx, &session)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				created++
			} else if assert.ErrorIs(t, err, errorvalues.ErrSessionActive) {
				conflicts++
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, created)
	assert.Equal(t, 15, conflicts)
	sessions, err := repo.GetByUserID(ctx, uid, "")
	assert.NoError(t, err)
	assert.Equal(t, 1, len(sessions))
}

func TestGetSessionsByUser(t *testing.T) {
	repo := repository.NewFocusSessionsRepo(repository.NewStore())
	ctx := context.Background()
	uid := uuid.New()
	day1 := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	for i, start := range []time.Time{day2, day1, day1.Add(4 * time.Hour)} {
		session := testSession(uid, start)
		end := start.Add(30 * time.Minute)
		session.EndTime = &end
		session.IsCompleted = true
		session.ActualMinutes = 30
		if _, err := repo.Create(ctx, &session); err != nil {
			t.Fatalf("creating session %d: %v", i, err)
		}
	}
	t.Run("all sessions, oldest first", func(t *testing.T) {
		sessions, err := repo.GetByUserID(ctx, uid, "")
		assert.NoError(t, err)
		assert.Equal(t, 3, len(sessions))
		for i := 1; i < len(sessions); i++ {
			assert.True(t, sessions[i-1].StartTime.Before(sessions[i].StartTime))
		}
	})
	t.Run("filtered by day", func(t *testing.T) {
		sessions, err := repo.GetByUserID(ctx, uid, "2024-01-01")
		assert.NoError(t, err)
		assert.Equal(t, 2, len(sessions))
	})
	t.Run("unknown user", func(t *testing.T) {
		sessions, err := repo.GetByUserID(ctx, uuid.New(), "")
		assert.NoError(t, err)
		assert.Empty(t, sessions)
	})
}
