package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	errorvalues "github.com/mindful/unplug/internal/error_values"
	"github.com/mindful/unplug/internal/repository"
	"github.com/mindful/unplug/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func testEntry(uid uuid.UUID, date string, total int) entity.ScreenTimeEntry {
	return entity.ScreenTimeEntry{
		UserID:         uid,
		Date:           date,
		TotalMinutes:   total,
		Pickups:        10,
		FocusMinutes:   30,
		Classification: entity.ClassifyMinutes(total),
	}
}

func TestCreateScreenTimeEntry(t *testing.T) {
	repo := repository.NewScreenTimeRepo(repository.NewStore())
	ctx := context.Background()
	uid := uuid.New()
	entry := testEntry(uid, "2024-01-01", 100)
	t.Run("successfully created", func(t *testing.T) {
		id, err := repo.Create(ctx, &entry)
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.UUID{}, id)
	})
	t.Run("one entry per day", func(t *testing.T) {
		dup := testEntry(uid, "2024-01-01", 200)
		_, err := repo.Create(ctx, &dup)
		assert.ErrorIs(t, err, errorvalues.ErrEntryExists)
	})
	t.Run("same day, different user", func(t *testing.T) {
		other := testEntry(uuid.New(), "2024-01-01", 200)
		_, err := repo.Create(ctx, &other)
		assert.NoError(t, err)
	})
}

func TestGetScreenTimeEntry(t *testing.T) {
	repo := repository.NewScreenTimeRepo(repository.NewStore())
	ctx := context.Background()
	uid := uuid.New()
	entry := testEntry(uid, "2024-01-01", 100)
	id, err := repo.Create(ctx, &entry)
	if err != nil {
		t.Fatal(err)
	}
	t.Run("by id", func(t *testing.T) {
		found, err := repo.GetByID(ctx, id)
		assert.NoError(t, err)
		assert.Equal(t, entry.TotalMinutes, found.TotalMinutes)
		assert.Equal(t, entity.TierExcellent, found.Classification)
	})
	t.Run("by user and date", func(t *testing.T) {
		found, err := repo.GetByUserAndDate(ctx, uid, "2024-01-01")
		assert.NoError(t, err)
		assert.Equal(t, id, found.ID)
	})
	t.Run("not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, errorvalues.ErrEntryNotFound)
		_, err = repo.GetByUserAndDate(ctx, uid, "2024-01-02")
		assert.ErrorIs(t, err, errorvalues.ErrEntryNotFound)
	})
}

func TestUpdateScreenTimeEntry(t *testing.T) {
	repo := repository.NewScreenTimeRepo(repository.NewStore())
	ctx := context.Background()
	uid := uuid.New()
	entry := testEntry(uid, "2024-01-01", 100)
	id, err := repo.Create(ctx, &entry)
	if err != nil {
		t.Fatal(err)
	}
	t.Run("merges only provided fields", func(t *testing.T) {
		total := 250
		tier := entity.ClassifyMinutes(total)
		updated, err := repo.Update(ctx, id, entity.ScreenTimeUpdate{
			TotalMinutes:   &total,
			Classification: &tier,
		})
		assert.NoError(t, err)
		assert.Equal(t, 250, updated.TotalMinutes)
		assert.Equal(t, entity.TierWarning, updated.Classification)
		// untouched fields survive the merge
		assert.Equal(t, entry.Pickups, updated.Pickups)
		assert.Equal(t, entry.FocusMinutes, updated.FocusMinutes)
	})
	t.Run("persists the merge", func(t *testing.T) {
		stored, err := repo.GetByID(ctx, id)
		assert.NoError(t, err)
		assert.Equal(t, 250, stored.TotalMinutes)
		assert.Equal(t, entity.TierWarning, stored.Classification)
	})
	t.Run("unexist entry", func(t *testing.T) {
		total := 10
		_, err := repo.Update(ctx, uuid.New(), entity.ScreenTimeUpdate{TotalMinutes: &total})
		assert.ErrorIs(t, err, errorvalues.ErrEntryNotFound)
	})
}

func TestAppUsageRepo(t *testing.T) {
	store := repository.NewStore()
	entries := repository.NewScreenTimeRepo(store)
	repo := repository.NewAppUsageRepo(store)
	ctx := context.Background()
	uid := uuid.New()
	entry := testEntry(uid, "2024-01-01", 100)
	entryID, err := entries.Create(ctx, &entry)
	if err != nil {
		t.Fatal(err)
	}
	t.Run("create under unexist entry", func(t *testing.T) {
		_, err := repo.Create(ctx, &entity.AppUsageEntry{ScreenTimeID: uuid.New(), AppName: "Facebook", Minutes: 10})
		assert.ErrorIs(t, err, errorvalues.ErrEntryNotFound)
	})
	t.Run("listed heaviest first", func(t *testing.T) {
		apps := []entity.AppUsageEntry{
			{ScreenTimeID: entryID, AppName: "WhatsApp", Minutes: 28, Category: "communication"},
			{ScreenTimeID: entryID, AppName: "Facebook", Minutes: 45, Category: "social"},
			{ScreenTimeID: entryID, AppName: "YouTube", Minutes: 32, Category: "entertainment"},
		}
		for i := range apps {
			_, err := repo.Create(ctx, &apps[i])
			assert.NoError(t, err)
		}
		usages, err := repo.GetByScreenTimeID(ctx, entryID)
		assert.NoError(t, err)
		assert.Equal(t, 3, len(usages))
		assert.Equal(t, "Facebook", usages[0].AppName)
		assert.Equal(t, "YouTube", usages[1].AppName)
		assert.Equal(t, "WhatsApp", usages[2].AppName)
	})
	t.Run("empty for entry without rows", func(t *testing.T) {
		other := testEntry(uid, "2024-01-02", 0)
		otherID, err := entries.Create(ctx, &other)
		assert.NoError(t, err)
		usages, err := repo.GetByScreenTimeID(ctx, otherID)
		assert.NoError(t, err)
		assert.Empty(t, usages)
	})
}
