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

func TestSettingsRepo(t *testing.T) {
	repo := repository.NewSettingsRepo(repository.NewStore())
	ctx := context.Background()
	uid := uuid.New()
	settings := entity.UserSettings{
		UserID:         uid,
		Notifications:  true,
		UsageAlerts:    true,
		FocusReminders: true,
		WeeklyReports:  true,
	}
	t.Run("create", func(t *testing.T) {
		_, err := repo.Create(ctx, &settings)
		assert.NoError(t, err)
	})
	t.Run("one record per user", func(t *testing.T) {
		dup := settings
		_, err := repo.Create(ctx, &dup)
		assert.ErrorIs(t, err, errorvalues.ErrSettingsExist)
	})
	t.Run("get by user", func(t *testing.T) {
		stored, err := repo.GetByUserID(ctx, uid)
		assert.NoError(t, err)
		assert.True(t, stored.Notifications)
		assert.False(t, stored.DarkMode)
	})
	t.Run("patch merges only provided fields", func(t *testing.T) {
		darkMode := true
		notifications := false
		updated, err := repo.Update(ctx, uid, entity.SettingsUpdate{
			DarkMode:      &darkMode,
			Notifications: &notifications,
		})
		assert.NoError(t, err)
		assert.True(t, updated.DarkMode)
		assert.False(t, updated.Notifications)
		assert.True(t, updated.UsageAlerts)
		assert.True(t, updated.WeeklyReports)
	})
	t.Run("unexist user", func(t *testing.T) {
		_, err := repo.GetByUserID(ctx, uuid.New())
		assert.ErrorIs(t, err, errorvalues.ErrSettingsNotFound)
		darkMode := true
		_, err = repo.Update(ctx, uuid.New(), entity.SettingsUpdate{DarkMode: &darkMode})
		assert.ErrorIs(t, err, errorvalues.ErrSettingsNotFound)
	})
}

func TestQuotesRepo(t *testing.T) {
	repo := repository.NewQuotesRepo(repository.NewStore())
	ctx := context.Background()
	quotes := []entity.DailyQuote{
		{Quote: "Focus on being productive instead of busy.", Author: "Tim Ferriss", Category: "productivity", IsActive: true},
		{Quote: "Technology is best when it brings people together.", Author: "Matt Mullenweg", Category: "wellness", IsActive: true},
		{Quote: "Retired quote.", Author: "Unknown", Category: "motivation", IsActive: false},
	}
	for i := range quotes {
		if _, err := repo.Create(ctx, &quotes[i]); err != nil {
			t.Fatal(err)
		}
	}
	t.Run("all quotes", func(t *testing.T) {
		all, err := repo.GetAll(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 3, len(all))
	})
	t.Run("active only", func(t *testing.T) {
		active, err := repo.GetActive(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 2, len(active))
		for _, q := range active {
			assert.True(t, q.IsActive)
		}
	})
}

func TestAchievementsRepo(t *testing.T) {
	repo := repository.NewAchievementsRepo(repository.NewStore())
	ctx := context.Background()
	uid := uuid.New()
	for _, name := range []string{"12-Day Streak", "Focus Master"} {
		_, err := repo.Create(ctx, &entity.UserAchievement{
			UserID:          uid,
			AchievementType: "streak",
			AchievementName: name,
			Description:     "test achievement",
		})
		assert.NoError(t, err)
	}
	t.Run("listed oldest first", func(t *testing.T) {
		achievements, err := repo.GetByUserID(ctx, uid)
		assert.NoError(t, err)
		assert.Equal(t, 2, len(achievements))
		for _, a := range achievements {
			assert.False(t, a.UnlockedAt.IsZero())
		}
		assert.False(t, achievements[1].UnlockedAt.Before(achievements[0].UnlockedAt))
	})
	t.Run("other user sees nothing", func(t *testing.T) {
		achievements, err := repo.GetByUserID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Empty(t, achievements)
	})
}
