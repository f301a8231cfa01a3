package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/mindful/unplug/internal/repository"
	"github.com/mindful/unplug/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	store := repository.NewStore()
	ctx := context.Background()
	err := repository.Seed(ctx, store)
	require.NoError(t, err)

	user, err := repository.NewUsersRepo(store).First(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sarah_johnson", user.Username)
	assert.True(t, user.IsPremium)
	assert.Equal(t, 240, user.DailyGoalMinutes)

	quotes, err := repository.NewQuotesRepo(store).GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, len(quotes))

	today := time.Now().Format("2006-01-02")
	entry, err := repository.NewScreenTimeRepo(store).GetByUserAndDate(ctx, user.ID, today)
	require.NoError(t, err)
	assert.Equal(t, 154, entry.TotalMinutes)
	assert.Equal(t, 47, entry.Pickups)
	assert.Equal(t, 105, entry.FocusMinutes)
	assert.Equal(t, entity.TierGood, entry.Classification)

	usages, err := repository.NewAppUsageRepo(store).GetByScreenTimeID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, len(usages))
	assert.Equal(t, "Facebook", usages[0].AppName)

	settings, err := repository.NewSettingsRepo(store).GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, settings.Notifications)
	assert.False(t, settings.DarkMode)

	achievements, err := repository.NewAchievementsRepo(store).GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, len(achievements))
}
