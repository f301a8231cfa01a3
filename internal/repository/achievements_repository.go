package repository

import (
	"bytes"
	"context"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/mindful/unplug/internal/error_values"
	"github.com/mindful/unplug/pkg/entity"
)

type AchievementsRepository struct {
	store *Store
}

func NewAchievementsRepo(store *Store) *AchievementsRepository {
	if store == nil {
		log.Fatal("provided nil store for achievementsRepo")
	}
	return &AchievementsRepository{
		store: store,
	}
}

func (ar *AchievementsRepository) Create(ctx context.Context, achievement *entity.UserAchievement) (uuid.UUID, error) {
	if achievement == nil {
		return uuid.UUID{}, errorvalues.ErrValidation
	}
	ar.store.mu.Lock()
	defer ar.store.mu.Unlock()
	stored := copyAchievement(achievement)
	stored.ID = uuid.New()
	if stored.UnlockedAt.IsZero() {
		stored.UnlockedAt = time.Now()
	}
	ar.store.achievements[stored.ID] = stored
	return stored.ID, nil
}

func (ar *AchievementsRepository) GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.UserAchievement, error) {
	ar.store.mu.RLock()
	defer ar.store.mu.RUnlock()
	achievements := []*entity.UserAchievement{}
	for _, achievement := range ar.store.achievements {
		if achievement.UserID == uid {
			achievements = append(achievements, copyAchievement(achievement))
		}
	}
	sort.Slice(achievements, func(i, j int) bool {
		if !achievements[i].UnlockedAt.Equal(achievements[j].UnlockedAt) {
			return achievements[i].UnlockedAt.Before(achievements[j].UnlockedAt)
		}
		return bytes.Compare(achievements[i].ID[:], achievements[j].ID[:]) < 0
	})
	return achievements, nil
}
