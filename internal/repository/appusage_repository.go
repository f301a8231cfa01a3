package repository

import (
	"context"
	"log"
	"sort"

	"github.com/google/uuid"
	errorvalues "github.com/mindful/unplug/internal/error_values"
	"github.com/mindful/unplug/pkg/entity"
)

type AppUsageRepository struct {
	store *Store
}

func NewAppUsageRepo(store *Store) *AppUsageRepository {
	if store == nil {
		log.Fatal("provided nil store for appUsageRepo")
	}
	return &AppUsageRepository{
		store: store,
	}
}

func (ar *AppUsageRepository) Create(ctx context.Context, usage *entity.AppUsageEntry) (uuid.UUID, error) {
	if usage == nil {
		return uuid.UUID{}, errorvalues.ErrValidation
	}
	ar.store.mu.Lock()
	defer ar.store.mu.Unlock()
	if _, ok := ar.store.entries[usage.ScreenTimeID]; !ok {
		return uuid.UUID{}, errorvalues.ErrEntryNotFound
	}
	stored := copyAppUsage(usage)
	stored.ID = uuid.New()
	ar.store.appUsage[stored.ID] = stored
	return stored.ID, nil
}

func (ar *AppUsageRepository) GetByScreenTimeID(ctx context.Context, screenTimeID uuid.UUID) ([]*entity.AppUsageEntry, error) {
	ar.store.mu.RLock()
	defer ar.store.mu.RUnlock()
	usages := []*entity.AppUsageEntry{}
	for _, usage := range ar.store.appUsage {
		if usage.ScreenTimeID == screenTimeID {
			usages = append(usages, copyAppUsage(usage))
		}
	}
	// Heaviest app first, the order the breakdown view shows
	sort.Slice(usages, func(i, j int) bool {
		if usages[i].Minutes != usages[j].Minutes {
			return usages[i].Minutes > usages[j].Minutes
		}
		return usages[i].AppName < usages[j].AppName
	})
	return usages, nil
}
