package repository

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/mindful/unplug/internal/error_values"
	"github.com/mindful/unplug/pkg/entity"
)

type ScreenTimeRepository struct {
	store *Store
}

func NewScreenTimeRepo(store *Store) *ScreenTimeRepository {
	if store == nil {
		log.Fatal("provided nil store for screenTimeRepo")
	}
	return &ScreenTimeRepository{
		store: store,
	}
}

func (sr *ScreenTimeRepository) Create(ctx context.Context, entry *entity.ScreenTimeEntry) (uuid.UUID, error) {
	if entry == nil {
		return uuid.UUID{}, errorvalues.ErrValidation
	}
	sr.store.mu.Lock()
	defer sr.store.mu.Unlock()
	key := userDateKey(entry.UserID, entry.Date)
	if _, ok := sr.store.entryByUserDate[key]; ok {
		return uuid.UUID{}, errorvalues.ErrEntryExists
	}
	stored := copyEntry(entry)
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	sr.store.entries[stored.ID] = stored
	sr.store.entryByUserDate[key] = stored.ID
	return stored.ID, nil
}

func (sr *ScreenTimeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ScreenTimeEntry, error) {
	sr.store.mu.RLock()
	defer sr.store.mu.RUnlock()
	entry, ok := sr.store.entries[id]
	if !ok {
		return nil, errorvalues.ErrEntryNotFound
	}
	return copyEntry(entry), nil
}

func (sr *ScreenTimeRepository) GetByUserAndDate(ctx context.Context, uid uuid.UUID, date string) (*entity.ScreenTimeEntry, error) {
	sr.store.mu.RLock()
	defer sr.store.mu.RUnlock()
	id, ok := sr.store.entryByUserDate[userDateKey(uid, date)]
	if !ok {
		return nil, errorvalues.ErrEntryNotFound
	}
	return copyEntry(sr.store.entries[id]), nil
}

// Update merges the non-nil fields of update into the stored entry.
// The read-merge-write runs under the write lock, so concurrent updates
// never interleave mid-merge.
func (sr *ScreenTimeRepository) Update(ctx context.Context, id uuid.UUID, update entity.ScreenTimeUpdate) (*entity.ScreenTimeEntry, error) {
	sr.store.mu.Lock()
	defer sr.store.mu.Unlock()
	entry, ok := sr.store.entries[id]
	if !ok {
		return nil, errorvalues.ErrEntryNotFound
	}
	merged := copyEntry(entry)
	if update.TotalMinutes != nil {
		merged.TotalMinutes = *update.TotalMinutes
	}
	if update.Pickups != nil {
		merged.Pickups = *update.Pickups
	}
	if update.FocusMinutes != nil {
		merged.FocusMinutes = *update.FocusMinutes
	}
	if update.Classification != nil {
		merged.Classification = *update.Classification
	}
	sr.store.entries[id] = merged
	return copyEntry(merged), nil
}
