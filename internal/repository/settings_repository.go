package repository

import (
	"context"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/mindful/unplug/internal/error_values"
	"github.com/mindful/unplug/pkg/entity"
)

type SettingsRepository struct {
	store *Store
}

func NewSettingsRepo(store *Store) *SettingsRepository {
	if store == nil {
		log.Fatal("provided nil store for settingsRepo")
	}
	return &SettingsRepository{
		store: store,
	}
}

func (sr *SettingsRepository) Create(ctx context.Context, settings *entity.UserSettings) (uuid.UUID, error) {
	if settings == nil {
		return uuid.UUID{}, errorvalues.ErrValidation
	}
	sr.store.mu.Lock()
	defer sr.store.mu.Unlock()
	for _, s := range sr.store.settings {
		if s.UserID == settings.UserID {
			return uuid.UUID{}, errorvalues.ErrSettingsExist
		}
	}
	stored := copySettings(settings)
	stored.ID = uuid.New()
	sr.store.settings[stored.ID] = stored
	return stored.ID, nil
}

func (sr *SettingsRepository) GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.UserSettings, error) {
	sr.store.mu.RLock()
	defer sr.store.mu.RUnlock()
	for _, settings := range sr.store.settings {
		if settings.UserID == uid {
			return copySettings(settings), nil
		}
	}
	return nil, errorvalues.ErrSettingsNotFound
}

func (sr *SettingsRepository) Update(ctx context.Context, uid uuid.UUID, update entity.SettingsUpdate) (*entity.UserSettings, error) {
	sr.store.mu.Lock()
	defer sr.store.mu.Unlock()
	for id, settings := range sr.store.settings {
		if settings.UserID != uid {
			continue
		}
		merged := copySettings(settings)
		if update.Notifications != nil {
			merged.Notifications = *update.Notifications
		}
		if update.DarkMode != nil {
			merged.DarkMode = *update.DarkMode
		}
		if update.UsageAlerts != nil {
			merged.UsageAlerts = *update.UsageAlerts
		}
		if update.FocusReminders != nil {
			merged.FocusReminders = *update.FocusReminders
		}
		if update.WeeklyReports != nil {
			merged.WeeklyReports = *update.WeeklyReports
		}
		sr.store.settings[id] = merged
		return copySettings(merged), nil
	}
	return nil, errorvalues.ErrSettingsNotFound
}
