package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/mindful/unplug/pkg/entity"
)

// ScreenTimeUpdateRequest upserts the counters of a user's calendar day.
// Nil counters keep their stored value (or default to zero on create).
type ScreenTimeUpdateRequest struct {
	UserID       uuid.UUID
	Date         string `validate:"required,datetime=2006-01-02"`
	TotalMinutes *int   `validate:"omitempty,gte=0"`
	Pickups      *int   `validate:"omitempty,gte=0"`
	FocusMinutes *int   `validate:"omitempty,gte=0"`
}

type StartFocusRequest struct {
	UserID        uuid.UUID
	TargetMinutes int `validate:"required,gt=0"`
	BlockedApps   []string
}

type ScreenTimeServiceI interface {
	// Returns the entry for (uid, date), creating a zeroed one on first read
	GetOrCreateDaily(ctx context.Context, uid uuid.UUID, date string) (*entity.ScreenTimeEntry, error)
	// Validates the request, upserts the counters and recomputes the
	// classification from the resulting total before persisting
	ApplyUpdate(ctx context.Context, req *ScreenTimeUpdateRequest) (*entity.ScreenTimeEntry, error)
	// Lists recorded entries from startDate through startDate+6, ascending.
	// Days with no entry are omitted, not synthesized
	WeeklyWindow(ctx context.Context, uid uuid.UUID, startDate string) ([]*entity.ScreenTimeEntry, error)
	// Lists the app usage breakdown of a day, empty when no entry exists yet
	AppUsageForDay(ctx context.Context, uid uuid.UUID, date string) ([]*entity.AppUsageEntry, error)
}

type FocusServiceI interface {
	// Starts a session; conflicts while the user already has an active one
	Start(ctx context.Context, req *StartFocusRequest) (*entity.FocusSession, error)
	// Ends a session, deriving actual minutes from elapsed time. Ending an
	// already-ended session returns it unchanged
	End(ctx context.Context, sessionID uuid.UUID) (*entity.FocusSession, error)
	// Returns the user's active session, or nil when idle
	Active(ctx context.Context, uid uuid.UUID) (*entity.FocusSession, error)
	// Lists the user's sessions; date filters by start day when non-empty
	Sessions(ctx context.Context, uid uuid.UUID, date string) ([]*entity.FocusSession, error)
}

type UserServiceI interface {
	// Returns the acting user. Stand-in for an authenticated caller
	Current(ctx context.Context) (*entity.User, error)
	GetByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	GetSettings(ctx context.Context, uid uuid.UUID) (*entity.UserSettings, error)
	UpdateSettings(ctx context.Context, uid uuid.UUID, update entity.SettingsUpdate) (*entity.UserSettings, error)
	GetAchievements(ctx context.Context, uid uuid.UUID) ([]*entity.UserAchievement, error)
}

type QuoteServiceI interface {
	// Picks one active quote uniformly at random
	Daily(ctx context.Context) (*entity.DailyQuote, error)
	All(ctx context.Context) ([]*entity.DailyQuote, error)
}
