package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mindful/unplug/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user, enforcing username and email uniqueness
	Create(ctx context.Context, user *entity.User) (uuid.UUID, error)
	// Looks up user by uid
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Looks up user by username
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	// Looks up user by email
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Returns the earliest-created user. Identity stand-in until real auth
	First(ctx context.Context) (*entity.User, error)
	// Replaces user's record (ID in user is necessary)
	Update(ctx context.Context, user *entity.User) error
}

type ScreenTimeRepositoryI interface {
	// Creates new entry, enforcing at most one per (user, date)
	Create(ctx context.Context, entry *entity.ScreenTimeEntry) (uuid.UUID, error)
	// Searches entry with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ScreenTimeEntry, error)
	// Looks up the entry for a user's calendar day
	GetByUserAndDate(ctx context.Context, uid uuid.UUID, date string) (*entity.ScreenTimeEntry, error)
	// Merges non-nil fields into the stored entry and returns the result
	Update(ctx context.Context, id uuid.UUID, update entity.ScreenTimeUpdate) (*entity.ScreenTimeEntry, error)
}

type AppUsageRepositoryI interface {
	// Creates new app usage row under a screen time entry
	Create(ctx context.Context, usage *entity.AppUsageEntry) (uuid.UUID, error)
	// Lists usage rows of an entry, heaviest app first
	GetByScreenTimeID(ctx context.Context, screenTimeID uuid.UUID) ([]*entity.AppUsageEntry, error)
}

type FocusSessionsRepositoryI interface {
	// Creates new session. For an active session (nil EndTime) the check
	// against an existing active session and the insert happen under one
	// lock, keeping the at-most-one-active invariant race free
	Create(ctx context.Context, session *entity.FocusSession) (uuid.UUID, error)
	// Searches session with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.FocusSession, error)
	// Returns the user's active session via the index, O(1)
	GetActive(ctx context.Context, uid uuid.UUID) (*entity.FocusSession, error)
	// Ends the session: sets end time, completion flag and the actual
	// minutes derived from elapsed time. Already-ended sessions are
	// returned unchanged
	Finish(ctx context.Context, id uuid.UUID, end time.Time) (*entity.FocusSession, error)
	// Lists user's sessions, oldest first. Empty date means all days
	GetByUserID(ctx context.Context, uid uuid.UUID, date string) ([]*entity.FocusSession, error)
}

type QuotesRepositoryI interface {
	// Creates new quote
	Create(ctx context.Context, quote *entity.DailyQuote) (uuid.UUID, error)
	// Lists every quote
	GetAll(ctx context.Context) ([]*entity.DailyQuote, error)
	// Lists quotes eligible for the daily pick
	GetActive(ctx context.Context) ([]*entity.DailyQuote, error)
}

type AchievementsRepositoryI interface {
	// Creates new achievement (append-only collection)
	Create(ctx context.Context, achievement *entity.UserAchievement) (uuid.UUID, error)
	// Lists user's achievements, oldest unlock first
	GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.UserAchievement, error)
}

type SettingsRepositoryI interface {
	// Creates settings record, enforcing at most one per user
	Create(ctx context.Context, settings *entity.UserSettings) (uuid.UUID, error)
	// Looks up user's settings
	GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.UserSettings, error)
	// Merges non-nil fields into the stored settings and returns the result
	Update(ctx context.Context, uid uuid.UUID, update entity.SettingsUpdate) (*entity.UserSettings, error)
}
