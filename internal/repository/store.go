package repository

import (
	"sync"

	"github.com/google/uuid"
	"github.com/mindful/unplug/pkg/entity"
)

// Store is the process-wide in-memory record store. Every entity kind
// lives in its own keyed map; all maps and indexes are guarded by one
// mutex so that a read-modify-write issued by a repository is atomic
// with respect to other requests.
//
// A Store is created empty and passed explicitly into the repositories,
// so tests construct a fresh one instead of sharing ambient state.
type Store struct {
	mu sync.RWMutex

	users        map[uuid.UUID]*entity.User
	entries      map[uuid.UUID]*entity.ScreenTimeEntry
	appUsage     map[uuid.UUID]*entity.AppUsageEntry
	sessions     map[uuid.UUID]*entity.FocusSession
	quotes       map[uuid.UUID]*entity.DailyQuote
	achievements map[uuid.UUID]*entity.UserAchievement
	settings     map[uuid.UUID]*entity.UserSettings

	// activeSessions maps a user id to their single active focus session.
	// Maintained under mu, it is both the O(1) active lookup and the
	// enforcement point of the at-most-one-active invariant.
	activeSessions map[uuid.UUID]uuid.UUID
	// entryByUserDate maps "userID|date" to a screen time entry id,
	// enforcing the one-entry-per-day invariant.
	entryByUserDate map[string]uuid.UUID
}

func NewStore() *Store {
	return &Store{
		users:           make(map[uuid.UUID]*entity.User),
		entries:         make(map[uuid.UUID]*entity.ScreenTimeEntry),
		appUsage:        make(map[uuid.UUID]*entity.AppUsageEntry),
		sessions:        make(map[uuid.UUID]*entity.FocusSession),
		quotes:          make(map[uuid.UUID]*entity.DailyQuote),
		achievements:    make(map[uuid.UUID]*entity.UserAchievement),
		settings:        make(map[uuid.UUID]*entity.UserSettings),
		activeSessions:  make(map[uuid.UUID]uuid.UUID),
		entryByUserDate: make(map[string]uuid.UUID),
	}
}

func userDateKey(uid uuid.UUID, date string) string {
	return uid.String() + "|" + date
}

// Repositories hand out copies so callers can't mutate stored records
// behind the store's back.

func copyUser(u *entity.User) *entity.User {
	c := *u
	return &c
}

func copyEntry(e *entity.ScreenTimeEntry) *entity.ScreenTimeEntry {
	c := *e
	return &c
}

func copyAppUsage(a *entity.AppUsageEntry) *entity.AppUsageEntry {
	c := *a
	return &c
}

func copySession(s *entity.FocusSession) *entity.FocusSession {
	c := *s
	if s.EndTime != nil {
		end := *s.EndTime
		c.EndTime = &end
	}
	c.BlockedApps = append([]string(nil), s.BlockedApps...)
	return &c
}

func copyQuote(q *entity.DailyQuote) *entity.DailyQuote {
	c := *q
	return &c
}

func copyAchievement(a *entity.UserAchievement) *entity.UserAchievement {
	c := *a
	return &c
}

func copySettings(s *entity.UserSettings) *entity.UserSettings {
	c := *s
	return &c
}
