package repository

import (
	"context"
	"log"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/mindful/unplug/internal/error_values"
	"github.com/mindful/unplug/pkg/entity"
)

const dateLayout = "2006-01-02"

type FocusSessionsRepository struct {
	store *Store
}

func NewFocusSessionsRepo(store *Store) *FocusSessionsRepository {
	if store == nil {
		log.Fatal("provided nil store for focusSessionsRepo")
	}
	return &FocusSessionsRepository{
		store: store,
	}
}

func (fr *FocusSessionsRepository) Create(ctx context.Context, session *entity.FocusSession) (uuid.UUID, error) {
	if session == nil {
		return uuid.UUID{}, errorvalues.ErrValidation
	}
	fr.store.mu.Lock()
	defer fr.store.mu.Unlock()
	if session.EndTime == nil {
		if _, ok := fr.store.activeSessions[session.UserID]; ok {
			return uuid.UUID{}, errorvalues.ErrSessionActive
		}
	}
	stored := copySession(session)
	stored.ID = uuid.New()
	fr.store.sessions[stored.ID] = stored
	if stored.EndTime == nil {
		fr.store.activeSessions[stored.UserID] = stored.ID
	}
	return stored.ID, nil
}

func (fr *FocusSessionsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.FocusSession, error) {
	fr.store.mu.RLock()
	defer fr.store.mu.RUnlock()
	session, ok := fr.store.sessions[id]
	if !ok {
		return nil, errorvalues.ErrSessionNotFound
	}
	return copySession(session), nil
}

func (fr *FocusSessionsRepository) GetActive(ctx context.Context, uid uuid.UUID) (*entity.FocusSession, error) {
	fr.store.mu.RLock()
	defer fr.store.mu.RUnlock()
	id, ok := fr.store.activeSessions[uid]
	if !ok {
		return nil, errorvalues.ErrNoActiveSession
	}
	return copySession(fr.store.sessions[id]), nil
}

// Finish sets the terminal fields of a session and releases its slot in
// the active index. ActualMinutes is always derived from elapsed time,
// overriding whatever the caller may have put there. A session that has
// already ended is returned unchanged, so a repeated end can't overwrite
// the recorded end time.
func (fr *FocusSessionsRepository) Finish(ctx context.Context, id uuid.UUID, end time.Time) (*entity.FocusSession, error) {
	fr.store.mu.Lock()
	defer fr.store.mu.Unlock()
	session, ok := fr.store.sessions[id]
	if !ok {
		return nil, errorvalues.ErrSessionNotFound
	}
	if session.EndTime != nil {
		return copySession(session), nil
	}
	finished := copySession(session)
	finished.EndTime = &end
	finished.IsCompleted = true
	finished.ActualMinutes = int(math.Round(end.Sub(finished.StartTime).Minutes()))
	fr.store.sessions[id] = finished
	if fr.store.activeSessions[finished.UserID] == id {
		delete(fr.store.activeSessions, finished.UserID)
	}
	return copySession(finished), nil
}

func (fr *FocusSessionsRepository) GetByUserID(ctx context.Context, uid uuid.UUID, date string) ([]*entity.FocusSession, error) {
	fr.store.mu.RLock()
	defer fr.store.mu.RUnlock()
	sessions := []*entity.FocusSession{}
	for _, session := range fr.store.sessions {
		if session.UserID != uid {
			continue
		}
		if date != "" && session.StartTime.Format(dateLayout) != date {
			continue
		}
		sessions = append(sessions, copySession(session))
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].StartTime.Before(sessions[j].StartTime)
	})
	return sessions, nil
}
