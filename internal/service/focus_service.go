package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	errorvalues "github.com/mindful/unplug/internal/error_values"
	"github.com/mindful/unplug/internal/repository"
	"github.com/mindful/unplug/pkg/entity"
)

// FocusService drives the per-user focus session state machine: a user
// is either idle or has exactly one session with no end time.
type FocusService struct {
	repo repository.FocusSessionsRepositoryI
	now  func() time.Time
}

func NewFocusService(sessionsRepo repository.FocusSessionsRepositoryI) *FocusService {
	return NewFocusServiceWithClock(sessionsRepo, time.Now)
}

// NewFocusServiceWithClock lets tests control session timestamps.
func NewFocusServiceWithClock(sessionsRepo repository.FocusSessionsRepositoryI, clock func() time.Time) *FocusService {
	if sessionsRepo == nil {
		log.Fatal("provided nil sessionsRepo")
	}
	if clock == nil {
		clock = time.Now
	}
	return &FocusService{
		repo: sessionsRepo,
		now:  clock,
	}
}

func (fs *FocusService) Start(ctx context.Context, req *StartFocusRequest) (*entity.FocusSession, error) {
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			return nil, errors.Join(errorvalues.ErrValidation, validationError)
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	blocked := req.BlockedApps
	if blocked == nil {
		blocked = []string{}
	}
	id, err := fs.repo.Create(ctx, &entity.FocusSession{
		UserID:        req.UserID,
		StartTime:     fs.now(),
		TargetMinutes: req.TargetMinutes,
		ActualMinutes: 0,
		IsCompleted:   false,
		BlockedApps:   blocked,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrSessionActive) {
			return nil, err
		}
		return nil, errors.New("focus sessions repository error: " + err.Error())
	}
	session, err := fs.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("focus sessions repository error: " + err.Error())
	}
	return session, nil
}

func (fs *FocusService) End(ctx context.Context, sessionID uuid.UUID) (*entity.FocusSession, error) {
	session, err := fs.repo.Finish(ctx, sessionID, fs.now())
	if err != nil {
		if errors.Is(err, errorvalues.ErrSessionNotFound) {
			return nil, err
		}
		return nil, errors.New("focus sessions repository error: " + err.Error())
	}
	return session, nil
}

func (fs *FocusService) Active(ctx context.Context, uid uuid.UUID) (*entity.FocusSession, error) {
	session, err := fs.repo.GetActive(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNoActiveSession) {
			return nil, nil
		}
		return nil, errors.New("focus sessions repository error: " + err.Error())
	}
	return session, nil
}

func (fs *FocusService) Sessions(ctx context.Context, uid uuid.UUID, date string) ([]*entity.FocusSession, error) {
	if date != "" {
		if err := validate.Var(date, "datetime=2006-01-02"); err != nil {
			return nil, errors.Join(errorvalues.ErrValidation, err)
		}
	}
	sessions, err := fs.repo.GetByUserID(ctx, uid, date)
	if err != nil {
		return nil, errors.New("focus sessions repository error: " + err.Error())
	}
	return sessions, nil
}
