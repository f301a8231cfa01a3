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

const dateLayout = "2006-01-02"

type ScreenTimeService struct {
	entries  repository.ScreenTimeRepositoryI
	appUsage repository.AppUsageRepositoryI
}

func NewScreenTimeService(entriesRepo repository.ScreenTimeRepositoryI, appUsageRepo repository.AppUsageRepositoryI) *ScreenTimeService {
	if entriesRepo == nil || appUsageRepo == nil {
		log.Fatal("provided nil repo for screen time service")
	}
	return &ScreenTimeService{
		entries:  entriesRepo,
		appUsage: appUsageRepo,
	}
}

func (ss *ScreenTimeService) GetOrCreateDaily(ctx context.Context, uid uuid.UUID, date string) (*entity.ScreenTimeEntry, error) {
	if err := validate.Var(date, "required,datetime=2006-01-02"); err != nil {
		return nil, errors.Join(errorvalues.ErrValidation, err)
	}
	entry, err := ss.entries.GetByUserAndDate(ctx, uid, date)
	if err == nil {
		return entry, nil
	}
	if !errors.Is(err, errorvalues.ErrEntryNotFound) {
		return nil, errors.New("screen time repository error: " + err.Error())
	}
	id, err := ss.entries.Create(ctx, &entity.ScreenTimeEntry{
		UserID:         uid,
		Date:           date,
		Classification: entity.ClassifyMinutes(0),
	})
	if err != nil {
		// Lost a create race: the entry exists now, serve it
		if errors.Is(err, errorvalues.ErrEntryExists) {
			return ss.entries.GetByUserAndDate(ctx, uid, date)
		}
		return nil, errors.New("screen time repository error: " + err.Error())
	}
	return ss.entries.GetByID(ctx, id)
}

func (ss *ScreenTimeService) ApplyUpdate(ctx context.Context, req *ScreenTimeUpdateRequest) (*entity.ScreenTimeEntry, error) {
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			return nil, errors.Join(errorvalues.ErrValidation, validationError)
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	existing, err := ss.entries.GetByUserAndDate(ctx, req.UserID, req.Date)
	if err != nil {
		if !errors.Is(err, errorvalues.ErrEntryNotFound) {
			return nil, errors.New("screen time repository error: " + err.Error())
		}
		return ss.createFromUpdate(ctx, req)
	}
	total := existing.TotalMinutes
	if req.TotalMinutes != nil {
		total = *req.TotalMinutes
	}
	tier := entity.ClassifyMinutes(total)
	updated, err := ss.entries.Update(ctx, existing.ID, entity.ScreenTimeUpdate{
		TotalMinutes:   req.TotalMinutes,
		Pickups:        req.Pickups,
		FocusMinutes:   req.FocusMinutes,
		Classification: &tier,
	})
	if err != nil {
		return nil, errors.New("screen time repository error: " + err.Error())
	}
	return updated, nil
}

func (ss *ScreenTimeService) createFromUpdate(ctx context.Context, req *ScreenTimeUpdateRequest) (*entity.ScreenTimeEntry, error) {
	entry := entity.ScreenTimeEntry{
		UserID: req.UserID,
		Date:   req.Date,
	}
	if req.TotalMinutes != nil {
		entry.TotalMinutes = *req.TotalMinutes
	}
	if req.Pickups != nil {
		entry.Pickups = *req.Pickups
	}
	if req.FocusMinutes != nil {
		entry.FocusMinutes = *req.FocusMinutes
	}
	entry.Classification = entity.ClassifyMinutes(entry.TotalMinutes)
	id, err := ss.entries.Create(ctx, &entry)
	if err != nil {
		return nil, errors.New("screen time repository error: " + err.Error())
	}
	return ss.entries.GetByID(ctx, id)
}

func (ss *ScreenTimeService) WeeklyWindow(ctx context.Context, uid uuid.UUID, startDate string) ([]*entity.ScreenTimeEntry, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil, errors.Join(errorvalues.ErrValidation, err)
	}
	window := []*entity.ScreenTimeEntry{}
	for i := range 7 {
		date := start.AddDate(0, 0, i).Format(dateLayout)
		entry, err := ss.entries.GetByUserAndDate(ctx, uid, date)
		if err != nil {
			if errors.Is(err, errorvalues.ErrEntryNotFound) {
				continue
			}
			return nil, errors.New("screen time repository error: " + err.Error())
		}
		window = append(window, entry)
	}
	return window, nil
}

func (ss *ScreenTimeService) AppUsageForDay(ctx context.Context, uid uuid.UUID, date string) ([]*entity.AppUsageEntry, error) {
	entry, err := ss.entries.GetByUserAndDate(ctx, uid, date)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEntryNotFound) {
			return []*entity.AppUsageEntry{}, nil
		}
		return nil, errors.New("screen time repository error: " + err.Error())
	}
	usages, err := ss.appUsage.GetByScreenTimeID(ctx, entry.ID)
	if err != nil {
		return nil, errors.New("app usage repository error: " + err.Error())
	}
	return usages, nil
}
