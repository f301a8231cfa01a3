package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/mindful/unplug/internal/error_values"
	"github.com/mindful/unplug/internal/repository"
	"github.com/mindful/unplug/pkg/entity"
)

type UserService struct {
	users        repository.UsersRepositoryI
	settings     repository.SettingsRepositoryI
	achievements repository.AchievementsRepositoryI
}

func NewUserService(usersRepo repository.UsersRepositoryI, settingsRepo repository.SettingsRepositoryI, achievementsRepo repository.AchievementsRepositoryI) *UserService {
	if usersRepo == nil || settingsRepo == nil || achievementsRepo == nil {
		log.Fatal("provided nil repo for user service")
	}
	return &UserService{
		users:        usersRepo,
		settings:     settingsRepo,
		achievements: achievementsRepo,
	}
}

// Current resolves the acting user. There is no authentication layer,
// so this returns the earliest-created (seeded) user; an auth
// collaborator would replace it with the token's subject.
func (us *UserService) Current(ctx context.Context) (*entity.User, error) {
	user, err := us.users.First(ctx)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) GetByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	user, err := us.users.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) GetSettings(ctx context.Context, uid uuid.UUID) (*entity.UserSettings, error) {
	settings, err := us.settings.GetByUserID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSettingsNotFound) {
			return nil, err
		}
		return nil, errors.New("settings repository error: " + err.Error())
	}
	return settings, nil
}

func (us *UserService) UpdateSettings(ctx context.Context, uid uuid.UUID, update entity.SettingsUpdate) (*entity.UserSettings, error) {
	settings, err := us.settings.Update(ctx, uid, update)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSettingsNotFound) {
			return nil, err
		}
		return nil, errors.New("settings repository error: " + err.Error())
	}
	return settings, nil
}

func (us *UserService) GetAchievements(ctx context.Context, uid uuid.UUID) ([]*entity.UserAchievement, error) {
	achievements, err := us.achievements.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("achievements repository error: " + err.Error())
	}
	return achievements, nil
}
