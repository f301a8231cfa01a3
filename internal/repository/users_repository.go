package repository

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/mindful/unplug/internal/error_values"
	"github.com/mindful/unplug/pkg/entity"
)

type UsersRepository struct {
	store *Store
}

func NewUsersRepo(store *Store) *UsersRepository {
	if store == nil {
		log.Fatal("provided nil store for usersRepo")
	}
	return &UsersRepository{
		store: store,
	}
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) (uuid.UUID, error) {
	if user == nil {
		return uuid.UUID{}, errorvalues.ErrValidation
	}
	ur.store.mu.Lock()
	defer ur.store.mu.Unlock()
	for _, u := range ur.store.users {
		if u.Username == user.Username || u.Email == user.Email {
			return uuid.UUID{}, errorvalues.ErrUserExists
		}
	}
	stored := copyUser(user)
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	ur.store.users[stored.ID] = stored
	return stored.ID, nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	ur.store.mu.RLock()
	defer ur.store.mu.RUnlock()
	user, ok := ur.store.users[uid]
	if !ok {
		return nil, errorvalues.ErrUserNotFound
	}
	return copyUser(user), nil
}

func (ur *UsersRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	ur.store.mu.RLock()
	defer ur.store.mu.RUnlock()
	for _, user := range ur.store.users {
		if user.Username == username {
			return copyUser(user), nil
		}
	}
	return nil, errorvalues.ErrUserNotFound
}

func (ur *UsersRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	ur.store.mu.RLock()
	defer ur.store.mu.RUnlock()
	for _, user := range ur.store.users {
		if user.Email == email {
			return copyUser(user), nil
		}
	}
	return nil, errorvalues.ErrUserNotFound
}

func (ur *UsersRepository) First(ctx context.Context) (*entity.User, error) {
	ur.store.mu.RLock()
	defer ur.store.mu.RUnlock()
	var first *entity.User
	for _, user := range ur.store.users {
		if first == nil || user.CreatedAt.Before(first.CreatedAt) {
			first = user
		}
	}
	if first == nil {
		return nil, errorvalues.ErrUserNotFound
	}
	return copyUser(first), nil
}

func (ur *UsersRepository) Update(ctx context.Context, user *entity.User) error {
	if user == nil {
		return errorvalues.ErrValidation
	}
	ur.store.mu.Lock()
	defer ur.store.mu.Unlock()
	current, ok := ur.store.users[user.ID]
	if !ok {
		return errorvalues.ErrUserNotFound
	}
	stored := copyUser(user)
	stored.CreatedAt = current.CreatedAt
	ur.store.users[stored.ID] = stored
	return nil
}
