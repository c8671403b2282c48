package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"kirana-connect/internal/data/entity"
	"kirana-connect/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrEmailExists is returned by Create when the email is already registered
// (case-insensitive). The check runs under the store lock, so two concurrent
// registrations cannot both slip through.
var ErrEmailExists = errors.New("email already registered")

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	CountAll(ctx context.Context) (int64, error)
}

type userRepository struct {
	file *storage.FileStore
	log  *zap.Logger
}

func NewUserRepository(file *storage.FileStore, log *zap.Logger) UserRepository {
	return &userRepository{
		file: file,
		log:  log,
	}
}

// Create appends a new user record to the credential file
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	var users []entity.User

	err := ur.file.Update(&users, func() error {
		for _, u := range users {
			if strings.EqualFold(u.Email, user.Email) {
				return ErrEmailExists
			}
		}
		users = append(users, *user)
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			return err
		}
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	users, err := ur.loadAll()
	if err != nil {
		ur.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", id.String(), err)
	}

	for i := range users {
		if users[i].ID == id {
			user := users[i]
			return &user, nil
		}
	}

	return nil, nil
}

// FindByEmail matches case-insensitively
func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	users, err := ur.loadAll()
	if err != nil {
		ur.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			user := users[i]
			return &user, nil
		}
	}

	return nil, nil
}

func (ur *userRepository) CountAll(ctx context.Context) (int64, error) {
	users, err := ur.loadAll()
	if err != nil {
		ur.log.Error("Failed to count users", zap.Error(err))
		return 0, fmt.Errorf("count all users: %w", err)
	}

	return int64(len(users)), nil
}

func (ur *userRepository) loadAll() ([]entity.User, error) {
	var users []entity.User
	if err := ur.file.Load(&users); err != nil {
		return nil, err
	}
	return users, nil
}
