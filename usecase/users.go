package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"stickynotes/model"
	"stickynotes/repository"
	"stickynotes/services"
	"stickynotes/utils"

	"github.com/google/uuid"
)

// UserStore is the persistence the user service needs; *repository.UserRepo
// satisfies it.
type UserStore interface {
	AddUser(ctx context.Context, user *model.User) error
	FindUserByUsername(ctx context.Context, username string) (*model.User, error)
	FindUser(ctx context.Context, userID string) (*model.User, error)
}

type UserService struct {
	UserRepo UserStore
}

func NewUserService(repo UserStore) *UserService {
	return &UserService{UserRepo: repo}
}

// Register creates an account. It does not log the user in.
func (svc *UserService) Register(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)

	_, err := svc.UserRepo.FindUserByUsername(ctx, username)
	if err == nil {
		utils.TrackAuthAttempt("failure", "register")
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hashed, err := services.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		UserID:    uuid.NewString(),
		Username:  username,
		Password:  hashed,
		CreatedAt: time.Now().UTC(),
	}

	err = svc.UserRepo.AddUser(ctx, user)
	if errors.Is(err, repository.ErrDuplicate) {
		utils.TrackAuthAttempt("failure", "register")
		return nil, ErrUsernameTaken
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	utils.TrackAuthAttempt("success", "register")
	return user, nil
}

// Authenticate checks a username/password pair. Unknown users and wrong
// passwords are reported the same way.
func (svc *UserService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	user, err := svc.UserRepo.FindUserByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, repository.ErrNotFound) {
		utils.TrackAuthAttempt("failure", "login")
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	ok, err := services.VerifyPassword(user.Password, password)
	if err != nil || !ok {
		utils.TrackAuthAttempt("failure", "login")
		return nil, ErrInvalidCredentials
	}

	utils.TrackAuthAttempt("success", "login")
	return user, nil
}

// Get loads a user by id; refresh uses it to reject tokens of deleted accounts.
func (svc *UserService) Get(ctx context.Context, userID string) (*model.User, error) {
	user, err := svc.UserRepo.FindUser(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}
