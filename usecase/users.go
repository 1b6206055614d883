package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"notemark/model"
	"notemark/repository"
	"notemark/services"
)

type UsersRepo interface {
	CreateUser(ctx context.Context, user *model.User) error
	FindByUsernameOrEmail(ctx context.Context, identifier string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
}

type UserService struct {
	Repo   UsersRepo
	Tokens *services.TokenService
}

// Register creates the account and issues its first token. Username and
// email are each globally unique; the pre-checks give a specific message
// and the unique indexes close the race.
func (svc *UserService) Register(ctx context.Context, username, email, password string) (*model.User, string, error) {
	if _, err := svc.Repo.FindByUsername(ctx, username); err == nil {
		return nil, "", ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", err
	}
	if _, err := svc.Repo.FindByEmail(ctx, email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", err
	}

	digest, err := services.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:        uuid.NewString(),
		Username:  username,
		Email:     email,
		Password:  digest,
		CreatedAt: time.Now(),
	}

	if err := svc.Repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, "", ErrUsernameTaken
		}
		return nil, "", err
	}

	token, err := svc.Tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Authenticate verifies credentials and issues a token. The identifier
// matches either username or email.
func (svc *UserService) Authenticate(ctx context.Context, identifier, password string) (*model.User, string, error) {
	user, err := svc.Repo.FindByUsernameOrEmail(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}

	match, err := services.VerifyPassword(user.Password, password)
	if err != nil || !match {
		return nil, "", ErrIncorrectPassword
	}

	token, err := svc.Tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (svc *UserService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	user, err := svc.Repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
