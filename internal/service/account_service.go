package service

import (
	"context"
	"errors"
	"fmt"

	"todo_webapp/internal/domain"
	"todo_webapp/internal/logger"
	"todo_webapp/internal/repository"
)

var (
	ErrMissingCredentials = errors.New("username and password are required")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidPassword    = errors.New("invalid password")
)

// AccountService handles registration and login. It owns no state of
// its own; everything lives in the injected stores.
type AccountService struct {
	users  UserStore
	tasks  TaskStore
	tokens *TokenService
}

func NewAccountService(users UserStore, tasks TaskStore, tokens *TokenService) *AccountService {
	return &AccountService{users: users, tasks: tasks, tokens: tokens}
}

// Register creates a user, seeds their first task and returns a bearer
// token. The seed task must exist before registration counts as done:
// if the insert fails the request fails, even though the user row is
// already committed.
func (s *AccountService) Register(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrMissingCredentials
	}

	hash, err := HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, username, hash)
	if err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return "", ErrUsernameTaken
		}
		return "", fmt.Errorf("create user: %w", err)
	}

	seed := fmt.Sprintf("Hello %s! Add your first todo!", username)
	if _, err := s.tasks.Create(ctx, user.ID, seed); err != nil {
		logger.Error("seed task failed", "user_id", user.ID, "error", err)
		return "", fmt.Errorf("seed task: %w", err)
	}

	return s.tokens.Issue(user.ID)
}

// Login verifies the password against the stored hash and returns a
// fresh token.
func (s *AccountService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrMissingCredentials
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if !CheckPassword(user.PasswordHash, password) {
		return "", ErrInvalidPassword
	}

	return s.tokens.Issue(user.ID)
}

// GetUser looks up a user by the id resolved from a token.
func (s *AccountService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
