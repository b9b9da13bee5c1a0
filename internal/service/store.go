package service

import (
	"context"

	"todo_webapp/internal/domain"
)

// UserStore is the credential-store surface the services depend on.
// *repository.UserRepository satisfies it.
type UserStore interface {
	Create(ctx context.Context, username, passwordHash string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// TaskStore is the owner-scoped task-store surface.
// *repository.TaskRepository satisfies it.
type TaskStore interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Task, error)
	Create(ctx context.Context, ownerID int64, text string) (*domain.Task, error)
	SetCompleted(ctx context.Context, id, ownerID int64, completed bool) (*domain.Task, error)
	Delete(ctx context.Context, id, ownerID int64) error
}
