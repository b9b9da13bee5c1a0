package service

import (
	"context"
	"errors"
	"fmt"

	"todo_webapp/internal/domain"
	"todo_webapp/internal/repository"
)

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrEmptyTask    = errors.New("task text is required")
)

// TaskService performs owner-scoped CRUD on tasks. The owner id always
// comes from the verified identity attached by the auth middleware,
// never from the request body or path. The store repeats the owner
// check in its matching predicate, so a service-layer bug alone cannot
// leak another user's task.
type TaskService struct {
	tasks TaskStore
}

func NewTaskService(tasks TaskStore) *TaskService {
	return &TaskService{tasks: tasks}
}

func (s *TaskService) List(ctx context.Context, ownerID int64) ([]*domain.Task, error) {
	tasks, err := s.tasks.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	return tasks, nil
}

func (s *TaskService) Create(ctx context.Context, ownerID int64, text string) (*domain.Task, error) {
	if text == "" {
		return nil, ErrEmptyTask
	}
	t, err := s.tasks.Create(ctx, ownerID, text)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return t, nil
}

func (s *TaskService) SetCompletion(ctx context.Context, ownerID, taskID int64, completed bool) (*domain.Task, error) {
	t, err := s.tasks.SetCompleted(ctx, taskID, ownerID, completed)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("update task: %w", err)
	}
	return t, nil
}

func (s *TaskService) Remove(ctx context.Context, ownerID, taskID int64) error {
	if err := s.tasks.Delete(ctx, taskID, ownerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
