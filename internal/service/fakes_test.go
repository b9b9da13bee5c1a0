package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"todo_webapp/internal/domain"
	"todo_webapp/internal/repository"
)

// In-memory store fakes mirroring the repository semantics, including
// the owner-scoped matching predicate of the task store.

type fakeUserStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]*domain.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*domain.User)}
}

func (s *fakeUserStore) Create(_ context.Context, username, passwordHash string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[username]; ok {
		return nil, repository.ErrUsernameTaken
	}
	s.nextID++
	u := &domain.User{
		ID:           s.nextID,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	s.users[username] = u
	cp := *u
	return &cp, nil
}

func (s *fakeUserStore) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *fakeUserStore) GetByID(_ context.Context, id int64) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeTaskStore struct {
	mu         sync.Mutex
	nextID     int64
	tasks      []*domain.Task
	failCreate bool
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{}
}

func (s *fakeTaskStore) ListByOwner(_ context.Context, ownerID int64) ([]*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var res []*domain.Task
	for _, t := range s.tasks {
		if t.OwnerID == ownerID {
			cp := *t
			res = append(res, &cp)
		}
	}
	return res, nil
}

func (s *fakeTaskStore) Create(_ context.Context, ownerID int64, text string) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failCreate {
		return nil, errors.New("storage unavailable")
	}
	s.nextID++
	t := &domain.Task{
		ID:        s.nextID,
		OwnerID:   ownerID,
		Text:      text,
		CreatedAt: time.Now(),
	}
	s.tasks = append(s.tasks, t)
	cp := *t
	return &cp, nil
}

func (s *fakeTaskStore) SetCompleted(_ context.Context, id, ownerID int64, completed bool) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.ID == id && t.OwnerID == ownerID {
			t.Completed = completed
			cp := *t
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeTaskStore) Delete(_ context.Context, id, ownerID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.tasks {
		if t.ID == id && t.OwnerID == ownerID {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}
