package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"todo_webapp/internal/domain"
	"todo_webapp/internal/http/middleware"
	"todo_webapp/internal/repository"
	"todo_webapp/internal/service"

	"github.com/gin-gonic/gin"
)

// In-memory stores standing in for the pgx repositories, with the same
// owner-scoped matching semantics.

type memUserStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]*domain.User
}

func (s *memUserStore) Create(_ context.Context, username, passwordHash string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[username]; ok {
		return nil, repository.ErrUsernameTaken
	}
	s.nextID++
	u := &domain.User{ID: s.nextID, Username: username, PasswordHash: passwordHash, CreatedAt: time.Now()}
	s.users[username] = u
	cp := *u
	return &cp, nil
}

func (s *memUserStore) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[username]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (s *memUserStore) GetByID(_ context.Context, id int64) (*domain.User, error) {
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

type memTaskStore struct {
	mu     sync.Mutex
	nextID int64
	tasks  []*domain.Task
}

func (s *memTaskStore) ListByOwner(_ context.Context, ownerID int64) ([]*domain.Task, error) {
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

func (s *memTaskStore) Create(_ context.Context, ownerID int64, text string) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	t := &domain.Task{ID: s.nextID, OwnerID: ownerID, Text: text, CreatedAt: time.Now()}
	s.tasks = append(s.tasks, t)
	cp := *t
	return &cp, nil
}

func (s *memTaskStore) SetCompleted(_ context.Context, id, ownerID int64, completed bool) (*domain.Task, error) {
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

func (s *memTaskStore) Delete(_ context.Context, id, ownerID int64) error {
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

// newTestRouter wires the handlers over in-memory stores, with the
// same route shapes and auth gate registration as production.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := &memUserStore{users: make(map[string]*domain.User)}
	tasks := &memTaskStore{}
	tokens := service.NewTokenService("test-secret", time.Hour)

	h := &Handler{
		Accounts: service.NewAccountService(users, tasks, tokens),
		Tasks:    service.NewTaskService(tasks),
	}

	r := gin.New()
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}
	r.GET("/api/me", middleware.JWT(tokens), h.Me)
	todos := r.Group("/api/todos")
	todos.Use(middleware.JWT(tokens))
	{
		todos.GET("", h.ListTasks)
		todos.POST("", h.CreateTask)
		todos.PUT("/:id", h.UpdateTask)
		todos.DELETE("/:id", h.DeleteTask)
	}
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}

func decode(t *testing.T, w *httptest.ResponseRecorder, into any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), into); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func register(t *testing.T, r *gin.Engine, username, password string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{"username": username, "password": password})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %q: expected 201, got %d (%s)", username, w.Code, w.Body.String())
	}
	var body struct {
		Token string `json:"token"`
	}
	decode(t, w, &body)
	if body.Token == "" {
		t.Fatal("register returned empty token")
	}
	return body.Token
}
