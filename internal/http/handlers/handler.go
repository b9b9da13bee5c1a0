package handlers

import (
	"todo_webapp/internal/http/middleware"
	"todo_webapp/internal/repository"
	"todo_webapp/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Handler struct {
	DB       *pgxpool.Pool
	Accounts *service.AccountService
	Tasks    *service.TaskService
}

func NewHandler(db *pgxpool.Pool, tokens *service.TokenService) *Handler {
	users := repository.NewUserRepository(db)
	tasks := repository.NewTaskRepository(db)
	return &Handler{
		DB:       db,
		Accounts: service.NewAccountService(users, tasks, tokens),
		Tasks:    service.NewTaskService(tasks),
	}
}

// getUserID pulls the verified user id attached by the JWT middleware.
func getUserID(c *gin.Context) (int64, bool) {
	uidVal, ok := c.Get(middleware.UserIDKey)
	if !ok {
		return 0, false
	}
	uid, ok := uidVal.(int64)
	return uid, ok
}
