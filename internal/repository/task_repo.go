package repository

import (
	"context"
	"errors"

	"todo_webapp/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Task, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, task, completed, created_at
		 FROM todos
		 WHERE user_id = $1
		 ORDER BY id`,
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.Task
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.OwnerID, &t.Text, &t.Completed, &t.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, &t)
	}
	return res, rows.Err()
}

func (r *TaskRepository) Create(ctx context.Context, ownerID int64, text string) (*domain.Task, error) {
	t := &domain.Task{OwnerID: ownerID, Text: text}

	err := r.db.QueryRow(ctx,
		`INSERT INTO todos (user_id, task)
		 VALUES ($1, $2)
		 RETURNING id, completed, created_at`,
		ownerID, text,
	).Scan(&t.ID, &t.Completed, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// SetCompleted updates the completion flag. The owner id is part of the
// WHERE clause, so a task owned by another user reports ErrNotFound
// rather than revealing that it exists.
func (r *TaskRepository) SetCompleted(ctx context.Context, id, ownerID int64, completed bool) (*domain.Task, error) {
	var t domain.Task
	err := r.db.QueryRow(ctx,
		`UPDATE todos SET completed = $1
		 WHERE id = $2 AND user_id = $3
		 RETURNING id, user_id, task, completed, created_at`,
		completed, id, ownerID,
	).Scan(&t.ID, &t.OwnerID, &t.Text, &t.Completed, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Delete removes a task under the same owner-scoped predicate as
// SetCompleted.
func (r *TaskRepository) Delete(ctx context.Context, id, ownerID int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM todos WHERE id = $1 AND user_id = $2`,
		id, ownerID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
