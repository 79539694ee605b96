package repository

import (
	"context"

	"quiz-backend/internal/models"
	"quiz-backend/internal/store"
)

type QuizResultRepo struct {
	store store.Store
	table string
}

func NewQuizResultRepo(s store.Store, table string) *QuizResultRepo {
	return &QuizResultRepo{
		store: s,
		table: table,
	}
}

// Save writes the result exactly as received.
func (r *QuizResultRepo) Save(ctx context.Context, result models.QuizResult) error {
	return r.store.Put(ctx, r.table, store.Item(result))
}
