package repository

import (
	"context"

	"quiz-backend/internal/models"
	"quiz-backend/internal/store"
)

type FeedbackRepo struct {
	store store.Store
	table string
}

func NewFeedbackRepo(s store.Store, table string) *FeedbackRepo {
	return &FeedbackRepo{
		store: s,
		table: table,
	}
}

// Create writes the record keyed by FeedbackID, replacing any record that
// already has that id.
func (r *FeedbackRepo) Create(ctx context.Context, feedback *models.FeedbackRecord) error {
	return r.store.Put(ctx, r.table, feedback.Item())
}
