package handlers

import (
	"context"
	"net/http"

	"quiz-backend/internal/models"
)

type QuizResultSaver interface {
	Save(ctx context.Context, result models.QuizResult) error
}

type QuizHandler struct {
	results QuizResultSaver
}

func NewQuizHandler(results QuizResultSaver) *QuizHandler {
	return &QuizHandler{
		results: results,
	}
}

// --- POST /save-quiz-result ---

func (h *QuizHandler) SaveQuizResult(w http.ResponseWriter, r *http.Request) {
	result := models.QuizResult{}
	if err := decodeJSON(r, &result); err != nil {
		writeDecodeError(w, err)
		return
	}

	if err := h.results.Save(r.Context(), result); err != nil {
		logFailure(r, err, "Error saving quiz result")
		writeError(w, http.StatusInternalServerError, "Could not save quiz result")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Quiz result saved successfully!",
	})
}
