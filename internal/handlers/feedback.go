package handlers

import (
	"context"
	"net/http"
	"time"

	"quiz-backend/internal/apperror"
	"quiz-backend/internal/models"
	"quiz-backend/internal/webhook"
)

type FeedbackCreator interface {
	Create(ctx context.Context, feedback *models.FeedbackRecord) error
}

// FeedbackHandler serves POST /submit-feedback either by writing to the store
// (SubmitFeedback) or by relaying to a webhook (ForwardFeedback). Which one is
// routed is decided once at startup.
type FeedbackHandler struct {
	feedbackRepo FeedbackCreator
	relay        webhook.Relay
	now          func() time.Time
}

func NewFeedbackHandler(feedbackRepo FeedbackCreator) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackRepo: feedbackRepo,
		now:          time.Now,
	}
}

func NewForwardingFeedbackHandler(relay webhook.Relay) *FeedbackHandler {
	return &FeedbackHandler{
		relay: relay,
		now:   time.Now,
	}
}

// --- POST /submit-feedback (store) ---

func (h *FeedbackHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitFeedbackRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	if err := models.Validate(req); apperror.Is(err, apperror.TypeValidation) {
		logger(r).Debug().Strs("fields", models.MissingFields(err)).Msg("Feedback rejected")
		writeError(w, http.StatusBadRequest, "All fields are required.")
		return
	}

	feedback := models.NewFeedbackRecord(req, h.now())
	if err := h.feedbackRepo.Create(r.Context(), feedback); err != nil {
		logger(r).Error().
			Err(err).
			Str("error_type", string(apperror.TypeOf(err))).
			Str("feedback_id", feedback.FeedbackID).
			Msg("Error submitting feedback")
		writeError(w, http.StatusInternalServerError, "Could not submit feedback")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Feedback submitted successfully!",
	})
}

// --- POST /submit-feedback (webhook) ---

func (h *FeedbackHandler) ForwardFeedback(w http.ResponseWriter, r *http.Request) {
	payload, err := readJSONBody(r)
	if err != nil {
		writeDecodeError(w, err)
		return
	}

	reply, err := h.relay.Forward(r.Context(), payload)
	if err != nil {
		logFailure(r, err, "Error forwarding feedback")
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"status":  "error",
			"message": "Failed to submit feedback",
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(reply)
}
