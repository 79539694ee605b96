package handlers

import (
	"net/http"

	"quiz-backend/internal/apperror"
	"quiz-backend/internal/mailer"
	"quiz-backend/internal/models"
)

type AssetLoader interface {
	Load(name string) (*models.Attachment, error)
}

type EmailHandler struct {
	mailer mailer.Mailer
	assets AssetLoader
}

func NewEmailHandler(m mailer.Mailer, assets AssetLoader) *EmailHandler {
	return &EmailHandler{
		mailer: m,
		assets: assets,
	}
}

// --- POST /send-email ---

func (h *EmailHandler) SendResultEmail(w http.ResponseWriter, r *http.Request) {
	var req models.SendEmailRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	if err := models.Validate(req); apperror.Is(err, apperror.TypeValidation) {
		writeError(w, http.StatusBadRequest, "Recipient email is required")
		return
	}

	var attachment *models.Attachment
	if name := req.EmailData.AnimalResultFile; name != "" {
		var err error
		attachment, err = h.assets.Load(name)
		if err != nil {
			event := logger(r).Error()
			if apperror.Is(err, apperror.TypeNotFound) {
				event = logger(r).Warn()
			}
			event.Err(err).
				Str("error_type", string(apperror.TypeOf(err))).
				Str("file", name).
				Msg("Error reading result image")
			writeError(w, http.StatusInternalServerError, "Could not send email")
			return
		}
	}

	if err := h.mailer.SendResult(r.Context(), req.EmailData.Input, attachment); err != nil {
		logFailure(r, err, "Error sending email")
		writeError(w, http.StatusInternalServerError, "Could not send email")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Email sent successfully!",
	})
}
