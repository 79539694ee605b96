package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"quiz-backend/internal/apperror"
	"quiz-backend/internal/models"

	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMailer(t *testing.T, handler http.HandlerFunc) *ResendMailer {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := resend.NewClient("re_test_key")
	baseURL, err := url.Parse(server.URL + "/")
	require.NoError(t, err)
	client.BaseURL = baseURL

	return newResendMailerWithClient(client, "Quiz <results@example.com>")
}

func TestResendMailer_SendResultWithAttachment(t *testing.T) {
	var got map[string]any
	m := newTestMailer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test_key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"49a3999c-0ce1-4ea6-ab68-afcd6dc2e794"}`))
	})

	err := m.SendResult(context.Background(), "quiz@example.com", &models.Attachment{
		Filename:    "owl.png",
		ContentType: "image/png",
		Content:     []byte("fake-png"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Quiz <results@example.com>", got["from"])
	assert.Equal(t, []any{"quiz@example.com"}, got["to"])
	assert.Equal(t, resultSubject, got["subject"])

	attachments, ok := got["attachments"].([]any)
	require.True(t, ok)
	require.Len(t, attachments, 1)
	first := attachments[0].(map[string]any)
	assert.Equal(t, "owl.png", first["filename"])
	assert.NotEmpty(t, first["content"])

	headers, ok := got["headers"].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, headers["X-Entity-Ref-ID"])
}

func TestResendMailer_SendResultWithoutAttachment(t *testing.T) {
	var got map[string]any
	m := newTestMailer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"id":"abc"}`))
	})

	require.NoError(t, m.SendResult(context.Background(), "quiz@example.com", nil))
	assert.Nil(t, got["attachments"])
}

func TestResendMailer_ProviderError(t *testing.T) {
	m := newTestMailer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"statusCode":422,"name":"validation_error","message":"Invalid to field."}`))
	})

	err := m.SendResult(context.Background(), "not-an-address", nil)
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.TypeExternal))
}

func TestResendMailer_DevModeSkipsSend(t *testing.T) {
	m := NewResendMailer("", "Quiz <results@example.com>")
	assert.NoError(t, m.SendResult(context.Background(), "quiz@example.com", nil))
}
