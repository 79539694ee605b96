package webhook

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quiz-backend/internal/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPRelay_Forward(t *testing.T) {
	payload := `{"shareHabits":5,"comment":"loved it"}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, payload, string(body))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result":"success","row":17}`))
	}))
	defer server.Close()

	relay := NewHTTPRelay(server.URL, 5*time.Second)

	reply, err := relay.Forward(context.Background(), []byte(payload))
	require.NoError(t, err)
	assert.JSONEq(t, `{"result":"success","row":17}`, string(reply))
}

func TestHTTPRelay_ForwardRelaysErrorStatusBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"result":"error","error":"sheet locked"}`))
	}))
	defer server.Close()

	reply, err := NewHTTPRelay(server.URL, 5*time.Second).Forward(context.Background(), []byte(`{}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"result":"error","error":"sheet locked"}`, string(reply))
}

func TestHTTPRelay_ForwardNonJSONReply(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>Moved</html>`))
	}))
	defer server.Close()

	_, err := NewHTTPRelay(server.URL, 5*time.Second).Forward(context.Background(), []byte(`{}`))
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.TypeExternal))
}

func TestHTTPRelay_ForwardUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := NewHTTPRelay(url, time.Second).Forward(context.Background(), []byte(`{}`))
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.TypeExternal))
}
