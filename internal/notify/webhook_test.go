package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookDispatcher_Notify(t *testing.T) {
	var got webhookMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	userID := uuid.New()
	d := NewWebhookDispatcher(srv.URL)

	err := d.Notify(context.Background(), userID, "Roulette drew you", "Plank duel, 4 days", KindDuelDrawn)
	require.NoError(t, err)

	assert.Equal(t, userID.String(), got.UserID)
	assert.Equal(t, "Roulette drew you", got.Title)
	assert.Equal(t, string(KindDuelDrawn), got.Type)
}

func TestWebhookDispatcher_Notify_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	d := NewWebhookDispatcher(srv.URL)
	err := d.Notify(context.Background(), uuid.New(), "t", "b", KindPenalty)
	assert.Error(t, err)
}

func TestNoop_Notify(t *testing.T) {
	assert.NoError(t, Noop{}.Notify(context.Background(), uuid.New(), "t", "b", KindPenalty))
}
