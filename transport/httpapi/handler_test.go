package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hupe1980/tourmesh/core"
	"github.com/hupe1980/tourmesh/orchestrator"
	"github.com/hupe1980/tourmesh/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEngine struct {
	store core.ProfileStore
	reply *orchestrator.Reply
	err   error
}

func (s *stubEngine) Turn(ctx context.Context, userID, utterance string) (*orchestrator.Reply, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.reply, nil
}

func (s *stubEngine) Store() core.ProfileStore { return s.store }

func newTestServer(engine Engine) *httptest.Server {
	return httptest.NewServer(NewHandler(Deps{Engine: engine}))
}

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	return resp
}

func TestHandleTurn(t *testing.T) {
	engine := &stubEngine{
		store: profile.NewInMemoryStore(),
		reply: &orchestrator.Reply{TurnID: "turn-1", Text: "Visit Lekki Beach."},
	}
	srv := newTestServer(engine)
	defer srv.Close()

	resp := postJSON(t, srv.URL+"/v1/turn", TurnRequest{UserID: "T1", Utterance: "what should I see?"})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reply orchestrator.Reply
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&reply))
	assert.Equal(t, "turn-1", reply.TurnID)
	assert.Equal(t, "Visit Lekki Beach.", reply.Text)
}

func TestHandleTurnValidation(t *testing.T) {
	srv := newTestServer(&stubEngine{store: profile.NewInMemoryStore()})
	defer srv.Close()

	resp := postJSON(t, srv.URL+"/v1/turn", TurnRequest{Utterance: "hi"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = postJSON(t, srv.URL+"/v1/turn", TurnRequest{UserID: "T1"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleTurnEngineError(t *testing.T) {
	srv := newTestServer(&stubEngine{
		store: profile.NewInMemoryStore(),
		err:   errors.New("model offline"),
	})
	defer srv.Close()

	resp := postJSON(t, srv.URL+"/v1/turn", TurnRequest{UserID: "T1", Utterance: "hi"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	errObj := payload["error"].(map[string]any)
	assert.Contains(t, errObj["message"], "model offline")
}

func TestHandleClear(t *testing.T) {
	store := profile.NewInMemoryStore()
	luxury := core.BudgetLuxury
	require.NoError(t, store.UpdatePreferences("T1", core.PreferencesDelta{Budget: &luxury}))

	srv := newTestServer(&stubEngine{store: store})
	defer srv.Close()

	resp := postJSON(t, srv.URL+"/v1/sessions/T1/clear", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	p, err := store.GetOrCreate("T1")
	require.NoError(t, err)
	assert.Equal(t, core.BudgetModerate, p.GetPreferences().Budget)
}

func TestHandleProfile(t *testing.T) {
	store := profile.NewInMemoryStore()
	require.NoError(t, store.AppendMemory("T1", core.CategoryChatHistory, core.NewChatRecord("user", "hello")))

	srv := newTestServer(&stubEngine{store: store})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/v1/sessions/T1/profile")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var projection core.ContextProjection
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&projection))
	assert.Equal(t, "T1", projection.UserID)
	assert.Len(t, projection.Recent[core.CategoryChatHistory], 1)
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(&stubEngine{store: profile.NewInMemoryStore()})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
