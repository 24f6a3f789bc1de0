package rest

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tabletop-backend/internal/entity"
	"github.com/rocketscienceinc/tabletop-backend/internal/repository"
	"github.com/rocketscienceinc/tabletop-backend/internal/usecase"
)

type recordingBroadcaster struct {
	sessions []string
}

func (that *recordingBroadcaster) Broadcast(sessionID string, _ *entity.Snapshot) {
	that.sessions = append(that.sessions, sessionID)
}

type snapshotResponse struct {
	SessionID     string           `json:"session_id"`
	Game          string           `json:"game"`
	DisplayStatus string           `json:"display_status"`
	Hints         entity.HintState `json:"hints"`
	CanUndo       bool             `json:"can_undo"`
	CanRedo       bool             `json:"can_redo"`
	HistoryLength int              `json:"history_length"`
	State         json.RawMessage  `json:"state"`
}

func newRouter(t *testing.T) (*gin.Engine, *recordingBroadcaster) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := usecase.NewSessionManager(logger, repository.NewMemorySessionRepository(0), entity.DifficultyEasy)
	broadcaster := &recordingBroadcaster{}

	return New(logger, manager, broadcaster).Router(nil), broadcaster
}

func do(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) snapshotResponse {
	t.Helper()

	var snap snapshotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap), rec.Body.String())

	return snap
}

func createSession(t *testing.T, router http.Handler, game string) string {
	t.Helper()

	rec := do(t, router, http.MethodPost, "/sessions", `{"game":"`+game+`"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	return decode(t, rec).SessionID
}

func TestPing(t *testing.T) {
	router, _ := newRouter(t)

	rec := do(t, router, http.MethodGet, "/ping", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestGames(t *testing.T) {
	router, _ := newRouter(t)

	rec := do(t, router, http.MethodGet, "/games", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var manifests []entity.Manifest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &manifests))
	assert.Len(t, manifests, 7)
	assert.Equal(t, "tictactoe", manifests[0].Name)
}

func TestSessions(t *testing.T) {
	t.Run("Create validates the request", func(t *testing.T) {
		router, _ := newRouter(t)

		assert.Equal(t, http.StatusBadRequest, do(t, router, http.MethodPost, "/sessions", `{}`).Code)
		assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodPost, "/sessions", `{"game":"go"}`).Code)
		assert.Equal(t, http.StatusBadRequest,
			do(t, router, http.MethodPost, "/sessions", `{"game":"reversi","difficulty":"insane"}`).Code)
	})

	t.Run("Moves, undo and redo", func(t *testing.T) {
		// Given: a tic-tac-toe session
		router, broadcaster := newRouter(t)
		id := createSession(t, router, "tictactoe")

		// When: a move is posted
		rec := do(t, router, http.MethodPost, "/sessions/"+id+"/actions", `{"type":"place","row":1,"col":1}`)

		// Then: the snapshot shows it and subscribers were told
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		snap := decode(t, rec)
		assert.Equal(t, 1, snap.HistoryLength)
		assert.Equal(t, "X's turn", snap.DisplayStatus)
		assert.Equal(t, []string{id}, broadcaster.sessions)

		snap = decode(t, do(t, router, http.MethodPost, "/sessions/"+id+"/undo", ""))
		assert.Equal(t, 0, snap.HistoryLength)
		assert.True(t, snap.CanRedo)

		snap = decode(t, do(t, router, http.MethodPost, "/sessions/"+id+"/redo", ""))
		assert.Equal(t, 1, snap.HistoryLength)

		snap = decode(t, do(t, router, http.MethodGet, "/sessions/"+id, ""))
		assert.Equal(t, "tictactoe", snap.Game)
		assert.True(t, snap.CanUndo)
	})

	t.Run("Errors are mapped", func(t *testing.T) {
		router, _ := newRouter(t)
		id := createSession(t, router, "hasami-shogi")

		rec := do(t, router, http.MethodPost, "/sessions/"+id+"/actions",
			`{"type":"move","from":{"row":8,"col":0},"to":{"row":7,"col":1}}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "cannot move piece from (8,0) to (7,1)")

		rec = do(t, router, http.MethodPost, "/sessions/"+id+"/actions", `{"type":"fly"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = do(t, router, http.MethodPost, "/sessions/"+id+"/actions", `not json`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = do(t, router, http.MethodGet, "/sessions/missing", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Hints and selection", func(t *testing.T) {
		router, _ := newRouter(t)
		id := createSession(t, router, "hasami-shogi")

		assert.Equal(t, http.StatusBadRequest, do(t, router, http.MethodPut, "/sessions/"+id+"/hints", `{}`).Code)

		snap := decode(t, do(t, router, http.MethodPut, "/sessions/"+id+"/hints", `{"enabled":true}`))
		assert.True(t, snap.Hints.Enabled)

		snap = decode(t, do(t, router, http.MethodPut, "/sessions/"+id+"/selection", `{"row":8,"col":0}`))
		require.NotNil(t, snap.Hints.Selected)
		assert.Len(t, snap.Hints.Overlays, 7)

		snap = decode(t, do(t, router, http.MethodPut, "/sessions/"+id+"/selection", `null`))
		assert.Nil(t, snap.Hints.Selected)
	})

	t.Run("History", func(t *testing.T) {
		router, _ := newRouter(t)
		id := createSession(t, router, "tictactoe")
		do(t, router, http.MethodPost, "/sessions/"+id+"/actions", `{"type":"place","row":0,"col":0}`)

		rec := do(t, router, http.MethodGet, "/sessions/"+id+"/history/1", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"index":1`)

		rec = do(t, router, http.MethodGet, "/sessions/"+id+"/history/5", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Valid range: 0-1")

		rec = do(t, router, http.MethodGet, "/sessions/"+id+"/history/abc", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Reset and delete", func(t *testing.T) {
		router, _ := newRouter(t)
		id := createSession(t, router, "stick-taking")
		do(t, router, http.MethodPost, "/sessions/"+id+"/actions", `{"type":"select","row":0,"stick_id":0}`)

		snap := decode(t, do(t, router, http.MethodPost, "/sessions/"+id+"/reset", ""))
		assert.Equal(t, 0, snap.HistoryLength)

		assert.Equal(t, http.StatusNoContent, do(t, router, http.MethodDelete, "/sessions/"+id, "").Code)
		assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodDelete, "/sessions/"+id, "").Code)
	})
}
