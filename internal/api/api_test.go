package api_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/mazedle-go/internal/api"
	"github.com/mcoot/mazedle-go/internal/api/apierr"
	"github.com/mcoot/mazedle-go/internal/api/handler"
	"github.com/mcoot/mazedle-go/internal/api/response"
	"github.com/mcoot/mazedle-go/internal/api/sse"
	"github.com/mcoot/mazedle-go/internal/factory"
	"github.com/mcoot/mazedle-go/internal/model"
	"github.com/mcoot/mazedle-go/internal/testutil"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
	hub     *sse.Hub
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := testutil.NopLogger()

	// Mock clock and random make today's character Thomas (id 1)
	app := factory.NewTestApp()
	hub := sse.NewHub(logger)
	go hub.Run()
	t.Cleanup(hub.Close)

	router := api.NewRouter(api.RouterConfig{
		Logger:            logger,
		SessionController: app.SessionController,
		SelectionEngine:   app.SelectionEngine,
		ComparisonService: app.ComparisonService,
		Roster:            app.Roster,
		Calendar:          app.Calendar,
		Hub:               hub,
		StreamInterval:    10 * time.Millisecond,
	})

	return &testServer{
		handler: router,
		app:     app,
		hub:     hub,
	}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	switch b := body.(type) {
	case nil:
		reqBody = bytes.NewBuffer(nil)
	case string:
		reqBody = bytes.NewBufferString(b)
	default:
		data, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(data)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&v))
	return v
}

func assertErrorCode(t *testing.T, rr *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	assert.Equal(t, status, rr.Code)
	resp := decode[apierr.ErrorResponse](t, rr)
	assert.Equal(t, code, resp.Error.Code)
}

func guess(ts *testServer, id int) *httptest.ResponseRecorder {
	return ts.request(http.MethodPost, "/api/v1/session/guesses", map[string]int{"character_id": id})
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/leaderboard", nil)
	assertErrorCode(t, rr, http.StatusNotFound, apierr.CodeNotFound)
}

// Session tests

func TestGetSession(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/session", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "no-store", rr.Header().Get("Cache-Control"))

	s := decode[response.Session](t, rr)
	assert.Equal(t, "2024-01-01", s.CurrentDate)
	assert.Equal(t, "in_progress", s.Status)
	assert.Equal(t, model.MaxAttempts, s.MaxAttempts)
	assert.Equal(t, model.MaxAttempts, s.RemainingAttempts)
	assert.Empty(t, s.Guesses)
	assert.Nil(t, s.Target, "target must stay hidden while playing")
}

func TestGuessReturnsVerdicts(t *testing.T) {
	ts := newTestServer(t)

	rr := guess(ts, 2)
	require.Equal(t, http.StatusOK, rr.Code)

	s := decode[response.Session](t, rr)
	assert.Equal(t, "in_progress", s.Status)
	assert.Equal(t, model.MaxAttempts-1, s.RemainingAttempts)
	require.Len(t, s.Guesses, 1)
	assert.Equal(t, "Newt", s.Guesses[0].Character.Name)

	verdicts := s.Guesses[0].Verdicts
	require.Len(t, verdicts, 8)
	assert.Equal(t, "Name", verdicts[0].Label)
	assert.Equal(t, "Newt", verdicts[0].Value)
	assert.Equal(t, "incorrect", verdicts[0].Verdict)
	assert.Equal(t, "Age", verdicts[2].Label)
	assert.Equal(t, float64(18), verdicts[2].Value)
	assert.Equal(t, "correct", verdicts[2].Verdict)
	assert.Nil(t, s.Target)
}

func TestGuessCorrectWinsAndRevealsTarget(t *testing.T) {
	ts := newTestServer(t)

	rr := guess(ts, 1)
	require.Equal(t, http.StatusOK, rr.Code)

	s := decode[response.Session](t, rr)
	assert.Equal(t, "won", s.Status)
	assert.Equal(t, 0, s.RemainingAttempts)
	require.NotNil(t, s.Target)
	assert.Equal(t, "Thomas", s.Target.Name)
	for _, v := range s.Guesses[0].Verdicts {
		assert.Equal(t, "correct", v.Verdict)
	}
}

func TestGuessSeventhTimeIsIgnored(t *testing.T) {
	ts := newTestServer(t)

	for i := 0; i < model.MaxAttempts; i++ {
		require.Equal(t, http.StatusOK, guess(ts, 2).Code)
	}

	rr := guess(ts, 1)
	require.Equal(t, http.StatusOK, rr.Code)

	s := decode[response.Session](t, rr)
	assert.Equal(t, "lost", s.Status)
	assert.Len(t, s.Guesses, model.MaxAttempts)
	assert.False(t, s.Revealed)
	assert.NotNil(t, s.Target)
}

func TestGuessValidation(t *testing.T) {
	ts := newTestServer(t)

	assertErrorCode(t, ts.request(http.MethodPost, "/api/v1/session/guesses", "{"), http.StatusBadRequest, apierr.CodeInvalidRequest)
	assertErrorCode(t, ts.request(http.MethodPost, "/api/v1/session/guesses", map[string]int{}), http.StatusBadRequest, apierr.CodeInvalidRequest)
	assertErrorCode(t, ts.request(http.MethodPost, "/api/v1/session/guesses", map[string]any{"character_id": 1, "name": "Thomas"}), http.StatusBadRequest, apierr.CodeInvalidRequest)
	assertErrorCode(t, guess(ts, 999), http.StatusNotFound, apierr.CodeCharacterNotFound)
}

func TestGiveUp(t *testing.T) {
	ts := newTestServer(t)
	guess(ts, 2)

	rr := ts.request(http.MethodPost, "/api/v1/session/give-up", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	s := decode[response.Session](t, rr)
	assert.Equal(t, "lost", s.Status)
	assert.True(t, s.Revealed)
	require.NotNil(t, s.Target)
	assert.Equal(t, "Thomas", s.Target.Name)
}

func TestGiveUpAfterWinKeepsWin(t *testing.T) {
	ts := newTestServer(t)
	guess(ts, 1)

	rr := ts.request(http.MethodPost, "/api/v1/session/give-up", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	s := decode[response.Session](t, rr)
	assert.Equal(t, "won", s.Status)
	assert.False(t, s.Revealed)
}

func TestRestart(t *testing.T) {
	ts := newTestServer(t)
	guess(ts, 1)

	rr := ts.request(http.MethodPost, "/api/v1/session/restart", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	s := decode[response.Session](t, rr)
	assert.Equal(t, "in_progress", s.Status)
	assert.Empty(t, s.Guesses)

	info := decode[response.Selection](t, ts.request(http.MethodGet, "/api/v1/selection", nil))
	assert.Equal(t, 2, info.UsedCount)
}

func TestSessionRollsOverAtMidnight(t *testing.T) {
	ts := newTestServer(t)
	guess(ts, 1)

	ts.app.AdvanceDays(1)

	s := decode[response.Session](t, ts.request(http.MethodGet, "/api/v1/session", nil))
	assert.Equal(t, "2024-01-02", s.CurrentDate)
	assert.Equal(t, "in_progress", s.Status)
	assert.Empty(t, s.Guesses)
}

func TestStorageFailureSurfaces(t *testing.T) {
	ts := newTestServer(t)
	ts.app.MemoryStore.SetFailure(model.ErrStorageUnavailable)

	rr := ts.request(http.MethodGet, "/api/v1/session", nil)
	assertErrorCode(t, rr, http.StatusInternalServerError, apierr.CodeStorageUnavailable)
}

// Character tests

func TestSearchCharacters(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/characters?q=th", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	list := decode[response.CharacterList](t, rr)
	require.Len(t, list.Characters, 1)
	assert.Equal(t, "Thomas", list.Characters[0].Name)
}

func TestSearchCharactersExcludes(t *testing.T) {
	ts := newTestServer(t)

	list := decode[response.CharacterList](t, ts.request(http.MethodGet, "/api/v1/characters?q=th&exclude=1,2", nil))
	assert.Empty(t, list.Characters)
	assert.NotNil(t, list.Characters)

	rr := ts.request(http.MethodGet, "/api/v1/characters?q=th&exclude=one", nil)
	assertErrorCode(t, rr, http.StatusBadRequest, apierr.CodeInvalidRequest)
}

func TestSearchCharactersEmptyQuery(t *testing.T) {
	ts := newTestServer(t)

	list := decode[response.CharacterList](t, ts.request(http.MethodGet, "/api/v1/characters", nil))
	assert.Empty(t, list.Characters)
}

func TestGetCharacter(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/characters/3", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	c := decode[response.Character](t, rr)
	assert.Equal(t, "Teresa Agnes", c.Name)

	assertErrorCode(t, ts.request(http.MethodGet, "/api/v1/characters/99", nil), http.StatusNotFound, apierr.CodeCharacterNotFound)
	assertErrorCode(t, ts.request(http.MethodGet, "/api/v1/characters/abc", nil), http.StatusBadRequest, apierr.CodeInvalidRequest)
}

// Countdown tests

func TestCountdown(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/countdown", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	c := decode[response.Countdown](t, rr)
	assert.Equal(t, response.Countdown{
		Hours:     12,
		Minutes:   0,
		Seconds:   0,
		NextReset: "2024-01-02T00:00:00Z",
	}, c)
}

func TestCountdownStream(t *testing.T) {
	ts := newTestServer(t)
	srv := httptest.NewServer(ts.handler)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/v1/countdown/stream", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	reader := bufio.NewReader(resp.Body)
	readUntil := func(prefix string) string {
		t.Helper()
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			if strings.HasPrefix(line, prefix) {
				return strings.TrimSpace(line)
			}
		}
	}

	readUntil("event: connected")
	readUntil("event: tick")
	assert.Equal(t, `data: {"hours":12,"minutes":0,"seconds":0,"next_reset":"2024-01-02T00:00:00Z"}`, readUntil("data: "))

	ts.app.AdvanceDays(1)
	s, err := ts.app.SessionController.LoadOrInit(ctx)
	require.NoError(t, err)
	handler.RolloverBroadcaster(ts.hub)(s)

	readUntil("event: rollover")
	assert.Equal(t, `data: {"current_date":"2024-01-02"}`, readUntil("data: "))
}

// Selection tests

func TestSelectionInfoAndReset(t *testing.T) {
	ts := newTestServer(t)
	ts.request(http.MethodGet, "/api/v1/session", nil)

	info := decode[response.Selection](t, ts.request(http.MethodGet, "/api/v1/selection", nil))
	assert.Equal(t, response.Selection{
		UsedCount:      1,
		TotalCount:     16,
		RemainingCount: 15,
		LastResetDate:  "2024-01-01",
	}, info)

	ts.app.AdvanceDays(1)
	rr := ts.request(http.MethodPost, "/api/v1/selection/reset", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	info = decode[response.Selection](t, rr)
	assert.Equal(t, 0, info.UsedCount)
	assert.Equal(t, "2024-01-02", info.LastResetDate)
}
