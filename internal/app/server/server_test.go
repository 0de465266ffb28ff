package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/club59/pongking/internal/ai"
	"github.com/club59/pongking/internal/app/club"
	"github.com/club59/pongking/internal/domains/dtos"
	"github.com/club59/pongking/internal/domains/entities"
	"github.com/club59/pongking/internal/repositories"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScout struct {
	style ai.StyleReport
	err   error
}

func (f *fakeScout) GenerateStyle(
	_ context.Context,
	_ string,
	_ entities.Attributes,
) (ai.StyleReport, error) {
	if f.err != nil {
		return ai.StyleReport{}, f.err
	}
	return f.style, nil
}

func (f *fakeScout) AnalyzeHistory(_ context.Context, _, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "Keep attacking the middle.", nil
}

func (f *fakeScout) PredictMatch(
	_ context.Context,
	player1, _ entities.Player,
) (ai.Prediction, error) {
	if f.err != nil {
		return ai.Prediction{}, f.err
	}
	return ai.Prediction{Winner: player1.Name, Score: "11-7", Point: "better footwork"}, nil
}

func newTestServer(t *testing.T) (*httptest.Server, *repositories.MemoryStore) {
	t.Helper()
	store := repositories.NewMemoryStore()
	service := club.NewService(store, &fakeScout{
		style: ai.StyleReport{StyleLabel: "chopper", StyleDescription: "Defends far from the table."},
	})
	srv := NewServer(Config{Port: "0"}, service, nil)
	ts := httptest.NewServer(srv.routes())
	t.Cleanup(ts.Close)
	return ts, store
}

func postJson(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	require.NoError(t, err)
	return resp
}

func TestPlayerCreateAndList(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := postJson(t, ts.URL+"/players", dtos.PlayerCreateRequest{
		Name: "Kim",
		Tier: "ace",
		Attributes: entities.Attributes{
			Power: 7, Spin: 8, Control: 5, Serve: 6, Footwork: 4,
		},
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created dtos.PlayerResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, "Kim", created.Name)
	assert.Equal(t, 1000, created.Rating)
	assert.Equal(t, "chopper", created.StyleLabel)

	listResp, err := http.Get(ts.URL + "/players")
	require.NoError(t, err)
	defer listResp.Body.Close()
	var players []dtos.PlayerResponse
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&players))
	require.Len(t, players, 1)
	assert.Equal(t, created.Id, players[0].Id)
}

func TestPlayerGetById(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := postJson(t, ts.URL+"/players", dtos.PlayerCreateRequest{
		Name: "Sol",
		Tier: "regular",
		Attributes: entities.Attributes{
			Power: 5, Spin: 5, Control: 5, Serve: 5, Footwork: 5,
		},
	})
	var created dtos.PlayerResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()

	getResp, err := http.Get(ts.URL + "/players/" + created.Id)
	require.NoError(t, err)
	defer getResp.Body.Close()
	require.Equal(t, http.StatusOK, getResp.StatusCode)
	var fetched dtos.PlayerResponse
	require.NoError(t, json.NewDecoder(getResp.Body).Decode(&fetched))
	assert.Equal(t, created.Id, fetched.Id)
	assert.Equal(t, "Sol", fetched.Name)

	missing, err := http.Get(ts.URL + "/players/no-such-id")
	require.NoError(t, err)
	defer missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func TestPlayerCreateValidation(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := postJson(t, ts.URL+"/players", dtos.PlayerCreateRequest{
		Name: "Kim",
		Tier: "ace",
		Attributes: entities.Attributes{
			Power: 11, Spin: 8, Control: 5, Serve: 6, Footwork: 4,
		},
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMatchSubmitAndRankings(t *testing.T) {
	ts, store := newTestServer(t)
	ctx := context.Background()

	for _, p := range []entities.Player{
		{Id: "p1", Name: "Kim", Tier: entities.TierRegular, Rating: 1000},
		{Id: "p2", Name: "Lee", Tier: entities.TierRegular, Rating: 1000},
	} {
		require.NoError(t, store.PutPlayer(ctx, p))
	}

	resp := postJson(t, ts.URL+"/matches", dtos.MatchCreateRequest{
		Player1Id: "p1", Player2Id: "p2", Score1: 11, Score2: 9,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var match dtos.MatchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&match))
	assert.Equal(t, "p1", match.WinnerId)

	rankResp, err := http.Get(ts.URL + "/rankings")
	require.NoError(t, err)
	defer rankResp.Body.Close()
	var standings []dtos.StandingResponse
	require.NoError(t, json.NewDecoder(rankResp.Body).Decode(&standings))
	require.Len(t, standings, 2)
	assert.Equal(t, "p1", standings[0].Player.Id)
	assert.Equal(t, 1020, standings[0].Player.Rating)
	assert.Equal(t, 1, standings[0].Wins)
}

func TestMatchSubmitTieRejected(t *testing.T) {
	ts, store := newTestServer(t)
	require.NoError(t, store.PutPlayer(context.Background(), entities.Player{Id: "p1", Name: "Kim", Rating: 1000}))
	require.NoError(t, store.PutPlayer(context.Background(), entities.Player{Id: "p2", Name: "Lee", Rating: 1000}))

	resp := postJson(t, ts.URL+"/matches", dtos.MatchCreateRequest{
		Player1Id: "p1", Player2Id: "p2", Score1: 10, Score2: 10,
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMatchSubmitUnknownPlayer(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := postJson(t, ts.URL+"/matches", dtos.MatchCreateRequest{
		Player1Id: "ghost", Player2Id: "phantom", Score1: 11, Score2: 9,
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMatchGetById(t *testing.T) {
	ts, store := newTestServer(t)
	ctx := context.Background()

	require.NoError(t, store.PutMatch(ctx, entities.Match{
		Id: "m1", Player1Id: "p1", Player2Id: "p2", Score1: 11, Score2: 6,
	}))

	resp, err := http.Get(ts.URL + "/matches/m1")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched dtos.MatchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&fetched))
	assert.Equal(t, "m1", fetched.Id)

	missing, err := http.Get(ts.URL + "/matches/m2")
	require.NoError(t, err)
	defer missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func TestLiveSnapshotStream(t *testing.T) {
	ts, store := newTestServer(t)
	ctx := context.Background()

	require.NoError(t, store.PutPlayer(ctx, entities.Player{Id: "p1", Name: "Kim", Tier: entities.TierAce, Rating: 1000}))

	wsUrl := "ws" + strings.TrimPrefix(ts.URL, "http") + "/live"
	conn, _, err := websocket.DefaultDialer.Dial(wsUrl, nil)
	require.NoError(t, err)
	defer conn.Close()

	// Initial snapshot arrives without any change happening.
	var initial dtos.SnapshotResponse
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&initial))
	assert.Equal(t, "snapshot", initial.Type)
	require.Len(t, initial.Players, 1)

	// A mutation through the HTTP surface pushes a fresh snapshot.
	resp := postJson(t, ts.URL+"/players", dtos.PlayerCreateRequest{
		Name: "Lee",
		Tier: "rookie",
		Attributes: entities.Attributes{
			Power: 5, Spin: 5, Control: 5, Serve: 5, Footwork: 5,
		},
	})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var updated dtos.SnapshotResponse
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&updated))
	assert.Len(t, updated.Players, 2)
}

func TestErrorBodyShape(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Post(ts.URL+"/matches", "application/json", strings.NewReader("{not json"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body, "error")
}
