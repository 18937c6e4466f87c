package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/rs/zerolog"

	"league-le/internal/api"
	"league-le/internal/config"
	"league-le/internal/constants"
)

const teamsPayload = `{"data":{"teams":[
	{"name":"T1","homeLeague":{"name":"LCK"},"players":[
		{"summonerName":"Faker","role":"mid"},
		{"summonerName":"Keria","role":"support"}]},
	{"name":"G2 Esports","homeLeague":{"name":"LEC"},"players":[
		{"summonerName":"Caps","role":"mid"}]},
	{"name":"Random Academy","homeLeague":{"name":"LFL"},"players":[
		{"summonerName":"Trainee","role":"mid"}]},
	{"name":"T1 Duplicate","homeLeague":{"name":"LCK"},"players":[
		{"summonerName":"Faker","role":"mid"}]}
]}}`

func newRosterService(t *testing.T, handler http.HandlerFunc) (*RosterService, *clock.Mock) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	mock := clock.NewMock()
	mock.Set(time.Date(2025, time.March, 3, 12, 0, 0, 0, time.UTC))

	cfg := &config.Config{EsportsURL: server.URL, EsportsAPIKey: "test"}
	return NewRosterService(api.NewEsportsClient(cfg), mock, zerolog.Nop()), mock
}

func TestRosterFiltersAndDedupes(t *testing.T) {
	svc, _ := newRosterService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(teamsPayload))
	})

	roster := svc.Roster(context.Background())

	names := make(map[string]int)
	for _, p := range roster {
		names[p.Name]++
		if p.League != "LCK" && p.League != "LEC" {
			t.Errorf("minor-league player leaked in: %+v", p)
		}
	}
	if names["Faker"] != 1 {
		t.Errorf("Faker appears %d times, want 1", names["Faker"])
	}
	if names["Trainee"] != 0 {
		t.Error("LFL player should have been filtered out")
	}
	if len(roster) != 3 {
		t.Errorf("roster size = %d, want 3", len(roster))
	}
}

func TestRosterCachesWithinTTL(t *testing.T) {
	var calls atomic.Int32
	svc, mock := newRosterService(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(teamsPayload))
	})
	ctx := context.Background()

	svc.Roster(ctx)
	svc.Roster(ctx)
	if calls.Load() != 1 {
		t.Fatalf("feed called %d times within TTL, want 1", calls.Load())
	}

	mock.Add(constants.RosterCacheTTL + time.Minute)
	svc.Roster(ctx)
	if calls.Load() != 2 {
		t.Fatalf("feed called %d times after TTL lapse, want 2", calls.Load())
	}
}

func TestRosterFallsBackToFixture(t *testing.T) {
	svc, _ := newRosterService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	roster := svc.Roster(context.Background())
	if len(roster) == 0 {
		t.Fatal("expected the fixture roster when the feed is down")
	}

	// Every scope still has someone to pick.
	leagues := make(map[string]bool)
	for _, p := range roster {
		leagues[p.League] = true
	}
	for _, league := range []string{"LEC", "LCK", "LCS", "LPL", "LTA North", "LTA South"} {
		if !leagues[league] {
			t.Errorf("fixture roster has nobody in %s", league)
		}
	}
}

func TestIndexScopedToLeague(t *testing.T) {
	svc, _ := newRosterService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(teamsPayload))
	})
	ctx := context.Background()

	lck := svc.Index(ctx, "lck")
	if lck.FindExact("Faker") == nil {
		t.Error("Faker missing from the lck index")
	}
	if lck.FindExact("Caps") != nil {
		t.Error("Caps should not be in the lck index")
	}

	all := svc.Index(ctx, "all")
	if all.FindExact("Caps") == nil {
		t.Error("Caps missing from the all index")
	}
}
