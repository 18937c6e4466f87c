package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"league-le/internal/config"
)

func cargoClientFor(url string) *CargoClient {
	return NewCargoClient(&config.Config{CargoURL: url}, zerolog.Nop())
}

func cargoJSON(players ...CargoPlayer) string {
	resp := CargoResponse{}
	for _, p := range players {
		resp.CargoQuery = append(resp.CargoQuery, struct {
			Title CargoPlayer `json:"title"`
		}{Title: p})
	}
	payload, _ := json.Marshal(resp)
	return string(payload)
}

func TestGetPlayerInfoExactActiveMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		where := r.URL.Query().Get("where")
		if where == `Player="Faker" AND IsRetired=false` {
			w.Write([]byte(cargoJSON(CargoPlayer{Player: "Faker", Team: "T1", Country: "South Korea"})))
			return
		}
		w.Write([]byte(cargoJSON()))
	}))
	defer server.Close()

	info, err := cargoClientFor(server.URL).GetPlayerInfo(context.Background(), "Faker")
	if err != nil {
		t.Fatalf("GetPlayerInfo: %v", err)
	}
	if info.Player != "Faker" || info.Team != "T1" {
		t.Errorf("got %+v", info)
	}
}

func TestGetPlayerInfoPrefersRowWithTeam(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		where := r.URL.Query().Get("where")
		if strings.HasPrefix(where, `Player="`) && strings.Contains(where, "IsRetired=false") {
			w.Write([]byte(cargoJSON(
				CargoPlayer{Player: "Smurf (old page)", Team: "Old Org"},
				CargoPlayer{Player: "Smurf", Team: ""},
			)))
			return
		}
		w.Write([]byte(cargoJSON()))
	}))
	defer server.Close()

	info, err := cargoClientFor(server.URL).GetPlayerInfo(context.Background(), "Smurf")
	if err != nil {
		t.Fatalf("GetPlayerInfo: %v", err)
	}
	// The teamless row comes last, but rows with a current team win.
	if info.Team != "Old Org" {
		t.Errorf("picked %+v, want the row with a team", info)
	}
}

func TestGetPlayerInfoFallsBackPastRetirementFilter(t *testing.T) {
	var sawFallback bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		where := r.URL.Query().Get("where")
		if strings.Contains(where, "IsRetired=false") {
			w.Write([]byte(cargoJSON()))
			return
		}
		sawFallback = true
		if where == `Player="Uzi"` {
			w.Write([]byte(cargoJSON(CargoPlayer{Player: "Uzi", IsRetired: "1", Country: "China"})))
			return
		}
		w.Write([]byte(cargoJSON()))
	}))
	defer server.Close()

	info, err := cargoClientFor(server.URL).GetPlayerInfo(context.Background(), "Uzi")
	if err != nil {
		t.Fatalf("GetPlayerInfo: %v", err)
	}
	if !sawFallback {
		t.Fatal("retirement-filtered pass never widened")
	}
	if info.Player != "Uzi" {
		t.Errorf("got %+v", info)
	}
}

func TestGetPlayerInfoNoResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(cargoJSON()))
	}))
	defer server.Close()

	if _, err := cargoClientFor(server.URL).GetPlayerInfo(context.Background(), "Ghost"); err == nil {
		t.Fatal("expected an error when nothing matches")
	}
}

func TestRetired(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"0", false},
		{"", false},
		{"false", false},
	}

	for _, tt := range tests {
		p := CargoPlayer{IsRetired: tt.value}
		if got := p.Retired(); got != tt.want {
			t.Errorf("Retired(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestGetTeams(t *testing.T) {
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-api-key")
		w.Write([]byte(`{"data":{"teams":[
			{"name":"T1","homeLeague":{"name":"LCK"},"players":[
				{"summonerName":"Faker","role":"mid","image":"img"}]}]}}`))
	}))
	defer server.Close()

	client := NewEsportsClient(&config.Config{EsportsAPIKey: "key", EsportsURL: server.URL})
	resp, err := client.GetTeams(context.Background())
	if err != nil {
		t.Fatalf("GetTeams: %v", err)
	}

	if gotKey != "key" {
		t.Errorf("x-api-key = %q", gotKey)
	}
	if len(resp.Data.Teams) != 1 {
		t.Fatalf("teams = %+v", resp.Data.Teams)
	}
	team := resp.Data.Teams[0]
	if team.HomeLeague.Name != "LCK" || len(team.Players) != 1 || team.Players[0].SummonerName != "Faker" {
		t.Errorf("team = %+v", team)
	}
}

func TestDoRequestNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewEsportsClient(&config.Config{EsportsURL: server.URL})
	if _, err := client.GetTeams(context.Background()); err == nil {
		t.Fatal("expected an error on a 500 response")
	}
}
