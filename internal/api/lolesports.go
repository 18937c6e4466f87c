package api

import (
	"context"
	"fmt"

	"league-le/internal/config"

	"github.com/valyala/fasthttp"
)

// EsportsClient talks to the public LoL Esports roster API.
type EsportsClient struct {
	apiKey  string
	baseURL string
	client  *fasthttp.Client
}

func NewEsportsClient(cfg *config.Config) *EsportsClient {
	return &EsportsClient{
		apiKey:  cfg.EsportsAPIKey,
		baseURL: cfg.EsportsURL,
		client:  newClient(),
	}
}

func (c *EsportsClient) GetTeams(ctx context.Context) (*TeamsResponse, error) {
	url := fmt.Sprintf("%s/persisted/gw/getTeams?hl=en-US", c.baseURL)
	return doRequest[TeamsResponse](ctx, c.client, url, map[string]string{
		"x-api-key": c.apiKey,
	})
}

type TeamsResponse struct {
	Data struct {
		Teams []Team `json:"teams"`
	} `json:"data"`
}

type Team struct {
	Name       string `json:"name"`
	HomeLeague struct {
		Name string `json:"name"`
	} `json:"homeLeague"`
	Players []TeamPlayer `json:"players"`
}

type TeamPlayer struct {
	SummonerName string `json:"summonerName"`
	Role         string `json:"role"`
	Image        string `json:"image"`
}
