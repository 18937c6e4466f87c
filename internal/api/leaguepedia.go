package api

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"league-le/internal/config"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

const cargoFields = "Player,Country,Nationality,NationalityPrimary,Birthdate,Team,Role,IsRetired,Image,Twitter,Facebook,Instagram,Stream,Discord,Threads,FavChamps"

// CargoClient queries the Leaguepedia wiki's cargo tables for player
// biographies.
type CargoClient struct {
	baseURL string
	client  *fasthttp.Client
	logger  zerolog.Logger
}

func NewCargoClient(cfg *config.Config, logger zerolog.Logger) *CargoClient {
	return &CargoClient{
		baseURL: cfg.CargoURL,
		client:  newClient(),
		logger:  logger,
	}
}

type CargoResponse struct {
	CargoQuery []struct {
		Title CargoPlayer `json:"title"`
	} `json:"cargoquery"`
}

// CargoPlayer is one row of the wiki's Players table. Everything arrives
// as strings, including booleans ("0"/"1").
type CargoPlayer struct {
	Player             string `json:"Player"`
	Country            string `json:"Country"`
	Nationality        string `json:"Nationality"`
	NationalityPrimary string `json:"NationalityPrimary"`
	Birthdate          string `json:"Birthdate"`
	Team               string `json:"Team"`
	Role               string `json:"Role"`
	IsRetired          string `json:"IsRetired"`
	Image              string `json:"Image"`
	Twitter            string `json:"Twitter"`
	Facebook           string `json:"Facebook"`
	Instagram          string `json:"Instagram"`
	Stream             string `json:"Stream"`
	Discord            string `json:"Discord"`
	Threads            string `json:"Threads"`
	FavChamps          string `json:"FavChamps"`
}

func (p *CargoPlayer) Retired() bool {
	return p.IsRetired == "1" || strings.EqualFold(p.IsRetired, "true")
}

// GetPlayerInfo resolves a player page by handle, widening the match on
// each miss: exact name, then a "Name (Real Name)" prefix, then substring.
// Active players are tried first, then the search repeats without the
// retirement filter. Rows with a current team win over rows without; when
// several remain, the last one is the freshest.
func (c *CargoClient) GetPlayerInfo(ctx context.Context, playerName string) (*CargoPlayer, error) {
	activeStrategies := []string{
		fmt.Sprintf(`Player="%s" AND IsRetired=false`, playerName),
		fmt.Sprintf(`Player LIKE "%s (%%" AND IsRetired=false`, playerName),
		fmt.Sprintf(`Player LIKE "%%%s%%" AND IsRetired=false`, playerName),
	}

	if info, err := c.search(ctx, activeStrategies, true); err != nil {
		return nil, err
	} else if info != nil {
		return info, nil
	}

	c.logger.Debug().Str("player", playerName).Msg("no active-roster match, widening search")

	fallbackStrategies := []string{
		fmt.Sprintf(`Player="%s"`, playerName),
		fmt.Sprintf(`Player LIKE "%s (%%"`, playerName),
		fmt.Sprintf(`Player LIKE "%%%s%%"`, playerName),
	}

	info, err := c.search(ctx, fallbackStrategies, false)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, fmt.Errorf("no cargo result for player %q", playerName)
	}
	return info, nil
}

func (c *CargoClient) search(ctx context.Context, strategies []string, requireTeam bool) (*CargoPlayer, error) {
	for _, where := range strategies {
		resp, err := c.query(ctx, where)
		if err != nil {
			return nil, err
		}
		if len(resp.CargoQuery) == 0 {
			continue
		}

		rows := make([]CargoPlayer, 0, len(resp.CargoQuery))
		for _, entry := range resp.CargoQuery {
			rows = append(rows, entry.Title)
		}

		if requireTeam {
			if row := lastMatching(rows, func(p CargoPlayer) bool { return strings.TrimSpace(p.Team) != "" }); row != nil {
				return row, nil
			}
		} else {
			if row := lastMatching(rows, func(p CargoPlayer) bool { return !p.Retired() }); row != nil {
				return row, nil
			}
		}

		// Nothing preferred in this batch, settle for the last row.
		last := rows[len(rows)-1]
		return &last, nil
	}
	return nil, nil
}

func (c *CargoClient) query(ctx context.Context, where string) (*CargoResponse, error) {
	params := url.Values{}
	params.Set("action", "cargoquery")
	params.Set("tables", "Players")
	params.Set("fields", cargoFields)
	params.Set("where", where)
	params.Set("format", "json")

	endpoint := fmt.Sprintf("%s/api.php?%s", c.baseURL, params.Encode())
	return doRequest[CargoResponse](ctx, c.client, endpoint, nil)
}

func lastMatching(rows []CargoPlayer, keep func(CargoPlayer) bool) *CargoPlayer {
	for i := len(rows) - 1; i >= 0; i-- {
		if keep(rows[i]) {
			row := rows[i]
			return &row
		}
	}
	return nil
}
