package service

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"league-le/internal/api"
	"league-le/internal/constants"
	"league-le/internal/domain"
	"league-le/internal/game"

	"github.com/itbasis/go-clock"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// EnrichmentService fills in player biographies from the wiki. A failed
// lookup degrades that one player to placeholder values and is never fatal.
// Successful lookups are cached by handle for the life of the process.
type EnrichmentService struct {
	cargo  *api.CargoClient
	clock  clock.Clock
	logger zerolog.Logger

	mu    sync.Mutex
	cache map[string]*domain.Enrichment
}

func NewEnrichmentService(cargo *api.CargoClient, c clock.Clock, logger zerolog.Logger) *EnrichmentService {
	return &EnrichmentService{
		cargo:  cargo,
		clock:  c,
		logger: logger,
		cache:  make(map[string]*domain.Enrichment),
	}
}

// Enrich returns the player with biographical fields attached. The input is
// not mutated; the returned copy carries the same id.
func (s *EnrichmentService) Enrich(ctx context.Context, player domain.Player) domain.Player {
	if player.Enriched() {
		if player.Enrichment.CountryCode == "" {
			player.Enrichment.CountryCode = game.CountryCode(player.Enrichment.Country)
		}
		return player
	}

	s.mu.Lock()
	cached, ok := s.cache[player.ID]
	s.mu.Unlock()
	if ok {
		player.Enrichment = cached
		return player
	}

	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	info, err := s.cargo.GetPlayerInfo(apiCtx, player.Name)
	if err != nil {
		s.logger.Warn().Err(err).Str("player", player.Name).Msg("enrichment lookup failed, using placeholders")
		player.Enrichment = &domain.Enrichment{
			Country: domain.Unknown,
			Age:     domain.Unknown,
		}
		return player
	}

	enrichment := s.buildEnrichment(info)

	s.mu.Lock()
	s.cache[player.ID] = enrichment
	s.mu.Unlock()

	player.Enrichment = enrichment
	return player
}

// EnrichPair enriches two players concurrently, typically the newest guess
// and the target.
func (s *EnrichmentService) EnrichPair(ctx context.Context, a, b domain.Player) (domain.Player, domain.Player) {
	g := new(errgroup.Group)
	g.Go(func() error {
		a = s.Enrich(ctx, a)
		return nil
	})
	g.Go(func() error {
		b = s.Enrich(ctx, b)
		return nil
	})
	_ = g.Wait()
	return a, b
}

func (s *EnrichmentService) buildEnrichment(info *api.CargoPlayer) *domain.Enrichment {
	country := firstNonEmpty(info.NationalityPrimary, info.Nationality, info.Country, domain.Unknown)

	enrichment := &domain.Enrichment{
		Country:     country,
		CountryCode: game.CountryCode(country),
		Age:         ageFromBirthdate(info.Birthdate, s.clock.Now()),
		Image:       info.Image,
		SocialMedia: domain.SocialMedia{
			Twitter:   profileURL(info.Twitter, "https://twitter.com/"),
			Facebook:  info.Facebook,
			Instagram: profileURL(info.Instagram, "https://www.instagram.com/"),
			Twitch:    info.Stream,
			TikTok:    profileURL(info.Threads, "https://www.threads.net/@"),
			Discord:   info.Discord,
		},
	}

	if info.FavChamps != "" {
		for _, champ := range strings.Split(info.FavChamps, ",") {
			if champ = strings.TrimSpace(champ); champ != "" {
				enrichment.SignatureChampions = append(enrichment.SignatureChampions, champ)
			}
		}
	}

	return enrichment
}

// ageFromBirthdate computes whole years between the wiki birthdate and now,
// or the unknown placeholder when the date doesn't parse.
func ageFromBirthdate(birthdate string, now time.Time) string {
	born, err := time.Parse("2006-01-02", strings.TrimSpace(birthdate))
	if err != nil {
		return domain.Unknown
	}

	age := now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		age--
	}
	if age < 0 {
		return domain.Unknown
	}
	return strconv.Itoa(age)
}

func profileURL(handle, base string) string {
	if handle == "" {
		return ""
	}
	if strings.HasPrefix(handle, "http") {
		return handle
	}
	return base + handle
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
