package game

import (
	"regexp"
	"sort"
	"strings"

	"league-le/internal/constants"
	"league-le/internal/domain"
)

var aliasPattern = regexp.MustCompile(`"([^"]+)"`)

// Index is an in-memory lookup over one roster snapshot. It is rebuilt
// whenever the roster changes; enrichment-only updates don't touch the
// indexed fields, so a stale index is harmless there.
type Index struct {
	players []domain.Player
	entries []indexEntry
	exact   map[string]int
}

type indexEntry struct {
	key string
	idx int
}

func NewIndex(players []domain.Player) *Index {
	index := &Index{
		players: players,
		exact:   make(map[string]int),
	}

	for i, player := range players {
		index.add(strings.ToLower(player.Name), i)

		// Alias in quotes, e.g. `Lee "Faker" Sang-hyeok`.
		if m := aliasPattern.FindStringSubmatch(player.Name); m != nil {
			index.add(strings.ToLower(m[1]), i)
		}

		// Individual name tokens, skipping the very short ones.
		bare := strings.ReplaceAll(player.Name, `"`, "")
		for _, part := range strings.Fields(bare) {
			if len(part) > 2 {
				index.add(strings.ToLower(part), i)
			}
		}
	}

	return index
}

func (ix *Index) add(key string, playerIdx int) {
	if _, taken := ix.exact[key]; !taken {
		ix.exact[key] = playerIdx
	}
	ix.entries = append(ix.entries, indexEntry{key: key, idx: playerIdx})
}

// FindExact resolves a term to a player: case-insensitive match on the full
// name, a quoted alias, or a name token, then a substring pass over the
// indexed keys in roster order.
func (ix *Index) FindExact(term string) *domain.Player {
	key := strings.ToLower(strings.TrimSpace(term))
	if key == "" {
		return nil
	}

	if i, ok := ix.exact[key]; ok {
		player := ix.players[i]
		return &player
	}

	for _, entry := range ix.entries {
		if strings.Contains(entry.key, key) || strings.Contains(key, entry.key) {
			player := ix.players[entry.idx]
			return &player
		}
	}

	return nil
}

// Relevance tiers, highest first. Ties keep roster order.
const (
	relExactName    = 100
	relAlias        = 90
	relPrefix       = 80
	relWord         = 70
	relSubstring    = 60
	relNameInTerm   = 50
	relTokenPartial = 40
)

// Suggest returns up to limit player names ranked by how well they match
// the term, skipping already-guessed ids. Terms shorter than the minimum
// search length yield nothing.
func (ix *Index) Suggest(term string, limit int, excludeIDs []string) []string {
	key := strings.ToLower(strings.TrimSpace(term))
	if len(key) < constants.MinSearchTermLength {
		return nil
	}

	excluded := make(map[string]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}

	type match struct {
		name      string
		relevance int
		order     int
	}

	var matches []match
	for i, player := range ix.players {
		if excluded[player.ID] {
			continue
		}

		name := strings.ToLower(player.Name)
		relevance := 0

		switch {
		case name == key:
			relevance = relExactName
		case strings.Contains(name, `"`+key+`"`):
			relevance = relAlias
		case strings.HasPrefix(name, key):
			relevance = relPrefix
		case strings.Contains(name, " "+key+" "):
			relevance = relWord
		case strings.Contains(name, key):
			relevance = relSubstring
		case strings.Contains(key, name):
			relevance = relNameInTerm
		default:
			for _, part := range strings.Fields(name) {
				if strings.HasPrefix(part, key) || strings.HasPrefix(key, part) {
					relevance = relTokenPartial
					break
				}
			}
		}

		if relevance > 0 {
			matches = append(matches, match{name: player.Name, relevance: relevance, order: i})
		}
	}

	sort.SliceStable(matches, func(a, b int) bool {
		if matches[a].relevance != matches[b].relevance {
			return matches[a].relevance > matches[b].relevance
		}
		return matches[a].order < matches[b].order
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	names := make([]string, 0, len(matches))
	seen := make(map[string]bool, len(matches))
	for _, m := range matches {
		if !seen[m.name] {
			seen[m.name] = true
			names = append(names, m.name)
		}
	}
	return names
}

// Players returns the indexed roster snapshot in source order.
func (ix *Index) Players() []domain.Player {
	return ix.players
}
