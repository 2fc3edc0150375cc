package services

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/hoopdeck/fantasy-tracker/backend/internal/models"
)

const searchLimit = 10

// PlayerService handles player lookup and name search.
type PlayerService struct {
	db     *gorm.DB
	logger zerolog.Logger
}

func NewPlayerService(db *gorm.DB, logger zerolog.Logger) *PlayerService {
	return &PlayerService{db: db, logger: logger}
}

func (s *PlayerService) Get(id string) (*models.Player, error) {
	var player models.Player
	if err := s.db.First(&player, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &player, nil
}

// Search ranks players by fuzzy match against the query. Exact substring
// matches come first, then closest Levenshtein distance; ties break on name
// for a stable ordering.
func (s *PlayerService) Search(query string) ([]models.Player, error) {
	var players []models.Player
	if err := s.db.Order("name ASC").Find(&players).Error; err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		if len(players) > searchLimit {
			players = players[:searchLimit]
		}
		return players, nil
	}

	type scored struct {
		player   models.Player
		distance int
	}
	var matches []scored
	for _, p := range players {
		name := strings.ToLower(p.Name)
		switch {
		case strings.Contains(name, query):
			matches = append(matches, scored{player: p, distance: 0})
		case fuzzy.MatchNormalized(query, name):
			matches = append(matches, scored{player: p, distance: fuzzy.LevenshteinDistance(query, name)})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].distance != matches[j].distance {
			return matches[i].distance < matches[j].distance
		}
		return matches[i].player.Name < matches[j].player.Name
	})

	result := make([]models.Player, 0, searchLimit)
	for i, m := range matches {
		if i >= searchLimit {
			break
		}
		result = append(result, m.player)
	}
	return result, nil
}
