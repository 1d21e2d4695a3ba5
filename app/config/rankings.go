package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Rankings orders staff positions for display: President before Vice
// President and so on. Positions absent from the table sort after every
// ranked one, alphabetically by member name.
type Rankings struct {
	PositionOrder map[string]int `yaml:"position_order"`
}

// unranked sorts after every explicit rank.
const unranked = int(^uint(0) >> 1)

var defaultRankings = Rankings{
	PositionOrder: map[string]int{
		"President":           1,
		"Vice President":      2,
		"Party Entertainment": 3,
	},
}

// LoadRankings reads the position-order table from a YAML file. A missing
// or unreadable file falls back to the built-in table rather than failing
// startup; the staff pages degrade gracefully either way.
func LoadRankings(path string) (*Rankings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		r := defaultRankings
		return &r, err
	}
	var r Rankings
	if err := yaml.Unmarshal(data, &r); err != nil {
		fallback := defaultRankings
		return &fallback, err
	}
	if len(r.PositionOrder) == 0 {
		r = defaultRankings
	}
	return &r, nil
}

// Rank returns a position's sort order, or a past-everything value for
// unlisted positions.
func (r *Rankings) Rank(position string) int {
	if rank, ok := r.PositionOrder[position]; ok {
		return rank
	}
	return unranked
}

// BestRank returns the highest-priority (lowest) rank among a member's
// past positions; a member with none ranks last.
func (r *Rankings) BestRank(positions []string) int {
	best := unranked
	for _, p := range positions {
		if rank := r.Rank(p); rank < best {
			best = rank
		}
	}
	return best
}
