package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

type Favorite struct {
	Path    string
	AddedAt time.Time
}

func (f Favorite) Validate() error {
	if strings.TrimSpace(f.Path) == "" {
		return fmt.Errorf("path is required")
	}

	return nil
}

// NormalizeFavorites drops blank and duplicate paths, keeping the earliest
// entry, and orders the result by AddedAt.
func NormalizeFavorites(favorites []Favorite) []Favorite {
	result := make([]Favorite, 0, len(favorites))
	seen := make(map[string]int, len(favorites))
	for _, favorite := range favorites {
		favorite.Path = strings.TrimSpace(favorite.Path)
		if favorite.Path == "" {
			continue
		}
		if i, ok := seen[favorite.Path]; ok {
			if favorite.AddedAt.Before(result[i].AddedAt) {
				result[i].AddedAt = favorite.AddedAt
			}
			continue
		}
		seen[favorite.Path] = len(result)
		result = append(result, favorite)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].AddedAt.Before(result[j].AddedAt)
	})

	return result
}
