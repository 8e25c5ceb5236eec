package table

import (
	"sort"

	"github.com/shishigami87/aimroutines/internal/models"
)

// difficultyOrder ranks the tier names the big benchmark sets use, so a
// routine's playlists show up easiest-first in the "start playlist" menu.
// Titles not listed here sort last.
var difficultyOrder = map[string]int{
	// Fundamentals
	"Iron":        0,
	"Bronze":      1,
	"Silver":      2,
	"Gold":        3,
	"Platinum":    4,
	"Diamond":     5,
	"Jade":        6,
	"Master":      7,
	"Grandmaster": 8,

	// Modern benchmarks
	"Novice":       1,
	"Intermediate": 2,
	"Advanced":     3,

	// Alternate benchmarks
	"Easy": 0,
	"Hard": 1,

	// TSK benchmarks
	"Beginner": 0,
	"Main":     1,
	"Extra":    2,

	// Aimlabs VDIM ("Novice".."Advanced" shared with the modern set)
	"Entry": 0,
	"Elite": 4,

	// Kovaaks VDIM
	"Initiate":      0,
	"Advanced Plus": 4,

	// Deadman's benchmarks
	"Level 1":          0,
	"Level 1 Pokeball": 1,
	"Level 2":          2,
	"Level 2 Pokeball": 3,
	"Level 3":          4,
	"Level 3 Pokeball": 5,
	"Level 4":          6,
	"Level 4 Pokeball": 7,
	"Boss":             8,
	"Boss Pokeball":    9,
	"Boss+":            10,
	"Boss+ Pokeball":   11,
	"Boss++":           12,
	"Boss++ Pokeball":  13,
}

const unknownDifficultyRank = 99

// DifficultyRank returns the sort rank for a playlist title.
func DifficultyRank(title string) int {
	if rank, ok := difficultyOrder[title]; ok {
		return rank
	}
	return unknownDifficultyRank
}

// SortPlaylistsByDifficulty orders playlists easiest-first, in place. The
// sort must be stable: ties keep their original order so the menu does not
// shuffle between renders.
func SortPlaylistsByDifficulty(playlists []models.Playlist) {
	sort.SliceStable(playlists, func(i, j int) bool {
		return DifficultyRank(playlists[i].Title) < DifficultyRank(playlists[j].Title)
	})
}
