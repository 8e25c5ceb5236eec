package table

import (
	"testing"

	"github.com/shishigami87/aimroutines/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestDifficultyRank(t *testing.T) {
	assert.Equal(t, 0, DifficultyRank("Iron"))
	assert.Equal(t, 3, DifficultyRank("Gold"))
	assert.Equal(t, 5, DifficultyRank("Diamond"))
	assert.Equal(t, 8, DifficultyRank("Grandmaster"))
	assert.Equal(t, unknownDifficultyRank, DifficultyRank("Warmup Mix"))
}

func TestSortPlaylistsByDifficulty(t *testing.T) {
	playlists := []models.Playlist{
		{ID: "p1", Title: "Gold"},
		{ID: "p2", Title: "Iron"},
		{ID: "p3", Title: "Warmup Mix"},
		{ID: "p4", Title: "Bronze"},
	}

	SortPlaylistsByDifficulty(playlists)

	got := []string{playlists[0].Title, playlists[1].Title, playlists[2].Title, playlists[3].Title}
	assert.Equal(t, []string{"Iron", "Bronze", "Gold", "Warmup Mix"}, got)
}

func TestSortPlaylistsByDifficulty_TiesKeepOrder(t *testing.T) {
	// Unknown titles all rank last and must not shuffle between calls.
	playlists := []models.Playlist{
		{ID: "p1", Title: "Custom A"},
		{ID: "p2", Title: "Custom B"},
		{ID: "p3", Title: "Iron"},
		{ID: "p4", Title: "Custom C"},
	}

	SortPlaylistsByDifficulty(playlists)

	assert.Equal(t, "Iron", playlists[0].Title)
	assert.Equal(t, "Custom A", playlists[1].Title)
	assert.Equal(t, "Custom B", playlists[2].Title)
	assert.Equal(t, "Custom C", playlists[3].Title)
}
