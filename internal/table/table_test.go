package table

import (
	"testing"

	"github.com/shishigami87/aimroutines/internal/models"
	"github.com/shishigami87/aimroutines/internal/services"
	"github.com/stretchr/testify/assert"
)

func routineRows() []services.RoutineView {
	return []services.RoutineView{
		{
			ID:    "r1",
			Title: "VT Fundamentals",
			Game:  models.GameKovaaks,
			Likes: 5,
			Playlists: []models.Playlist{
				{Title: "Iron", Reference: "KovaaKs-VT-Iron-xCDWk"},
			},
		},
		{
			ID:        "r2",
			Title:     "VDIM",
			Author:    "drimzi",
			Game:      models.GameAimlabs,
			Likes:     3,
			Playlists: []models.Playlist{},
		},
		{
			ID:     "r3",
			Title:  "Angelic Benchmarks",
			Author: "Angelic",
			Game:   models.GameKovaaks,
			Likes:  3,
		},
	}
}

func ids[T any](rows []T, id func(T) string) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, id(r))
	}
	return out
}

func routineIDs(rows []services.RoutineView) []string {
	return ids(rows, func(r services.RoutineView) string { return r.ID })
}

func TestApplyRoutines_TextFilterTitle(t *testing.T) {
	out := ApplyRoutines(routineRows(), Query{Text: "vdim"})
	assert.Equal(t, []string{"r2"}, routineIDs(out))
}

func TestApplyRoutines_ShareCodeNeedsKovaaksPrefix(t *testing.T) {
	// "xCDWk" is part of r1's share code but the query lacks the kovaaks
	// prefix, so only titles are consulted.
	out := ApplyRoutines(routineRows(), Query{Text: "xcdwk"})
	assert.Empty(t, out)

	out = ApplyRoutines(routineRows(), Query{Text: "KovaaKs-VT-Iron"})
	assert.Equal(t, []string{"r1"}, routineIDs(out))
}

func TestApplyRoutines_GameFilter(t *testing.T) {
	out := ApplyRoutines(routineRows(), Query{Game: "AIMLABS"})
	assert.Equal(t, []string{"r2"}, routineIDs(out))

	// ANY and empty both clear the filter
	assert.Len(t, ApplyRoutines(routineRows(), Query{Game: GameAny}), 3)
	assert.Len(t, ApplyRoutines(routineRows(), Query{}), 3)
}

func TestApplyRoutines_SortTitle(t *testing.T) {
	out := ApplyRoutines(routineRows(), Query{SortColumn: "title", SortDir: SortAsc})
	assert.Equal(t, []string{"r3", "r2", "r1"}, routineIDs(out))

	out = ApplyRoutines(routineRows(), Query{SortColumn: "title", SortDir: SortDesc})
	assert.Equal(t, []string{"r1", "r2", "r3"}, routineIDs(out))
}

func TestApplyRoutines_SortLikesStable(t *testing.T) {
	// r2 and r3 tie on likes; ascending must keep their incoming order.
	out := ApplyRoutines(routineRows(), Query{SortColumn: "likes", SortDir: SortAsc})
	assert.Equal(t, []string{"r2", "r3", "r1"}, routineIDs(out))
}

func TestApplyRoutines_NoDirectionLeavesOrder(t *testing.T) {
	out := ApplyRoutines(routineRows(), Query{SortColumn: "title"})
	assert.Equal(t, []string{"r1", "r2", "r3"}, routineIDs(out))
}

func TestParseSortDirection(t *testing.T) {
	assert.Equal(t, SortAsc, ParseSortDirection("asc"))
	assert.Equal(t, SortAsc, ParseSortDirection("ASC"))
	assert.Equal(t, SortDesc, ParseSortDirection("desc"))
	assert.Equal(t, SortNone, ParseSortDirection(""))
	assert.Equal(t, SortNone, ParseSortDirection("sideways"))
}

func TestApplyPlaylists(t *testing.T) {
	rows := []services.PlaylistView{
		{ID: "p1", Title: "Smoothness", Game: models.GameKovaaks, Reference: "KovaaKs-Smooth-abc12", Likes: 1},
		{ID: "p2", Title: "Flicks", Game: models.GameAimlabs, Reference: "https://aimlabs.com/playlists/flicks", Likes: 4},
	}

	out := ApplyPlaylists(rows, Query{Game: "KOVAAKS"})
	assert.Equal(t, []string{"p1"}, ids(out, func(p services.PlaylistView) string { return p.ID }))

	// Share-code match on the playlist's own reference
	out = ApplyPlaylists(rows, Query{Text: "kovaaks-smooth"})
	assert.Equal(t, []string{"p1"}, ids(out, func(p services.PlaylistView) string { return p.ID }))

	out = ApplyPlaylists(rows, Query{SortColumn: "likes", SortDir: SortDesc})
	assert.Equal(t, []string{"p2", "p1"}, ids(out, func(p services.PlaylistView) string { return p.ID }))
}
