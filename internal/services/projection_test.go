package services

import (
	"testing"

	"github.com/shishigami87/aimroutines/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestProjectRoutine_Anonymous(t *testing.T) {
	routine := models.Routine{
		ID:    "r1",
		Title: "VT Fundamentals",
		Game:  models.GameKovaaks,
		LikedByUsers: []models.RoutineLiked{
			{RoutineID: "r1", UserID: "u1"},
			{RoutineID: "r1", UserID: "u2"},
		},
		Benchmarks: []models.RoutineBenchmark{
			{RoutineID: "r1", UserID: "u1", URL: "https://sheets/u1"},
		},
	}

	view := ProjectRoutine(routine, "")

	assert.Equal(t, 2, view.Likes)
	assert.False(t, view.Liked)
	assert.Empty(t, view.BenchmarkSheet)
	// nil playlists serialize as [], not null
	assert.NotNil(t, view.Playlists)
	assert.Len(t, view.Playlists, 0)
}

func TestProjectRoutine_CallerIdentity(t *testing.T) {
	routine := models.Routine{
		ID:          "r1",
		IsBenchmark: true,
		LikedByUsers: []models.RoutineLiked{
			{RoutineID: "r1", UserID: "u1"},
		},
		Benchmarks: []models.RoutineBenchmark{
			{RoutineID: "r1", UserID: "u2", URL: "https://sheets/u2"},
			{RoutineID: "r1", UserID: "u1", URL: "https://sheets/u1"},
		},
	}

	view := ProjectRoutine(routine, "u1")
	assert.True(t, view.Liked)
	assert.Equal(t, "https://sheets/u1", view.BenchmarkSheet)

	other := ProjectRoutine(routine, "u3")
	assert.False(t, other.Liked)
	assert.Empty(t, other.BenchmarkSheet)
}

func TestProjectRoutines_OrderedByLikes(t *testing.T) {
	routines := []models.Routine{
		{ID: "a", Title: "Alpha"},
		{ID: "b", Title: "Beta", LikedByUsers: []models.RoutineLiked{{UserID: "u1"}, {UserID: "u2"}}},
		{ID: "c", Title: "Gamma", LikedByUsers: []models.RoutineLiked{{UserID: "u1"}}},
	}

	views := ProjectRoutines(routines, "")

	assert.Equal(t, []string{"b", "c", "a"}, []string{views[0].ID, views[1].ID, views[2].ID})
}

func TestProjectRoutines_StableOnTies(t *testing.T) {
	// Equal like counts keep the input (store) order.
	routines := []models.Routine{
		{ID: "z", Title: "Zeta"},
		{ID: "y", Title: "Ypsilon"},
		{ID: "x", Title: "Xi"},
	}

	views := ProjectRoutines(routines, "")

	assert.Equal(t, "z", views[0].ID)
	assert.Equal(t, "y", views[1].ID)
	assert.Equal(t, "x", views[2].ID)
}

func TestProjectPlaylist(t *testing.T) {
	playlist := models.Playlist{
		ID:        "p1",
		Title:     "Smoothness",
		Game:      models.GameKovaaks,
		Reference: "KovaaKs-Smooth-abc12",
		LikedByUsers: []models.PlaylistLiked{
			{PlaylistID: "p1", UserID: "u1"},
		},
	}

	anon := ProjectPlaylist(playlist, "")
	assert.Equal(t, 1, anon.Likes)
	assert.False(t, anon.Liked)
	assert.Equal(t, "steam://run/824270/?action=jump-to-playlist;sharecode=KovaaKs-Smooth-abc12", anon.PlayURI)

	self := ProjectPlaylist(playlist, "u1")
	assert.True(t, self.Liked)
}
