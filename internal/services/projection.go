package services

import (
	"sort"

	"github.com/shishigami87/aimroutines/internal/models"
	"github.com/shishigami87/aimroutines/pkg/utils"
)

// RoutineView is the denormalized shape the frontend renders. Likes, liked
// and benchmarkSheet are computed relative to the requesting identity.
type RoutineView struct {
	ID               string            `json:"id"`
	Title            string            `json:"title"`
	Description      string            `json:"description,omitempty"`
	Author           string            `json:"author,omitempty"`
	AuthorHandle     string            `json:"authorHandle,omitempty"`
	Game             models.Game       `json:"game"`
	ExternalResource string            `json:"externalResource,omitempty"`
	TemplateSheet    string            `json:"templateSheet,omitempty"`
	IsBenchmark      bool              `json:"isBenchmark"`
	Playlists        []models.Playlist `json:"playlists"`
	Likes            int               `json:"likes"`
	Liked            bool              `json:"liked"`
	BenchmarkSheet   string            `json:"benchmarkSheet,omitempty"`
}

type PlaylistView struct {
	ID               string      `json:"id"`
	Title            string      `json:"title"`
	Description      string      `json:"description,omitempty"`
	Author           string      `json:"author,omitempty"`
	AuthorHandle     string      `json:"authorHandle,omitempty"`
	Game             models.Game `json:"game"`
	Reference        string      `json:"reference"`
	PlayURI          string      `json:"playUri"`
	ExternalResource string      `json:"externalResource,omitempty"`
	Likes            int         `json:"likes"`
	Liked            bool        `json:"liked"`
}

// ProjectRoutine computes the per-caller view of a routine. Pure function of
// its inputs; callerID may be empty for anonymous requests. Relations must be
// preloaded by the caller.
func ProjectRoutine(routine models.Routine, callerID string) RoutineView {
	view := RoutineView{
		ID:               routine.ID,
		Title:            routine.Title,
		Description:      routine.Description,
		Author:           routine.Author,
		AuthorHandle:     routine.AuthorHandle,
		Game:             routine.Game,
		ExternalResource: routine.ExternalResource,
		TemplateSheet:    routine.TemplateSheet,
		IsBenchmark:      routine.IsBenchmark,
		Playlists:        routine.Playlists,
		Likes:            len(routine.LikedByUsers),
	}
	if view.Playlists == nil {
		view.Playlists = []models.Playlist{}
	}

	if callerID == "" {
		return view
	}

	for _, like := range routine.LikedByUsers {
		if like.UserID == callerID {
			view.Liked = true
			break
		}
	}

	for _, bench := range routine.Benchmarks {
		if bench.UserID == callerID {
			view.BenchmarkSheet = bench.URL
			break
		}
	}

	return view
}

// ProjectRoutines projects a store snapshot and orders it by likes
// descending. The sort is stable so the store's own secondary order (title
// descending) is preserved between equally liked routines.
func ProjectRoutines(routines []models.Routine, callerID string) []RoutineView {
	views := make([]RoutineView, 0, len(routines))
	for _, routine := range routines {
		views = append(views, ProjectRoutine(routine, callerID))
	}

	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Likes > views[j].Likes
	})

	return views
}

// ProjectPlaylist is the standalone-playlist counterpart of ProjectRoutine.
func ProjectPlaylist(playlist models.Playlist, callerID string) PlaylistView {
	view := PlaylistView{
		ID:               playlist.ID,
		Title:            playlist.Title,
		Description:      playlist.Description,
		Author:           playlist.Author,
		AuthorHandle:     playlist.AuthorHandle,
		Game:             playlist.Game,
		Reference:        playlist.Reference,
		PlayURI:          utils.PlayURI(playlist.Reference, playlist.Game),
		ExternalResource: playlist.ExternalResource,
		Likes:            len(playlist.LikedByUsers),
	}

	if callerID == "" {
		return view
	}

	for _, like := range playlist.LikedByUsers {
		if like.UserID == callerID {
			view.Liked = true
			break
		}
	}

	return view
}

func ProjectPlaylists(playlists []models.Playlist, callerID string) []PlaylistView {
	views := make([]PlaylistView, 0, len(playlists))
	for _, playlist := range playlists {
		views = append(views, ProjectPlaylist(playlist, callerID))
	}

	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Likes > views[j].Likes
	})

	return views
}
